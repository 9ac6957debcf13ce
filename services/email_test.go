package services

import (
	"testing"
	"travel_wonders_go/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildInquiryEmail(t *testing.T) {
	email, err := BuildInquiryEmail(TripInquiry{
		SpecialistName:  "Maria Quispe",
		SpecialistEmail: "maria@example.com",
		VisitorName:     "Jan Novak",
		VisitorEmail:    "jan@example.com",
		Message:         "Is the trek suitable for beginners?",
		TripTitle:       "Machu Picchu trek",
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"maria@example.com"}, email.To)
	assert.Equal(t, "Trip inquiry: Machu Picchu trek", email.Subject)
	assert.Contains(t, email.HTMLBody, "Jan Novak")
	assert.Contains(t, email.HTMLBody, "jan@example.com")
	assert.Contains(t, email.HTMLBody, "Machu Picchu trek")
	assert.Contains(t, email.TextBody, "Is the trek suitable for beginners?")
}

func TestBuildInquiryEmailWithoutTrip(t *testing.T) {
	email, err := BuildInquiryEmail(TripInquiry{
		SpecialistEmail: "maria@example.com",
		VisitorName:     "Jan Novak",
		VisitorEmail:    "jan@example.com",
		Message:         "Hello",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Trip inquiry from Jan Novak", email.Subject)
	assert.NotContains(t, email.HTMLBody, "Trip:")
	assert.NotContains(t, email.TextBody, "Trip:")
}

func TestBuildInquiryEmailEscapesHTML(t *testing.T) {
	email, err := BuildInquiryEmail(TripInquiry{
		SpecialistEmail: "maria@example.com",
		VisitorName:     "<script>alert(1)</script>",
		VisitorEmail:    "jan@example.com",
		Message:         "Hi",
	})
	assert.NoError(t, err)
	assert.NotContains(t, email.HTMLBody, "<script>")
}

func TestBuildInquiryEmailRequiresRecipient(t *testing.T) {
	_, err := BuildInquiryEmail(TripInquiry{VisitorName: "Jan"})
	assert.Error(t, err)
}

func TestSendEmailTestMode(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}
	err := SendEmail(cfg, &Email{
		To:       []string{"maria@example.com"},
		Subject:  "Test",
		TextBody: "Body",
	})
	assert.NoError(t, err)
}

func TestSendEmailRequiresAPIKey(t *testing.T) {
	cfg := &config.Config{}
	err := SendEmail(cfg, &Email{To: []string{"maria@example.com"}, Subject: "Test", TextBody: "Body"})
	assert.Error(t, err)
}
