package services

import (
	"fmt"
	"html/template"
	"log"
	"strings"
	"travel_wonders_go/config"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// TripInquiry is a visitor's message to a specialist. It carries contact
// details only; booking and payment stay on external links.
type TripInquiry struct {
	SpecialistName  string
	SpecialistEmail string
	VisitorName     string
	VisitorEmail    string
	Message         string
	TripTitle       string
}

var inquiryHTMLTemplate = template.Must(template.New("inquiry").Parse(`
<h2>New trip inquiry</h2>
<p><strong>From:</strong> {{.VisitorName}} ({{.VisitorEmail}})</p>
{{if .TripTitle}}<p><strong>Trip:</strong> {{.TripTitle}}</p>{{end}}
<p>{{.Message}}</p>
`))

// BuildInquiryEmail creates the email sent to a specialist when a visitor
// submits the inquiry form
func BuildInquiryEmail(inquiry TripInquiry) (*Email, error) {
	if inquiry.SpecialistEmail == "" {
		return nil, fmt.Errorf("specialist has no contact email")
	}

	var html strings.Builder
	if err := inquiryHTMLTemplate.Execute(&html, inquiry); err != nil {
		return nil, fmt.Errorf("failed to render inquiry email: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "New trip inquiry\n\nFrom: %s (%s)\n", inquiry.VisitorName, inquiry.VisitorEmail)
	if inquiry.TripTitle != "" {
		fmt.Fprintf(&text, "Trip: %s\n", inquiry.TripTitle)
	}
	fmt.Fprintf(&text, "\n%s\n", inquiry.Message)

	subject := fmt.Sprintf("Trip inquiry from %s", inquiry.VisitorName)
	if inquiry.TripTitle != "" {
		subject = fmt.Sprintf("Trip inquiry: %s", inquiry.TripTitle)
	}

	return &Email{
		To:       []string{inquiry.SpecialistEmail},
		Subject:  subject,
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}

// SendEmail sends an email using the Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	// Validate configuration
	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}
	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// SendEmailAsync sends an email in a goroutine so handlers do not block on
// the Resend API
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func() {
		if err := SendEmail(cfg, emailCopy); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}()
}

// logEmailToConsole logs email details to console in test mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (test mode - not actually sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}
