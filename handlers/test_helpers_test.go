package handlers

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"travel_wonders_go/config"
	"travel_wonders_go/models"
	"travel_wonders_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupHandlerTest wires the package globals against a fresh in-memory
// database and returns a seeded fixture. Each test gets its own named
// shared-cache database so parallel connections see the same data.
func setupHandlerTest(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Country{}, &models.Wonder{}, &models.WonderTag{},
		&models.Hike{}, &models.Attraction{},
		&models.Specialist{}, &models.SpecialistCountry{},
		&models.Trip{}, &models.TripDate{},
		&models.CountryCombination{}, &models.CombinationCountry{},
		&models.BestCombination{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	Items = services.NewDBItemStore(db)
	Content = services.NewContentResolver(Items, "https://cdn.example.com")

	seedHandlerFixture(t, db)
	return db
}

func seedHandlerFixture(t *testing.T, db *gorm.DB) {
	iceland := models.Country{
		Slug: "iceland", IsoCode: "IS",
		NameCS: "Island", NameEN: "Iceland",
		HikingLevel: 5, MinDays: 7, OptimalDays: 10,
		AvgFlightPrice: 6500, AvgAccommodation: 2800,
		Enabled: true,
	}
	peru := models.Country{
		Slug:   "peru",
		NameCS: "Peru", NameEN: "Peru",
		HikingLevel: 5, MinDays: 12,
		AvgFlightPrice: 18000,
		Enabled:        true,
	}
	if err := db.Create(&iceland).Error; err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	if err := db.Create(&peru).Error; err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	skogafoss := models.Wonder{
		Slug: "skogafoss", CountryID: iceland.ID,
		NameCS: "Vodopád Skógafoss", NameEN: "Skogafoss waterfall",
	}
	if err := db.Create(&skogafoss).Error; err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	maria := models.Specialist{
		Slug: "maria-quispe", Type: "local_advisor",
		Name:         "Maria Quispe",
		ContactEmail: "maria@example.com",
		Rating:       4.9,
		Enabled:      true,
	}
	if err := db.Create(&maria).Error; err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	noEmail := models.Specialist{
		Slug: "bjorn", Type: "community_leader",
		Name:    "Bjorn",
		Rating:  4.5,
		Enabled: true,
	}
	if err := db.Create(&noEmail).Error; err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	combo := models.CountryCombination{
		Slug:   "iceland-and-peru",
		NameCS: "Island a Peru", NameEN: "Iceland and Peru",
	}
	if err := db.Create(&combo).Error; err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	links := []models.CombinationCountry{
		{CombinationID: combo.ID, CountryID: iceland.ID, SortOrder: 1},
		{CombinationID: combo.ID, CountryID: peru.ID, SortOrder: 2},
	}
	for i := range links {
		if err := db.Create(&links[i]).Error; err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
	}
}

// request runs a handler against a synthetic echo context
func request(method, target, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", &config.Config{EmailTestMode: true})

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, err error, want int) {
	t.Helper()
	if httpErr, ok := err.(*echo.HTTPError); ok {
		assert.Equal(t, want, httpErr.Code)
		return
	}
	assert.NoError(t, err)
	assert.Equal(t, want, rec.Code)
}
