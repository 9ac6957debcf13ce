package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"travel_wonders_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
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
	return db
}

func seedCounts(db *gorm.DB) map[string]int64 {
	counts := map[string]int64{}
	count := func(name string, model interface{}) {
		var n int64
		db.Model(model).Count(&n)
		counts[name] = n
	}
	count("countries", &models.Country{})
	count("wonders", &models.Wonder{})
	count("wonder_tags", &models.WonderTag{})
	count("hikes", &models.Hike{})
	count("attractions", &models.Attraction{})
	count("specialists", &models.Specialist{})
	count("specialist_countries", &models.SpecialistCountry{})
	count("trips", &models.Trip{})
	count("trip_dates", &models.TripDate{})
	count("combinations", &models.CountryCombination{})
	count("combination_countries", &models.CombinationCountry{})
	count("best_combinations", &models.BestCombination{})
	return counts
}

func TestSeedContent(t *testing.T) {
	db := setupSeedTestDB(t)

	assert.NoError(t, SeedContent(db))

	var iceland models.Country
	assert.NoError(t, db.Where("slug = ?", "iceland").First(&iceland).Error)
	assert.True(t, iceland.Enabled)

	var utah models.Country
	assert.NoError(t, db.Where("slug = ?", "utah").First(&utah).Error)
	assert.True(t, utah.IsState)
	assert.NotNil(t, utah.ParentCountryID)

	var skogafoss models.Wonder
	assert.NoError(t, db.Where("slug = ?", "skogafoss").First(&skogafoss).Error)
	assert.Equal(t, iceland.ID, skogafoss.CountryID)

	var maria models.Specialist
	assert.NoError(t, db.Where("slug = ?", "maria-quispe").First(&maria).Error)
	assert.Equal(t, "local_advisor", maria.Type)

	counts := seedCounts(db)
	assert.Equal(t, int64(4), counts["countries"])
	assert.Equal(t, int64(3), counts["wonders"])
	assert.NotZero(t, counts["hikes"])
	assert.NotZero(t, counts["trip_dates"])
	assert.NotZero(t, counts["best_combinations"])
}

func TestSeedContentHostsHeroImages(t *testing.T) {
	db := setupSeedTestDB(t)
	store := withLocalAssets(t)

	assert.NoError(t, SeedContent(db))

	var iceland models.Country
	assert.NoError(t, db.Where("slug = ?", "iceland").First(&iceland).Error)
	assert.True(t, strings.HasPrefix(iceland.HeroImageURL, "/assets/countries/"))

	reader, contentType, err := store.Get(context.Background(), strings.TrimPrefix(iceland.HeroImageURL, "/assets/"))
	assert.NoError(t, err)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "Iceland")
	assert.Equal(t, "image/svg+xml", contentType)

	var skogafoss models.Wonder
	assert.NoError(t, db.Where("slug = ?", "skogafoss").First(&skogafoss).Error)
	assert.True(t, strings.HasPrefix(skogafoss.HeroImageURL, "/assets/wonders/"))

	var maria models.Specialist
	assert.NoError(t, db.Where("slug = ?", "maria-quispe").First(&maria).Error)
	assert.True(t, strings.HasPrefix(maria.ProfileImageURL, "/assets/specialists/"))

	// A second run matches by slug and keeps the hosted URLs stable.
	assert.NoError(t, SeedContent(db))
	var again models.Country
	assert.NoError(t, db.Where("slug = ?", "iceland").First(&again).Error)
	assert.Equal(t, iceland.HeroImageURL, again.HeroImageURL)
}

func TestSeedContentIsIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)

	assert.NoError(t, SeedContent(db))
	first := seedCounts(db)

	assert.NoError(t, SeedContent(db))
	second := seedCounts(db)

	assert.Equal(t, first, second)
}
