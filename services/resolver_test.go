package services

import (
	"context"
	"testing"

	"travel_wonders_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fixture holds the seeded rows the resolver tests assert against
type resolverFixture struct {
	db        *gorm.DB
	resolver  *ContentResolver
	iceland   models.Country
	peru      models.Country
	usa       models.Country
	utah      models.Country
	atlantis  models.Country
	skogafoss models.Wonder
	highlands models.Wonder
	maria     models.Specialist
	bjorn     models.Specialist
	disabled  models.Specialist
	trek      models.Trip
	dayTrip   models.Trip
	comboSlug string
}

func setupResolver(t *testing.T) *resolverFixture {
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

	f := &resolverFixture{db: db}
	f.resolver = NewContentResolver(NewDBItemStore(db), "https://cdn.example.com")

	f.iceland = models.Country{
		Slug: "iceland", NameCS: "Island", NameEN: "Iceland",
		HikingLevel: 5, MinDays: 7, OptimalDays: 10,
		AvgFlightPrice: 6500, AvgAccommodation: 2800,
		Enabled: true, HeroImageURL: "assets/iceland.jpg",
	}
	f.peru = models.Country{
		Slug: "peru", NameCS: "Peru", NameEN: "Peru",
		HikingLevel: 5, AvgFlightPrice: 18000, AvgAccommodation: 900,
		Enabled: true,
	}
	f.usa = models.Country{
		Slug: "usa", NameCS: "USA", NameEN: "United States",
		Enabled: true,
	}
	f.atlantis = models.Country{
		Slug: "atlantis", NameCS: "Atlantida", Enabled: false,
	}
	for _, c := range []*models.Country{&f.iceland, &f.peru, &f.usa, &f.atlantis} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("failed to seed country: %v", err)
		}
	}

	f.utah = models.Country{
		Slug: "utah", NameCS: "Utah", Enabled: true, IsState: true,
		ParentCountryID: &f.usa.ID,
	}
	if err := db.Create(&f.utah).Error; err != nil {
		t.Fatalf("failed to seed state: %v", err)
	}

	f.skogafoss = models.Wonder{
		Slug: "skogafoss", CountryID: f.iceland.ID,
		NameCS: "Vodopád Skógafoss", NameEN: "Skogafoss waterfall",
	}
	f.highlands = models.Wonder{
		Slug: "landmannalaugar", CountryID: f.iceland.ID,
		NameCS: "Landmannalaugar", NameEN: "Landmannalaugar",
	}
	db.Create(&f.skogafoss)
	db.Create(&f.highlands)

	db.Create(&models.WonderTag{WonderID: f.highlands.ID, LabelCS: "horké prameny", LabelEN: "hot springs", SortOrder: 2})
	db.Create(&models.WonderTag{WonderID: f.highlands.ID, LabelCS: "trek", LabelEN: "trekking", SortOrder: 1})

	db.Create(&models.Hike{CountryID: f.iceland.ID, WonderID: &f.highlands.ID, NameCS: "Laugavegur", NameEN: "Laugavegur trail", Difficulty: 4})
	db.Create(&models.Attraction{CountryID: f.iceland.ID, Type: models.AttractionBeach, NameCS: "Reynisfjara", NameEN: "Reynisfjara"})
	db.Create(&models.Attraction{CountryID: f.iceland.ID, Type: "volcano", NameCS: "Neplatná", NameEN: "Invalid"})

	f.maria = models.Specialist{
		Slug: "maria-quispe", Type: models.SpecialistLocalAdvisor,
		Name: "Maria Quispe", Rating: 4.9, Enabled: true,
		HomeCountryID: &f.peru.ID, ContactEmail: "maria@example.com",
	}
	f.bjorn = models.Specialist{
		Slug: "bjorn-gudmundsson", Type: models.SpecialistCommunityLeader,
		Name: "Bjorn Gudmundsson", Rating: 4.5, Enabled: true,
	}
	f.disabled = models.Specialist{
		Slug: "ghost", Type: models.SpecialistLocalAdvisor,
		Name: "Ghost Guide", Rating: 5.0, Enabled: false,
	}
	db.Create(&f.maria)
	db.Create(&f.bjorn)
	db.Create(&f.disabled)

	// Bjorn is featured first for Iceland despite the lower rating; the
	// disabled specialist never surfaces
	db.Create(&models.SpecialistCountry{SpecialistID: f.bjorn.ID, CountryID: f.iceland.ID, SortOrder: 1})
	db.Create(&models.SpecialistCountry{SpecialistID: f.maria.ID, CountryID: f.iceland.ID, SortOrder: 2})
	db.Create(&models.SpecialistCountry{SpecialistID: f.disabled.ID, CountryID: f.iceland.ID, SortOrder: 0})

	f.trek = models.Trip{
		SpecialistID: f.maria.ID, CountryID: f.peru.ID,
		TitleCS: "Trek kolem Machu Picchu", TitleEN: "Machu Picchu trek",
		Price: 32000, DurationDays: 8,
	}
	f.dayTrip = models.Trip{
		SpecialistID: f.maria.ID, CountryID: f.peru.ID,
		TitleCS: "Den v Cusku", TitleEN: "A day in Cusco",
		Price: 1500, DurationDays: 1,
	}
	db.Create(&f.trek)
	db.Create(&f.dayTrip)

	db.Create(&models.TripDate{TripID: f.trek.ID, StartDate: "2026-09-20"})
	db.Create(&models.TripDate{TripID: f.trek.ID, StartDate: "2026-05-10"})
	db.Create(&models.TripDate{TripID: f.dayTrip.ID, StartDate: "2026-06-01"})

	combo := models.CountryCombination{
		Slug: "iceland-and-peru", NameCS: "Island a Peru", NameEN: "Iceland and Peru",
		MinDays: 18, OptimalDays: 24,
	}
	db.Create(&combo)
	f.comboSlug = combo.Slug
	db.Create(&models.CombinationCountry{CombinationID: combo.ID, CountryID: f.peru.ID, SortOrder: 2})
	db.Create(&models.CombinationCountry{CombinationID: combo.ID, CountryID: f.iceland.ID, SortOrder: 1})
	db.Create(&models.CombinationCountry{CombinationID: combo.ID, CountryID: f.atlantis.ID, SortOrder: 3})

	db.Create(&models.BestCombination{CountryID: f.iceland.ID, RelatedCountryID: f.peru.ID, SortOrder: 2})
	db.Create(&models.BestCombination{CountryID: f.iceland.ID, RelatedCountryID: f.usa.ID, SortOrder: 1})

	return f
}

func TestCountryDetail(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	detail, err := f.resolver.CountryDetail(ctx, "iceland", LocaleEN)
	assert.NoError(t, err)
	assert.Equal(t, "Iceland", detail.Name)
	assert.Equal(t, "https://cdn.example.com/assets/iceland.jpg", detail.HeroImage.URL)

	assert.Len(t, detail.DetailWonders, 2)
	assert.Equal(t, "Landmannalaugar", detail.DetailWonders[0].Name)
	assert.Equal(t, "Skogafoss waterfall", detail.DetailWonders[1].Name)

	assert.Len(t, detail.Hikes, 1)
	assert.Equal(t, "Laugavegur trail", detail.Hikes[0].Name)

	// The malformed attraction type is dropped, not surfaced as an error
	assert.Len(t, detail.Attractions, 1)
	assert.Equal(t, "Reynisfjara", detail.Attractions[0].Name)

	// Join-table order wins over rating; the disabled specialist is gone
	assert.Len(t, detail.Specialists, 2)
	assert.Equal(t, "Bjorn Gudmundsson", detail.Specialists[0].Name)
	assert.Equal(t, "Maria Quispe", detail.Specialists[1].Name)

	assert.Len(t, detail.BestCombinations, 2)
	assert.Equal(t, "usa", detail.BestCombinations[0].Slug)
	assert.Equal(t, "peru", detail.BestCombinations[1].Slug)
}

func TestCountryDetailRegionsAndParent(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	detail, err := f.resolver.CountryDetail(ctx, "usa", LocaleCS)
	assert.NoError(t, err)
	assert.Len(t, detail.Regions, 1)
	assert.Equal(t, "utah", detail.Regions[0].Slug)
	assert.True(t, detail.Regions[0].IsState)

	state, err := f.resolver.CountryDetail(ctx, "utah", LocaleCS)
	assert.NoError(t, err)
	assert.NotNil(t, state.Parent)
	assert.Equal(t, "usa", state.Parent.Slug)
}

func TestCountryDetailNotFound(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	_, err := f.resolver.CountryDetail(ctx, "narnia", LocaleCS)
	assert.ErrorIs(t, err, ErrNotFound)

	// Disabled countries resolve like missing ones
	_, err = f.resolver.CountryDetail(ctx, "atlantis", LocaleCS)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWonderDetail(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	detail, err := f.resolver.WonderDetail(ctx, "landmannalaugar", LocaleEN)
	assert.NoError(t, err)
	assert.Equal(t, "Landmannalaugar", detail.Name)
	assert.NotNil(t, detail.Country)
	assert.Equal(t, "iceland", detail.Country.Slug)

	assert.Len(t, detail.Hikes, 1)
	assert.Equal(t, "Laugavegur trail", detail.Hikes[0].Name)

	assert.Len(t, detail.Tags, 2)
	assert.Equal(t, "trekking", detail.Tags[0].Label)
	assert.Equal(t, "hot springs", detail.Tags[1].Label)

	_, err = f.resolver.WonderDetail(ctx, "nowhere", LocaleEN)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSpecialistDetail(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	detail, err := f.resolver.SpecialistDetail(ctx, "maria-quispe", LocaleEN)
	assert.NoError(t, err)
	assert.Equal(t, "Maria Quispe", detail.Name)
	assert.NotNil(t, detail.HomeCountry)
	assert.Equal(t, "peru", detail.HomeCountry.Slug)

	assert.Len(t, detail.Trips, 2)
	assert.Equal(t, "A day in Cusco", detail.Trips[0].Title)
	assert.Equal(t, "Machu Picchu trek", detail.Trips[1].Title)

	// Batched dates land on the right trips, ascending
	assert.Equal(t, []string{"2026-06-01"}, detail.Trips[0].StartDates)
	assert.Equal(t, []string{"2026-05-10", "2026-09-20"}, detail.Trips[1].StartDates)

	_, err = f.resolver.SpecialistDetail(ctx, "ghost", LocaleEN)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCombinationDetail(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	detail, err := f.resolver.CombinationDetail(ctx, f.comboSlug, LocaleCS)
	assert.NoError(t, err)
	assert.Equal(t, "Island a Peru", detail.Name)

	// Join order is kept and the disabled member is dropped
	assert.Len(t, detail.Countries, 2)
	assert.Equal(t, "iceland", detail.Countries[0].Slug)
	assert.Equal(t, "peru", detail.Countries[1].Slug)

	_, err = f.resolver.CombinationDetail(ctx, "nope", LocaleCS)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCountries(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	list, err := f.resolver.ListCountries(ctx, CountryFilters{}, LocaleCS)
	assert.NoError(t, err)

	// Default visibility: no states, no disabled
	slugs := make([]string, 0, len(list))
	for _, c := range list {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"iceland", "peru", "usa"}, slugs)

	// Wonders ride along on the list shape
	assert.Len(t, list[0].Wonders, 2)
	assert.Equal(t, "Landmannalaugar", list[0].Wonders[0].Name)
}

func TestListCountriesFiltered(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	budget := 10000.0
	list, err := f.resolver.ListCountries(ctx, CountryFilters{MaxBudget: &budget}, LocaleCS)
	assert.NoError(t, err)

	// Peru's flight price blows the budget even though accommodation fits
	assert.Len(t, list, 2)
	assert.Equal(t, "iceland", list[0].Slug)
	assert.Equal(t, "usa", list[1].Slug)
}

func TestListCountriesIncludeStates(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	list, err := f.resolver.ListCountries(ctx, CountryFilters{IncludeStates: true}, LocaleCS)
	assert.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestListSpecialists(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	list, err := f.resolver.ListSpecialists(ctx, LocaleCS)
	assert.NoError(t, err)

	// Rating descending; the disabled one is excluded
	assert.Len(t, list, 2)
	assert.Equal(t, "Maria Quispe", list[0].Name)
	assert.Equal(t, "Bjorn Gudmundsson", list[1].Name)
}

func TestResolveFeaturedSpecialistsDuplicateRows(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	links := []map[string]interface{}{
		{"specialist_id": f.maria.ID, "sort_order": 2},
		{"specialist_id": f.maria.ID, "sort_order": 5},
		{"specialist_id": f.bjorn.ID, "sort_order": 1},
	}

	specialists, err := f.resolver.resolveFeaturedSpecialists(ctx, links, LocaleCS)
	assert.NoError(t, err)

	// Each specialist appears once; the first row's sort_order ranks Maria second.
	assert.Len(t, specialists, 2)
	assert.Equal(t, "Bjorn Gudmundsson", specialists[0].Name)
	assert.Equal(t, "Maria Quispe", specialists[1].Name)
}

func TestResolveLinkedCountriesDuplicateRows(t *testing.T) {
	f := setupResolver(t)
	ctx := context.Background()

	links := []map[string]interface{}{
		{"country_id": f.peru.ID, "sort_order": 2},
		{"country_id": f.iceland.ID, "sort_order": 1},
		{"country_id": f.peru.ID, "sort_order": 0},
	}

	countries, err := f.resolver.resolveLinkedCountries(ctx, links, "country_id", LocaleCS)
	assert.NoError(t, err)

	assert.Len(t, countries, 2)
	assert.Equal(t, "iceland", countries[0].Slug)
	assert.Equal(t, "peru", countries[1].Slug)
}
