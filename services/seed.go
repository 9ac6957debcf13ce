package services

import (
	"context"
	"fmt"
	"html"
	"log"

	"travel_wonders_go/models"

	"gorm.io/gorm"
)

// SeedContent seeds a starter set of destinations, specialists and
// combinations. Safe to run repeatedly; rows are matched by slug.
func SeedContent(db *gorm.DB) error {
	log.Println("Seeding travel content...")

	countries := []models.Country{
		{
			Slug:    "iceland",
			IsoCode: "IS",
			NameCS:  "Island", NameEN: "Iceland",
			DescriptionCS: "Země ledovců, vodopádů a černých pláží.",
			DescriptionEN: "A land of glaciers, waterfalls and black beaches.",
			HikingLevel:   5, BeachLevel: 1, RoadtripLevel: 5,
			MinDays: 7, OptimalDays: 10,
			AvgFlightPrice: 6500, AvgAccommodation: 2800, AvgFoodPerDay: 900,
			PregnancySafe: true, InfantSafe: true,
			Enabled: true,
		},
		{
			Slug:    "peru",
			IsoCode: "PE",
			NameCS:  "Peru", NameEN: "Peru",
			DescriptionCS: "Andy, inkové a amazonský prales.",
			DescriptionEN: "The Andes, the Incas and the Amazon rainforest.",
			HikingLevel:   5, BeachLevel: 2, RoadtripLevel: 3,
			MinDays: 12, OptimalDays: 16,
			AvgFlightPrice: 18000, AvgAccommodation: 900, AvgFoodPerDay: 400,
			Enabled: true,
		},
		{
			Slug:    "usa",
			IsoCode: "US",
			NameCS:  "USA", NameEN: "United States",
			DescriptionCS: "Národní parky amerického západu.",
			DescriptionEN: "National parks of the American West.",
			HikingLevel:   4, BeachLevel: 3, RoadtripLevel: 5,
			MinDays: 10, OptimalDays: 14,
			AvgFlightPrice: 14000, AvgAccommodation: 3200, AvgFoodPerDay: 1100,
			Enabled: true,
		},
	}

	countryBySlug := make(map[string]models.Country)
	for _, c := range countries {
		existing, err := findOrCreateCountry(db, c)
		if err != nil {
			return err
		}
		countryBySlug[c.Slug] = existing
	}

	// Utah is modelled as a state under the USA
	utah := models.Country{
		Slug:   "utah",
		NameCS: "Utah", NameEN: "Utah",
		DescriptionCS: "Pouštní kaňony a skalní oblouky.",
		DescriptionEN: "Desert canyons and sandstone arches.",
		HikingLevel:   5, RoadtripLevel: 5,
		MinDays: 5, OptimalDays: 7,
		Enabled: true,
		IsState: true,
	}
	if usa, ok := countryBySlug["usa"]; ok {
		utah.ParentCountryID = &usa.ID
	}
	utahRow, err := findOrCreateCountry(db, utah)
	if err != nil {
		return err
	}
	countryBySlug["utah"] = utahRow

	wonders := []models.Wonder{
		{
			Slug:      "skogafoss",
			CountryID: countryBySlug["iceland"].ID,
			NameCS:    "Vodopád Skógafoss", NameEN: "Skogafoss waterfall",
			ShortDescriptionCS: "Šedesátimetrový vodopád na jihu Islandu.",
			ShortDescriptionEN: "A sixty-meter waterfall in southern Iceland.",
			Latitude:           63.5321, Longitude: -19.5114,
			HikingDifficulty: 1,
			PregnancySafe:    true, InfantSafe: true,
		},
		{
			Slug:      "landmannalaugar",
			CountryID: countryBySlug["iceland"].ID,
			NameCS:    "Landmannalaugar", NameEN: "Landmannalaugar",
			ShortDescriptionCS: "Barevné ryolitové hory a horké prameny.",
			ShortDescriptionEN: "Colorful rhyolite mountains and hot springs.",
			Latitude:           63.9830, Longitude: -19.0670,
			HikingDifficulty: 4, Altitude: 600,
		},
		{
			Slug:      "machu-picchu",
			CountryID: countryBySlug["peru"].ID,
			NameCS:    "Machu Picchu", NameEN: "Machu Picchu",
			ShortDescriptionCS: "Ztracené město Inků.",
			ShortDescriptionEN: "The lost city of the Incas.",
			Latitude:           -13.1631, Longitude: -72.5450,
			HikingDifficulty: 3, Altitude: 2430,
		},
	}

	wonderBySlug := make(map[string]models.Wonder)
	for _, w := range wonders {
		existing, err := findOrCreateWonder(db, w)
		if err != nil {
			return err
		}
		wonderBySlug[w.Slug] = existing
	}

	if err := seedWonderTags(db, wonderBySlug["landmannalaugar"].ID, []models.WonderTag{
		{LabelCS: "trek", LabelEN: "trekking", SortOrder: 1},
		{LabelCS: "horké prameny", LabelEN: "hot springs", SortOrder: 2},
	}); err != nil {
		return err
	}

	hikes := []models.Hike{
		{
			CountryID: countryBySlug["iceland"].ID,
			WonderID:  strID(wonderBySlug["landmannalaugar"].ID),
			NameCS:    "Laugavegur", NameEN: "Laugavegur trail",
			Difficulty: 4, ElevationGain: 1900, DistanceKM: 55, DurationHours: 32,
			BestSeasonCS: "červenec až září", BestSeasonEN: "July to September",
		},
		{
			CountryID: countryBySlug["peru"].ID,
			WonderID:  strID(wonderBySlug["machu-picchu"].ID),
			NameCS:    "Inca Trail", NameEN: "Inca Trail",
			Difficulty: 3, ElevationGain: 2100, DistanceKM: 43, DurationHours: 28,
			BestSeasonCS: "květen až září", BestSeasonEN: "May to September",
		},
	}
	for _, h := range hikes {
		if err := findOrCreateHike(db, h); err != nil {
			return err
		}
	}

	attractions := []models.Attraction{
		{
			CountryID: countryBySlug["iceland"].ID,
			Type:      models.AttractionWaterfall,
			NameCS:    "Seljalandsfoss", NameEN: "Seljalandsfoss",
		},
		{
			CountryID: countryBySlug["iceland"].ID,
			Type:      models.AttractionBeach,
			NameCS:    "Reynisfjara", NameEN: "Reynisfjara black beach",
		},
		{
			CountryID: countryBySlug["peru"].ID,
			Type:      models.AttractionTown,
			NameCS:    "Cusco", NameEN: "Cusco",
		},
	}
	for _, a := range attractions {
		if err := findOrCreateAttraction(db, a); err != nil {
			return err
		}
	}

	specialist := models.Specialist{
		Slug:         "maria-quispe",
		Type:         models.SpecialistLocalAdvisor,
		Name:         "Maria Quispe",
		BioCS:        "Průvodkyně z Cuska se zaměřením na vysokohorské treky.",
		BioEN:        "A Cusco based guide focused on high-altitude treks.",
		Rating:       4.9,
		LanguagesCS:  "španělština, angličtina",
		LanguagesEN:  "Spanish, English",
		ContactEmail: "maria@example.com",
		Enabled:      true,
	}
	if peru, ok := countryBySlug["peru"]; ok {
		specialist.HomeCountryID = &peru.ID
	}
	specialistRow, err := findOrCreateSpecialist(db, specialist)
	if err != nil {
		return err
	}

	if err := linkSpecialistCountry(db, specialistRow.ID, countryBySlug["peru"].ID, 1); err != nil {
		return err
	}

	var trip models.Trip
	err = db.Where("specialist_id = ? AND title_cs = ?", specialistRow.ID, "Trek kolem Machu Picchu").First(&trip).Error
	if err == gorm.ErrRecordNotFound {
		trip = models.Trip{
			SpecialistID: specialistRow.ID,
			CountryID:    countryBySlug["peru"].ID,
			TitleCS:      "Trek kolem Machu Picchu",
			TitleEN:      "Machu Picchu trek",
			Price:        32000,
			DurationDays: 8,
			Difficulty:   3,
			MaxGroupSize: 10,
		}
		if err := db.Create(&trip).Error; err != nil {
			return fmt.Errorf("failed to create trip: %w", err)
		}
		dates := []models.TripDate{
			{TripID: trip.ID, StartDate: "2026-05-10"},
			{TripID: trip.ID, StartDate: "2026-09-20"},
		}
		for _, d := range dates {
			if err := db.Create(&d).Error; err != nil {
				return fmt.Errorf("failed to create trip date: %w", err)
			}
		}
	} else if err != nil {
		return fmt.Errorf("failed to check for trip: %w", err)
	}

	var combo models.CountryCombination
	err = db.Where("slug = ?", "iceland-and-usa-west").First(&combo).Error
	if err == gorm.ErrRecordNotFound {
		combo = models.CountryCombination{
			Slug:    "iceland-and-usa-west",
			NameCS:  "Island a americký západ",
			NameEN:  "Iceland and the American West",
			RouteCS: "Reykjavík, jižní pobřeží, přelet do Denveru, Utah.",
			RouteEN: "Reykjavik, the south coast, a flight to Denver, Utah.",
			MinDays: 14, OptimalDays: 18,
		}
		if err := db.Create(&combo).Error; err != nil {
			return fmt.Errorf("failed to create combination: %w", err)
		}
		links := []models.CombinationCountry{
			{CombinationID: combo.ID, CountryID: countryBySlug["iceland"].ID, SortOrder: 1},
			{CombinationID: combo.ID, CountryID: countryBySlug["usa"].ID, SortOrder: 2},
		}
		for _, l := range links {
			if err := db.Create(&l).Error; err != nil {
				return fmt.Errorf("failed to link combination country: %w", err)
			}
		}
	} else if err != nil {
		return fmt.Errorf("failed to check for combination: %w", err)
	}

	if err := linkBestCombination(db, countryBySlug["iceland"].ID, countryBySlug["usa"].ID, 1); err != nil {
		return err
	}

	log.Println("Travel content seeding completed")
	return nil
}

func strID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// placeholderImage renders a labelled SVG used as seed artwork until
// real photography is uploaded for the record.
func placeholderImage(label string) []byte {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630">`+
		`<rect width="100%%" height="100%%" fill="#1f6f78"/>`+
		`<text x="50%%" y="50%%" fill="#ffffff" font-family="sans-serif" font-size="64" text-anchor="middle" dominant-baseline="middle">%s</text>`+
		`</svg>`, html.EscapeString(label))
	return []byte(svg)
}

// seedImage hosts a placeholder in the asset store and returns its
// public URL. Seeding proceeds without artwork when no store is up or
// the upload fails.
func seedImage(collection, slug, label string) string {
	url, err := HostAsset(context.Background(), collection, slug+".svg", "image/svg+xml", placeholderImage(label))
	if err != nil {
		log.Printf("[WARNING] Failed to host seed image for %s: %v", slug, err)
		return ""
	}
	return url
}

func findOrCreateCountry(db *gorm.DB, c models.Country) (models.Country, error) {
	var existing models.Country
	err := db.Where("slug = ?", c.Slug).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if c.HeroImageURL == "" {
			c.HeroImageURL = seedImage("countries", c.Slug, c.NameEN)
		}
		if err := db.Create(&c).Error; err != nil {
			return c, fmt.Errorf("failed to create country %s: %w", c.Slug, err)
		}
		log.Printf("Created country %s", c.Slug)
		return c, nil
	} else if err != nil {
		return c, fmt.Errorf("failed to check for country %s: %w", c.Slug, err)
	}
	return existing, nil
}

func findOrCreateWonder(db *gorm.DB, w models.Wonder) (models.Wonder, error) {
	var existing models.Wonder
	err := db.Where("slug = ?", w.Slug).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if w.HeroImageURL == "" {
			w.HeroImageURL = seedImage("wonders", w.Slug, w.NameEN)
		}
		if err := db.Create(&w).Error; err != nil {
			return w, fmt.Errorf("failed to create wonder %s: %w", w.Slug, err)
		}
		return w, nil
	} else if err != nil {
		return w, fmt.Errorf("failed to check for wonder %s: %w", w.Slug, err)
	}
	return existing, nil
}

func findOrCreateHike(db *gorm.DB, h models.Hike) error {
	var existing models.Hike
	err := db.Where("country_id = ? AND name_cs = ?", h.CountryID, h.NameCS).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if err := db.Create(&h).Error; err != nil {
			return fmt.Errorf("failed to create hike %s: %w", h.NameCS, err)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check for hike %s: %w", h.NameCS, err)
	}
	return nil
}

func findOrCreateAttraction(db *gorm.DB, a models.Attraction) error {
	var existing models.Attraction
	err := db.Where("country_id = ? AND name_cs = ?", a.CountryID, a.NameCS).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if err := db.Create(&a).Error; err != nil {
			return fmt.Errorf("failed to create attraction %s: %w", a.NameCS, err)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check for attraction %s: %w", a.NameCS, err)
	}
	return nil
}

func findOrCreateSpecialist(db *gorm.DB, s models.Specialist) (models.Specialist, error) {
	var existing models.Specialist
	err := db.Where("slug = ?", s.Slug).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if s.ProfileImageURL == "" {
			s.ProfileImageURL = seedImage("specialists", s.Slug, s.Name)
		}
		if err := db.Create(&s).Error; err != nil {
			return s, fmt.Errorf("failed to create specialist %s: %w", s.Slug, err)
		}
		return s, nil
	} else if err != nil {
		return s, fmt.Errorf("failed to check for specialist %s: %w", s.Slug, err)
	}
	return existing, nil
}

func seedWonderTags(db *gorm.DB, wonderID string, tags []models.WonderTag) error {
	if wonderID == "" {
		return nil
	}
	for _, t := range tags {
		var existing models.WonderTag
		err := db.Where("wonder_id = ? AND label_cs = ?", wonderID, t.LabelCS).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			t.WonderID = wonderID
			if err := db.Create(&t).Error; err != nil {
				return fmt.Errorf("failed to create wonder tag: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to check for wonder tag: %w", err)
		}
	}
	return nil
}

func linkSpecialistCountry(db *gorm.DB, specialistID, countryID string, sortOrder int) error {
	var existing models.SpecialistCountry
	err := db.Where("specialist_id = ? AND country_id = ?", specialistID, countryID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		link := models.SpecialistCountry{SpecialistID: specialistID, CountryID: countryID, SortOrder: sortOrder}
		if err := db.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to link specialist country: %w", err)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check for specialist country: %w", err)
	}
	return nil
}

func linkBestCombination(db *gorm.DB, countryID, relatedID string, sortOrder int) error {
	var existing models.BestCombination
	err := db.Where("country_id = ? AND related_country_id = ?", countryID, relatedID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		link := models.BestCombination{CountryID: countryID, RelatedCountryID: relatedID, SortOrder: sortOrder}
		if err := db.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to link best combination: %w", err)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check for best combination: %w", err)
	}
	return nil
}
