package services

import (
	"strings"
	"travel_wonders_go/models"
)

// Entity mappers turn raw item rows into localized view models. A mapper
// returns nil when the row fails its identity gate (missing id, blank slug,
// unknown enum type); callers drop nils out of collections silently. All
// other malformed fields degrade to null, never to an error.

func numPtr(row map[string]interface{}, field string) *float64 {
	v, ok := FieldValue(row, field)
	if !ok {
		return nil
	}
	f, ok := AsNumber(v)
	if !ok {
		return nil
	}
	return &f
}

func intPtr(row map[string]interface{}, field string) *int {
	v, ok := FieldValue(row, field)
	if !ok {
		return nil
	}
	i, ok := AsInt(v)
	if !ok {
		return nil
	}
	return &i
}

func boolPtr(row map[string]interface{}, field string) *bool {
	v, ok := FieldValue(row, field)
	if !ok {
		return nil
	}
	b, ok := AsBoolean(v)
	if !ok {
		return nil
	}
	return &b
}

func strPtr(row map[string]interface{}, field string) *string {
	v, ok := FieldValue(row, field)
	if !ok {
		return nil
	}
	s, ok := AsString(v)
	if !ok {
		return nil
	}
	return &s
}

func localizedPtr(row map[string]interface{}, field string, loc Locale) *string {
	s, ok := Localize(row, field, loc)
	if !ok {
		return nil
	}
	return &s
}

func localizedHTMLPtr(row map[string]interface{}, field string, loc Locale) *string {
	s, ok := LocalizeHTML(row, field, loc)
	if !ok {
		return nil
	}
	return &s
}

func idField(row map[string]interface{}, field string) (string, bool) {
	v, ok := FieldValue(row, field)
	if !ok {
		return "", false
	}
	return AsID(v)
}

func idPtr(row map[string]interface{}, field string) *string {
	id, ok := idField(row, field)
	if !ok {
		return nil
	}
	return &id
}

// resolveMedia resolves an image field: a precomputed `{field}_url` column
// wins, then an embedded asset reference object. Relative values are
// prefixed with the configured asset base URL. Missing or blank values
// yield nil, never a malformed media object.
func resolveMedia(row map[string]interface{}, field, assetBase string) *MediaView {
	if v, ok := FieldValue(row, field+"_url"); ok {
		if s, ok := AsString(v); ok {
			return &MediaView{URL: absolutize(s, assetBase)}
		}
	}
	if v, ok := FieldValue(row, field); ok {
		switch asset := v.(type) {
		case map[string]interface{}:
			for _, key := range []string{"filename_disk", "id"} {
				if ref, ok := FieldValue(asset, key); ok {
					if s, ok := AsString(ref); ok {
						return &MediaView{URL: absolutize("assets/"+s, assetBase)}
					}
				}
			}
		case string:
			if s, ok := AsString(asset); ok {
				return &MediaView{URL: absolutize(s, assetBase)}
			}
		}
	}
	return nil
}

func absolutize(path, assetBase string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if assetBase == "" {
		return path
	}
	return strings.TrimRight(assetBase, "/") + "/" + strings.TrimLeft(path, "/")
}

// MapCountry maps a raw country row to its summary view
func MapCountry(row map[string]interface{}, loc Locale, assetBase string) *CountrySummary {
	id, ok := idField(row, "id")
	if !ok {
		return nil
	}
	slug, ok := idField(row, "slug")
	if !ok {
		return nil
	}

	country := &CountrySummary{
		ID:               id,
		Slug:             slug,
		Description:      localizedHTMLPtr(row, "description", loc),
		HikingLevel:      intPtr(row, "hiking_level"),
		BeachLevel:       intPtr(row, "beach_level"),
		RoadtripLevel:    intPtr(row, "roadtrip_level"),
		MinDays:          intPtr(row, "min_days"),
		OptimalDays:      intPtr(row, "optimal_days"),
		AvgFlightPrice:   numPtr(row, "avg_flight_price"),
		AvgAccommodation: numPtr(row, "avg_accommodation_price"),
		AvgFoodPerDay:    numPtr(row, "avg_food_per_day"),
		PregnancySafe:    boolPtr(row, "pregnancy_safe"),
		InfantSafe:       boolPtr(row, "infant_safe"),
		ParentCountryID:  idPtr(row, "parent_country_id"),
		HeroImage:        resolveMedia(row, "hero_image", assetBase),
	}
	if name, ok := Localize(row, "name", loc); ok {
		country.Name = name
	}
	if iso, ok := idField(row, "iso_code"); ok {
		country.IsoCode = iso
	}
	if isState, ok := AsBoolean(valueOrNil(row, "is_state")); ok {
		country.IsState = isState
	}
	return country
}

// MapWonder maps a raw wonder row to its summary view
func MapWonder(row map[string]interface{}, loc Locale, assetBase string) *WonderSummary {
	id, ok := idField(row, "id")
	if !ok {
		return nil
	}
	slug, ok := idField(row, "slug")
	if !ok {
		return nil
	}

	wonder := &WonderSummary{
		ID:               id,
		Slug:             slug,
		ShortDescription: localizedPtr(row, "short_description", loc),
		Latitude:         numPtr(row, "latitude"),
		Longitude:        numPtr(row, "longitude"),
		HikingDifficulty: intPtr(row, "hiking_difficulty"),
		Altitude:         intPtr(row, "altitude"),
		PregnancySafe:    boolPtr(row, "pregnancy_safe"),
		InfantSafe:       boolPtr(row, "infant_safe"),
		HeroImage:        resolveMedia(row, "hero_image", assetBase),
	}
	if name, ok := Localize(row, "name", loc); ok {
		wonder.Name = name
	}
	if countryID, ok := idField(row, "country_id"); ok {
		wonder.CountryID = countryID
	}
	return wonder
}

// MapHike maps a raw hike row
func MapHike(row map[string]interface{}, loc Locale) *HikeView {
	id, ok := idField(row, "id")
	if !ok {
		return nil
	}

	hike := &HikeView{
		ID:            id,
		WonderID:      idPtr(row, "wonder_id"),
		Difficulty:    intPtr(row, "difficulty"),
		ElevationGain: intPtr(row, "elevation_gain"),
		DistanceKM:    numPtr(row, "distance_km"),
		DurationHours: numPtr(row, "duration_hours"),
		BestSeason:    localizedPtr(row, "best_season", loc),
		Description:   localizedHTMLPtr(row, "description", loc),
	}
	if name, ok := Localize(row, "name", loc); ok {
		hike.Name = name
	}
	if countryID, ok := idField(row, "country_id"); ok {
		hike.CountryID = countryID
	}
	return hike
}

// MapAttraction maps a raw attraction row; rows outside the closed type
// enum are invalid
func MapAttraction(row map[string]interface{}, loc Locale) *AttractionView {
	id, ok := idField(row, "id")
	if !ok {
		return nil
	}
	rawType, ok := idField(row, "type")
	if !ok || !models.ValidAttractionType(rawType) {
		return nil
	}

	attraction := &AttractionView{
		ID:          id,
		Type:        rawType,
		Description: localizedPtr(row, "description", loc),
	}
	if name, ok := Localize(row, "name", loc); ok {
		attraction.Name = name
	}
	if countryID, ok := idField(row, "country_id"); ok {
		attraction.CountryID = countryID
	}
	return attraction
}

// MapSpecialist maps a raw specialist row; rows outside the closed type
// enum are invalid
func MapSpecialist(row map[string]interface{}, loc Locale, assetBase string) *SpecialistSummary {
	id, ok := idField(row, "id")
	if !ok {
		return nil
	}
	slug, ok := idField(row, "slug")
	if !ok {
		return nil
	}
	rawType, ok := idField(row, "type")
	if !ok || !models.ValidSpecialistType(rawType) {
		return nil
	}

	specialist := &SpecialistSummary{
		ID:            id,
		Slug:          slug,
		Type:          rawType,
		Rating:        numPtr(row, "rating"),
		WhatsApp:      strPtr(row, "whatsapp"),
		Instagram:     strPtr(row, "instagram"),
		HomeCountryID: idPtr(row, "home_country_id"),
		ProfileImage:  resolveMedia(row, "profile_image", assetBase),
	}
	if name, ok := idField(row, "name"); ok {
		specialist.Name = name
	}
	if langs, ok := Localize(row, "languages", loc); ok {
		specialist.Languages = AsStringArray(langs)
	} else if v, ok := FieldValue(row, "languages"); ok {
		specialist.Languages = AsStringArray(v)
	}
	return specialist
}

// MapTrip maps a raw trip row; start dates are attached by the resolver
func MapTrip(row map[string]interface{}, loc Locale) *TripView {
	id, ok := idField(row, "id")
	if !ok {
		return nil
	}

	trip := &TripView{
		ID:           id,
		Description:  localizedHTMLPtr(row, "description", loc),
		Price:        numPtr(row, "price"),
		DurationDays: intPtr(row, "duration_days"),
		Difficulty:   intPtr(row, "difficulty"),
		MaxGroupSize: intPtr(row, "max_group_size"),
		StartDates:   []string{},
	}
	if title, ok := Localize(row, "title", loc); ok {
		trip.Title = title
	}
	if specialistID, ok := idField(row, "specialist_id"); ok {
		trip.SpecialistID = specialistID
	}
	if countryID, ok := idField(row, "country_id"); ok {
		trip.CountryID = countryID
	}
	return trip
}

// MapCombination maps a raw country-combination row; member countries are
// attached by the resolver
func MapCombination(row map[string]interface{}, loc Locale) *CombinationDetail {
	id, ok := idField(row, "id")
	if !ok {
		return nil
	}
	slug, ok := idField(row, "slug")
	if !ok {
		return nil
	}

	combination := &CombinationDetail{
		ID:          id,
		Slug:        slug,
		Description: localizedHTMLPtr(row, "description", loc),
		Route:       localizedHTMLPtr(row, "route", loc),
		MinDays:     intPtr(row, "min_days"),
		OptimalDays: intPtr(row, "optimal_days"),
		Countries:   []CountrySummary{},
	}
	if name, ok := Localize(row, "name", loc); ok {
		combination.Name = name
	}
	return combination
}

// MapTag maps a raw wonder-tag row
func MapTag(row map[string]interface{}, loc Locale) *TagView {
	label, ok := Localize(row, "label", loc)
	if !ok {
		return nil
	}
	tag := &TagView{Label: label}
	if order, ok := AsInt(valueOrNil(row, "sort_order")); ok {
		tag.SortOrder = order
	}
	return tag
}

func valueOrNil(row map[string]interface{}, field string) interface{} {
	v, _ := FieldValue(row, field)
	return v
}
