package services

import (
	"net/url"
	"strconv"
)

// CountryFilters holds the optional constraints of a country list query.
// Nil means the constraint was not supplied (or failed to parse and was
// dropped, which is treated identically).
type CountryFilters struct {
	MinHiking   *int
	MinBeach    *int
	MinRoadtrip *int

	MaxFlight        *float64
	MaxAccommodation *float64
	MaxFoodPerDay    *float64
	// MaxBudget bounds flight price AND accommodation price independently,
	// not their sum. The source behaves this way on both API paths, so the
	// literal semantics are kept.
	MaxBudget *float64

	PregnancySafe *bool
	InfantSafe    *bool

	// Default visibility excludes regions and disabled countries
	IncludeStates   bool
	IncludeDisabled bool
}

// ParseCountryFilters reads filters from query parameters. Values that fail
// to parse as the expected type are dropped silently and the query proceeds
// with the remaining constraints.
func ParseCountryFilters(values url.Values) CountryFilters {
	filters := CountryFilters{}

	filters.MinHiking = parseIntParam(values, "minHiking")
	filters.MinBeach = parseIntParam(values, "minBeach")
	filters.MinRoadtrip = parseIntParam(values, "minRoadtrip")

	filters.MaxFlight = parseFloatParam(values, "maxFlight")
	filters.MaxAccommodation = parseFloatParam(values, "maxAccommodation")
	filters.MaxFoodPerDay = parseFloatParam(values, "maxFoodPerDay")
	filters.MaxBudget = parseFloatParam(values, "maxBudget")

	filters.PregnancySafe = parseBoolParam(values, "pregnancySafe")
	filters.InfantSafe = parseBoolParam(values, "infantSafe")

	if v := parseBoolParam(values, "includeStates"); v != nil {
		filters.IncludeStates = *v
	}
	if v := parseBoolParam(values, "includeDisabled"); v != nil {
		filters.IncludeDisabled = *v
	}

	return filters
}

// Apply adds the parsed constraints to an item query on the countries
// collection
func (f CountryFilters) Apply(query ItemQuery) ItemQuery {
	if !f.IncludeDisabled {
		query = query.Where("enabled", OpEq, true)
	}
	if !f.IncludeStates {
		query = query.Where("is_state", OpEq, false)
	}

	if f.MinHiking != nil {
		query = query.Where("hiking_level", OpGte, *f.MinHiking)
	}
	if f.MinBeach != nil {
		query = query.Where("beach_level", OpGte, *f.MinBeach)
	}
	if f.MinRoadtrip != nil {
		query = query.Where("roadtrip_level", OpGte, *f.MinRoadtrip)
	}

	if f.MaxFlight != nil {
		query = query.Where("avg_flight_price", OpLte, *f.MaxFlight)
	}
	if f.MaxAccommodation != nil {
		query = query.Where("avg_accommodation_price", OpLte, *f.MaxAccommodation)
	}
	if f.MaxFoodPerDay != nil {
		query = query.Where("avg_food_per_day", OpLte, *f.MaxFoodPerDay)
	}
	if f.MaxBudget != nil {
		query = query.Where("avg_flight_price", OpLte, *f.MaxBudget)
		query = query.Where("avg_accommodation_price", OpLte, *f.MaxBudget)
	}

	if f.PregnancySafe != nil && *f.PregnancySafe {
		query = query.Where("pregnancy_safe", OpEq, true)
	}
	if f.InfantSafe != nil && *f.InfantSafe {
		query = query.Where("infant_safe", OpEq, true)
	}

	return query
}

// Encode writes the filters back to query parameters, for forwarding to the
// remote curated endpoint
func (f CountryFilters) Encode() url.Values {
	values := url.Values{}
	setInt := func(key string, v *int) {
		if v != nil {
			values.Set(key, strconv.Itoa(*v))
		}
	}
	setFloat := func(key string, v *float64) {
		if v != nil {
			values.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	setInt("minHiking", f.MinHiking)
	setInt("minBeach", f.MinBeach)
	setInt("minRoadtrip", f.MinRoadtrip)
	setFloat("maxFlight", f.MaxFlight)
	setFloat("maxAccommodation", f.MaxAccommodation)
	setFloat("maxFoodPerDay", f.MaxFoodPerDay)
	setFloat("maxBudget", f.MaxBudget)
	if f.PregnancySafe != nil && *f.PregnancySafe {
		values.Set("pregnancySafe", "true")
	}
	if f.InfantSafe != nil && *f.InfantSafe {
		values.Set("infantSafe", "true")
	}
	if f.IncludeStates {
		values.Set("includeStates", "true")
	}
	if f.IncludeDisabled {
		values.Set("includeDisabled", "true")
	}
	return values
}

func parseIntParam(values url.Values, key string) *int {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	n, ok := AsInt(raw)
	if !ok {
		return nil
	}
	return &n
}

func parseFloatParam(values url.Values, key string) *float64 {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	f, ok := AsNumber(raw)
	if !ok {
		return nil
	}
	return &f
}

func parseBoolParam(values url.Values, key string) *bool {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	b, ok := AsBoolean(raw)
	if !ok {
		return nil
	}
	return &b
}
