package services

// Localized view models returned by the content API. Optional fields are
// pointers so a value an upstream row failed to encode stays null instead
// of collapsing to a zero.

// MediaView wraps a resolved absolute image URL
type MediaView struct {
	URL string `json:"url"`
}

// TagView is an ordered localized label
type TagView struct {
	Label     string `json:"label"`
	SortOrder int    `json:"sortOrder"`
}

// CountrySummary is the list/embedded shape of a country
type CountrySummary struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	IsoCode          string     `json:"isoCode,omitempty"`
	Name             string     `json:"name"`
	Description      *string    `json:"description,omitempty"`
	HikingLevel      *int       `json:"hikingLevel,omitempty"`
	BeachLevel       *int       `json:"beachLevel,omitempty"`
	RoadtripLevel    *int       `json:"roadtripLevel,omitempty"`
	MinDays          *int       `json:"minDays,omitempty"`
	OptimalDays      *int       `json:"optimalDays,omitempty"`
	AvgFlightPrice   *float64   `json:"avgFlightPrice,omitempty"`
	AvgAccommodation *float64   `json:"avgAccommodationPrice,omitempty"`
	AvgFoodPerDay    *float64   `json:"avgFoodPerDay,omitempty"`
	PregnancySafe    *bool      `json:"pregnancySafe,omitempty"`
	InfantSafe       *bool      `json:"infantSafe,omitempty"`
	IsState          bool       `json:"isState"`
	ParentCountryID  *string    `json:"parentCountryId,omitempty"`
	HeroImage        *MediaView `json:"heroImage"`

	// Populated by list resolution only
	Wonders []WonderSummary `json:"wonders,omitempty"`
}

// CountryDetail is the fully resolved country shape
type CountryDetail struct {
	CountrySummary
	Parent           *CountrySummary     `json:"parent"`
	Regions          []CountrySummary    `json:"regions"`
	DetailWonders    []WonderSummary     `json:"wonders"`
	Hikes            []HikeView          `json:"hikes"`
	Attractions      []AttractionView    `json:"attractions"`
	Specialists      []SpecialistSummary `json:"specialists"`
	BestCombinations []CountrySummary    `json:"bestCombinations"`
}

// WonderSummary is the list/embedded shape of a wonder
type WonderSummary struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	CountryID        string     `json:"countryId,omitempty"`
	Name             string     `json:"name"`
	ShortDescription *string    `json:"shortDescription,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	HikingDifficulty *int       `json:"hikingDifficulty,omitempty"`
	Altitude         *int       `json:"altitude,omitempty"`
	PregnancySafe    *bool      `json:"pregnancySafe,omitempty"`
	InfantSafe       *bool      `json:"infantSafe,omitempty"`
	HeroImage        *MediaView `json:"heroImage"`
}

// WonderDetail is the fully resolved wonder shape
type WonderDetail struct {
	WonderSummary
	Description *string         `json:"description"`
	Country     *CountrySummary `json:"country"`
	Hikes       []HikeView      `json:"hikes"`
	Tags        []TagView       `json:"tags"`
}

// HikeView is the resolved shape of a hike
type HikeView struct {
	ID            string   `json:"id"`
	CountryID     string   `json:"countryId,omitempty"`
	WonderID      *string  `json:"wonderId,omitempty"`
	Name          string   `json:"name"`
	Difficulty    *int     `json:"difficulty,omitempty"`
	ElevationGain *int     `json:"elevationGain,omitempty"`
	DistanceKM    *float64 `json:"distanceKm,omitempty"`
	DurationHours *float64 `json:"durationHours,omitempty"`
	BestSeason    *string  `json:"bestSeason,omitempty"`
	Description   *string  `json:"description,omitempty"`
}

// AttractionView is the resolved shape of an attraction
type AttractionView struct {
	ID          string  `json:"id"`
	CountryID   string  `json:"countryId,omitempty"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// SpecialistSummary is the list/embedded shape of a specialist
type SpecialistSummary struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Type          string     `json:"type"`
	Name          string     `json:"name"`
	Rating        *float64   `json:"rating,omitempty"`
	Languages     []string   `json:"languages,omitempty"`
	WhatsApp      *string    `json:"whatsapp,omitempty"`
	Instagram     *string    `json:"instagram,omitempty"`
	HomeCountryID *string    `json:"homeCountryId,omitempty"`
	ProfileImage  *MediaView `json:"profileImage"`
}

// SpecialistDetail is the fully resolved specialist shape
type SpecialistDetail struct {
	SpecialistSummary
	Bio         *string         `json:"bio"`
	HomeCountry *CountrySummary `json:"homeCountry"`
	Trips       []TripView      `json:"trips"`
}

// TripView is the resolved shape of a trip with its upcoming start dates
type TripView struct {
	ID           string   `json:"id"`
	SpecialistID string   `json:"specialistId,omitempty"`
	CountryID    string   `json:"countryId,omitempty"`
	Title        string   `json:"title"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	DurationDays *int     `json:"durationDays,omitempty"`
	Difficulty   *int     `json:"difficulty,omitempty"`
	MaxGroupSize *int     `json:"maxGroupSize,omitempty"`
	StartDates   []string `json:"startDates"`
}

// CombinationDetail is the fully resolved country-combination shape
type CombinationDetail struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Route       *string          `json:"route"`
	MinDays     *int             `json:"minDays,omitempty"`
	OptimalDays *int             `json:"optimalDays,omitempty"`
	Countries   []CountrySummary `json:"countries"`
}
