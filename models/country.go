package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country represents a destination country. Rows with IsState=true are
// sub-national regions hanging under an enabled parent country.
type Country struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	IsoCode string `gorm:"size:3" json:"iso_code"` // ISO 3166-1 alpha-2/3 (CZ, ITA, etc.)

	NameCS        string `gorm:"size:150;column:name_cs" json:"name_cs"`
	NameEN        string `gorm:"size:150;column:name_en" json:"name_en"`
	DescriptionCS string `gorm:"type:text;column:description_cs" json:"description_cs"`
	DescriptionEN string `gorm:"type:text;column:description_en" json:"description_en"`

	// Destination scores, 1-5
	HikingLevel   int `json:"hiking_level"`
	BeachLevel    int `json:"beach_level"`
	RoadtripLevel int `json:"roadtrip_level"`

	// Trip planning
	MinDays          int     `json:"min_days"`
	OptimalDays      int     `json:"optimal_days"`
	AvgFlightPrice   float64 `json:"avg_flight_price"`
	AvgAccommodation float64 `gorm:"column:avg_accommodation_price" json:"avg_accommodation_price"`
	AvgFoodPerDay    float64 `gorm:"column:avg_food_per_day" json:"avg_food_per_day"`

	PregnancySafe bool `json:"pregnancy_safe"`
	InfantSafe    bool `json:"infant_safe"`

	Enabled         bool     `gorm:"default:true;index" json:"enabled"`
	IsState         bool     `gorm:"index" json:"is_state"`
	ParentCountryID *string  `gorm:"type:uuid;index" json:"parent_country_id"`
	ParentCountry   *Country `gorm:"foreignKey:ParentCountryID" json:"parent_country,omitempty"`

	HeroImageURL string `gorm:"size:500;column:hero_image_url" json:"hero_image_url"`

	// Relationships
	Wonders     []Wonder     `gorm:"foreignKey:CountryID" json:"wonders,omitempty"`
	Hikes       []Hike       `gorm:"foreignKey:CountryID" json:"hikes,omitempty"`
	Attractions []Attraction `gorm:"foreignKey:CountryID" json:"attractions,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Country) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Country) TableName() string {
	return "countries"
}
