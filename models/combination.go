package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CountryCombination is a curated multi-country itinerary
type CountryCombination struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	NameCS        string `gorm:"size:200;column:name_cs" json:"name_cs"`
	NameEN        string `gorm:"size:200;column:name_en" json:"name_en"`
	DescriptionCS string `gorm:"type:text;column:description_cs" json:"description_cs"`
	DescriptionEN string `gorm:"type:text;column:description_en" json:"description_en"`
	RouteCS       string `gorm:"type:text;column:route_cs" json:"route_cs"`
	RouteEN       string `gorm:"type:text;column:route_en" json:"route_en"`

	MinDays     int `json:"min_days"`
	OptimalDays int `json:"optimal_days"`

	// Relationships
	Countries []CombinationCountry `gorm:"foreignKey:CombinationID" json:"countries,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *CountryCombination) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (CountryCombination) TableName() string {
	return "country_combinations"
}

// CombinationCountry links a combination to a country in itinerary order
type CombinationCountry struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CombinationID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_combination_country" json:"combination_id"`
	CountryID     string `gorm:"type:uuid;not null;index;uniqueIndex:idx_combination_country" json:"country_id"`
	SortOrder     int    `gorm:"column:sort_order" json:"sort_order"`
}

// BeforeCreate hook to generate UUID
func (cc *CombinationCountry) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == "" {
		cc.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (CombinationCountry) TableName() string {
	return "combination_countries"
}

// BestCombination is a directed country-to-country pairing recommendation.
// A recommending B does not imply B recommending A.
type BestCombination struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CountryID        string `gorm:"type:uuid;not null;index;uniqueIndex:idx_best_combination" json:"country_id"`
	RelatedCountryID string `gorm:"type:uuid;not null;uniqueIndex:idx_best_combination;column:related_country_id" json:"related_country_id"`
	SortOrder        int    `gorm:"column:sort_order" json:"sort_order"`
}

// BeforeCreate hook to generate UUID
func (bc *BestCombination) BeforeCreate(tx *gorm.DB) error {
	if bc.ID == "" {
		bc.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (BestCombination) TableName() string {
	return "best_combinations"
}
