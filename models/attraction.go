package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attraction types (closed enum)
const (
	AttractionBeach     = "beach"
	AttractionViewpoint = "viewpoint"
	AttractionTown      = "town"
	AttractionWaterfall = "waterfall"
)

// ValidAttractionType reports whether t is one of the known attraction types
func ValidAttractionType(t string) bool {
	switch t {
	case AttractionBeach, AttractionViewpoint, AttractionTown, AttractionWaterfall:
		return true
	}
	return false
}

// Attraction represents a typed point of interest within a country
type Attraction struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CountryID string  `gorm:"type:uuid;not null;index" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`

	Type string `gorm:"size:30;not null;index" json:"type"`

	NameCS        string `gorm:"size:150;column:name_cs" json:"name_cs"`
	NameEN        string `gorm:"size:150;column:name_en" json:"name_en"`
	DescriptionCS string `gorm:"type:text;column:description_cs" json:"description_cs"`
	DescriptionEN string `gorm:"type:text;column:description_en" json:"description_en"`
}

// BeforeCreate hook to generate UUID
func (a *Attraction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Attraction) TableName() string {
	return "attractions"
}
