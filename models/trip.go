package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trip represents a guided trip offered by a specialist in a country
type Trip struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SpecialistID string     `gorm:"type:uuid;not null;index" json:"specialist_id"`
	Specialist   Specialist `gorm:"foreignKey:SpecialistID" json:"specialist,omitempty"`
	CountryID    string     `gorm:"type:uuid;not null;index" json:"country_id"`
	Country      Country    `gorm:"foreignKey:CountryID" json:"country,omitempty"`

	TitleCS       string `gorm:"size:200;column:title_cs" json:"title_cs"`
	TitleEN       string `gorm:"size:200;column:title_en" json:"title_en"`
	DescriptionCS string `gorm:"type:text;column:description_cs" json:"description_cs"`
	DescriptionEN string `gorm:"type:text;column:description_en" json:"description_en"`

	Price        float64 `json:"price"`
	DurationDays int     `gorm:"column:duration_days" json:"duration_days"`
	Difficulty   int     `json:"difficulty"` // 1-5
	MaxGroupSize int     `gorm:"column:max_group_size" json:"max_group_size"`

	// Relationships
	Dates []TripDate `gorm:"foreignKey:TripID" json:"dates,omitempty"`
}

// BeforeCreate hook to generate UUID
func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Trip) TableName() string {
	return "trips"
}

// TripDate is a future start date for a trip, stored as a plain date string
// (YYYY-MM-DD) so values sort lexicographically in query order
type TripDate struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TripID    string `gorm:"type:uuid;not null;index" json:"trip_id"`
	StartDate string `gorm:"size:10;not null;column:start_date" json:"start_date"`
}

// BeforeCreate hook to generate UUID
func (d *TripDate) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (TripDate) TableName() string {
	return "trip_dates"
}
