package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hike represents a trail within a country, optionally tied to a wonder
type Hike struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CountryID string  `gorm:"type:uuid;not null;index" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	WonderID  *string `gorm:"type:uuid;index" json:"wonder_id"`

	NameCS string `gorm:"size:150;column:name_cs" json:"name_cs"`
	NameEN string `gorm:"size:150;column:name_en" json:"name_en"`

	Difficulty    int     `json:"difficulty"` // 1-5
	ElevationGain int     `gorm:"column:elevation_gain" json:"elevation_gain"`
	DistanceKM    float64 `gorm:"column:distance_km" json:"distance_km"`
	DurationHours float64 `gorm:"column:duration_hours" json:"duration_hours"`

	BestSeasonCS  string `gorm:"size:200;column:best_season_cs" json:"best_season_cs"`
	BestSeasonEN  string `gorm:"size:200;column:best_season_en" json:"best_season_en"`
	DescriptionCS string `gorm:"type:text;column:description_cs" json:"description_cs"`
	DescriptionEN string `gorm:"type:text;column:description_en" json:"description_en"`
}

// BeforeCreate hook to generate UUID
func (h *Hike) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Hike) TableName() string {
	return "hikes"
}
