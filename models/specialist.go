package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Specialist types (closed enum)
const (
	SpecialistLocalAdvisor    = "local_advisor"
	SpecialistCommunityLeader = "community_leader"
)

// ValidSpecialistType reports whether t is one of the known specialist types
func ValidSpecialistType(t string) bool {
	return t == SpecialistLocalAdvisor || t == SpecialistCommunityLeader
}

// Specialist represents a human guide profile, either a local advisor or a
// community trip leader
type Specialist struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Type string `gorm:"size:30;not null;index" json:"type"`
	Name string `gorm:"size:150;not null" json:"name"`

	BioCS string `gorm:"type:text;column:bio_cs" json:"bio_cs"`
	BioEN string `gorm:"type:text;column:bio_en" json:"bio_en"`

	HomeCountryID *string  `gorm:"type:uuid;index" json:"home_country_id"`
	HomeCountry   *Country `gorm:"foreignKey:HomeCountryID" json:"home_country,omitempty"`

	Rating float64 `json:"rating"` // higher is better

	// Comma-separated language lists, one per locale
	LanguagesCS string `gorm:"size:300;column:languages_cs" json:"languages_cs"`
	LanguagesEN string `gorm:"size:300;column:languages_en" json:"languages_en"`

	WhatsApp     *string `gorm:"size:50;column:whatsapp" json:"whatsapp"`
	Instagram    *string `gorm:"size:100" json:"instagram"`
	ContactEmail string  `gorm:"size:200;column:contact_email" json:"contact_email"`

	Enabled bool `gorm:"default:true;index" json:"enabled"`

	ProfileImageURL string `gorm:"size:500;column:profile_image_url" json:"profile_image_url"`

	// Relationships
	Trips             []Trip              `gorm:"foreignKey:SpecialistID" json:"trips,omitempty"`
	FeaturedCountries []SpecialistCountry `gorm:"foreignKey:SpecialistID" json:"featured_countries,omitempty"`
}

// BeforeCreate hook to generate UUID
func (s *Specialist) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Specialist) TableName() string {
	return "specialists"
}

// SpecialistCountry links a specialist to a country they are featured for,
// with an explicit listing order
type SpecialistCountry struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SpecialistID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_specialist_country" json:"specialist_id"`
	CountryID    string `gorm:"type:uuid;not null;index;uniqueIndex:idx_specialist_country" json:"country_id"`
	SortOrder    int    `gorm:"column:sort_order" json:"sort_order"`
}

// BeforeCreate hook to generate UUID
func (sc *SpecialistCountry) BeforeCreate(tx *gorm.DB) error {
	if sc.ID == "" {
		sc.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (SpecialistCountry) TableName() string {
	return "specialist_countries"
}
