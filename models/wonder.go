package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wonder represents a natural or cultural highlight within a country
type Wonder struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug      string  `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	CountryID string  `gorm:"type:uuid;not null;index" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`

	NameCS             string `gorm:"size:150;column:name_cs" json:"name_cs"`
	NameEN             string `gorm:"size:150;column:name_en" json:"name_en"`
	ShortDescriptionCS string `gorm:"size:500;column:short_description_cs" json:"short_description_cs"`
	ShortDescriptionEN string `gorm:"size:500;column:short_description_en" json:"short_description_en"`
	DescriptionCS      string `gorm:"type:text;column:description_cs" json:"description_cs"`
	DescriptionEN      string `gorm:"type:text;column:description_en" json:"description_en"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	HikingDifficulty int `json:"hiking_difficulty"` // 1-5
	Altitude         int `json:"altitude"`          // meters

	PregnancySafe bool `json:"pregnancy_safe"`
	InfantSafe    bool `json:"infant_safe"`

	HeroImageURL string `gorm:"size:500;column:hero_image_url" json:"hero_image_url"`

	// Relationships
	Tags  []WonderTag `gorm:"foreignKey:WonderID" json:"tags,omitempty"`
	Hikes []Hike      `gorm:"foreignKey:WonderID" json:"hikes,omitempty"`
}

// BeforeCreate hook to generate UUID
func (w *Wonder) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Wonder) TableName() string {
	return "wonders"
}

// WonderTag is an ordered, locale-paired label attached to a wonder
type WonderTag struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	WonderID  string `gorm:"type:uuid;not null;index" json:"wonder_id"`
	LabelCS   string `gorm:"size:100;column:label_cs" json:"label_cs"`
	LabelEN   string `gorm:"size:100;column:label_en" json:"label_en"`
	SortOrder int    `gorm:"column:sort_order" json:"sort_order"`
}

// BeforeCreate hook to generate UUID
func (t *WonderTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (WonderTag) TableName() string {
	return "wonder_tags"
}
