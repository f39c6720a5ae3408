package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LocationModel is the JSON shape of an itinerary stop in the 'tours.locations' column.
type LocationModel struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
	Address     string     `json:"address,omitempty"`
	Description string     `json:"description,omitempty"`
	Day         int        `json:"day,omitempty"`
}

// TourModel mirrors the 'tours' table. PostgreSQL generates UUIDs via uuid_generate_v4().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type TourModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name            string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	Slug            string    `gorm:"type:varchar(80);index"`
	Duration        int       `gorm:"not null"`
	MaxGroupSize    int       `gorm:"not null"`
	Difficulty      string    `gorm:"type:varchar(20);not null"`
	RatingsAverage  float64   `gorm:"not null"`
	RatingsQuantity int       `gorm:"not null"`
	Price           float64   `gorm:"not null"`
	PriceDiscount   float64
	Summary         string `gorm:"type:text;not null"`
	Description     string `gorm:"type:text"`
	ImageCover      string `gorm:"type:varchar(255);not null"`
	Images          datatypes.JSONSlice[string]
	SecretTour      bool

	// Start location is split into columns so it can be range-filtered.
	StartLat         *float64
	StartLng         *float64
	StartAddress     string `gorm:"type:varchar(255)"`
	StartDescription string `gorm:"type:varchar(255)"`

	Locations datatypes.JSONSlice[LocationModel]
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int `gorm:"not null"`

	StartDates []TourStartDateModel `gorm:"foreignKey:TourID"`
	Guides     []UserModel          `gorm:"many2many:tour_guides;joinForeignKey:TourID;joinReferences:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (TourModel) TableName() string {
	return "tours"
}

// TourStartDateModel mirrors the 'tour_start_dates' table.
type TourStartDateModel struct {
	TourID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartsAt time.Time `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (TourStartDateModel) TableName() string {
	return "tour_start_dates"
}

// TourGuideModel mirrors the 'tour_guides' join table.
type TourGuideModel struct {
	TourID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (TourGuideModel) TableName() string {
	return "tour_guides"
}
