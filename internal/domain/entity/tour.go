package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Difficulty grades how demanding a tour is.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
)

// DefaultRatingsAverage is used while a tour has no reviews.
const DefaultRatingsAverage = 4.5

// Tour is a bookable trip.
type Tour struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name" validate:"required,min=10,max=40" msg:"required=A tour must have a name;min=A tour name must have more or equal then 10 characters;max=A tour name must have less or equal then 40 characters"`
	Slug            string      `json:"slug"`
	Duration        int         `json:"duration" validate:"required,gt=0" msg:"required=A tour must have a duration;gt=A tour must have a duration"`
	DurationWeeks   float64     `json:"durationWeeks"`
	MaxGroupSize    int         `json:"maxGroupSize" validate:"required,gt=0" msg:"required=A tour must have a group size;gt=A tour must have a group size"`
	Difficulty      Difficulty  `json:"difficulty" validate:"required,oneof=easy medium difficult" msg:"required=A tour must have a difficulty;oneof=Difficulty is either: easy, medium, difficult"`
	RatingsAverage  float64     `json:"ratingsAverage" validate:"gte=1,lte=5" msg:"gte=Rating must be above 1.0;lte=Rating must be below 5.0"`
	RatingsQuantity int         `json:"ratingsQuantity" validate:"gte=0"`
	Price           float64     `json:"price" validate:"required,gt=0" msg:"required=A tour must have a price;gt=A tour must have a price"`
	PriceDiscount   float64     `json:"priceDiscount,omitempty" validate:"omitempty,ltfield=Price" msg:"ltfield=Discount price({VALUE}) should be below the regular price"`
	Summary         string      `json:"summary" validate:"required" msg:"required=A tour must have a summary"`
	Description     string      `json:"description,omitempty"`
	ImageCover      string      `json:"imageCover" validate:"required" msg:"required=A tour must have a cover image"`
	Images          []string    `json:"images"`
	StartDates      []time.Time `json:"startDates"`
	SecretTour      bool        `json:"secretTour"`
	StartLocation   *Location   `json:"startLocation,omitempty"`
	Locations       []Location  `json:"locations"`
	GuideIDs        []uuid.UUID `json:"-"`
	Guides          []*User     `json:"guides" validate:"-"`
	Reviews         []*Review   `json:"reviews,omitempty" validate:"-"`
	CreatedAt       time.Time   `json:"createdAt"`
	Version         int         `json:"version"`
}

// Normalize trims free text and fills the derived fields.
func (t *Tour) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Summary = strings.TrimSpace(t.Summary)
	t.Description = strings.TrimSpace(t.Description)
	t.DurationWeeks = float64(t.Duration) / 7
	if t.RatingsAverage == 0 && t.RatingsQuantity == 0 {
		t.RatingsAverage = DefaultRatingsAverage
	}
	if t.StartLocation != nil && t.StartLocation.Type == "" {
		t.StartLocation.Type = PointType
	}
	for i := range t.Locations {
		if t.Locations[i].Type == "" {
			t.Locations[i].Type = PointType
		}
	}
}

// RoundRating rounds an average to two decimals.
func RoundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}

// TourStats is one difficulty bucket of the tour statistics report.
type TourStats struct {
	Difficulty string  `json:"id"`
	NumTours   int     `json:"numTours"`
	NumRatings int     `json:"numRatings"`
	AvgRating  float64 `json:"avgRating"`
	AvgPrice   float64 `json:"avgPrice"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
}

// MonthlyPlan counts tour departures in one month of a year.
type MonthlyPlan struct {
	Month         int      `json:"month"`
	NumTourStarts int      `json:"numTourStarts"`
	Tours         []string `json:"tours"`
}

// TourDistance is the distance from a reference point to a tour start.
type TourDistance struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Distance float64   `json:"distance"`
}
