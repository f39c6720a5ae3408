package usecase

import (
	"context"
	"io"
	"time"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// TourUsecase covers tour CRUD and the read-only reports built on tours.
type TourUsecase interface {
	Resource[entity.Tour, TourInput, TourInput]

	// GetBySlug loads a tour with its reviews for the tour page.
	GetBySlug(ctx context.Context, slug string) (*entity.Tour, error)
	Search(ctx context.Context, term string) ([]*entity.Tour, error)
	Stats(ctx context.Context) ([]*entity.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error)
	ToursWithin(ctx context.Context, input ToursWithinInput) ([]*entity.Tour, error)
	Distances(ctx context.Context, input DistancesInput) ([]*entity.TourDistance, error)
	// UpdateImages stores uploaded tour photos and applies them together with patch.
	UpdateImages(ctx context.Context, id uuid.UUID, images TourImages, patch *TourInput) (*entity.Tour, error)
}

// --- Input DTOs ---

// TourInput carries tour fields from a request body. Nil fields are left untouched.
type TourInput struct {
	Name            *string            `json:"name"`
	Duration        *int               `json:"duration"`
	MaxGroupSize    *int               `json:"maxGroupSize"`
	Difficulty      *string            `json:"difficulty"`
	RatingsAverage  *float64           `json:"ratingsAverage"`
	RatingsQuantity *int               `json:"ratingsQuantity"`
	Price           *float64           `json:"price"`
	PriceDiscount   *float64           `json:"priceDiscount"`
	Summary         *string            `json:"summary"`
	Description     *string            `json:"description"`
	ImageCover      *string            `json:"imageCover"`
	Images          *[]string          `json:"images"`
	StartDates      *[]time.Time       `json:"startDates"`
	SecretTour      *bool              `json:"secretTour"`
	StartLocation   *entity.Location   `json:"startLocation"`
	Locations       *[]entity.Location `json:"locations"`
	Guides          *[]uuid.UUID       `json:"guides"`
}

// Apply copies every set field onto tour.
func (in *TourInput) Apply(tour *entity.Tour) {
	if in == nil {
		return
	}
	setIf(&tour.Name, in.Name)
	setIf(&tour.Duration, in.Duration)
	setIf(&tour.MaxGroupSize, in.MaxGroupSize)
	if in.Difficulty != nil {
		tour.Difficulty = entity.Difficulty(*in.Difficulty)
	}
	setIf(&tour.RatingsAverage, in.RatingsAverage)
	setIf(&tour.RatingsQuantity, in.RatingsQuantity)
	setIf(&tour.Price, in.Price)
	setIf(&tour.PriceDiscount, in.PriceDiscount)
	setIf(&tour.Summary, in.Summary)
	setIf(&tour.Description, in.Description)
	setIf(&tour.ImageCover, in.ImageCover)
	setIf(&tour.Images, in.Images)
	setIf(&tour.StartDates, in.StartDates)
	setIf(&tour.SecretTour, in.SecretTour)
	if in.StartLocation != nil {
		loc := *in.StartLocation
		tour.StartLocation = &loc
	}
	setIf(&tour.Locations, in.Locations)
	setIf(&tour.GuideIDs, in.Guides)
}

// TourImages holds the uploads of a tour image update. Either part may be empty.
type TourImages struct {
	Cover  io.Reader
	Images []io.Reader
}

// ToursWithinInput asks for tours starting within Distance of a point.
type ToursWithinInput struct {
	Distance float64
	Lat      float64
	Lng      float64
	Unit     entity.DistanceUnit
}

// DistancesInput asks for the distance from a point to every tour start.
type DistancesInput struct {
	Lat  float64
	Lng  float64
	Unit entity.DistanceUnit
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
