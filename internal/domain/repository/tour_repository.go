package repository

import (
	"context"

	"natours/internal/domain/entity"
	"natours/internal/domain/query"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// TourRepository persists tours. Secret tours are invisible to every read.
type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error

	// FindByID loads a tour with its guides populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)

	FindBySlug(ctx context.Context, slug string) (*entity.Tour, error)

	// FindByIDs returns the tours among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Tour, error)

	List(ctx context.Context, features *query.Features) ([]*entity.Tour, error)

	// Update writes every field of tour and bumps its version.
	Update(ctx context.Context, tour *entity.Tour) error

	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateRatings stores a recomputed rating summary.
	UpdateRatings(ctx context.Context, summary entity.RatingSummary) error

	// Stats groups tours with ratingsAverage >= minRating by difficulty.
	Stats(ctx context.Context, minRating float64) ([]*entity.TourStats, error)

	// MonthlyPlan counts start dates per month of year, busiest month first.
	MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error)

	// FindStartingWithin returns tours whose start location lies inside bound.
	FindStartingWithin(ctx context.Context, bound orb.Bound) ([]*entity.Tour, error)

	// ListStartLocations returns every tour with only id, name and start location set.
	ListStartLocations(ctx context.Context) ([]*entity.Tour, error)
}
