package repository

import (
	"context"

	"natours/internal/domain/entity"
	"natours/internal/domain/query"

	"github.com/google/uuid"
)

// ReviewRepository persists reviews. Reads populate the author's name and photo.
type ReviewRepository interface {
	// Create fails with *DuplicateKeyError when the user already reviewed the tour.
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context, features *query.Features) ([]*entity.Review, error)
	ListByTour(ctx context.Context, tourID uuid.UUID) ([]*entity.Review, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// RatingSummary aggregates the count and mean rating of a tour's reviews.
	RatingSummary(ctx context.Context, tourID uuid.UUID) (entity.RatingSummary, error)
}
