package usecase

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase covers review CRUD. Every write refreshes the rating of the reviewed tour.
type ReviewUsecase interface {
	Resource[entity.Review, ReviewInput, ReviewInput]

	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)
}

// ReviewInput carries review fields from a request body.
type ReviewInput struct {
	Review *string    `json:"review"`
	Rating *float64   `json:"rating"`
	Tour   *uuid.UUID `json:"tour"`
	User   *uuid.UUID `json:"user"`
}

// Apply copies every set field onto review.
func (in *ReviewInput) Apply(review *entity.Review) {
	if in == nil {
		return
	}
	setIf(&review.Review, in.Review)
	setIf(&review.Rating, in.Rating)
	setIf(&review.TourID, in.Tour)
	setIf(&review.UserID, in.User)
}
