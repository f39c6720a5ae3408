package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a tour. A user reviews a tour at most once.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Review    string    `json:"review" validate:"required" msg:"required=Review cannot be empty!"`
	Rating    float64   `json:"rating" validate:"gte=1,lte=5" msg:"gte=Rating must be above 1.0;lte=Rating must be below 5.0"`
	TourID    uuid.UUID `json:"tour" validate:"required" msg:"required=Review must belong to a tour."`
	UserID    uuid.UUID `json:"-" validate:"required" msg:"required=Review must belong to a user"`
	User      *User     `json:"user,omitempty" validate:"-"`
	Tour      *Tour     `json:"-" validate:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingSummary is the aggregate of all reviews of one tour.
type RatingSummary struct {
	TourID   uuid.UUID
	Quantity int
	Average  float64
}

// Apply writes the summary into the tour's rating fields.
func (s RatingSummary) Apply(t *Tour) {
	if s.Quantity == 0 {
		t.RatingsQuantity = 0
		t.RatingsAverage = DefaultRatingsAverage

		return
	}
	t.RatingsQuantity = s.Quantity
	t.RatingsAverage = RoundRating(s.Average)
}
