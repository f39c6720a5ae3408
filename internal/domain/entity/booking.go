package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking records a user's purchase of a tour.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	TourID    uuid.UUID `json:"-" validate:"required" msg:"required=Booking must belong to a Tour!"`
	UserID    uuid.UUID `json:"-" validate:"required" msg:"required=Booking must belong to a User!"`
	Price     float64   `json:"price" validate:"required,gt=0" msg:"required=Booking must have a price.;gt=Booking must have a price."`
	Paid      bool      `json:"paid"`
	Tour      *Tour     `json:"tour,omitempty" validate:"-"`
	User      *User     `json:"user,omitempty" validate:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingEvent is published after a paid checkout produced a booking.
type BookingEvent struct {
	RequestID string    `json:"requestId,omitempty"` // Propagated for tracing.
	BookingID uuid.UUID `json:"bookingId"`
	TourID    uuid.UUID `json:"tourId"`
	UserID    uuid.UUID `json:"userId"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// CheckoutSession is the payment provider session a client is redirected to.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutCompletion is the part of a completed checkout needed to book.
type CheckoutCompletion struct {
	TourID        string
	CustomerEmail string
	AmountTotal   int64
}
