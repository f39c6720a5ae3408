package usecase

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingUsecase covers checkout, booking administration and tickets.
type BookingUsecase interface {
	Resource[entity.Booking, BookingInput, BookingInput]

	// CreateCheckoutSession starts a payment for one tour on behalf of user.
	CreateCheckoutSession(ctx context.Context, tourID uuid.UUID, user *entity.User) (*entity.CheckoutSession, error)
	// HandleCheckoutWebhook books the tour of a completed checkout. Other events are ignored.
	HandleCheckoutWebhook(ctx context.Context, payload []byte, signature string) error
	// MyTours lists the tours the user has booked.
	MyTours(ctx context.Context, userID uuid.UUID) ([]*entity.Tour, error)
	// Ticket renders the QR ticket of a booking owned by user, or any booking for admins.
	Ticket(ctx context.Context, bookingID uuid.UUID, user *entity.User) ([]byte, error)
	// VerifyTicket resolves scanned ticket data to its booking.
	VerifyTicket(ctx context.Context, data string) (*entity.Booking, error)
	// NotifyBooked emails the booking confirmation for a published booking event.
	NotifyBooked(ctx context.Context, event *entity.BookingEvent) error
}

// BookingInput carries booking fields from a request body.
type BookingInput struct {
	Tour  *uuid.UUID `json:"tour"`
	User  *uuid.UUID `json:"user"`
	Price *float64   `json:"price"`
	Paid  *bool      `json:"paid"`
}

// Apply copies every set field onto booking.
func (in *BookingInput) Apply(booking *entity.Booking) {
	if in == nil {
		return
	}
	setIf(&booking.TourID, in.Tour)
	setIf(&booking.UserID, in.User)
	setIf(&booking.Price, in.Price)
	setIf(&booking.Paid, in.Paid)
}
