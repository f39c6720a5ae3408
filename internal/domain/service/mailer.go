package service

import (
	"context"

	"natours/internal/domain/entity"
)

// Mailer sends transactional emails to users.
type Mailer interface {
	// SendWelcome greets a new user and links to account confirmation.
	SendWelcome(ctx context.Context, user *entity.User, confirmURL string) error

	// SendPasswordReset links to the password reset endpoint. The link is valid for 10 minutes.
	SendPasswordReset(ctx context.Context, user *entity.User, resetURL string) error

	// SendBookingConfirmation thanks the user for a paid booking and links to its ticket.
	SendBookingConfirmation(ctx context.Context, user *entity.User, tour *entity.Tour, ticketURL string) error
}
