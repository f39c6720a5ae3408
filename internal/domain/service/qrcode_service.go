package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateBookingTicket renders a PNG QR code identifying a booking.
	GenerateBookingTicket(bookingID uuid.UUID) ([]byte, error)

	// ParseBookingTicket extracts the booking ID from scanned ticket data.
	ParseBookingTicket(data string) (uuid.UUID, error)
}
