package qrcode

import (
	"encoding/json"

	"natours/config"
	"natours/internal/domain/service"
	"natours/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	ticketType  = "booking_ticket"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TicketData is the payload encoded into a booking ticket.
type TicketData struct {
	BookingID string `json:"booking_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateBookingTicket encodes the booking ID into a PNG QR code.
func (s *qrcodeService) GenerateBookingTicket(bookingID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(TicketData{
		BookingID: bookingID.String(),
		Type:      ticketType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal ticket data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseBookingTicket decodes scanned ticket data and returns the booking ID.
func (s *qrcodeService) ParseBookingTicket(data string) (uuid.UUID, error) {
	var ticket TicketData
	if err := json.Unmarshal([]byte(data), &ticket); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal ticket data")
	}

	if ticket.Type != ticketType {
		return uuid.Nil, errors.Errorf("invalid ticket type: %s", ticket.Type)
	}

	bookingID, err := uuid.Parse(ticket.BookingID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse booking ID")
	}

	return bookingID, nil
}
