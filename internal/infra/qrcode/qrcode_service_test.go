package qrcode

import (
	"encoding/json"
	"testing"

	"natours/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *config.Config
		size  int
		level string
	}{
		{"defaults without section", &config.Config{}, defaultSize, "M"},
		{"configured", &config.Config{QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}}, 512, "H"},
		{"zero size falls back", &config.Config{QRCode: &config.QRCodeConfig{ErrorCorrectionLevel: "L"}}, defaultSize, "L"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg).(*qrcodeService)
			assert.Equal(t, tt.size, svc.size)
			assert.Equal(t, newQRCodeService(tt.size, tt.level).errorCorrectionLevel, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateBookingTicket(t *testing.T) {
	svc := newQRCodeService(256, "M")

	qrBytes, err := svc.GenerateBookingTicket(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseBookingTicket(t *testing.T) {
	svc := newQRCodeService(256, "M")
	bookingID := uuid.New()

	valid, err := json.Marshal(TicketData{BookingID: bookingID.String(), Type: ticketType})
	require.NoError(t, err)
	wrongType, err := json.Marshal(TicketData{BookingID: bookingID.String(), Type: "subscription"})
	require.NoError(t, err)
	badID, err := json.Marshal(TicketData{BookingID: "nope", Type: ticketType})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "valid", data: string(valid), want: bookingID},
		{name: "wrong type", data: string(wrongType), wantErr: true},
		{name: "bad id", data: string(badID), wantErr: true},
		{name: "not json", data: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseBookingTicket(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
