package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/constants"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"
	"natours/internal/infra/pubsub"
	usecasemocks "natours/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *usecasemocks.MockBookingUsecase) {
	bookings := usecasemocks.NewMockBookingUsecase(t)

	return &PushHandler{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		bookingUC: bookings,
	}, bookings
}

func pushBody(t *testing.T, event *entity.BookingEvent, attributes map[string]string) []byte {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/booking-sub"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestHandlePush(t *testing.T) {
	event := &entity.BookingEvent{
		BookingID: uuid.New(),
		TourID:    uuid.New(),
		UserID:    uuid.New(),
		Price:     497,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		notifyErr  error
		wantStatus int
	}{
		{name: "sent", wantStatus: http.StatusOK},
		{name: "deleted booking is dropped", notifyErr: domainerrors.NewDocumentNotFoundError(event.BookingID), wantStatus: http.StatusOK},
		{name: "mail failure is retried", notifyErr: errors.New("smtp: connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, bookings := newTestPushHandler(t)
			bookings.EXPECT().
				NotifyBooked(mock.MatchedBy(func(ctx context.Context) bool {
					return deliverycontext.GetRequestIDFromContext(ctx) == "req-7"
				}), mock.MatchedBy(func(got *entity.BookingEvent) bool {
					return got.BookingID == event.BookingID && got.Price == 497
				})).
				Return(tt.notifyErr)

			rec := servePush(h, pushBody(t, event, map[string]string{
				"event_type": constants.EventBookingCreated,
				"request_id": "req-7",
			}), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_BadPayload(t *testing.T) {
	h, _ := newTestPushHandler(t)

	var msg pubsub.PushMessage
	msg.Message.Data = "%%% not base64"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	rec := servePush(h, body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_IgnoresOtherEvents(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := servePush(h, pushBody(t, &entity.BookingEvent{BookingID: uuid.New()}, map[string]string{"event_type": "tour.updated"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	event := &entity.BookingEvent{BookingID: uuid.New()}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		h.verifyPushAuth = true

		rec := servePush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		h.verifyPushAuth = true
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, bookings := newTestPushHandler(t)
		h.verifyPushAuth = true
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		bookings.EXPECT().NotifyBooked(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
