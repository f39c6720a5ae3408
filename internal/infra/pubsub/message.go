package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"natours/internal/domain/constants"
	"natours/internal/domain/entity"

	"github.com/pkg/errors"
)

// Attribute keys set on every booking message. The worker filters on event_type.
const (
	AttrEventType = "event_type"
	AttrBookingID = "booking_id"
	AttrTourID    = "tour_id"
	AttrRequestID = "request_id"

	localSubscription = "projects/local/subscriptions/natours-bookings"
)

// PushMessage is the JSON envelope Pub/Sub posts to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// bookingMessage is a booking event encoded for the wire.
type bookingMessage struct {
	data       []byte
	attributes map[string]string
}

func encodeBookingEvent(event *entity.BookingEvent) (*bookingMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode booking event")
	}

	attributes := map[string]string{
		AttrEventType: constants.EventBookingCreated,
		AttrBookingID: event.BookingID.String(),
		AttrTourID:    event.TourID.String(),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return &bookingMessage{data: data, attributes: attributes}, nil
}

// push wraps the message the way a push subscription delivers it.
// The booking id doubles as message id so redeliveries are recognisable.
func (m *bookingMessage) push(messageID string, publishedAt time.Time) PushMessage {
	var msg PushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(m.data)
	msg.Message.Attributes = m.attributes
	msg.Message.MessageID = messageID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339Nano)

	return msg
}
