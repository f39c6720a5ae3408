package service

import (
	"context"

	"natours/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookingCreated announces a booking that came out of a paid checkout.
	PublishBookingCreated(ctx context.Context, event *entity.BookingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
