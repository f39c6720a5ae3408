package repository

import (
	"context"

	"natours/internal/domain/entity"
	"natours/internal/domain/query"

	"github.com/google/uuid"
)

// BookingRepository persists bookings. Reads populate the user and the tour name.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	List(ctx context.Context, features *query.Features) ([]*entity.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}
