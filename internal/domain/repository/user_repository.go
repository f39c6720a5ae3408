package repository

import (
	"context"
	"time"

	"natours/internal/domain/entity"
	"natours/internal/domain/query"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
// Inactive users are filtered out of every find.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByResetToken retrieves the user owning an unexpired reset token digest.
	FindByResetToken(ctx context.Context, hashedToken string, now time.Time) (*entity.User, error)

	// FindByConfirmToken retrieves the user owning a confirmation token digest.
	FindByConfirmToken(ctx context.Context, hashedToken string) (*entity.User, error)

	List(ctx context.Context, features *query.Features) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user row permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
