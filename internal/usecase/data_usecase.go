package usecase

import (
	"context"

	"natours/internal/domain/entity"
)

// DataUsecase loads and wipes development data.
type DataUsecase interface {
	// Import inserts the dataset in one transaction. Passwords in users are plaintext.
	Import(ctx context.Context, data *SeedData) error
	DeleteAll(ctx context.Context) error
}

// SeedData is a complete dataset. Reviews and tour guides reference users and tours by ID.
type SeedData struct {
	Users   []*SeedUser
	Tours   []*entity.Tour
	Reviews []*entity.Review
}

// SeedUser is a user with a plaintext password to hash on import.
type SeedUser struct {
	User     *entity.User
	Password string
}
