package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is what a verified session token proves.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs a session token for a user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry.
	// It returns domain errors ErrInvalidToken or ErrTokenExpired on failure.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns how long issued tokens stay valid.
	TokenDuration() time.Duration
}
