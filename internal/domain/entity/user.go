// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// PasswordResetTTL is how long a password reset token stays valid.
	PasswordResetTTL = 10 * time.Minute

	// passwordChangedSkew backdates passwordChangedAt so a token issued in the same second stays valid.
	passwordChangedSkew = time.Second
)

// User is an account. Credentials and one-time tokens never serialize.
type User struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name" validate:"required" msg:"required=Please tell us your name!"`
	Email                string     `json:"email" validate:"required,email" msg:"required=Please provide your email;email=Please provide a valid email"`
	Photo                string     `json:"photo"`
	Role                 Role       `json:"role" validate:"required,oneof=user guide lead-guide admin" msg:"oneof=Role is either: user, guide, lead-guide, admin"`
	PasswordHash         string     `json:"-"`
	PasswordChangedAt    *time.Time `json:"-"` // Nil until the first password change.
	PasswordResetToken   string     `json:"-"` // sha256 hex of the emailed reset token.
	PasswordResetExpires *time.Time `json:"-"`
	ConfirmToken         string     `json:"-"` // sha256 hex of the emailed confirmation token.
	Confirmed            bool       `json:"-"`
	Active               bool       `json:"-"` // False once the user deleted their account.
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"-"`
}

// FirstName is the first word of the display name, used in email greetings.
func (u *User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// ChangedPasswordAfter reports whether the password changed after a token issued at issuedAt.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}

	return u.PasswordChangedAt.Unix() > issuedAt.Unix()
}

// SetPasswordHash stores a new hash. For existing users it also records the change time.
func (u *User) SetPasswordHash(hash string, now time.Time) {
	u.PasswordHash = hash
	if u.ID != uuid.Nil {
		changedAt := now.Add(-passwordChangedSkew)
		u.PasswordChangedAt = &changedAt
	}
	u.PasswordResetToken = ""
	u.PasswordResetExpires = nil
}

// HasValidResetToken reports whether the stored reset token is still usable at now.
func (u *User) HasValidResetToken(now time.Time) bool {
	return u.PasswordResetToken != "" && u.PasswordResetExpires != nil && u.PasswordResetExpires.After(now)
}

// NewOneTimeToken returns a random token to email and its sha256 hex digest to store.
func NewOneTimeToken() (plain, hashed string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	plain = hex.EncodeToString(buf)

	return plain, HashOneTimeToken(plain), nil
}

// HashOneTimeToken digests a token received from a client for lookup.
func HashOneTimeToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))

	return hex.EncodeToString(sum[:])
}
