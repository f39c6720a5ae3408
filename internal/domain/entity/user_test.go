package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ChangedPasswordAfter(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	before := issued.Add(-time.Hour)
	after := issued.Add(time.Minute)
	sameSecond := issued.Add(500 * time.Millisecond)

	tests := []struct {
		name      string
		changedAt *time.Time
		want      bool
	}{
		{name: "never changed", changedAt: nil, want: false},
		{name: "changed before issue", changedAt: &before, want: false},
		{name: "changed in the issuing second", changedAt: &sameSecond, want: false},
		{name: "changed after issue", changedAt: &after, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u := &User{PasswordChangedAt: tt.changedAt}
			assert.Equal(t, tt.want, u.ChangedPasswordAfter(issued))
		})
	}
}

func TestUser_SetPasswordHash(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new user keeps no change time", func(t *testing.T) {
		u := &User{}
		u.SetPasswordHash("hash", now)
		assert.Equal(t, "hash", u.PasswordHash)
		assert.Nil(t, u.PasswordChangedAt)
	})

	t.Run("existing user is backdated one second", func(t *testing.T) {
		expires := now.Add(time.Minute)
		u := &User{ID: uuid.New(), PasswordResetToken: "x", PasswordResetExpires: &expires}
		u.SetPasswordHash("hash", now)
		require.NotNil(t, u.PasswordChangedAt)
		assert.Equal(t, now.Add(-time.Second), *u.PasswordChangedAt)
		assert.Empty(t, u.PasswordResetToken)
		assert.Nil(t, u.PasswordResetExpires)
	})
}

func TestUser_HasValidResetToken(t *testing.T) {
	now := time.Now()
	future := now.Add(PasswordResetTTL)
	past := now.Add(-time.Second)

	assert.True(t, (&User{PasswordResetToken: "t", PasswordResetExpires: &future}).HasValidResetToken(now))
	assert.False(t, (&User{PasswordResetToken: "t", PasswordResetExpires: &past}).HasValidResetToken(now))
	assert.False(t, (&User{PasswordResetExpires: &future}).HasValidResetToken(now))
}

func TestNewOneTimeToken(t *testing.T) {
	plain, hashed, err := NewOneTimeToken()
	require.NoError(t, err)
	assert.Len(t, plain, 64)
	assert.Len(t, hashed, 64)
	assert.NotEqual(t, plain, hashed)
	assert.Equal(t, hashed, HashOneTimeToken(plain))
}

func TestUser_FirstName(t *testing.T) {
	assert.Equal(t, "Jonas", (&User{Name: "Jonas Schmedtmann"}).FirstName())
	assert.Empty(t, (&User{}).FirstName())
}
