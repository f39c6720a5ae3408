package errors

import (
	"net/http"
	"testing"

	"natours/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestStatusClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want string
	}{
		{code: http.StatusBadRequest, want: "fail"},
		{code: http.StatusNotFound, want: "fail"},
		{code: http.StatusTooManyRequests, want: "fail"},
		{code: http.StatusInternalServerError, want: "error"},
		{code: http.StatusOK, want: "error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusClass(tt.code), "code %d", tt.code)
	}
}

func TestIsOperational(t *testing.T) {
	t.Parallel()

	assert.True(t, IsOperational(ErrInvalidCredentials))
	assert.True(t, IsOperational(ErrNotLoggedIn.WrapMessage("protect")))
	assert.False(t, IsOperational(NewDatabaseExecuteError(errors.New("conn reset"), "find tours")))
	assert.False(t, IsOperational(errors.New("boom")))
}

func TestBaseError_IsMatchesCopies(t *testing.T) {
	t.Parallel()

	withDetails := ErrForbidden.WithDetails("role guide")
	assert.True(t, errors.Is(withDetails, ErrForbidden))
	assert.False(t, errors.Is(withDetails, ErrNotLoggedIn))
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	verr := NewValidationError()
	assert.NoError(t, verr.ErrOrNil())

	verr.Add("name", "A tour must have a name")
	verr.Add("price", "A tour must have a price")
	verr.Add("name", "ignored second failure")

	assert.Error(t, verr.ErrOrNil())
	assert.Equal(t, "A tour must have a name. A tour must have a price", verr.Message())
	assert.Equal(t, http.StatusBadRequest, verr.HTTPCode())
}

func TestMessageConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No document found with that ID(42)", NewDocumentNotFoundError(42).Message())
	assert.Equal(t, "Can't find /nope on this server!", NewRouteNotFoundError("/nope").Message())
	assert.Equal(t, "Invalid id with value abc", NewCastError("id", "abc").Message())

	dup := NewDuplicateFieldError("email", "a@b.c")
	assert.Equal(t, "Duplicate field email: a@b.c. Please use another email!", dup.Message())
	assert.Equal(t, http.StatusNotFound, dup.HTTPCode())
}
