package postgres

import (
	"testing"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError_Duplicate(t *testing.T) {
	err := translateError(errors.WithStack(&pgconn.PgError{
		Code:   pgUniqueViolation,
		Detail: "Key (name)=(The Forest Hiker) already exists.",
	}), "create tour")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "Duplicate field name: The Forest Hiker. Please use another name!", appErr.Message())
}

func TestTranslateError_Categories(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "not found", in: gorm.ErrRecordNotFound, want: repository.ErrNotFound},
		{name: "foreign key", in: &pgconn.PgError{Code: pgForeignKeyViolation}, want: domainerrors.ErrReferenceNotFound},
		{name: "check", in: &pgconn.PgError{Code: pgCheckViolation}, want: domainerrors.ErrValidationFailed},
		{name: "gorm duplicate", in: gorm.ErrDuplicatedKey, want: domainerrors.NewDuplicateFieldError("value", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := translateError(tt.in, "op")
			if tt.want == nil {
				assert.NoError(t, got)

				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateError_Unknown(t *testing.T) {
	err := translateError(errors.New("connection reset"), "list tours")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.False(t, domainerrors.IsOperational(err))
}

func TestParseDuplicateDetail(t *testing.T) {
	field, value := parseDuplicateDetail("Key (tour_id, user_id)=(a, b) already exists.")
	assert.Equal(t, "tour, user", field)
	assert.Equal(t, "a, b", value)

	field, value = parseDuplicateDetail("Key (email)=(x@y.io) already exists.")
	assert.Equal(t, "email", field)
	assert.Equal(t, "x@y.io", value)

	field, _ = parseDuplicateDetail("garbage")
	assert.Equal(t, "value", field)

	assert.Equal(t, "maxGroupSize", fieldName("max_group_size"))
}

func TestIsConstraintViolation(t *testing.T) {
	assert.True(t, isConstraintViolation(errors.WithStack(&pgconn.PgError{Code: pgUniqueViolation})))
	assert.True(t, isConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isConstraintViolation(&pgconn.PgError{Code: pgInvalidText}))
	assert.False(t, isConstraintViolation(errors.New("connection reset")))
}
