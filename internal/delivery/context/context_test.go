package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	c := newEchoContext()
	SetRequestID(c, "req-7")
	assert.Equal(t, "req-7", GetRequestIDFromContext(c.Request().Context()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler).With("request_id", "x")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, GetLoggerOrDefault(WithLogger(context.Background(), nil), fallback))
}

func TestUser(t *testing.T) {
	c := newEchoContext()
	_, ok := GetUser(c)
	assert.False(t, ok)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleGuide}
	SetUser(c, user)
	got, ok := GetUser(c)
	assert.True(t, ok)
	assert.Same(t, user, got)
}
