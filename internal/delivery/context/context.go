// Package context carries request-scoped values between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"natours/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from clients and echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

type key int

const (
	keyRequestID key = iota
	keyLogger
)

// echoUserKey holds the user on echo.Context so handlers need not reach into the request.
const echoUserKey = "user"

func value[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)

	return v, ok
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := value[string](ctx, keyRequestID)

	return id
}

// SetRequestID stores the request ID on the request context of c.
func SetRequestID(c echo.Context, requestID string) {
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

// WithLogger returns a new context with a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := value[*slog.Logger](ctx, keyLogger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetUser attaches the authenticated user to c.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(echoUserKey, user)
}

// GetUser returns the user attached by SetUser.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(echoUserKey).(*entity.User)

	return user, ok && user != nil
}
