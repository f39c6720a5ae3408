// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "natours/internal/delivery/context"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/errors"

	"github.com/google/uuid"
)

// lookupError turns a repository miss on id into the 404 clients see.
func lookupError(err error, id uuid.UUID, action string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errors.WithStack(domainerrors.NewDocumentNotFoundError(id))
	}

	return errors.Wrap(err, action)
}

// requestLogger returns the request-scoped logger if available.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
