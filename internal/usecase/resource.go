// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"natours/internal/domain/query"

	"github.com/google/uuid"
)

// Resource is the set of operations the generic REST handlers need.
// T is the document type, C the create input and P the partial update input.
type Resource[T, C, P any] interface {
	Create(ctx context.Context, input *C) (*T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, features *query.Features) ([]*T, error)
	// Update applies a partial patch and re-validates the document.
	Update(ctx context.Context, id uuid.UUID, patch *P) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
