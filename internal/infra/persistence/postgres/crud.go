package postgres

import (
	"context"

	"natours/internal/domain/query"
	"natours/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scope narrows a query, e.g. to hide secret tours.
type scope = func(*gorm.DB) *gorm.DB

func findByID[M any](ctx context.Context, db *gorm.DB, id uuid.UUID, action string, scopes ...scope) (*M, error) {
	var m M
	if err := db.WithContext(ctx).Scopes(scopes...).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err, action)
	}

	return &m, nil
}

func findOne[M any](ctx context.Context, db *gorm.DB, action string, scopes ...scope) (*M, error) {
	var m M
	if err := db.WithContext(ctx).Scopes(scopes...).First(&m).Error; err != nil {
		return nil, translateError(err, action)
	}

	return &m, nil
}

func list[M any](ctx context.Context, db *gorm.DB, cols columnSet, f *query.Features, action string, scopes ...scope) ([]M, error) {
	tx, err := applyFeatures(db.WithContext(ctx).Model(new(M)).Scopes(scopes...), cols, f)
	if err != nil {
		return nil, err
	}

	var out []M
	if err := tx.Find(&out).Error; err != nil {
		return nil, translateError(err, action)
	}

	return out, nil
}

func create[M any](ctx context.Context, db *gorm.DB, m *M, action string) error {
	return translateError(db.WithContext(ctx).Create(m).Error, action)
}

// deleteByID fails with ErrNotFound when no row matched.
func deleteByID[M any](ctx context.Context, db *gorm.DB, id uuid.UUID, action string, scopes ...scope) error {
	result := db.WithContext(ctx).Scopes(scopes...).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return translateError(result.Error, action)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// mapAll converts persistence models to domain entities.
func mapAll[M, E any](ms []M, fn func(*M) *E) []*E {
	out := make([]*E, 0, len(ms))
	for i := range ms {
		out = append(out, fn(&ms[i]))
	}

	return out
}
