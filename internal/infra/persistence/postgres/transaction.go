// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"natours/internal/domain/repository"
	"natours/internal/errors"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager runs units of work against db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute hands fn repositories bound to one transaction. The transaction
// commits when fn returns nil and rolls back on error or panic; fn's own
// error is returned untouched so callers can still match domain errors.
func (m *txManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err == nil || fnErr != nil {
		return err
	}

	return errors.Wrap(err, "postgres transaction")
}

// txRepositories builds repositories that share tx.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewTourRepository() repository.TourRepository {
	return NewTourRepository(r.tx)
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(r.tx)
}

func (r txRepositories) NewBookingRepository() repository.BookingRepository {
	return NewBookingRepository(r.tx)
}

func (r txRepositories) NewMaintenanceRepository() repository.MaintenanceRepository {
	return NewMaintenanceRepository(r.tx)
}
