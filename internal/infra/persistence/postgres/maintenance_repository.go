package postgres

import (
	"context"

	"natours/internal/domain/repository"

	"gorm.io/gorm"
)

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// DeleteAll empties every table; child tables cascade from tours and users.
func (repo *maintenanceRepository) DeleteAll(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Exec("TRUNCATE TABLE bookings, reviews, tour_guides, tour_start_dates, tours, users").Error

	return translateError(err, "failed to delete all documents")
}
