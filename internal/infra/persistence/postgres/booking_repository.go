package postgres

import (
	"context"

	"natours/internal/domain/entity"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var bookingColumns = columnSet{
	"id":        {name: "id", kind: kindUUID},
	"tour":      {name: "tour_id", kind: kindUUID},
	"user":      {name: "user_id", kind: kindUUID},
	"price":     {name: "price", kind: kindNumber},
	"paid":      {name: "paid", kind: kindBool},
	"createdAt": {name: "created_at", kind: kindTime},
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// withBookingRefs loads the buyer and the tour name of a booking.
func withBookingRefs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Tour", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "slug", "image_cover", "duration", "summary", "difficulty", "price")
		})
}

func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	m := fromBookingDomain(booking)
	if err := create(ctx, repo.db.Omit("User", "Tour"), m, "failed to create booking"); err != nil {
		return err
	}

	booking.ID = m.ID
	booking.CreatedAt = m.CreatedAt

	return nil
}

func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	m, err := findByID[model.BookingModel](ctx, repo.db, id, "failed to find booking by id", withBookingRefs)
	if err != nil {
		return nil, err
	}

	return toBookingDomain(m), nil
}

func (repo *bookingRepository) List(ctx context.Context, features *query.Features) ([]*entity.Booking, error) {
	ms, err := list[model.BookingModel](ctx, repo.db, bookingColumns, features, "failed to list bookings", withBookingRefs)
	if err != nil {
		return nil, err
	}

	return mapAll(ms, toBookingDomain), nil
}

func (repo *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var ms []model.BookingModel
	err := repo.db.WithContext(ctx).Scopes(withBookingRefs).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, translateError(err, "failed to list bookings of user")
	}

	return mapAll(ms, toBookingDomain), nil
}

func (repo *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	result := repo.db.WithContext(ctx).Model(&model.BookingModel{}).
		Where("id = ?", booking.ID).
		Select("tour_id", "user_id", "price", "paid").
		Updates(fromBookingDomain(booking))
	if result.Error != nil {
		return translateError(result.Error, "failed to update booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (repo *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.BookingModel](ctx, repo.db, id, "failed to delete booking")
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	booking := &entity.Booking{
		ID:        data.ID,
		TourID:    data.TourID,
		UserID:    data.UserID,
		Price:     data.Price,
		Paid:      data.Paid,
		CreatedAt: data.CreatedAt,
	}
	if data.Tour != nil {
		booking.Tour = toTourDomain(data.Tour)
	}
	if data.User != nil {
		booking.User = toUserDomain(data.User)
	}

	return booking
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:     data.ID,
		TourID: data.TourID,
		UserID: data.UserID,
		Price:  data.Price,
		Paid:   data.Paid,
	}
}
