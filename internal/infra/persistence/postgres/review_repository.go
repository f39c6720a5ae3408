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

var reviewColumns = columnSet{
	"id":        {name: "id", kind: kindUUID},
	"review":    {name: "review", kind: kindString},
	"rating":    {name: "rating", kind: kindNumber},
	"tour":      {name: "tour_id", kind: kindUUID},
	"user":      {name: "user_id", kind: kindUUID},
	"createdAt": {name: "created_at", kind: kindTime},
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// withReviewer loads the public profile of the review author.
func withReviewer(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "photo")
	})
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	m := fromReviewDomain(review)
	if err := create(ctx, repo.db.Omit("User", "Tour"), m, "failed to create review"); err != nil {
		return err
	}

	review.ID = m.ID
	review.CreatedAt = m.CreatedAt

	return nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	m, err := findByID[model.ReviewModel](ctx, repo.db, id, "failed to find review by id", withReviewer)
	if err != nil {
		return nil, err
	}

	return toReviewDomain(m), nil
}

func (repo *reviewRepository) List(ctx context.Context, features *query.Features) ([]*entity.Review, error) {
	ms, err := list[model.ReviewModel](ctx, repo.db, reviewColumns, features, "failed to list reviews", withReviewer)
	if err != nil {
		return nil, err
	}

	return mapAll(ms, toReviewDomain), nil
}

func (repo *reviewRepository) ListByTour(ctx context.Context, tourID uuid.UUID) ([]*entity.Review, error) {
	var ms []model.ReviewModel
	err := repo.db.WithContext(ctx).Scopes(withReviewer).
		Where("tour_id = ?", tourID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, translateError(err, "failed to list reviews of tour")
	}

	return mapAll(ms, toReviewDomain), nil
}

func (repo *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var ms []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("Tour", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "slug", "image_cover")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, translateError(err, "failed to list reviews of user")
	}

	return mapAll(ms, toReviewDomain), nil
}

func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Select("review", "rating", "tour_id", "user_id").
		Updates(fromReviewDomain(review))
	if result.Error != nil {
		return translateError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.ReviewModel](ctx, repo.db, id, "failed to delete review")
}

type ratingSummaryRow struct {
	Quantity int
	Average  float64
}

func (repo *reviewRepository) RatingSummary(ctx context.Context, tourID uuid.UUID) (entity.RatingSummary, error) {
	var row ratingSummaryRow
	err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Select("count(*) AS quantity, coalesce(avg(rating), 0) AS average").
		Where("tour_id = ?", tourID).
		Scan(&row).Error
	if err != nil {
		return entity.RatingSummary{}, translateError(err, "failed to summarize ratings")
	}

	return entity.RatingSummary{TourID: tourID, Quantity: row.Quantity, Average: row.Average}, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:        data.ID,
		Review:    data.Review,
		Rating:    data.Rating,
		TourID:    data.TourID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
	if data.User != nil {
		review.User = toUserDomain(data.User)
	}
	if data.Tour != nil {
		review.Tour = toTourDomain(data.Tour)
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:     data.ID,
		Review: data.Review,
		Rating: data.Rating,
		TourID: data.TourID,
		UserID: data.UserID,
	}
}
