package impl

import (
	"context"
	"log/slog"
	"strings"

	"natours/internal/domain/entity"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/domain/validation"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	tourRepo   repository.TourRepository
	logger     *slog.Logger
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	tourRepo repository.TourRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: reviewRepo,
		tourRepo:   tourRepo,
		logger:     logger,
	}
}

func (srv *reviewService) Create(ctx context.Context, input *usecase.ReviewInput) (*entity.Review, error) {
	review := &entity.Review{Rating: entity.DefaultRatingsAverage}
	input.Apply(review)
	if err := prepareReview(review); err != nil {
		return nil, err
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}
	srv.refreshRatings(ctx, review.TourID)

	return review, nil
}

func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to find review")
	}

	return review, nil
}

func (srv *reviewService) List(ctx context.Context, features *query.Features) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx, features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews of user")
	}

	return reviews, nil
}

func (srv *reviewService) Update(ctx context.Context, id uuid.UUID, patch *usecase.ReviewInput) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to find review")
	}

	previousTour := review.TourID
	patch.Apply(review)
	if err := prepareReview(review); err != nil {
		return nil, err
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, lookupError(err, id, "failed to update review")
	}

	srv.refreshRatings(ctx, review.TourID)
	if previousTour != review.TourID {
		srv.refreshRatings(ctx, previousTour)
	}

	return review, nil
}

func (srv *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, id, "failed to find review")
	}

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		return lookupError(err, id, "failed to delete review")
	}
	srv.refreshRatings(ctx, review.TourID)

	return nil
}

func prepareReview(review *entity.Review) error {
	review.Review = strings.TrimSpace(review.Review)
	if err := validation.Struct(review); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// refreshRatings recomputes the rating summary of a tour. Failures are logged, not returned:
// the review write already succeeded.
func (srv *reviewService) refreshRatings(ctx context.Context, tourID uuid.UUID) {
	logger := requestLogger(ctx, srv.logger)

	summary, err := srv.reviewRepo.RatingSummary(ctx, tourID)
	if err != nil {
		logger.Warn("Failed to summarize tour ratings", slog.String("tourID", tourID.String()), slog.Any("error", err))

		return
	}
	if err := srv.tourRepo.UpdateRatings(ctx, summary); err != nil {
		logger.Warn("Failed to update tour ratings", slog.String("tourID", tourID.String()), slog.Any("error", err))

		return
	}

	logger.Debug("Tour ratings updated",
		slog.String("tourID", tourID.String()),
		slog.Int("quantity", summary.Quantity),
		slog.Float64("average", summary.Average),
	)
}
