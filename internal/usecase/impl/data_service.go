package impl

import (
	"context"
	"log/slog"

	"natours/internal/domain/constants"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/domain/validation"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
)

type dataService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

func NewDataService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.DataUsecase {
	return &dataService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
	}
}

// Import stores users, tours and reviews, then recomputes the rating of every reviewed tour.
// Users are stored confirmed; any failure rolls the whole dataset back.
func (srv *dataService) Import(ctx context.Context, data *usecase.SeedData) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		for _, seed := range data.Users {
			user := seed.User
			if user.Photo == "" {
				user.Photo = constants.DefaultUserPhoto
			}
			user.Active = true
			user.Confirmed = true

			hash, err := srv.hasher.Hash(seed.Password)
			if err != nil {
				return errors.Wrapf(err, "failed to hash password of %s", user.Email)
			}
			user.PasswordHash = hash

			if err := validation.Struct(user); err != nil {
				return errors.Wrapf(err, "invalid user %s", user.Email)
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrapf(err, "failed to import user %s", user.Email)
			}
		}

		tourRepo := repoFactory.NewTourRepository()
		for _, tour := range data.Tours {
			if err := prepareTour(tour); err != nil {
				return errors.Wrapf(err, "invalid tour %s", tour.Name)
			}
			if err := tourRepo.Create(ctx, tour); err != nil {
				return errors.Wrapf(err, "failed to import tour %s", tour.Name)
			}
		}

		reviewRepo := repoFactory.NewReviewRepository()
		reviewed := make(map[uuid.UUID]struct{})
		for _, review := range data.Reviews {
			if err := prepareReview(review); err != nil {
				return errors.Wrap(err, "invalid review")
			}
			if err := reviewRepo.Create(ctx, review); err != nil {
				return errors.Wrap(err, "failed to import review")
			}
			reviewed[review.TourID] = struct{}{}
		}

		for tourID := range reviewed {
			summary, err := reviewRepo.RatingSummary(ctx, tourID)
			if err != nil {
				return errors.Wrap(err, "failed to summarize ratings")
			}
			if err := tourRepo.UpdateRatings(ctx, summary); err != nil {
				return errors.Wrap(err, "failed to update tour ratings")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to import data")
	}

	srv.logger.Info("Data successfully loaded",
		slog.Int("users", len(data.Users)),
		slog.Int("tours", len(data.Tours)),
		slog.Int("reviews", len(data.Reviews)),
	)

	return nil
}

func (srv *dataService) DeleteAll(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewMaintenanceRepository().DeleteAll(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete data")
	}

	srv.logger.Info("Data successfully deleted")

	return nil
}
