package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"natours/internal/domain/entity"
	"natours/internal/domain/repository"
	"natours/internal/errors"
	mockRepo "natours/internal/mocks/repository"
	mockService "natours/internal/mocks/service"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dataServiceFixtures struct {
	service     usecase.DataUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	hasher      *mockService.MockPasswordHasher
}

func createTestDataService(t *testing.T) dataServiceFixtures {
	fx := dataServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		hasher:      mockService.NewMockPasswordHasher(t),
	}
	fx.service = NewDataService(fx.txManager, fx.hasher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})

	return fx
}

func TestDataService_Import(t *testing.T) {
	fx := createTestDataService(t)
	ctx := context.Background()

	userRepo := mockRepo.NewMockUserRepository(t)
	tourRepo := mockRepo.NewMockTourRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	fx.repoFactory.EXPECT().NewUserRepository().Return(userRepo)
	fx.repoFactory.EXPECT().NewTourRepository().Return(tourRepo)
	fx.repoFactory.EXPECT().NewReviewRepository().Return(reviewRepo)

	user := &entity.User{ID: uuid.New(), Name: "Sophie Louise Hart", Email: "sophie@example.io", Role: entity.RoleUser}
	tour := &entity.Tour{
		ID: uuid.New(), Name: "The Northern Lights", Duration: 3, MaxGroupSize: 12,
		Difficulty: entity.DifficultyEasy, Price: 1497, Summary: "Enjoy the Northern Lights", ImageCover: "tour-9-cover.jpg",
	}
	reviews := []*entity.Review{
		{Review: "Wonderful", Rating: 5, TourID: tour.ID, UserID: user.ID},
		{Review: "Good", Rating: 4, TourID: tour.ID, UserID: user.ID},
	}
	summary := entity.RatingSummary{TourID: tour.ID, Quantity: 2, Average: 4.5}

	fx.hasher.EXPECT().Hash("test1234").Return("hashed", nil)
	userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Confirmed && u.Active && u.PasswordHash == "hashed" && u.Photo == "default.jpg"
		})).
		Return(nil)
	tourRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(t *entity.Tour) bool { return t.Slug == "the-northern-lights" })).
		Return(nil)
	reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil).Twice()
	reviewRepo.EXPECT().RatingSummary(ctx, tour.ID).Return(summary, nil).Once()
	tourRepo.EXPECT().UpdateRatings(ctx, summary).Return(nil).Once()

	err := fx.service.Import(ctx, &usecase.SeedData{
		Users:   []*usecase.SeedUser{{User: user, Password: "test1234"}},
		Tours:   []*entity.Tour{tour},
		Reviews: reviews,
	})

	require.NoError(t, err)
}

func TestDataService_Import_InvalidTourAborts(t *testing.T) {
	fx := createTestDataService(t)
	ctx := context.Background()

	fx.repoFactory.EXPECT().NewUserRepository().Return(mockRepo.NewMockUserRepository(t))
	fx.repoFactory.EXPECT().NewTourRepository().Return(mockRepo.NewMockTourRepository(t))

	err := fx.service.Import(ctx, &usecase.SeedData{Tours: []*entity.Tour{{Name: "Too short"}}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tour Too short")
}

func TestDataService_DeleteAll(t *testing.T) {
	fx := createTestDataService(t)
	ctx := context.Background()

	maintenance := mockRepo.NewMockMaintenanceRepository(t)
	fx.repoFactory.EXPECT().NewMaintenanceRepository().Return(maintenance)
	maintenance.EXPECT().DeleteAll(ctx).Return(errors.New("permission denied"))

	err := fx.service.DeleteAll(ctx)

	assert.ErrorContains(t, err, "permission denied")
}
