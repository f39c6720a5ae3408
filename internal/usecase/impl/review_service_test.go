package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/errors"
	mockRepo "natours/internal/mocks/repository"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	reviewRepo *mockRepo.MockReviewRepository
	tourRepo   *mockRepo.MockTourRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	tourRepo := mockRepo.NewMockTourRepository(t)

	return reviewServiceFixtures{
		service:    NewReviewService(reviewRepo, tourRepo, slog.New(slog.NewTextHandler(io.Discard, nil))),
		reviewRepo: reviewRepo,
		tourRepo:   tourRepo,
	}
}

func TestReviewService_Create_RefreshesTourRatings(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	tourID, userID := uuid.New(), uuid.New()
	summary := entity.RatingSummary{TourID: tourID, Quantity: 3, Average: 4.333333}

	fx.reviewRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.Review == "Amazing!" && r.Rating == entity.DefaultRatingsAverage && r.TourID == tourID
		})).
		Return(nil)
	fx.reviewRepo.EXPECT().RatingSummary(ctx, tourID).Return(summary, nil)
	fx.tourRepo.EXPECT().UpdateRatings(ctx, summary).Return(nil)

	review, err := fx.service.Create(ctx, &usecase.ReviewInput{
		Review: ptr("  Amazing!  "),
		Tour:   &tourID,
		User:   &userID,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, review.UserID)
}

func TestReviewService_Create_RatingRefreshFailureIsNotReturned(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	tourID, userID := uuid.New(), uuid.New()

	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.reviewRepo.EXPECT().RatingSummary(ctx, tourID).Return(entity.RatingSummary{}, errors.New("connection reset"))

	_, err := fx.service.Create(ctx, &usecase.ReviewInput{
		Review: ptr("Fine"),
		Rating: ptr(4.0),
		Tour:   &tourID,
		User:   &userID,
	})

	require.NoError(t, err)
}

func TestReviewService_Create_Validation(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.Create(context.Background(), &usecase.ReviewInput{Rating: ptr(6.0)})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Review cannot be empty!",
		"Rating must be below 5.0",
		"Review must belong to a tour.",
		"Review must belong to a user",
	}, verr.Messages())
}

func TestReviewService_Create_DuplicateSurfaces(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	tourID, userID := uuid.New(), uuid.New()
	dup := domainerrors.NewDuplicateFieldError("tour", tourID.String())

	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(dup)

	_, err := fx.service.Create(ctx, &usecase.ReviewInput{Review: ptr("Again"), Tour: &tourID, User: &userID})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_FIELD", appErr.ErrorCode())
}

func TestReviewService_Update_MovesRatingsBetweenTours(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	id, oldTour, newTour := uuid.New(), uuid.New(), uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, id).Return(&entity.Review{
		ID: id, Review: "Good", Rating: 4, TourID: oldTour, UserID: uuid.New(),
	}, nil)
	fx.reviewRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	for _, tourID := range []uuid.UUID{oldTour, newTour} {
		summary := entity.RatingSummary{TourID: tourID}
		fx.reviewRepo.EXPECT().RatingSummary(ctx, tourID).Return(summary, nil).Once()
		fx.tourRepo.EXPECT().UpdateRatings(ctx, summary).Return(nil).Once()
	}

	review, err := fx.service.Update(ctx, id, &usecase.ReviewInput{Tour: &newTour})

	require.NoError(t, err)
	assert.Equal(t, newTour, review.TourID)
}

func TestReviewService_Delete_NotFound(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotFound)

	err := fx.service.Delete(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReviewService_Delete_RefreshesRatings(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	id, tourID := uuid.New(), uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, id).Return(&entity.Review{ID: id, TourID: tourID}, nil)
	fx.reviewRepo.EXPECT().Delete(ctx, id).Return(nil)
	fx.reviewRepo.EXPECT().RatingSummary(ctx, tourID).Return(entity.RatingSummary{TourID: tourID}, nil)
	fx.tourRepo.EXPECT().UpdateRatings(ctx, entity.RatingSummary{TourID: tourID}).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, id))
}
