package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/errors"
	mockRepo "natours/internal/mocks/repository"
	mockService "natours/internal/mocks/service"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tourServiceFixtures holds all test dependencies for tour service tests.
type tourServiceFixtures struct {
	service    *tourService
	tourRepo   *mockRepo.MockTourRepository
	reviewRepo *mockRepo.MockReviewRepository
	userRepo   *mockRepo.MockUserRepository
	images     *mockService.MockImageProcessor
}

func createTestTourService(t *testing.T) tourServiceFixtures {
	tourRepo := mockRepo.NewMockTourRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	images := mockService.NewMockImageProcessor(t)

	srv := NewTourService(TourServiceParams{
		TourRepo:   tourRepo,
		ReviewRepo: reviewRepo,
		UserRepo:   userRepo,
		Images:     images,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*tourService)
	srv.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return tourServiceFixtures{
		service:    srv,
		tourRepo:   tourRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		images:     images,
	}
}

func ptr[T any](v T) *T { return &v }

func validTourInput() *usecase.TourInput {
	return &usecase.TourInput{
		Name:         ptr("The Forest Hiker"),
		Duration:     ptr(5),
		MaxGroupSize: ptr(25),
		Difficulty:   ptr("easy"),
		Price:        ptr(397.0),
		Summary:      ptr("  Breathtaking hike through the Canadian Banff National Park  "),
		ImageCover:   ptr("tour-1-cover.jpg"),
	}
}

func TestTourService_Create_Success(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()

	fx.tourRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tour")).
		Run(func(_ context.Context, tour *entity.Tour) { tour.ID = uuid.New() }).
		Return(nil)

	tour, err := fx.service.Create(ctx, validTourInput())

	require.NoError(t, err)
	assert.Equal(t, "the-forest-hiker", tour.Slug)
	assert.Equal(t, "Breathtaking hike through the Canadian Banff National Park", tour.Summary)
	assert.Equal(t, entity.DefaultRatingsAverage, tour.RatingsAverage)
	assert.InDelta(t, 5.0/7, tour.DurationWeeks, 1e-9)
}

func TestTourService_Create_ValidationFails(t *testing.T) {
	fx := createTestTourService(t)

	input := validTourInput()
	input.Name = ptr("Short")
	input.PriceDiscount = ptr(500.0)

	_, err := fx.service.Create(context.Background(), input)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "A tour name must have more or equal then 10 characters", verr.Fields["name"])
	assert.Equal(t, "Discount price(500) should be below the regular price", verr.Fields["priceDiscount"])
}

func TestTourService_Get_NotFound(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotFound)

	_, err := fx.service.Get(ctx, id)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "No document found with that ID("+id.String()+")", appErr.Message())
}

func TestTourService_Get_PopulatesReviews(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	id := uuid.New()
	reviews := []*entity.Review{{ID: uuid.New(), Review: "Great", Rating: 5, TourID: id}}

	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(&entity.Tour{ID: id}, nil)
	fx.reviewRepo.EXPECT().ListByTour(ctx, id).Return(reviews, nil)

	tour, err := fx.service.Get(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, reviews, tour.Reviews)
}

func TestTourService_GetBySlug_NotFound(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()

	fx.tourRepo.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrNotFound)

	_, err := fx.service.GetBySlug(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrTourNotFoundBySlug)
}

func TestTourService_Update_RevalidatesPatch(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	id := uuid.New()

	existing := &entity.Tour{ID: id}
	validTourInput().Apply(existing)

	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)

	_, err := fx.service.Update(ctx, id, &usecase.TourInput{Difficulty: ptr("extreme")})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Difficulty is either: easy, medium, difficult", verr.Fields["difficulty"])
}

func TestTourService_Update_RenameChangesSlug(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	id := uuid.New()

	existing := &entity.Tour{ID: id}
	validTourInput().Apply(existing)
	reloaded := &entity.Tour{ID: id, Name: "The Sea Explorer"}

	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(existing, nil).Once()
	fx.tourRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(tour *entity.Tour) bool { return tour.Slug == "the-sea-explorer" })).
		Return(nil)
	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(reloaded, nil).Once()

	tour, err := fx.service.Update(ctx, id, &usecase.TourInput{Name: ptr("The Sea Explorer")})

	require.NoError(t, err)
	assert.Same(t, reloaded, tour)
}

func TestTourService_Update_KeepsOnlyActiveGuides(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	id := uuid.New()

	guide := &entity.User{ID: uuid.New(), Role: entity.RoleGuide}
	lead := &entity.User{ID: uuid.New(), Role: entity.RoleLeadGuide}
	customer := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	inactive := uuid.New()

	existing := &entity.Tour{ID: id}
	validTourInput().Apply(existing)

	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(existing, nil).Once()
	for _, u := range []*entity.User{guide, lead, customer, admin} {
		fx.userRepo.EXPECT().FindByID(ctx, u.ID).Return(u, nil).Once()
	}
	fx.userRepo.EXPECT().FindByID(ctx, inactive).Return(nil, repository.ErrNotFound).Once()
	fx.tourRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(tour *entity.Tour) bool {
			return assert.ObjectsAreEqual([]uuid.UUID{guide.ID, lead.ID}, tour.GuideIDs)
		})).
		Return(nil)
	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(existing, nil).Once()

	guides := []uuid.UUID{guide.ID, customer.ID, lead.ID, admin.ID, inactive, guide.ID}
	_, err := fx.service.Update(ctx, id, &usecase.TourInput{Guides: &guides})

	require.NoError(t, err)
}

func TestTourService_Create_GuideLookupFails(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	guideID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, guideID).Return(nil, errors.New("connection reset"))

	input := validTourInput()
	input.Guides = &[]uuid.UUID{guideID}
	_, err := fx.service.Create(ctx, input)

	assert.ErrorContains(t, err, "connection reset")
}

func TestTourService_Delete_NotFound(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tourRepo.EXPECT().Delete(ctx, id).Return(repository.ErrNotFound)

	err := fx.service.Delete(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTourService_Search_ReplacesPlus(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()

	fx.tourRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f *query.Features) bool {
			return len(f.Conditions) == 1 &&
				f.Conditions[0].Op == query.OpMatch &&
				f.Conditions[0].Values[0] == "forest hiker" &&
				assert.ObjectsAreEqual(searchFields, f.Conditions[0].Fields)
		})).
		Return([]*entity.Tour{}, nil)

	_, err := fx.service.Search(ctx, "forest+hiker")

	require.NoError(t, err)
}

func tourAt(name string, lat, lng float64) *entity.Tour {
	start := entity.NewLocation(lat, lng)

	return &entity.Tour{ID: uuid.New(), Name: name, StartLocation: &start}
}

func TestTourService_ToursWithin_FiltersBoxCorners(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()

	// Los Angeles centre; Pasadena is ~15 km away, the box corner point ~140 km.
	near := tourAt("Near", 34.1478, -118.1445)
	corner := tourAt("Corner", 34.9, -117.2)

	fx.tourRepo.EXPECT().
		FindStartingWithin(ctx, mock.MatchedBy(func(b orb.Bound) bool {
			return b.Contains(orb.Point{-118.2437, 34.0522})
		})).
		Return([]*entity.Tour{near, corner}, nil)

	tours, err := fx.service.ToursWithin(ctx, usecase.ToursWithinInput{
		Distance: 60,
		Lat:      34.0522,
		Lng:      -118.2437,
		Unit:     entity.UnitMiles,
	})

	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, "Near", tours[0].Name)
}

func TestTourService_ToursWithin_RejectsBadLatLng(t *testing.T) {
	fx := createTestTourService(t)

	_, err := fx.service.ToursWithin(context.Background(), usecase.ToursWithinInput{Distance: 10, Lat: 120, Lng: 0})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidLatLng)
}

func TestTourService_Distances_SortedAndConverted(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()

	far := tourAt("Far", 40.7128, -74.0060)
	near := tourAt("Near", 34.1478, -118.1445)

	fx.tourRepo.EXPECT().ListStartLocations(ctx).Return([]*entity.Tour{far, near}, nil)

	distances, err := fx.service.Distances(ctx, usecase.DistancesInput{Lat: 34.0522, Lng: -118.2437, Unit: entity.UnitKilometers})

	require.NoError(t, err)
	require.Len(t, distances, 2)
	assert.Equal(t, "Near", distances[0].Name)
	assert.InDelta(t, 14.5, distances[0].Distance, 2)
	assert.InDelta(t, 3936, distances[1].Distance, 20)
}

func TestTourService_UpdateImages_NamesAndResizes(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	id := uuid.New()

	existing := &entity.Tour{ID: id}
	validTourInput().Apply(existing)

	prefix := "tour-" + id.String() + "-1700000000000-"
	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.images.EXPECT().SaveResized(mock.Anything, service.ImageKindTour, prefix+"cover.jpeg", 2000, 1333).Return(nil)
	fx.images.EXPECT().SaveResized(mock.Anything, service.ImageKindTour, prefix+"1.jpeg", 2000, 1333).Return(nil)
	fx.images.EXPECT().SaveResized(mock.Anything, service.ImageKindTour, prefix+"2.jpeg", 2000, 1333).Return(nil)
	fx.tourRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(tour *entity.Tour) bool {
			return tour.ImageCover == prefix+"cover.jpeg" && len(tour.Images) == 2 && tour.Images[1] == prefix+"2.jpeg"
		})).
		Return(nil)

	_, err := fx.service.UpdateImages(ctx, id, usecase.TourImages{
		Cover:  strings.NewReader("cover"),
		Images: []io.Reader{strings.NewReader("a"), strings.NewReader("b")},
	}, nil)

	require.NoError(t, err)
}

func TestTourService_UpdateImages_RejectsNonImage(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(&entity.Tour{ID: id}, nil)
	fx.images.EXPECT().
		SaveResized(mock.Anything, service.ImageKindTour, mock.Anything, 2000, 1333).
		Return(errors.WithStack(domainerrors.ErrNotAnImage))

	_, err := fx.service.UpdateImages(ctx, id, usecase.TourImages{Cover: strings.NewReader("text")}, nil)

	assert.ErrorIs(t, err, domainerrors.ErrNotAnImage)
}
