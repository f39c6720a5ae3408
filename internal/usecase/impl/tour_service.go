package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/domain/validation"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	// statsMinRating limits the tour statistics to well rated tours.
	statsMinRating = 4.5

	tourImageWidth  = 2000
	tourImageHeight = 1333
)

// searchFields are matched by the free-text tour search.
var searchFields = []string{"name", "summary", "description"}

type tourService struct {
	tourRepo   repository.TourRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	images     service.ImageProcessor
	logger     *slog.Logger
	now        func() time.Time
}

// TourServiceParams holds dependencies for TourService, injected by Fx.
type TourServiceParams struct {
	fx.In

	TourRepo   repository.TourRepository
	ReviewRepo repository.ReviewRepository
	UserRepo   repository.UserRepository
	Images     service.ImageProcessor
	Logger     *slog.Logger
}

func NewTourService(params TourServiceParams) usecase.TourUsecase {
	return &tourService{
		tourRepo:   params.TourRepo,
		reviewRepo: params.ReviewRepo,
		userRepo:   params.UserRepo,
		images:     params.Images,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *tourService) Create(ctx context.Context, input *usecase.TourInput) (*entity.Tour, error) {
	tour := &entity.Tour{}
	input.Apply(tour)
	if err := srv.keepActiveGuides(ctx, tour, input); err != nil {
		return nil, err
	}
	if err := prepareTour(tour); err != nil {
		return nil, err
	}

	if err := srv.tourRepo.Create(ctx, tour); err != nil {
		return nil, errors.Wrap(err, "failed to create tour")
	}
	requestLogger(ctx, srv.logger).Info("Tour created", slog.String("tourID", tour.ID.String()), slog.String("slug", tour.Slug))

	return tour, nil
}

// Get loads a tour with its guides and reviews.
func (srv *tourService) Get(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	tour, err := srv.tourRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to find tour")
	}
	if err := srv.attachReviews(ctx, tour); err != nil {
		return nil, err
	}

	return tour, nil
}

func (srv *tourService) GetBySlug(ctx context.Context, tourSlug string) (*entity.Tour, error) {
	tour, err := srv.tourRepo.FindBySlug(ctx, tourSlug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTourNotFoundBySlug)
		}

		return nil, errors.Wrap(err, "failed to find tour by slug")
	}
	if err := srv.attachReviews(ctx, tour); err != nil {
		return nil, err
	}

	return tour, nil
}

func (srv *tourService) attachReviews(ctx context.Context, tour *entity.Tour) error {
	reviews, err := srv.reviewRepo.ListByTour(ctx, tour.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load tour reviews")
	}
	tour.Reviews = reviews

	return nil
}

func (srv *tourService) List(ctx context.Context, features *query.Features) ([]*entity.Tour, error) {
	tours, err := srv.tourRepo.List(ctx, features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tours")
	}

	return tours, nil
}

func (srv *tourService) Update(ctx context.Context, id uuid.UUID, patch *usecase.TourInput) (*entity.Tour, error) {
	tour, err := srv.tourRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to find tour")
	}

	patch.Apply(tour)
	if err := srv.keepActiveGuides(ctx, tour, patch); err != nil {
		return nil, err
	}
	if err := prepareTour(tour); err != nil {
		return nil, err
	}

	if err := srv.tourRepo.Update(ctx, tour); err != nil {
		return nil, lookupError(err, id, "failed to update tour")
	}

	// Reload so that changed guides come back populated.
	updated, err := srv.tourRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to reload tour")
	}

	return updated, nil
}

func (srv *tourService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.tourRepo.Delete(ctx, id); err != nil {
		return lookupError(err, id, "failed to delete tour")
	}
	requestLogger(ctx, srv.logger).Info("Tour deleted", slog.String("tourID", id.String()))

	return nil
}

// keepActiveGuides drops guide ids from input that are unknown, inactive or
// not guides or lead guides. Guides already on the tour are left alone.
func (srv *tourService) keepActiveGuides(ctx context.Context, tour *entity.Tour, input *usecase.TourInput) error {
	if input.Guides == nil {
		return nil
	}

	guides := make([]uuid.UUID, 0, len(tour.GuideIDs))
	for _, id := range tour.GuideIDs {
		if slices.Contains(guides, id) {
			continue
		}
		user, err := srv.userRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up tour guide")
		}
		if !user.Role.IsGuide() {
			requestLogger(ctx, srv.logger).Debug("Dropping non-guide from tour", slog.String("userID", id.String()))

			continue
		}
		guides = append(guides, id)
	}
	tour.GuideIDs = guides

	return nil
}

// prepareTour derives the slug and computed fields, then validates.
func prepareTour(tour *entity.Tour) error {
	tour.Normalize()
	tour.Slug = slug.Make(tour.Name)

	if err := validation.Struct(tour); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Search matches term against name, summary and description. "+" stands for a space.
func (srv *tourService) Search(ctx context.Context, term string) ([]*entity.Tour, error) {
	term = strings.TrimSpace(strings.ReplaceAll(term, "+", " "))
	features := query.New(nil).Match(term, searchFields...)

	tours, err := srv.tourRepo.List(ctx, features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search tours")
	}

	return tours, nil
}

func (srv *tourService) Stats(ctx context.Context) ([]*entity.TourStats, error) {
	stats, err := srv.tourRepo.Stats(ctx, statsMinRating)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute tour stats")
	}

	return stats, nil
}

func (srv *tourService) MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error) {
	plan, err := srv.tourRepo.MonthlyPlan(ctx, year)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compute monthly plan of %d", year)
	}

	return plan, nil
}

// ToursWithin finds tours whose start lies inside a spherical cap around the center.
// The repository narrows candidates with a bounding box; the exact distance decides.
func (srv *tourService) ToursWithin(ctx context.Context, input usecase.ToursWithinInput) ([]*entity.Tour, error) {
	if err := checkLatLng(input.Lat, input.Lng); err != nil {
		return nil, err
	}

	center := orb.Point{input.Lng, input.Lat}
	radius := input.Unit.Radians(input.Distance) * orb.EarthRadius

	candidates, err := srv.tourRepo.FindStartingWithin(ctx, geo.NewBoundAroundPoint(center, radius))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tours within radius")
	}

	tours := make([]*entity.Tour, 0, len(candidates))
	for _, tour := range candidates {
		if tour.StartLocation == nil {
			continue
		}
		if geo.Distance(center, tour.StartLocation.Point()) <= radius {
			tours = append(tours, tour)
		}
	}

	return tours, nil
}

// Distances measures from the given point to the start of every tour, nearest first.
func (srv *tourService) Distances(ctx context.Context, input usecase.DistancesInput) ([]*entity.TourDistance, error) {
	if err := checkLatLng(input.Lat, input.Lng); err != nil {
		return nil, err
	}

	tours, err := srv.tourRepo.ListStartLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tour start locations")
	}

	center := orb.Point{input.Lng, input.Lat}
	distances := make([]*entity.TourDistance, 0, len(tours))
	for _, tour := range tours {
		if tour.StartLocation == nil {
			continue
		}
		meters := geo.Distance(center, tour.StartLocation.Point())
		distances = append(distances, &entity.TourDistance{
			ID:       tour.ID,
			Name:     tour.Name,
			Distance: input.Unit.FromMeters(meters),
		})
	}
	sort.SliceStable(distances, func(i, j int) bool {
		return distances[i].Distance < distances[j].Distance
	})

	return distances, nil
}

func checkLatLng(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return errors.WithStack(domainerrors.ErrInvalidLatLng)
	}

	return nil
}

// UpdateImages resizes the uploads to 2000x1333 JPEG, then updates the tour.
func (srv *tourService) UpdateImages(ctx context.Context, id uuid.UUID, images usecase.TourImages, patch *usecase.TourInput) (*entity.Tour, error) {
	if patch == nil {
		patch = &usecase.TourInput{}
	}
	if _, err := srv.tourRepo.FindByID(ctx, id); err != nil {
		return nil, lookupError(err, id, "failed to find tour")
	}

	stamp := srv.now().UnixMilli()

	if images.Cover != nil {
		cover := fmt.Sprintf("tour-%s-%d-cover.jpeg", id, stamp)
		if err := srv.images.SaveResized(images.Cover, service.ImageKindTour, cover, tourImageWidth, tourImageHeight); err != nil {
			return nil, errors.Wrap(err, "failed to save tour cover")
		}
		patch.ImageCover = &cover
	}

	if len(images.Images) > 0 {
		names := make([]string, len(images.Images))
		var group errgroup.Group
		for i, src := range images.Images {
			names[i] = fmt.Sprintf("tour-%s-%d-%d.jpeg", id, stamp, i+1)
			group.Go(func() error {
				return srv.saveTourImage(src, names[i])
			})
		}
		if err := group.Wait(); err != nil {
			return nil, errors.Wrap(err, "failed to save tour images")
		}
		patch.Images = &names
	}

	return srv.Update(ctx, id, patch)
}

func (srv *tourService) saveTourImage(src io.Reader, filename string) error {
	return srv.images.SaveResized(src, service.ImageKindTour, filename, tourImageWidth, tourImageHeight)
}
