package postgres

import (
	"context"
	"slices"
	"time"

	"natours/internal/domain/entity"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxMonthlyPlanRows = 12

var tourColumns = columnSet{
	"id":              {name: "id", kind: kindUUID},
	"name":            {name: "name", kind: kindString},
	"slug":            {name: "slug", kind: kindString},
	"duration":        {name: "duration", kind: kindInt},
	"maxGroupSize":    {name: "max_group_size", kind: kindInt},
	"difficulty":      {name: "difficulty", kind: kindString},
	"ratingsAverage":  {name: "ratings_average", kind: kindNumber},
	"ratingsQuantity": {name: "ratings_quantity", kind: kindInt},
	"price":           {name: "price", kind: kindNumber},
	"priceDiscount":   {name: "price_discount", kind: kindNumber},
	"summary":         {name: "summary", kind: kindString},
	"description":     {name: "description", kind: kindString},
	"imageCover":      {name: "image_cover", kind: kindString},
	"images":          {name: "images", kind: kindString},
	"locations":       {name: "locations", kind: kindString},
	"createdAt":       {name: "created_at", kind: kindTime},
	"version":         {name: "version", kind: kindInt},
}

type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository creates a TourRepository over db.
func NewTourRepository(db *gorm.DB) repository.TourRepository {
	return &tourRepository{db: db}
}

// visibleTours hides secret tours from every read and write.
func visibleTours(db *gorm.DB) *gorm.DB {
	return db.Where("tours.secret_tour = ?", false)
}

func withStartDates(db *gorm.DB) *gorm.DB {
	return db.Preload("StartDates", func(db *gorm.DB) *gorm.DB {
		return db.Order("starts_at")
	})
}

func withGuides(db *gorm.DB) *gorm.DB {
	return db.Preload("Guides", "active = ?", true)
}

func (repo *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := fromTourDomain(tour)
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return translateError(err, "failed to create tour")
		}
		if err := replaceTourChildren(tx, m.ID, tour); err != nil {
			return err
		}

		tour.ID = m.ID
		tour.CreatedAt = m.CreatedAt
		tour.Version = m.Version

		return nil
	})
}

func (repo *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	m, err := findByID[model.TourModel](ctx, repo.db, id, "failed to find tour by id", visibleTours, withStartDates, withGuides)
	if err != nil {
		return nil, err
	}

	return toTourDomain(m), nil
}

func (repo *tourRepository) FindBySlug(ctx context.Context, slug string) (*entity.Tour, error) {
	m, err := findOne[model.TourModel](ctx, repo.db, "failed to find tour by slug", visibleTours, withStartDates, withGuides, func(db *gorm.DB) *gorm.DB {
		return db.Where("slug = ?", slug)
	})
	if err != nil {
		return nil, err
	}

	return toTourDomain(m), nil
}

func (repo *tourRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Tour, error) {
	if len(ids) == 0 {
		return []*entity.Tour{}, nil
	}

	var ms []model.TourModel
	err := repo.db.WithContext(ctx).Scopes(visibleTours, withStartDates).
		Where("id IN ?", ids).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, translateError(err, "failed to find tours by ids")
	}

	return mapAll(ms, toTourDomain), nil
}

func (repo *tourRepository) List(ctx context.Context, features *query.Features) ([]*entity.Tour, error) {
	ms, err := list[model.TourModel](ctx, repo.db, tourColumns, features, "failed to list tours", visibleTours, withStartDates, withGuides)
	if err != nil {
		return nil, err
	}

	return mapAll(ms, toTourDomain), nil
}

func (repo *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := fromTourDomain(tour)
		m.Version = tour.Version + 1
		m.UpdatedAt = time.Now()

		result := tx.Model(&model.TourModel{}).Scopes(visibleTours).
			Where("id = ?", tour.ID).
			Select("*").Omit("id", "created_at", clause.Associations).
			Updates(m)
		if result.Error != nil {
			return translateError(result.Error, "failed to update tour")
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		if err := replaceTourChildren(tx, tour.ID, tour); err != nil {
			return err
		}

		tour.Version = m.Version

		return nil
	})
}

// replaceTourChildren rewrites the start dates and guide links of a tour.
func replaceTourChildren(tx *gorm.DB, tourID uuid.UUID, tour *entity.Tour) error {
	if err := tx.Where("tour_id = ?", tourID).Delete(&model.TourStartDateModel{}).Error; err != nil {
		return translateError(err, "failed to clear tour start dates")
	}
	if len(tour.StartDates) > 0 {
		dates := make([]model.TourStartDateModel, 0, len(tour.StartDates))
		for _, d := range uniqueTimes(tour.StartDates) {
			dates = append(dates, model.TourStartDateModel{TourID: tourID, StartsAt: d})
		}
		if err := tx.Create(&dates).Error; err != nil {
			return translateError(err, "failed to save tour start dates")
		}
	}

	if err := tx.Where("tour_id = ?", tourID).Delete(&model.TourGuideModel{}).Error; err != nil {
		return translateError(err, "failed to clear tour guides")
	}
	if len(tour.GuideIDs) > 0 {
		guides := make([]model.TourGuideModel, 0, len(tour.GuideIDs))
		for _, id := range uniqueIDs(tour.GuideIDs) {
			guides = append(guides, model.TourGuideModel{TourID: tourID, UserID: id})
		}
		if err := tx.Create(&guides).Error; err != nil {
			return translateError(err, "failed to save tour guides")
		}
	}

	return nil
}

func (repo *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.TourModel](ctx, repo.db, id, "failed to delete tour", visibleTours)
}

func (repo *tourRepository) UpdateRatings(ctx context.Context, summary entity.RatingSummary) error {
	var t entity.Tour
	summary.Apply(&t)

	err := repo.db.WithContext(ctx).Model(&model.TourModel{}).
		Where("id = ?", summary.TourID).
		UpdateColumns(map[string]any{
			"ratings_quantity": t.RatingsQuantity,
			"ratings_average":  t.RatingsAverage,
		}).Error

	return translateError(err, "failed to update tour ratings")
}

type tourStatsRow struct {
	Difficulty string
	NumTours   int
	NumRatings int
	AvgRating  float64
	AvgPrice   float64
	MinPrice   float64
	MaxPrice   float64
}

func (repo *tourRepository) Stats(ctx context.Context, minRating float64) ([]*entity.TourStats, error) {
	var rows []tourStatsRow
	err := repo.db.WithContext(ctx).Model(&model.TourModel{}).Scopes(visibleTours).
		Select(`upper(difficulty) AS difficulty,
			count(*) AS num_tours,
			coalesce(sum(ratings_quantity), 0) AS num_ratings,
			avg(ratings_average) AS avg_rating,
			avg(price) AS avg_price,
			min(price) AS min_price,
			max(price) AS max_price`).
		Where("ratings_average >= ?", minRating).
		Group("upper(difficulty)").
		Order("avg_price").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, "failed to aggregate tour stats")
	}

	out := make([]*entity.TourStats, 0, len(rows))
	for _, r := range rows {
		out = append(out, &entity.TourStats{
			Difficulty: r.Difficulty,
			NumTours:   r.NumTours,
			NumRatings: r.NumRatings,
			AvgRating:  entity.RoundRating(r.AvgRating),
			AvgPrice:   r.AvgPrice,
			MinPrice:   r.MinPrice,
			MaxPrice:   r.MaxPrice,
		})
	}

	return out, nil
}

type monthlyPlanRow struct {
	Month         int
	NumTourStarts int
	Tours         datatypes.JSONSlice[string]
}

func (repo *tourRepository) MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var rows []monthlyPlanRow
	err := repo.db.WithContext(ctx).Table("tour_start_dates AS d").
		Joins("JOIN tours ON tours.id = d.tour_id").
		Scopes(visibleTours).
		Select(`EXTRACT(MONTH FROM d.starts_at)::int AS month,
			count(*) AS num_tour_starts,
			json_agg(tours.name ORDER BY tours.name) AS tours`).
		Where("d.starts_at >= ? AND d.starts_at < ?", from, to).
		Group("month").
		Order("num_tour_starts DESC, month").
		Limit(maxMonthlyPlanRows).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, "failed to aggregate monthly plan")
	}

	out := make([]*entity.MonthlyPlan, 0, len(rows))
	for _, r := range rows {
		out = append(out, &entity.MonthlyPlan{
			Month:         r.Month,
			NumTourStarts: r.NumTourStarts,
			Tours:         []string(r.Tours),
		})
	}

	return out, nil
}

func (repo *tourRepository) FindStartingWithin(ctx context.Context, bound orb.Bound) ([]*entity.Tour, error) {
	var ms []model.TourModel
	err := repo.db.WithContext(ctx).Scopes(visibleTours, withStartDates).
		Where("start_lat BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("start_lng BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Find(&ms).Error
	if err != nil {
		return nil, translateError(err, "failed to find tours within bound")
	}

	return mapAll(ms, toTourDomain), nil
}

func (repo *tourRepository) ListStartLocations(ctx context.Context) ([]*entity.Tour, error) {
	var ms []model.TourModel
	err := repo.db.WithContext(ctx).Scopes(visibleTours).
		Select("id", "name", "start_lat", "start_lng", "start_address", "start_description").
		Where("start_lat IS NOT NULL AND start_lng IS NOT NULL").
		Find(&ms).Error
	if err != nil {
		return nil, translateError(err, "failed to list tour start locations")
	}

	return mapAll(ms, toTourDomain), nil
}

// --- Mapper Functions ---

func toTourDomain(data *model.TourModel) *entity.Tour {
	if data == nil {
		return nil
	}

	tour := &entity.Tour{
		ID:              data.ID,
		Name:            data.Name,
		Slug:            data.Slug,
		Duration:        data.Duration,
		DurationWeeks:   float64(data.Duration) / 7,
		MaxGroupSize:    data.MaxGroupSize,
		Difficulty:      entity.Difficulty(data.Difficulty),
		RatingsAverage:  data.RatingsAverage,
		RatingsQuantity: data.RatingsQuantity,
		Price:           data.Price,
		PriceDiscount:   data.PriceDiscount,
		Summary:         data.Summary,
		Description:     data.Description,
		ImageCover:      data.ImageCover,
		Images:          nonNil([]string(data.Images)),
		StartDates:      make([]time.Time, 0, len(data.StartDates)),
		SecretTour:      data.SecretTour,
		Locations:       make([]entity.Location, 0, len(data.Locations)),
		GuideIDs:        make([]uuid.UUID, 0, len(data.Guides)),
		Guides:          make([]*entity.User, 0, len(data.Guides)),
		CreatedAt:       data.CreatedAt,
		Version:         data.Version,
	}

	if data.StartLat != nil && data.StartLng != nil {
		start := entity.NewLocation(*data.StartLat, *data.StartLng)
		start.Address = data.StartAddress
		start.Description = data.StartDescription
		tour.StartLocation = &start
	}
	for _, l := range data.Locations {
		tour.Locations = append(tour.Locations, entity.Location(l))
	}
	for _, d := range data.StartDates {
		tour.StartDates = append(tour.StartDates, d.StartsAt)
	}
	for i := range data.Guides {
		tour.GuideIDs = append(tour.GuideIDs, data.Guides[i].ID)
		tour.Guides = append(tour.Guides, toUserDomain(&data.Guides[i]))
	}

	return tour
}

func fromTourDomain(data *entity.Tour) *model.TourModel {
	if data == nil {
		return nil
	}

	m := &model.TourModel{
		ID:              data.ID,
		Name:            data.Name,
		Slug:            data.Slug,
		Duration:        data.Duration,
		MaxGroupSize:    data.MaxGroupSize,
		Difficulty:      string(data.Difficulty),
		RatingsAverage:  data.RatingsAverage,
		RatingsQuantity: data.RatingsQuantity,
		Price:           data.Price,
		PriceDiscount:   data.PriceDiscount,
		Summary:         data.Summary,
		Description:     data.Description,
		ImageCover:      data.ImageCover,
		Images:          datatypes.JSONSlice[string](nonNil(data.Images)),
		SecretTour:      data.SecretTour,
		Locations:       make(datatypes.JSONSlice[model.LocationModel], 0, len(data.Locations)),
		Version:         data.Version,
	}

	if data.StartLocation != nil {
		lat, lng := data.StartLocation.Lat(), data.StartLocation.Lng()
		m.StartLat = &lat
		m.StartLng = &lng
		m.StartAddress = data.StartLocation.Address
		m.StartDescription = data.StartLocation.Description
	}
	for _, l := range data.Locations {
		m.Locations = append(m.Locations, model.LocationModel(l))
	}

	return m
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func uniqueTimes(ts []time.Time) []time.Time {
	out := make([]time.Time, 0, len(ts))
	for _, t := range ts {
		if !slices.ContainsFunc(out, t.Equal) {
			out = append(out, t)
		}
	}

	return out
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	return out
}
