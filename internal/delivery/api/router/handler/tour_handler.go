package handler

import (
	"net/http"
	"strconv"
	"strings"

	"natours/internal/delivery/api/response"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxTourImages = 3

// TourHandlerParams holds dependencies for TourHandler, injected by Fx.
type TourHandlerParams struct {
	fx.In

	TourUC usecase.TourUsecase
}

// TourHandler serves /api/v1/tours.
type TourHandler struct {
	tourUC usecase.TourUsecase
	tours  resource[entity.Tour, usecase.TourInput, usecase.TourInput]
}

// NewTourHandler is the constructor for TourHandler
func NewTourHandler(params TourHandlerParams) *TourHandler {
	return &TourHandler{
		tourUC: params.TourUC,
		tours:  newResource[entity.Tour, usecase.TourInput, usecase.TourInput](params.TourUC),
	}
}

// AliasTopTours presets the query of the five best cheap tours.
func (h *TourHandler) AliasTopTours(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := c.QueryParams()
		q.Set("limit", "5")
		q.Set("sort", "price,-ratingsAverage")
		q.Set("fields", "name,price,ratingsAverage,summary,difficulty")

		return next(c)
	}
}

func (h *TourHandler) GetAllTours(c echo.Context) error { return h.tours.getAll()(c) }

func (h *TourHandler) GetTour(c echo.Context) error { return h.tours.getOne()(c) }

func (h *TourHandler) CreateTour(c echo.Context) error { return h.tours.createOne()(c) }

func (h *TourHandler) DeleteTour(c echo.Context) error { return h.tours.deleteOne()(c) }

// UpdateTour patches a tour. Multipart requests may carry imageCover and up to three images.
func (h *TourHandler) UpdateTour(c echo.Context) error {
	if !isMultipart(c) {
		return h.tours.updateOne()(c)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	form, err := parseMultipart(c)
	if err != nil {
		return err
	}

	covers, coverClosers, err := openUploads(form, "imageCover", 1)
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeAll(coverClosers)
	images, imageClosers, err := openUploads(form, "images", maxTourImages)
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeAll(imageClosers)

	uploads := usecase.TourImages{Images: images}
	if len(covers) > 0 {
		uploads.Cover = covers[0]
	}
	patch := &usecase.TourInput{
		Name:        formValue(c, "name"),
		Summary:     formValue(c, "summary"),
		Description: formValue(c, "description"),
		Difficulty:  formValue(c, "difficulty"),
	}

	tour, err := h.tourUC.UpdateImages(c.Request().Context(), id, uploads, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, http.StatusOK, tour)
}

// GetTourStats groups highly rated tours by difficulty.
func (h *TourHandler) GetTourStats(c echo.Context) error {
	stats, err := h.tourUC.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, map[string]any{"stats": stats})
}

// GetMonthlyPlan counts tour departures per month of a year.
func (h *TourHandler) GetMonthlyPlan(c echo.Context) error {
	raw := c.Param("year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return errors.WithStack(domainerrors.NewCastError("year", raw))
	}

	plan, err := h.tourUC.MonthlyPlan(c.Request().Context(), year)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, map[string]any{"plan": plan})
}

// GetToursWithin handles /tours-within/:distance/center/:latlng/unit/:unit.
func (h *TourHandler) GetToursWithin(c echo.Context) error {
	raw := c.Param("distance")
	distance, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.WithStack(domainerrors.NewCastError("distance", raw))
	}
	lat, lng, err := parseLatLng(c.Param("latlng"))
	if err != nil {
		return err
	}

	tours, err := h.tourUC.ToursWithin(c.Request().Context(), usecase.ToursWithinInput{
		Distance: distance,
		Lat:      lat,
		Lng:      lng,
		Unit:     entity.ParseDistanceUnit(c.Param("unit")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Documents(c, tours, len(tours))
}

// GetDistances handles /distances/:latlng/unit/:unit.
func (h *TourHandler) GetDistances(c echo.Context) error {
	lat, lng, err := parseLatLng(c.Param("latlng"))
	if err != nil {
		return err
	}

	distances, err := h.tourUC.Distances(c.Request().Context(), usecase.DistancesInput{
		Lat:  lat,
		Lng:  lng,
		Unit: entity.ParseDistanceUnit(c.Param("unit")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, http.StatusOK, distances)
}

// SearchTours matches ?search= against name, summary and description.
func (h *TourHandler) SearchTours(c echo.Context) error {
	tours, err := h.tourUC.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	// Same default projection as the list endpoints.
	projected, err := query.Project(query.New(nil).LimitFields().Projection, tours)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Documents(c, projected, len(projected))
}

// parseLatLng reads "lat,lng".
func parseLatLng(raw string) (lat, lng float64, err error) {
	latRaw, lngRaw, ok := strings.Cut(raw, ",")
	if !ok {
		return 0, 0, errors.WithStack(domainerrors.ErrInvalidLatLng)
	}
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, errors.WithStack(domainerrors.ErrInvalidLatLng)
	}

	return lat, lng, nil
}
