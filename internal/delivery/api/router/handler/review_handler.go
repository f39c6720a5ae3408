package handler

import (
	"natours/internal/domain/entity"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler serves /api/v1/reviews and /api/v1/tours/:tourId/reviews.
type ReviewHandler struct {
	reviews resource[entity.Review, usecase.ReviewInput, usecase.ReviewInput]
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviews: newResource[entity.Review, usecase.ReviewInput, usecase.ReviewInput](params.ReviewUC).
			nestedUnder("tourId", "tour"),
	}
}

func (h *ReviewHandler) GetAllReviews(c echo.Context) error { return h.reviews.getAll()(c) }

func (h *ReviewHandler) GetReview(c echo.Context) error { return h.reviews.getOne()(c) }

// CreateReview takes the tour from the path and the author from the session unless the body names them.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	return h.reviews.createOne(setTourUserIDs)(c)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error { return h.reviews.updateOne()(c) }

func (h *ReviewHandler) DeleteReview(c echo.Context) error { return h.reviews.deleteOne()(c) }

func setTourUserIDs(c echo.Context, input *usecase.ReviewInput) error {
	if input.Tour == nil && c.Param("tourId") != "" {
		tourID, err := pathID(c, "tourId")
		if err != nil {
			return err
		}
		input.Tour = &tourID
	}
	if input.User == nil {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		input.User = &user.ID
	}

	return nil
}
