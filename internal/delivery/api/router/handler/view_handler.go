package handler

import (
	"natours/config"
	"natours/internal/delivery/api/views"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	"natours/internal/domain/query"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var alerts = map[string]string{
	"booking": "Your booking was successful! Please check your email for a confirmation. If your booking doesn't show up here immediately, please come back later.",
}

// ViewHandlerParams holds dependencies for ViewHandler, injected by Fx.
type ViewHandlerParams struct {
	fx.In

	TourUC    usecase.TourUsecase
	ReviewUC  usecase.ReviewUsecase
	BookingUC usecase.BookingUsecase
	UserUC    usecase.UserUsecase
	AuthUC    usecase.AuthUsecase
	Config    *config.Config
}

// ViewHandler renders the website pages.
type ViewHandler struct {
	tourUC    usecase.TourUsecase
	reviewUC  usecase.ReviewUsecase
	bookingUC usecase.BookingUsecase
	userUC    usecase.UserUsecase
	authUC    usecase.AuthUsecase
	cookies   sessionCookies
}

// NewViewHandler is the constructor for ViewHandler
func NewViewHandler(params ViewHandlerParams) *ViewHandler {
	return &ViewHandler{
		tourUC:    params.TourUC,
		reviewUC:  params.ReviewUC,
		bookingUC: params.BookingUC,
		userUC:    params.UserUC,
		authUC:    params.AuthUC,
		cookies:   newSessionCookies(params.Config),
	}
}

func page(c echo.Context, title string) views.Page {
	user, _ := deliverycontext.GetUser(c)

	return views.Page{
		Title: title,
		User:  user,
		Alert: alerts[c.QueryParam("alert")],
	}
}

// Overview lists all tours, or the matches of ?search=.
func (h *ViewHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	var err error
	var tours []*entity.Tour
	if term := c.QueryParam("search"); term != "" {
		tours, err = h.tourUC.Search(ctx, term)
	} else {
		tours, err = h.tourUC.List(ctx, query.New(nil).Build())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return views.OK(c, views.Overview(page(c, "All Tours"), tours))
}

// Tour renders the page of one tour by slug.
func (h *ViewHandler) Tour(c echo.Context) error {
	tour, err := h.tourUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return views.OK(c, views.TourDetail(page(c, tour.Name+" Tour"), tour))
}

func (h *ViewHandler) Login(c echo.Context) error {
	return views.OK(c, views.Login(page(c, "Log into your account")))
}

func (h *ViewHandler) Signup(c echo.Context) error {
	return views.OK(c, views.Signup(page(c, "Create your account")))
}

// Confirm confirms the account of an emailed link and starts a session.
func (h *ViewHandler) Confirm(c echo.Context) error {
	out, err := h.authUC.Confirm(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}
	h.cookies.set(c, out.Token)
	deliverycontext.SetUser(c, out.User)

	return views.OK(c, views.Confirmed(page(c, "Account confirmed")))
}

func (h *ViewHandler) Account(c echo.Context) error {
	return views.OK(c, views.Account(page(c, "Your account")))
}

// MyTours lists the tours the logged-in user booked.
func (h *ViewHandler) MyTours(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tours, err := h.bookingUC.MyTours(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return views.OK(c, views.Overview(page(c, "My Tours"), tours))
}

// MyReviews lists the reviews of the logged-in user.
func (h *ViewHandler) MyReviews(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return views.OK(c, views.MyReviews(page(c, "My Reviews"), reviews))
}

// SubmitUserData saves the account form and renders the updated account page.
func (h *ViewHandler) SubmitUserData(c echo.Context) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	input, closers, err := updateMeInput(c)
	if err != nil {
		return err
	}
	defer closeAll(closers)

	user, err := h.userUC.UpdateMe(c.Request().Context(), me.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}
	deliverycontext.SetUser(c, user)

	return views.OK(c, views.Account(page(c, "Your account")))
}
