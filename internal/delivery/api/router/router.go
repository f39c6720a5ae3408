// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"natours/config"
	"natours/internal/delivery/api/middleware"
	"natours/internal/delivery/api/router/handler"
	"natours/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TourHandler    *handler.TourHandler
	ReviewHandler  *handler.ReviewHandler
	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	BookingHandler *handler.BookingHandler
	ViewHandler    *handler.ViewHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	tourHandler    *handler.TourHandler
	reviewHandler  *handler.ReviewHandler
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	bookingHandler *handler.BookingHandler
	viewHandler    *handler.ViewHandler
	auth           *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tourHandler:    params.TourHandler,
		reviewHandler:  params.ReviewHandler,
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		bookingHandler: params.BookingHandler,
		viewHandler:    params.ViewHandler,
		auth:           params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Static assets first so that the page routes below take precedence on "/".
	e.Static("/", r.config.Storage.PublicDir)

	e.GET("/health", handler.HealthCheck)

	// The payment provider signs the raw body, so this route stays outside /api.
	e.POST("/webhook-checkout", r.bookingHandler.WebhookCheckout)

	r.registerViews(e)

	apiV1 := e.Group("/api/v1")
	r.registerTours(apiV1.Group("/tours"))
	r.registerReviews(apiV1.Group("/reviews"))
	r.registerUsers(apiV1.Group("/users"))
	r.registerBookings(apiV1.Group("/bookings"))
}

func (r *router) registerViews(e *echo.Echo) {
	protect, isLoggedIn := r.auth.Protect, r.auth.IsLoggedIn
	v := r.viewHandler

	e.GET("/", v.Overview, isLoggedIn)
	e.GET("/tour/:slug", v.Tour, isLoggedIn)
	e.GET("/login", v.Login, isLoggedIn)
	e.GET("/signup", v.Signup, isLoggedIn)
	e.GET("/confirm/:token", v.Confirm)
	e.GET("/me", v.Account, protect)
	e.GET("/my-tours", v.MyTours, protect)
	e.GET("/my-reviews", v.MyReviews, protect)
	e.POST("/submit-user-data", v.SubmitUserData, protect)
}

func (r *router) registerTours(g *echo.Group) {
	protect := r.auth.Protect
	managers := r.auth.RestrictTo(entity.TourManagers...)
	t := r.tourHandler

	g.GET("/top-5-cheap", t.GetAllTours, t.AliasTopTours)
	g.GET("/tour-stats", t.GetTourStats)
	g.GET("/monthly-plan/:year", t.GetMonthlyPlan, protect, r.auth.RestrictTo(entity.Staff...))
	g.GET("/tours-within/:distance/center/:latlng/unit/:unit", t.GetToursWithin)
	g.GET("/distances/:latlng/unit/:unit", t.GetDistances)
	g.GET("/search", t.SearchTours)

	g.GET("", t.GetAllTours)
	g.POST("", t.CreateTour, protect, managers)
	g.GET("/:id", t.GetTour)
	g.PATCH("/:id", t.UpdateTour, protect, managers)
	g.DELETE("/:id", t.DeleteTour, protect, managers)

	g.GET("/:tourId/reviews", r.reviewHandler.GetAllReviews, protect)
	g.POST("/:tourId/reviews", r.reviewHandler.CreateReview, protect, r.auth.RestrictTo(entity.RoleUser))
}

func (r *router) registerReviews(g *echo.Group) {
	protect := r.auth.Protect
	authors := r.auth.RestrictTo(entity.ReviewAuthors...)
	h := r.reviewHandler

	g.GET("", h.GetAllReviews, protect)
	g.POST("", h.CreateReview, protect, r.auth.RestrictTo(entity.RoleUser))
	g.GET("/:id", h.GetReview, protect)
	g.PATCH("/:id", h.UpdateReview, protect, authors)
	g.DELETE("/:id", h.DeleteReview, protect, authors)
}

func (r *router) registerUsers(g *echo.Group) {
	protect := r.auth.Protect
	admin := r.auth.RestrictTo(entity.RoleAdmin)
	a, u := r.authHandler, r.userHandler

	g.POST("/signup", a.Signup)
	g.GET("/confirm/:token", a.Confirm)
	g.POST("/login", a.Login)
	g.GET("/logout", a.Logout)
	g.POST("/forgotPassword", a.ForgotPassword)
	g.PATCH("/resetPassword/:token", a.ResetPassword)

	g.PATCH("/updateMyPassword", a.UpdatePassword, protect)
	g.GET("/me", u.GetMe, protect)
	g.PATCH("/updateMe", u.UpdateMe, protect)
	g.DELETE("/deleteMe", u.DeleteMe, protect)

	g.GET("", u.GetAllUsers, protect, admin)
	g.POST("", u.CreateUser, protect, admin)
	g.GET("/:id", u.GetUser, protect, admin)
	g.PATCH("/:id", u.UpdateUser, protect, admin)
	g.DELETE("/:id", u.DeleteUser, protect, admin)
}

func (r *router) registerBookings(g *echo.Group) {
	protect := r.auth.Protect
	managers := r.auth.RestrictTo(entity.TourManagers...)
	b := r.bookingHandler

	g.GET("/checkout-session/:tourId", b.GetCheckoutSession, protect)
	g.GET("/:id/ticket", b.GetTicket, protect)
	g.POST("/verify-ticket", b.VerifyTicket, protect, r.auth.RestrictTo(entity.Staff...))

	g.GET("", b.GetAllBookings, protect, managers)
	g.POST("", b.CreateBooking, protect, managers)
	g.GET("/:id", b.GetBooking, protect, managers)
	g.PATCH("/:id", b.UpdateBooking, protect, managers)
	g.DELETE("/:id", b.DeleteBooking, protect, managers)
}
