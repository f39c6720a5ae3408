package handler

import (
	"io"
	"net/http"

	"natours/internal/delivery/api/response"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	// maxWebhookBytes matches the payload ceiling of the payment provider.
	maxWebhookBytes = 64 << 10
	mimeImagePNG    = "image/png"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
}

// BookingHandler serves checkout, the payment webhook, tickets and booking administration.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	bookings  resource[entity.Booking, usecase.BookingInput, usecase.BookingInput]
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		bookings:  newResource[entity.Booking, usecase.BookingInput, usecase.BookingInput](params.BookingUC),
	}
}

type verifyTicketRequest struct {
	Data string `json:"data" validate:"required" msg:"required=Please provide the scanned ticket data"`
}

func (h *BookingHandler) GetAllBookings(c echo.Context) error { return h.bookings.getAll()(c) }

func (h *BookingHandler) GetBooking(c echo.Context) error { return h.bookings.getOne()(c) }

func (h *BookingHandler) CreateBooking(c echo.Context) error { return h.bookings.createOne()(c) }

func (h *BookingHandler) UpdateBooking(c echo.Context) error { return h.bookings.updateOne()(c) }

func (h *BookingHandler) DeleteBooking(c echo.Context) error { return h.bookings.deleteOne()(c) }

// GetCheckoutSession starts a payment for the tour in the path.
func (h *BookingHandler) GetCheckoutSession(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	tourID, err := pathID(c, "tourId")
	if err != nil {
		return err
	}

	session, err := h.bookingUC.CreateCheckoutSession(c.Request().Context(), tourID, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":  response.StatusSuccess,
		"session": session,
	})
}

// WebhookCheckout receives payment events. The signature covers the raw body.
func (h *BookingHandler) WebhookCheckout(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBytes))
	if err != nil {
		return errors.WithStack(domainerrors.ErrWebhookSignature.WithDetails(err.Error()))
	}

	if err := h.bookingUC.HandleCheckoutWebhook(c.Request().Context(), payload, c.Request().Header.Get(stripeSignatureHeader)); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

// GetTicket returns the QR ticket of a booking as PNG.
func (h *BookingHandler) GetTicket(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.bookingUC.Ticket(c.Request().Context(), id, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, mimeImagePNG, png)
}

// VerifyTicket resolves scanned ticket data to its booking.
func (h *BookingHandler) VerifyTicket(c echo.Context) error {
	var req verifyTicketRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	booking, err := h.bookingUC.VerifyTicket(c.Request().Context(), req.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, http.StatusOK, booking)
}
