package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"natours/config"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/domain/validation"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	checkoutSuccessPath = "/my-tours?alert=booking"
	tourPagePath        = "/tour/"
	tourImagePath       = "/img/tours/"
	ticketPathFormat    = "/api/v1/bookings/%s/ticket"
)

type bookingService struct {
	txManager   repository.TransactionManager
	mailer      service.Mailer
	bookingRepo repository.BookingRepository
	tourRepo    repository.TourRepository
	userRepo    repository.UserRepository
	payments    service.PaymentGateway
	publisher   service.EventPublisher
	tickets     service.QRCodeService
	baseURL     string
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BookingRepo repository.BookingRepository
	TourRepo    repository.TourRepository
	UserRepo    repository.UserRepository
	Payments    service.PaymentGateway
	Publisher   service.EventPublisher
	Tickets     service.QRCodeService
	Mailer      service.Mailer
	Config      *config.Config
	Logger      *slog.Logger
}

func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		bookingRepo: params.BookingRepo,
		tourRepo:    params.TourRepo,
		userRepo:    params.UserRepo,
		payments:    params.Payments,
		publisher:   params.Publisher,
		tickets:     params.Tickets,
		mailer:      params.Mailer,
		baseURL:     params.Config.HTTP.BaseURL,
		logger:      params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *bookingService) Create(ctx context.Context, input *usecase.BookingInput) (*entity.Booking, error) {
	booking := &entity.Booking{Paid: true}
	input.Apply(booking)
	if err := validation.Struct(booking); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	return booking, nil
}

func (srv *bookingService) Get(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to find booking")
	}

	return booking, nil
}

func (srv *bookingService) List(ctx context.Context, features *query.Features) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.List(ctx, features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

func (srv *bookingService) Update(ctx context.Context, id uuid.UUID, patch *usecase.BookingInput) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to find booking")
	}

	patch.Apply(booking)
	if err := validation.Struct(booking); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := srv.bookingRepo.Update(ctx, booking); err != nil {
		return nil, lookupError(err, id, "failed to update booking")
	}

	return booking, nil
}

func (srv *bookingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.bookingRepo.Delete(ctx, id); err != nil {
		return lookupError(err, id, "failed to delete booking")
	}

	return nil
}

func (srv *bookingService) CreateCheckoutSession(ctx context.Context, tourID uuid.UUID, user *entity.User) (*entity.CheckoutSession, error) {
	tour, err := srv.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, lookupError(err, tourID, "failed to find tour")
	}

	session, err := srv.payments.CreateCheckoutSession(ctx, service.CheckoutRequest{
		Tour:          tour,
		CustomerEmail: user.Email,
		SuccessURL:    srv.baseURL + checkoutSuccessPath,
		CancelURL:     srv.baseURL + tourPagePath + tour.Slug,
		ImageURL:      srv.baseURL + tourImagePath + tour.ImageCover,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session",
			slog.String("tourID", tourID.String()),
			slog.String("userID", user.ID.String()),
			slog.Any("error", err),
		)

		return nil, errors.WithStack(domainerrors.ErrCheckoutFailed)
	}

	return session, nil
}

// HandleCheckoutWebhook turns a completed checkout into a paid booking and announces it.
func (srv *bookingService) HandleCheckoutWebhook(ctx context.Context, payload []byte, signature string) error {
	completion, err := srv.payments.ParseCompletedCheckout(payload, signature)
	if err != nil {
		return errors.Wrap(err, "failed to verify checkout webhook")
	}
	if completion == nil {
		return nil
	}

	tourID, err := uuid.Parse(completion.TourID)
	if err != nil {
		return errors.WithStack(domainerrors.NewCastError("tour", completion.TourID))
	}

	var booking *entity.Booking
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByEmail(ctx, completion.CustomerEmail)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return errors.WithStack(domainerrors.ErrNoUserWithEmail)
			}

			return errors.Wrap(err, "failed to find checkout customer")
		}

		booking = &entity.Booking{
			TourID: tourID,
			UserID: user.ID,
			Price:  float64(completion.AmountTotal) / 100,
			Paid:   true,
		}
		if err := validation.Struct(booking); err != nil {
			return errors.WithStack(err)
		}

		return repoFactory.NewBookingRepository().Create(ctx, booking)
	})
	if err != nil {
		return errors.Wrap(err, "failed to book checkout")
	}
	srv.log(ctx).Info("Booking created from checkout",
		slog.String("bookingID", booking.ID.String()),
		slog.String("tourID", tourID.String()),
	)

	srv.publishBookingCreated(ctx, booking)

	return nil
}

// publishBookingCreated is best effort: the booking is already stored.
func (srv *bookingService) publishBookingCreated(ctx context.Context, booking *entity.Booking) {
	event := &entity.BookingEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		BookingID: booking.ID,
		TourID:    booking.TourID,
		UserID:    booking.UserID,
		Price:     booking.Price,
		CreatedAt: booking.CreatedAt,
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	if err := srv.publisher.PublishBookingCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish booking event",
			slog.String("bookingID", booking.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *bookingService) MyTours(ctx context.Context, userID uuid.UUID) ([]*entity.Tour, error) {
	bookings, err := srv.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings of user")
	}

	ids := make([]uuid.UUID, 0, len(bookings))
	for _, booking := range bookings {
		ids = append(ids, booking.TourID)
	}

	tours, err := srv.tourRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load booked tours")
	}

	return tours, nil
}

func (srv *bookingService) Ticket(ctx context.Context, bookingID uuid.UUID, user *entity.User) ([]byte, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, lookupError(err, bookingID, "failed to find booking")
	}
	if booking.UserID != user.ID && user.Role != entity.RoleAdmin {
		return nil, errors.WithStack(domainerrors.ErrBookingNotOwned)
	}

	png, err := srv.tickets.GenerateBookingTicket(booking.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render booking ticket")
	}

	return png, nil
}

func (srv *bookingService) VerifyTicket(ctx context.Context, data string) (*entity.Booking, error) {
	bookingID, err := srv.tickets.ParseBookingTicket(data)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidTicket.WithDetails(err.Error()))
	}

	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidTicket)
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}
	if !booking.Paid {
		return nil, errors.WithStack(domainerrors.ErrInvalidTicket.WithDetails("booking is not paid"))
	}

	return booking, nil
}

// NotifyBooked emails the confirmation of a booking announced by an event.
// A booking deleted in the meantime fails with a not-found error, which is not worth retrying.
func (srv *bookingService) NotifyBooked(ctx context.Context, event *entity.BookingEvent) error {
	booking, err := srv.bookingRepo.FindByID(ctx, event.BookingID)
	if err != nil {
		return lookupError(err, event.BookingID, "failed to find booked booking")
	}
	if booking.User == nil || booking.Tour == nil {
		return errors.Errorf("booking %s is missing its user or tour", booking.ID)
	}

	ticketURL := srv.baseURL + fmt.Sprintf(ticketPathFormat, booking.ID)
	if err := srv.mailer.SendBookingConfirmation(ctx, booking.User, booking.Tour, ticketURL); err != nil {
		return errors.Wrap(err, "failed to send booking confirmation")
	}
	srv.log(ctx).Info("Booking confirmation sent", slog.String("bookingID", booking.ID.String()))

	return nil
}
