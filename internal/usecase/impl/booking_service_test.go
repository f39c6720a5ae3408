package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"natours/config"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/errors"
	mockRepo "natours/internal/mocks/repository"
	mockService "natours/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixtures struct {
	service     *bookingService
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	bookingRepo *mockRepo.MockBookingRepository
	tourRepo    *mockRepo.MockTourRepository
	userRepo    *mockRepo.MockUserRepository
	payments    *mockService.MockPaymentGateway
	publisher   *mockService.MockEventPublisher
	tickets     *mockService.MockQRCodeService
	mailer      *mockService.MockMailer
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	fx := bookingServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		bookingRepo: mockRepo.NewMockBookingRepository(t),
		tourRepo:    mockRepo.NewMockTourRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		payments:    mockService.NewMockPaymentGateway(t),
		publisher:   mockService.NewMockEventPublisher(t),
		tickets:     mockService.NewMockQRCodeService(t),
		mailer:      mockService.NewMockMailer(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "https://natours.dev"

	fx.service = NewBookingService(BookingServiceParams{
		TxManager:   fx.txManager,
		BookingRepo: fx.bookingRepo,
		TourRepo:    fx.tourRepo,
		UserRepo:    fx.userRepo,
		Payments:    fx.payments,
		Publisher:   fx.publisher,
		Tickets:     fx.tickets,
		Mailer:      fx.mailer,
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*bookingService)

	return fx
}

// runInTx makes the mocked transaction call its callback with the mocked factory.
func (fx bookingServiceFixtures) runInTx() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func TestBookingService_CreateCheckoutSession_BuildsURLs(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	tour := &entity.Tour{ID: uuid.New(), Slug: "the-park-camper", ImageCover: "tour-5-cover.jpg", Price: 1497}
	user := &entity.User{ID: uuid.New(), Email: "lisa@example.io"}

	fx.tourRepo.EXPECT().FindByID(ctx, tour.ID).Return(tour, nil)
	fx.payments.EXPECT().
		CreateCheckoutSession(ctx, service.CheckoutRequest{
			Tour:          tour,
			CustomerEmail: "lisa@example.io",
			SuccessURL:    "https://natours.dev/my-tours?alert=booking",
			CancelURL:     "https://natours.dev/tour/the-park-camper",
			ImageURL:      "https://natours.dev/img/tours/tour-5-cover.jpg",
		}).
		Return(&entity.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1"}, nil)

	session, err := fx.service.CreateCheckoutSession(ctx, tour.ID, user)

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
}

func TestBookingService_CreateCheckoutSession_GatewayFailure(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	tour := &entity.Tour{ID: uuid.New()}

	fx.tourRepo.EXPECT().FindByID(ctx, tour.ID).Return(tour, nil)
	fx.payments.EXPECT().CreateCheckoutSession(ctx, mock.Anything).Return(nil, errors.New("stripe unavailable"))

	_, err := fx.service.CreateCheckoutSession(ctx, tour.ID, &entity.User{ID: uuid.New()})

	assert.ErrorIs(t, err, domainerrors.ErrCheckoutFailed)
}

func TestBookingService_HandleCheckoutWebhook_CreatesPaidBooking(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	tourID, user := uuid.New(), &entity.User{ID: uuid.New(), Email: "lisa@example.io"}
	bookingID := uuid.New()

	fx.payments.EXPECT().ParseCompletedCheckout([]byte("payload"), "sig").Return(&entity.CheckoutCompletion{
		TourID:        tourID.String(),
		CustomerEmail: "lisa@example.io",
		AmountTotal:   149700,
	}, nil)
	fx.runInTx()
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewBookingRepository().Return(fx.bookingRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, "lisa@example.io").Return(user, nil)
	fx.bookingRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Booking) bool {
			return b.TourID == tourID && b.UserID == user.ID && b.Price == 1497 && b.Paid
		})).
		Run(func(_ context.Context, b *entity.Booking) { b.ID = bookingID }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishBookingCreated(ctx, mock.MatchedBy(func(e *entity.BookingEvent) bool {
			return e.BookingID == bookingID && e.RequestID == "req-42" && e.Price == 1497
		})).
		Return(nil)

	require.NoError(t, fx.service.HandleCheckoutWebhook(ctx, []byte("payload"), "sig"))
}

func TestBookingService_HandleCheckoutWebhook_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	tourID, user := uuid.New(), &entity.User{ID: uuid.New()}

	fx.payments.EXPECT().ParseCompletedCheckout(mock.Anything, mock.Anything).Return(&entity.CheckoutCompletion{
		TourID: tourID.String(), CustomerEmail: "a@b.io", AmountTotal: 50000,
	}, nil)
	fx.runInTx()
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewBookingRepository().Return(fx.bookingRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.io").Return(user, nil)
	fx.bookingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	fx.publisher.EXPECT().PublishBookingCreated(ctx, mock.Anything).Return(errors.New("topic not found"))

	require.NoError(t, fx.service.HandleCheckoutWebhook(ctx, nil, ""))
}

func TestBookingService_HandleCheckoutWebhook_IgnoresOtherEvents(t *testing.T) {
	fx := createTestBookingService(t)

	fx.payments.EXPECT().ParseCompletedCheckout(mock.Anything, mock.Anything).Return(nil, nil)

	require.NoError(t, fx.service.HandleCheckoutWebhook(context.Background(), []byte("{}"), "sig"))
}

func TestBookingService_HandleCheckoutWebhook_BadSignature(t *testing.T) {
	fx := createTestBookingService(t)

	fx.payments.EXPECT().
		ParseCompletedCheckout(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrWebhookSignature))

	err := fx.service.HandleCheckoutWebhook(context.Background(), []byte("{}"), "forged")

	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignature)
}

func TestBookingService_HandleCheckoutWebhook_UnknownCustomer(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.payments.EXPECT().ParseCompletedCheckout(mock.Anything, mock.Anything).Return(&entity.CheckoutCompletion{
		TourID: uuid.NewString(), CustomerEmail: "ghost@example.io", AmountTotal: 100,
	}, nil)
	fx.runInTx()
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.io").Return(nil, repository.ErrNotFound)

	err := fx.service.HandleCheckoutWebhook(ctx, nil, "")

	assert.ErrorIs(t, err, domainerrors.ErrNoUserWithEmail)
}

func TestBookingService_MyTours(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	userID, tourA, tourB := uuid.New(), uuid.New(), uuid.New()
	tours := []*entity.Tour{{ID: tourA}, {ID: tourB}}

	fx.bookingRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.Booking{{TourID: tourA}, {TourID: tourB}}, nil)
	fx.tourRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{tourA, tourB}).Return(tours, nil)

	got, err := fx.service.MyTours(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, tours, got)
}

func TestBookingService_Ticket(t *testing.T) {
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	stranger := &entity.User{ID: uuid.New(), Role: entity.RoleLeadGuide}

	tests := []struct {
		name      string
		caller    *entity.User
		expectErr error
	}{
		{name: "owner", caller: owner},
		{name: "admin", caller: admin},
		{name: "someone else", caller: stranger, expectErr: domainerrors.ErrBookingNotOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBookingService(t)
			ctx := context.Background()
			booking := &entity.Booking{ID: uuid.New(), UserID: owner.ID, Paid: true}

			fx.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
			if tt.expectErr == nil {
				fx.tickets.EXPECT().GenerateBookingTicket(booking.ID).Return([]byte("png"), nil)
			}

			png, err := fx.service.Ticket(ctx, booking.ID, tt.caller)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, []byte("png"), png)
		})
	}
}

func TestBookingService_VerifyTicket_Unpaid(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tickets.EXPECT().ParseBookingTicket("natours:booking:" + id.String()).Return(id, nil)
	fx.bookingRepo.EXPECT().FindByID(ctx, id).Return(&entity.Booking{ID: id, Paid: false}, nil)

	_, err := fx.service.VerifyTicket(ctx, "natours:booking:"+id.String())

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTicket)
}

func TestBookingService_Create_RequiresPrice(t *testing.T) {
	fx := createTestBookingService(t)

	_, err := fx.service.Create(context.Background(), nil)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Booking must have a price.", verr.Fields["price"])
}

func TestBookingService_NotifyBooked(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	booking := &entity.Booking{
		ID:   uuid.New(),
		User: &entity.User{Name: "Aarav Lynn", Email: "aarav@example.io"},
		Tour: &entity.Tour{Name: "The Sea Explorer"},
		Paid: true,
	}

	fx.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.mailer.EXPECT().
		SendBookingConfirmation(ctx, booking.User, booking.Tour, "https://natours.dev/api/v1/bookings/"+booking.ID.String()+"/ticket").
		Return(nil)

	require.NoError(t, fx.service.NotifyBooked(ctx, &entity.BookingEvent{BookingID: booking.ID}))
}

func TestBookingService_NotifyBooked_DeletedBooking(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.bookingRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotFound)

	err := fx.service.NotifyBooked(ctx, &entity.BookingEvent{BookingID: id})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
