package main

import (
	"context"
	"log/slog"
	"os"

	"natours/config"
	"natours/internal/delivery"
	"natours/internal/delivery/api"
	apimiddleware "natours/internal/delivery/api/middleware"
	"natours/internal/delivery/api/router/handler"
	"natours/internal/infra/auth"
	logs "natours/internal/infra/log"
	"natours/internal/infra/mail"
	"natours/internal/infra/payment"
	"natours/internal/infra/persistence/postgres"
	"natours/internal/infra/photo"
	"natours/internal/infra/pubsub"
	"natours/internal/infra/qrcode"
	"natours/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTourRepository,
			postgres.NewUserRepository,
			postgres.NewReviewRepository,
			postgres.NewBookingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPMailer,
			payment.NewStripeGateway,
			photo.NewProcessor,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTourService,
			impl.NewReviewService,
			impl.NewUserService,
			impl.NewAuthService,
			impl.NewBookingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTourHandler,
			handler.NewReviewHandler,
			handler.NewUserHandler,
			handler.NewAuthHandler,
			handler.NewBookingHandler,
			handler.NewViewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
