package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"natours/config"
	"natours/internal/delivery"
	apimiddleware "natours/internal/delivery/api/middleware"
	"natours/internal/delivery/api/router"
	"natours/internal/delivery/api/validator"
	"natours/internal/delivery/middleware"
	"natours/internal/domain/lifecycle"
	"natours/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID and request-scoped logger (must be before the access log)
	echoServer.Use(middleware.NewRequestScope(params.Logger).Handle)

	// 3. Access log
	echoServer.Use(middleware.NewAccessLog(params.Logger, params.Cfg).Handle)

	// 4. Security headers and CORS
	echoServer.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		HSTSMaxAge:         hstsMaxAge(params.Cfg),
	}))
	echoServer.Use(echomiddleware.CORS())

	// 5. Rate limit on /api, then the request body size limit
	echoServer.Use(apimiddleware.NewRateLimiter(params.Cfg))
	echoServer.Use(apimiddleware.NewBodyLimit(params.Cfg))

	// Set up centralized error handler
	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger, params.Cfg)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	// Set up validator
	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Natours HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Natours HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

// hstsMaxAge enables Strict-Transport-Security in production only.
func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 180 * 24 * 60 * 60
	}

	return 0
}
