package middleware

import (
	"net/http"
	"strings"

	"natours/config"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter caps the requests of one client IP on the API.
// The quota refills evenly over the configured window.
func NewRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limit := cfg.HTTP.RateLimit
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(limit.Requests) / limit.Window.Seconds()),
		Burst:     limit.Requests,
		ExpiresIn: limit.Window,
	})
	windowMinutes := int(limit.Window.Minutes())

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, apiPrefix)
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return errors.WithStack(domainerrors.NewTooManyRequestsError(windowMinutes))
		},
	})
}
