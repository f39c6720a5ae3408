package middleware

import (
	"strings"

	"natours/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// rawBodyPaths are read whole by their handlers and skip the body limit.
var rawBodyPaths = []string{"/webhook-checkout"}

// NewBodyLimit caps JSON and form bodies. Multipart uploads are bounded by the image handlers.
func NewBodyLimit(cfg *config.Config) echo.MiddlewareFunc {
	return echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Limit: cfg.HTTP.MaxRequestBodySize,
		Skipper: func(c echo.Context) bool {
			if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
				return true
			}
			for _, path := range rawBodyPaths {
				if c.Request().URL.Path == path {
					return true
				}
			}

			return false
		},
	})
}
