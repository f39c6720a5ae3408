package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/constants"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves session tokens to users and guards routes by role.
type AuthMiddleware struct {
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logger: logger}
}

// Protect requires a valid token from the Authorization header or the jwt cookie
// and attaches its user to the request.
func (m *AuthMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			token = cookieToken(c)
		}
		if token == "" {
			return errors.WithStack(domainerrors.ErrNotLoggedIn)
		}

		user, err := m.auth.Authenticate(c.Request().Context(), token, true)
		if err != nil {
			return errors.WithStack(err)
		}
		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// IsLoggedIn attaches the user of a valid jwt cookie for page rendering.
// It never rejects a request.
func (m *AuthMiddleware) IsLoggedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := cookieToken(c)
		if token == "" {
			return next(c)
		}

		user, err := m.auth.Authenticate(c.Request().Context(), token, false)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Ignoring session cookie", slog.Any("error", err))

			return next(c)
		}
		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RestrictTo lets only users with one of roles through. It must run after Protect.
func (m *AuthMiddleware) RestrictTo(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetUser(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrNotLoggedIn)
			}
			if !allowed.Contains(user.Role) {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}

func cookieToken(c echo.Context) string {
	cookie, err := c.Cookie(constants.CookieJWT)
	if err != nil || cookie.Value == constants.CookieLoggedOut {
		return ""
	}

	return cookie.Value
}
