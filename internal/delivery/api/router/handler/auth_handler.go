package handler

import (
	"net/http"
	"time"

	"natours/config"
	"natours/internal/delivery/api/response"
	"natours/internal/domain/constants"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// logoutCookieTTL is how long the placeholder cookie set on logout lives.
const logoutCookieTTL = 10 * time.Second

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthHandler serves signup, login and password routes and manages the session cookie.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies sessionCookies
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		cookies: newSessionCookies(params.Config),
	}
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" msg:"required=Please provide your email;email=Please provide a valid email"`
}

// Signup registers a user and emails the confirmation link.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req usecase.SignupInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Signup(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.sendToken(c, http.StatusCreated, out)
}

// Confirm activates the account of an emailed confirmation token and logs it in.
func (h *AuthHandler) Confirm(c echo.Context) error {
	out, err := h.authUC.Confirm(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.sendToken(c, http.StatusOK, out)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.sendToken(c, http.StatusOK, out)
}

// Logout overwrites the session cookie with a short-lived placeholder.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.clear(c)

	return c.JSON(http.StatusOK, map[string]string{"status": response.StatusSuccess})
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Token sent to email!")
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req usecase.ResetPasswordInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.ResetPassword(c.Request().Context(), c.Param("token"), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.sendToken(c, http.StatusOK, out)
}

// UpdatePassword changes the password of the logged-in user after checking the current one.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req usecase.UpdatePasswordInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.UpdatePassword(c.Request().Context(), user.ID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.sendToken(c, http.StatusOK, out)
}

// sendToken sets the session cookie and writes the token response.
func (h *AuthHandler) sendToken(c echo.Context, statusCode int, out *usecase.AuthOutput) error {
	h.cookies.set(c, out.Token)

	return response.Token(c, statusCode, out.Token, out.User)
}

// sessionCookies writes the jwt cookie shared by the API and the pages.
type sessionCookies struct {
	ttl        time.Duration
	production bool
	now        func() time.Time
}

func newSessionCookies(cfg *config.Config) sessionCookies {
	return sessionCookies{
		ttl:        time.Duration(cfg.JWT.CookieExpiresInDays) * 24 * time.Hour,
		production: cfg.IsProduction(),
		now:        time.Now,
	}
}

func (s sessionCookies) set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     constants.CookieJWT,
		Value:    token,
		Path:     "/",
		Expires:  s.now().Add(s.ttl),
		HttpOnly: true,
		Secure:   s.production || c.IsTLS() || c.Request().Header.Get(echo.HeaderXForwardedProto) == "https",
	})
}

// clear overwrites the session with a short-lived placeholder.
func (s sessionCookies) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.CookieJWT,
		Value:    constants.CookieLoggedOut,
		Path:     "/",
		Expires:  s.now().Add(logoutCookieTTL),
		HttpOnly: true,
	})
}
