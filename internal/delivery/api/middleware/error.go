package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"natours/config"
	"natours/internal/delivery/api/views"
	deliverycontext "natours/internal/delivery/context"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	apiPrefix = "/api"

	pageErrorTitle       = "Something went wrong!"
	pageGenericErrorText = "Please try again later."
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// API requests get JSON, every other path the error page.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr := m.normalize(err, c)
	statusCode := http.StatusInternalServerError
	if appErr != nil {
		statusCode = appErr.HTTPCode()
	}

	if statusCode >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("stack", fmt.Sprintf("%+v", err)),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	var writeErr error
	if strings.HasPrefix(c.Request().URL.Path, apiPrefix) {
		writeErr = c.JSON(statusCode, m.apiBody(err, appErr, statusCode))
	} else {
		writeErr = m.renderPage(c, appErr, err, statusCode)
	}
	if writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

// normalize maps err to an AppError. It returns nil for errors nothing knows about.
func (m *ErrorMiddleware) normalize(err error, c echo.Context) domainerrors.AppError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			return domainerrors.NewRouteNotFoundError(c.Request().RequestURI)
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", message, "")
	}

	return nil
}

func (m *ErrorMiddleware) apiBody(err error, appErr domainerrors.AppError, statusCode int) domainerrors.ErrorResponse {
	body := domainerrors.ErrorResponse{Status: domainerrors.StatusClass(statusCode)}

	if m.production {
		if appErr != nil && domainerrors.IsOperational(appErr) {
			body.Message = appErr.Message()
		} else {
			body.Message = domainerrors.ErrInternalError.Message()
		}

		return body
	}

	info := &domainerrors.ErrorInfo{Code: domainerrors.ErrInternalError.ErrorCode(), Message: err.Error()}
	body.Message = err.Error()
	if appErr != nil {
		info.Code = appErr.ErrorCode()
		if details := appErr.Details(); details != "" {
			info.Details = details
		}
		body.Message = appErr.Message()
	}
	body.Error = info
	body.Stack = fmt.Sprintf("%+v", err)

	return body
}

func (m *ErrorMiddleware) renderPage(c echo.Context, appErr domainerrors.AppError, err error, statusCode int) error {
	message := pageGenericErrorText
	switch {
	case !m.production && appErr != nil:
		message = appErr.Message()
	case !m.production:
		message = err.Error()
	case appErr != nil && domainerrors.IsOperational(appErr):
		message = appErr.Message()
	}

	user, _ := deliverycontext.GetUser(c)

	return views.Render(c, statusCode, views.Error(views.Page{Title: pageErrorTitle, User: user}, message))
}
