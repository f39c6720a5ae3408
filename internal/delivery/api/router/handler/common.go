package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxUploadBytes bounds a multipart request with image uploads.
const maxUploadBytes = 20 << 20

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindBody decodes the request body into input.
func bindBody(c echo.Context, input any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, input); err != nil {
		details := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				details = msg
			}
		}

		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
	}

	return nil
}

// pathID parses a uuid path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.NewCastError(name, raw))
	}

	return id, nil
}

// currentUser returns the user attached by Protect.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotLoggedIn)
	}

	return user, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// parseMultipart reads the multipart form with the upload bound applied.
func parseMultipart(c echo.Context) (*multipart.Form, error) {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, maxUploadBytes)
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return form, nil
}

// openUploads opens the first max files of field. The caller closes them with closeAll.
func openUploads(form *multipart.Form, field string, max int) ([]io.Reader, []io.Closer, error) {
	headers := form.File[field]
	if len(headers) > max {
		headers = headers[:max]
	}

	readers := make([]io.Reader, 0, len(headers))
	closers := make([]io.Closer, 0, len(headers))
	for _, fh := range headers {
		file, err := fh.Open()
		if err != nil {
			closeAll(closers)

			return nil, nil, errors.Wrapf(err, "open upload %s", fh.Filename)
		}
		readers = append(readers, file)
		closers = append(closers, file)
	}

	return readers, closers, nil
}

func closeAll(closers []io.Closer) {
	for _, closer := range closers {
		_ = closer.Close()
	}
}

// formValue returns a pointer to a non-empty form field, nil otherwise.
func formValue(c echo.Context, name string) *string {
	value := c.FormValue(name)
	if value == "" {
		return nil
	}

	return &value
}
