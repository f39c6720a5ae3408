package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"natours/config"
	deliverycontext "natours/internal/delivery/context"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestScope(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "client id kept", header: "abc-123_x.y", keep: true},
		{name: "missing id generated"},
		{name: "bad characters replaced", header: "abc 123\n"},
		{name: "overlong id replaced", header: strings.Repeat("a", maxClientRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seen string
			var logger *slog.Logger
			handler := NewRequestScope(slog.New(slog.DiscardHandler)).Handle(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				logger = deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil)

				return nil
			})
			require.NoError(t, handler(c))

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.NotNil(t, logger)
			if tt.keep {
				assert.Equal(t, tt.header, seen)
			} else {
				_, err := uuid.Parse(seen)
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		err    error
		want   []string
		silent bool
	}{
		{name: "production is silent", env: config.EnvProduction, silent: true},
		{name: "success", env: config.EnvDevelopment, want: []string{"level=INFO", "status=200"}},
		{name: "client error", env: config.EnvDevelopment, err: errors.WithStack(domainerrors.ErrForbidden), want: []string{"level=WARN", "status=403"}},
		{name: "echo error", env: config.EnvDevelopment, err: echo.ErrNotFound, want: []string{"level=WARN", "status=404"}},
		{name: "unknown error", env: config.EnvDevelopment, err: errors.New("boom"), want: []string{"level=ERROR", "status=500"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Env = tt.env

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/tours?limit=3", nil), httptest.NewRecorder())
			handler := NewAccessLog(slog.New(slog.NewTextHandler(&buf, nil)), cfg).Handle(func(c echo.Context) error {
				if tt.err != nil {
					return tt.err
				}

				return c.NoContent(http.StatusOK)
			})

			assert.Equal(t, tt.err, handler(c))
			if tt.silent {
				assert.Empty(t, buf.String())

				return
			}
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
			assert.Contains(t, buf.String(), "limit=3")
		})
	}
}
