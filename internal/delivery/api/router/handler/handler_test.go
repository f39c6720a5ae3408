package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"
	usecasemocks "natours/internal/mocks/usecase"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		raw     string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{raw: "34.111745,-118.113491", lat: 34.111745, lng: -118.113491},
		{raw: " 40.7 , -74.0 ", lat: 40.7, lng: -74.0},
		{raw: "34.1", wantErr: true},
		{raw: "north,west", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			lat, lng, err := parseLatLng(tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidLatLng))

				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.lat, lat, 1e-9)
			assert.InDelta(t, tt.lng, lng, 1e-9)
		})
	}
}

func TestTourHandler_GetToursWithin(t *testing.T) {
	tours := usecasemocks.NewMockTourUsecase(t)
	h := NewTourHandler(TourHandlerParams{TourUC: tours})
	tours.EXPECT().ToursWithin(mock.Anything, usecase.ToursWithinInput{
		Distance: 250,
		Lat:      34.111745,
		Lng:      -118.113491,
		Unit:     entity.UnitMiles,
	}).Return([]*entity.Tour{{ID: uuid.New(), Name: "The Sea Explorer"}}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("distance", "latlng", "unit")
	c.SetParamValues("250", "34.111745,-118.113491", "mi")

	require.NoError(t, h.GetToursWithin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":1`)
}

func TestTourHandler_GetToursWithin_BadDistance(t *testing.T) {
	h := NewTourHandler(TourHandlerParams{TourUC: usecasemocks.NewMockTourUsecase(t)})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("distance", "latlng", "unit")
	c.SetParamValues("far", "34.1,-118.1", "km")

	err := h.GetToursWithin(c)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid distance with value far", appErr.Message())
}

func TestTourHandler_UpdateTour_Multipart(t *testing.T) {
	tours := usecasemocks.NewMockTourUsecase(t)
	h := NewTourHandler(TourHandlerParams{TourUC: tours})
	id := uuid.New()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("summary", "New summary"))
	for _, field := range []string{"imageCover", "images", "images", "images", "images"} {
		part, err := w.CreateFormFile(field, field+".jpg")
		require.NoError(t, err)
		_, _ = part.Write([]byte("jpeg bytes"))
	}
	require.NoError(t, w.Close())

	tours.EXPECT().UpdateImages(mock.Anything, id, mock.MatchedBy(func(images usecase.TourImages) bool {
		return images.Cover != nil && len(images.Images) == maxTourImages
	}), mock.MatchedBy(func(patch *usecase.TourInput) bool {
		return patch.Summary != nil && *patch.Summary == "New summary" && patch.Name == nil
	})).Return(&entity.Tour{ID: id}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.UpdateTour(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_UpdateMe_JSON(t *testing.T) {
	users := usecasemocks.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: users})
	me := &entity.User{ID: uuid.New(), Name: "Old Name"}
	users.EXPECT().UpdateMe(mock.Anything, me.ID, mock.MatchedBy(func(in *usecase.UpdateMeInput) bool {
		return in.Name != nil && *in.Name == "New Name" && in.Photo == nil
	})).Return(&entity.User{ID: me.ID, Name: "New Name"}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(`{"name":"New Name"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetUser(c, me)

	require.NoError(t, h.UpdateMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","data":{"user":{"id":"`+me.ID.String()+`","name":"New Name","email":"","photo":"","role":"","createdAt":"0001-01-01T00:00:00Z"}}}`, rec.Body.String())
}

func TestUserHandler_UpdateMe_MultipartPhoto(t *testing.T) {
	users := usecasemocks.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: users})
	me := &entity.User{ID: uuid.New()}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("email", "new@example.com"))
	part, err := w.CreateFormFile("photo", "me.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("png bytes"))
	require.NoError(t, w.Close())

	users.EXPECT().UpdateMe(mock.Anything, me.ID, mock.MatchedBy(func(in *usecase.UpdateMeInput) bool {
		if in.Photo == nil || in.Email == nil || *in.Email != "new@example.com" {
			return false
		}
		data, _ := io.ReadAll(in.Photo)

		return string(data) == "png bytes"
	})).Return(&entity.User{ID: me.ID}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	c := echo.New().NewContext(req, httptest.NewRecorder())
	deliverycontext.SetUser(c, me)

	require.NoError(t, h.UpdateMe(c))
}

func TestCurrentUser_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := currentUser(c)

	assert.True(t, errors.Is(err, domainerrors.ErrNotLoggedIn))
}
