package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"natours/config"
	"natours/internal/delivery/api/middleware"
	"natours/internal/delivery/api/router"
	"natours/internal/delivery/api/router/handler"
	"natours/internal/domain/constants"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/errors"
	usecasemocks "natours/internal/mocks/usecase"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixtures struct {
	echo     *echo.Echo
	auth     *usecasemocks.MockAuthUsecase
	tours    *usecasemocks.MockTourUsecase
	reviews  *usecasemocks.MockReviewUsecase
	users    *usecasemocks.MockUserUsecase
	bookings *usecasemocks.MockBookingUsecase
}

func testConfig(t *testing.T, env string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.HTTP.MaxRequestBodySize = "10KB"
	cfg.HTTP.RateLimit = config.RateLimitConfig{Requests: 100, Window: 30 * time.Minute}
	cfg.JWT.CookieExpiresInDays = 90
	cfg.Storage.PublicDir = t.TempDir()

	return cfg
}

func createTestServer(t *testing.T, cfg *config.Config) *serverFixtures {
	fx := &serverFixtures{
		auth:     usecasemocks.NewMockAuthUsecase(t),
		tours:    usecasemocks.NewMockTourUsecase(t),
		reviews:  usecasemocks.NewMockReviewUsecase(t),
		users:    usecasemocks.NewMockUserUsecase(t),
		bookings: usecasemocks.NewMockBookingUsecase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			TourHandler:    handler.NewTourHandler(handler.TourHandlerParams{TourUC: fx.tours}),
			ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: fx.reviews}),
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.users}),
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.auth, Config: cfg}),
			BookingHandler: handler.NewBookingHandler(handler.BookingHandlerParams{BookingUC: fx.bookings}),
			ViewHandler: handler.NewViewHandler(handler.ViewHandlerParams{
				TourUC:    fx.tours,
				ReviewUC:  fx.reviews,
				BookingUC: fx.bookings,
				UserUC:    fx.users,
				AuthUC:    fx.auth,
				Config:    cfg,
			}),
			AuthMiddleware: middleware.NewAuthMiddleware(fx.auth, logger),
			Config:         cfg,
		},
	})
	require.NoError(t, err)
	fx.echo = srv.(*apiServer).server

	return fx
}

func (fx *serverFixtures) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func (fx *serverFixtures) loginAs(role entity.Role) (*entity.User, map[string]string) {
	user := &entity.User{ID: uuid.New(), Name: "Test User", Role: role, Active: true, Confirmed: true}
	token := string(role) + "-token"
	fx.auth.EXPECT().Authenticate(mock.Anything, token, true).Return(user, nil).Maybe()

	return user, map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestLogin(t *testing.T) {
	t.Run("success sets the session cookie", func(t *testing.T) {
		fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
		user := &entity.User{ID: uuid.New(), Name: "Laura", Email: "laura@example.com", Role: entity.RoleUser}
		fx.auth.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "laura@example.com", Password: "test1234"}).
			Return(&usecase.AuthOutput{Token: "signed.jwt.token", User: user}, nil)

		rec := fx.do(http.MethodPost, "/api/v1/users/login", `{"email":"laura@example.com","password":"test1234"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "signed.jwt.token", body["token"])
		assert.NotContains(t, body, "data")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, constants.CookieJWT, cookies[0].Name)
		assert.Equal(t, "signed.jwt.token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.False(t, cookies[0].Secure)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestServer(t, testConfig(t, config.EnvProduction))
		fx.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

		rec := fx.do(http.MethodPost, "/api/v1/users/login", `{"email":"laura@example.com","password":"wrong"}`, nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, map[string]any{"status": "fail", "message": "Incorrect email or password!"}, decode(t, rec))
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestSignup_ReturnsUserWith201(t *testing.T) {
	cfg := testConfig(t, config.EnvProduction)
	fx := createTestServer(t, cfg)
	user := &entity.User{ID: uuid.New(), Name: "Laura", Email: "laura@example.com", Role: entity.RoleUser}
	fx.auth.EXPECT().Signup(mock.Anything, mock.MatchedBy(func(in *usecase.SignupInput) bool {
		return in.Name == "Laura" && in.PasswordConfirm == "test1234"
	})).Return(&usecase.AuthOutput{Token: "tok", User: user}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/users/signup",
		`{"name":"Laura","email":"laura@example.com","password":"test1234","passwordConfirm":"test1234"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "tok", body["token"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "laura@example.com", data["user"].(map[string]any)["email"])
	assert.True(t, rec.Result().Cookies()[0].Secure)
}

func TestLogout_SetsPlaceholderCookie(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvDevelopment))

	rec := fx.do(http.MethodGet, "/api/v1/users/logout", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := rec.Result().Cookies()[0]
	assert.Equal(t, constants.CookieLoggedOut, cookie.Value)
	assert.WithinDuration(t, time.Now().Add(10*time.Second), cookie.Expires, 2*time.Second)
}

func TestGetAllTours_SortLimitPage(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
	tours := []*entity.Tour{
		{ID: uuid.New(), Name: "The Snow Adventurer", Price: 997, Version: 3},
		{ID: uuid.New(), Name: "The Star Gazer", Price: 2997, Version: 1},
	}
	fx.tours.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *query.Features) bool {
		return assert.ObjectsAreEqual([]query.SortField{{Field: "price", Desc: true}}, f.SortFields) &&
			f.Limit == 2 && f.Skip == 0 && len(f.Conditions) == 0
	})).Return(tours, nil)

	rec := fx.do(http.MethodGet, "/api/v1/tours?sort=-price&limit=2&page=1", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["results"])
	docs := body["data"].(map[string]any)["data"].([]any)
	require.Len(t, docs, 2)
	first := docs[0].(map[string]any)
	assert.Equal(t, "The Snow Adventurer", first["name"])
	assert.NotContains(t, first, "version")
}

func TestGetAllTours_NameFilter(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
	fx.tours.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *query.Features) bool {
		return len(f.Conditions) == 2 &&
			f.Has("name") && f.Conditions[0].Op == query.OpMatch &&
			f.Conditions[1].Field() == "price" && f.Conditions[1].Op == query.OpGte
	})).Return([]*entity.Tour{}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/tours?name=forest&price[gte]=500", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["results"])
}

func TestSearchTours_HidesVersion(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
	tour := &entity.Tour{ID: uuid.New(), Name: "The Forest Hiker", Version: 4}
	fx.tours.EXPECT().Search(mock.Anything, "forest hiker").Return([]*entity.Tour{tour}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/tours/search?search=forest+hiker", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["results"])
	doc := body["data"].(map[string]any)["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "The Forest Hiker", doc["name"])
	assert.NotContains(t, doc, "version")
}

func TestTopFiveCheap_ProjectsAliasFields(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
	tour := &entity.Tour{ID: uuid.New(), Name: "The Forest Hiker", Price: 397, RatingsAverage: 4.8, Summary: "Breathtaking hike", Difficulty: entity.DifficultyEasy, Duration: 5}
	fx.tours.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *query.Features) bool {
		return f.Limit == 5 && len(f.SortFields) == 2 && f.SortFields[1] == query.SortField{Field: "ratingsAverage", Desc: true}
	})).Return([]*entity.Tour{tour}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/tours/top-5-cheap", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode(t, rec)["data"].(map[string]any)["data"].([]any)[0].(map[string]any)
	assert.ElementsMatch(t, []string{"id", "name", "price", "ratingsAverage", "summary", "difficulty"}, keys(doc))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

func TestDeleteTour(t *testing.T) {
	t.Run("missing tour", func(t *testing.T) {
		fx := createTestServer(t, testConfig(t, config.EnvProduction))
		_, headers := fx.loginAs(entity.RoleAdmin)
		id := uuid.New()
		fx.tours.EXPECT().Delete(mock.Anything, id).Return(errors.WithStack(domainerrors.NewDocumentNotFoundError(id)))

		rec := fx.do(http.MethodDelete, "/api/v1/tours/"+id.String(), "", headers)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No document found with that ID("+id.String()+")", decode(t, rec)["message"])
	})

	t.Run("deleted", func(t *testing.T) {
		fx := createTestServer(t, testConfig(t, config.EnvProduction))
		_, headers := fx.loginAs(entity.RoleLeadGuide)
		id := uuid.New()
		fx.tours.EXPECT().Delete(mock.Anything, id).Return(nil)

		rec := fx.do(http.MethodDelete, "/api/v1/tours/"+id.String(), "", headers)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		fx := createTestServer(t, testConfig(t, config.EnvProduction))
		_, headers := fx.loginAs(entity.RoleAdmin)

		rec := fx.do(http.MethodDelete, "/api/v1/tours/abc", "", headers)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid id with value abc", decode(t, rec)["message"])
	})
}

func TestProtect(t *testing.T) {
	tests := []struct {
		name        string
		headers     map[string]string
		authErr     error
		wantMessage string
	}{
		{
			name:        "no token",
			wantMessage: "You are not logged in! Please log in to get access.",
		},
		{
			name:        "expired token",
			headers:     map[string]string{echo.HeaderAuthorization: "Bearer expired"},
			authErr:     domainerrors.ErrTokenExpired,
			wantMessage: "Your token has expired! Please login again.",
		},
		{
			name:        "bad signature",
			headers:     map[string]string{echo.HeaderAuthorization: "Bearer forged"},
			authErr:     domainerrors.ErrInvalidToken,
			wantMessage: "Invalid token. Please log in again!",
		},
		{
			name:        "password changed after issue",
			headers:     map[string]string{echo.HeaderCookie: constants.CookieJWT + "=stale"},
			authErr:     domainerrors.ErrPasswordChangedAfterToken,
			wantMessage: "User recently changed password! Please log in again.",
		},
		{
			name:        "logged out cookie",
			headers:     map[string]string{echo.HeaderCookie: constants.CookieJWT + "=" + constants.CookieLoggedOut},
			wantMessage: "You are not logged in! Please log in to get access.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t, testConfig(t, config.EnvProduction))
			if tt.authErr != nil {
				fx.auth.EXPECT().Authenticate(mock.Anything, mock.Anything, true).Return(nil, errors.WithStack(tt.authErr))
			}

			rec := fx.do(http.MethodGet, "/api/v1/users/me", "", tt.headers)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, map[string]any{"status": "fail", "message": tt.wantMessage}, decode(t, rec))
		})
	}
}

func TestRestrictTo_Forbidden(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvProduction))
	_, headers := fx.loginAs(entity.RoleUser)

	rec := fx.do(http.MethodPost, "/api/v1/tours", `{"name":"The Park Camper"}`, headers)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You don't have permission to perform this action", decode(t, rec)["message"])
}

func TestCreateReview_NestedUnderTour(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
	user, headers := fx.loginAs(entity.RoleUser)
	tourID := uuid.New()
	review := &entity.Review{ID: uuid.New(), Review: "Amazing!", Rating: 5, TourID: tourID, UserID: user.ID}
	fx.reviews.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *usecase.ReviewInput) bool {
		return *in.Tour == tourID && *in.User == user.ID && *in.Review == "Amazing!"
	})).Return(review, nil)

	rec := fx.do(http.MethodPost, "/api/v1/tours/"+tourID.String()+"/reviews", `{"review":"Amazing!","rating":5}`, headers)

	require.Equal(t, http.StatusCreated, rec.Code)
	doc := decode(t, rec)["data"].(map[string]any)["data"].(map[string]any)
	assert.Equal(t, tourID.String(), doc["tour"])
}

func TestGetAllReviews_FiltersByTour(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
	_, headers := fx.loginAs(entity.RoleUser)
	tourID := uuid.New()
	fx.reviews.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *query.Features) bool {
		return len(f.Conditions) == 1 &&
			f.Conditions[0].Field() == "tour" && f.Conditions[0].Values[0] == tourID.String()
	})).Return([]*entity.Review{}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/tours/"+tourID.String()+"/reviews", "", headers)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorModes(t *testing.T) {
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find tours")

	t.Run("production hides unexpected errors", func(t *testing.T) {
		fx := createTestServer(t, testConfig(t, config.EnvProduction))
		fx.tours.EXPECT().Stats(mock.Anything).Return(nil, errors.WithStack(dbErr))

		rec := fx.do(http.MethodGet, "/api/v1/tours/tour-stats", "", nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"status": "error", "message": "Internal server error!!"}, decode(t, rec))
	})

	t.Run("development exposes details", func(t *testing.T) {
		fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
		fx.tours.EXPECT().Stats(mock.Anything).Return(nil, errors.WithStack(dbErr))

		rec := fx.do(http.MethodGet, "/api/v1/tours/tour-stats", "", nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Database execution failed", body["message"])
		info := body["error"].(map[string]any)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", info["code"])
		assert.Equal(t, "find tours", info["details"])
		assert.Contains(t, body["stack"], "connection reset")
	})

	t.Run("unknown api route", func(t *testing.T) {
		fx := createTestServer(t, testConfig(t, config.EnvProduction))

		rec := fx.do(http.MethodGet, "/api/v1/nothing-here?x=1", "", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Can't find /api/v1/nothing-here?x=1 on this server!", decode(t, rec)["message"])
	})

	t.Run("pages render the error page", func(t *testing.T) {
		fx := createTestServer(t, testConfig(t, config.EnvProduction))
		fx.tours.EXPECT().GetBySlug(mock.Anything, "no-such-tour").Return(nil, errors.WithStack(domainerrors.ErrTourNotFoundBySlug))

		rec := fx.do(http.MethodGet, "/tour/no-such-tour", "", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
		assert.Contains(t, rec.Body.String(), "There is no tour with that name.")
	})
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig(t, config.EnvProduction)
	cfg.HTTP.RateLimit.Requests = 2
	fx := createTestServer(t, cfg)
	fx.tours.EXPECT().Stats(mock.Anything).Return([]*entity.TourStats{}, nil).Times(2)

	for range 2 {
		rec := fx.do(http.MethodGet, "/api/v1/tours/tour-stats", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := fx.do(http.MethodGet, "/api/v1/tours/tour-stats", "", nil)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests from this IP, please try again in 30 minutes", decode(t, rec)["message"])
}

func TestWebhookCheckout_PassesRawBody(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvProduction))
	payload := `{"type":"checkout.session.completed"}`
	fx.bookings.EXPECT().HandleCheckoutWebhook(mock.Anything, []byte(payload), "t=1,v1=abc").Return(nil)

	rec := fx.do(http.MethodPost, "/webhook-checkout", payload, map[string]string{"Stripe-Signature": "t=1,v1=abc"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"received": true}, decode(t, rec))
}

func TestTicket_ReturnsPNG(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvProduction))
	user, headers := fx.loginAs(entity.RoleUser)
	bookingID := uuid.New()
	fx.bookings.EXPECT().Ticket(mock.Anything, bookingID, user).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/bookings/"+bookingID.String()+"/ticket", "", headers)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestOverviewPage_ShowsLoggedInUser(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
	user := &entity.User{ID: uuid.New(), Name: "Laura Wilson", Photo: "user-1.jpg", Role: entity.RoleUser}
	fx.auth.EXPECT().Authenticate(mock.Anything, "cookie-token", false).Return(user, nil)
	fx.tours.EXPECT().Search(mock.Anything, "forest").Return([]*entity.Tour{
		{ID: uuid.New(), Name: "The Forest Hiker", Slug: "the-forest-hiker", Difficulty: entity.DifficultyEasy},
	}, nil)

	rec := fx.do(http.MethodGet, "/?search=forest", "", map[string]string{echo.HeaderCookie: constants.CookieJWT + "=cookie-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Forest Hiker")
	assert.Contains(t, rec.Body.String(), "/tour/the-forest-hiker")
	assert.Contains(t, rec.Body.String(), "Laura")
}

func TestIsLoggedIn_IgnoresBadCookie(t *testing.T) {
	fx := createTestServer(t, testConfig(t, config.EnvDevelopment))
	fx.auth.EXPECT().Authenticate(mock.Anything, "expired", false).Return(nil, errors.WithStack(domainerrors.ErrTokenExpired))

	rec := fx.do(http.MethodGet, "/login", "", map[string]string{echo.HeaderCookie: constants.CookieJWT + "=expired"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Log into your account")
	assert.Contains(t, rec.Body.String(), `href="/signup"`)
}
