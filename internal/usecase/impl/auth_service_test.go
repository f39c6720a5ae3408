package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"natours/config"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/errors"
	mockRepo "natours/internal/mocks/repository"
	mockService "natours/internal/mocks/service"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var authTestNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type authServiceFixtures struct {
	service      *authService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	mailer       *mockService.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	mailer := mockService.NewMockMailer(t)

	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "http://localhost:3000"

	srv := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*authService)
	srv.now = func() time.Time { return authTestNow }

	return authServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func validSignupInput() *usecase.SignupInput {
	return &usecase.SignupInput{
		Name:            "Laura Wilson",
		Email:           " Laura@Example.io ",
		Password:        "pass1234",
		PasswordConfirm: "pass1234",
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("pass1234").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "laura@example.io" && u.PasswordHash == "hashed" &&
				u.Role == entity.RoleUser && !u.Confirmed && u.ConfirmToken != ""
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = userID }).
		Return(nil)
	fx.mailer.EXPECT().
		SendWelcome(ctx, mock.AnythingOfType("*entity.User"), mock.MatchedBy(func(url string) bool {
			return strings.HasPrefix(url, "http://localhost:3000/confirm/")
		})).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(userID).Return("jwt-token", nil)

	out, err := fx.service.Signup(ctx, validSignupInput())

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, "default.jpg", out.User.Photo)
	assert.Nil(t, out.User.PasswordChangedAt)
}

func TestAuthService_Signup_ConfirmTokenIsStoredHashed(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	var stored string
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, u *entity.User) { stored = u.ConfirmToken }).
		Return(nil)
	fx.mailer.EXPECT().SendWelcome(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *entity.User, url string) {
			plain := strings.TrimPrefix(url, "http://localhost:3000/confirm/")
			assert.Equal(t, entity.HashOneTimeToken(plain), stored)
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(mock.Anything).Return("jwt-token", nil)

	_, err := fx.service.Signup(ctx, validSignupInput())

	require.NoError(t, err)
}

func TestAuthService_Signup_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	input := validSignupInput()
	input.PasswordConfirm = "pass12345"
	input.Name = ""

	_, err := fx.service.Signup(context.Background(), input)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Please tell us your name!", "Password are not the same!"}, verr.Messages())
}

func TestAuthService_Signup_EmailFailureWithdrawsToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.mailer.EXPECT().SendWelcome(ctx, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.ConfirmToken == "" })).
		Return(nil)

	_, err := fx.service.Signup(ctx, validSignupInput())

	assert.ErrorIs(t, err, domainerrors.ErrEmailSendFailed)
}

func TestAuthService_Confirm(t *testing.T) {
	tests := []struct {
		name      string
		user      *entity.User
		findErr   error
		expectErr error
	}{
		{name: "unknown token", findErr: repository.ErrNotFound, expectErr: domainerrors.ErrConfirmTokenInvalid},
		{name: "already confirmed", user: &entity.User{ID: uuid.New(), Confirmed: true}, expectErr: domainerrors.ErrUserAlreadyConfirmed},
		{name: "confirms", user: &entity.User{ID: uuid.New(), ConfirmToken: "stored"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.userRepo.EXPECT().FindByConfirmToken(ctx, entity.HashOneTimeToken("plain")).Return(tt.user, tt.findErr)
			if tt.expectErr == nil {
				fx.userRepo.EXPECT().
					Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Confirmed && u.ConfirmToken == "" })).
					Return(nil)
				fx.tokenService.EXPECT().GenerateToken(tt.user.ID).Return("jwt-token", nil)
			}

			_, err := fx.service.Confirm(ctx, "plain")

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "admin@natours.io", PasswordHash: "hashed"}

	tests := []struct {
		name      string
		input     *usecase.LoginInput
		setup     func(fx authServiceFixtures)
		expectErr error
	}{
		{
			name:      "missing password",
			input:     &usecase.LoginInput{Email: "admin@natours.io"},
			setup:     func(authServiceFixtures) {},
			expectErr: domainerrors.ErrMissingCredentials,
		},
		{
			name:  "unknown email",
			input: &usecase.LoginInput{Email: "nobody@natours.io", Password: "pass1234"},
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "nobody@natours.io").Return(nil, repository.ErrNotFound)
			},
			expectErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			input: &usecase.LoginInput{Email: "admin@natours.io", Password: "wrong"},
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@natours.io").Return(user, nil)
				fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
			},
			expectErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:  "success",
			input: &usecase.LoginInput{Email: "admin@natours.io", Password: "pass1234"},
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@natours.io").Return(user, nil)
				fx.hasher.EXPECT().Check("pass1234", "hashed").Return(true)
				fx.tokenService.EXPECT().GenerateToken(user.ID).Return("jwt-token", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			out, err := fx.service.Login(context.Background(), tt.input)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt-token", out.Token)
			assert.Same(t, user, out.User)
		})
	}
}

func TestAuthService_ForgotPassword_StoresExpiringToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jonas@example.io"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "jonas@example.io").Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.PasswordResetToken != "" && u.PasswordResetExpires.Equal(authTestNow.Add(10*time.Minute))
		})).
		Return(nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, user, mock.MatchedBy(func(url string) bool {
			return strings.HasPrefix(url, "http://localhost:3000/api/v1/users/resetPassword/")
		})).
		Return(nil)

	require.NoError(t, fx.service.ForgotPassword(ctx, "jonas@example.io"))
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.io").Return(nil, repository.ErrNotFound)

	err := fx.service.ForgotPassword(ctx, "ghost@example.io")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestAuthService_ForgotPassword_EmailFailureClearsToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jonas@example.io"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "jonas@example.io").Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil).Twice()
	fx.mailer.EXPECT().SendPasswordReset(ctx, user, mock.Anything).Return(errors.New("smtp down"))

	err := fx.service.ForgotPassword(ctx, "jonas@example.io")

	assert.ErrorIs(t, err, domainerrors.ErrEmailSendFailed)
	assert.Empty(t, user.PasswordResetToken)
	assert.Nil(t, user.PasswordResetExpires)
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByResetToken(ctx, entity.HashOneTimeToken("expired"), authTestNow).Return(nil, repository.ErrNotFound)

	_, err := fx.service.ResetPassword(ctx, "expired", &usecase.ResetPasswordInput{Password: "newpass123", PasswordConfirm: "newpass123"})

	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestAuthService_ResetPassword_ClearsTokenAndStampsChange(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	expires := authTestNow.Add(5 * time.Minute)
	user := &entity.User{ID: uuid.New(), PasswordResetToken: "stored", PasswordResetExpires: &expires}

	fx.userRepo.EXPECT().FindByResetToken(ctx, entity.HashOneTimeToken("plain"), authTestNow).Return(user, nil)
	fx.hasher.EXPECT().Hash("newpass123").Return("new-hash", nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
	fx.tokenService.EXPECT().GenerateToken(user.ID).Return("jwt-token", nil)

	_, err := fx.service.ResetPassword(ctx, "plain", &usecase.ResetPasswordInput{Password: "newpass123", PasswordConfirm: "newpass123"})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
	assert.Empty(t, user.PasswordResetToken)
	require.NotNil(t, user.PasswordChangedAt)
	assert.Equal(t, authTestNow.Add(-time.Second), *user.PasswordChangedAt)
}

func TestAuthService_UpdatePassword_WrongCurrent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

	_, err := fx.service.UpdatePassword(ctx, user.ID, &usecase.UpdatePasswordInput{
		PasswordCurrent: "nope", Password: "newpass123", PasswordConfirm: "newpass123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
}

func TestAuthService_Authenticate(t *testing.T) {
	issuedAt := authTestNow.Add(-time.Hour)
	changedLater := authTestNow.Add(-time.Minute)
	changedBefore := authTestNow.Add(-2 * time.Hour)
	userID := uuid.New()

	tests := []struct {
		name             string
		validateErr      error
		user             *entity.User
		findErr          error
		requireConfirmed bool
		expectErr        error
	}{
		{name: "expired token", validateErr: domainerrors.ErrTokenExpired, expectErr: domainerrors.ErrTokenExpired},
		{name: "deleted user", findErr: repository.ErrNotFound, expectErr: domainerrors.ErrTokenUserNotFound},
		{
			name:      "password changed after issue",
			user:      &entity.User{ID: userID, Confirmed: true, PasswordChangedAt: &changedLater},
			expectErr: domainerrors.ErrPasswordChangedAfterToken,
		},
		{
			name:             "unconfirmed on protected route",
			user:             &entity.User{ID: userID, PasswordChangedAt: &changedBefore},
			requireConfirmed: true,
			expectErr:        domainerrors.ErrUserNotConfirmed,
		},
		{name: "unconfirmed on page", user: &entity.User{ID: userID}},
		{name: "confirmed", user: &entity.User{ID: userID, Confirmed: true}, requireConfirmed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			if tt.validateErr != nil {
				fx.tokenService.EXPECT().ValidateToken("token").Return(nil, errors.WithStack(tt.validateErr))
			} else {
				fx.tokenService.EXPECT().ValidateToken("token").Return(&service.Claims{UserID: userID, IssuedAt: issuedAt}, nil)
				fx.userRepo.EXPECT().FindByID(ctx, userID).Return(tt.user, tt.findErr)
			}

			user, err := fx.service.Authenticate(ctx, "token", tt.requireConfirmed)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)

				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.user, user)
		})
	}
}
