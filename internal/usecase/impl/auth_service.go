package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"natours/config"
	"natours/internal/domain/constants"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/domain/validation"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	confirmPath       = "/confirm/"
	resetPasswordPath = "/api/v1/users/resetPassword/"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	baseURL      string
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		baseURL:      params.Config.HTTP.BaseURL,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Signup creates an unconfirmed user and emails the confirmation link.
// If the email cannot be sent the confirmation token is withdrawn.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	user := &entity.User{
		Name:   strings.TrimSpace(input.Name),
		Email:  strings.ToLower(strings.TrimSpace(input.Email)),
		Photo:  input.Photo,
		Role:   entity.RoleUser,
		Active: true,
	}
	if user.Photo == "" {
		user.Photo = constants.DefaultUserPhoto
	}
	if err := validation.All(user, input); err != nil {
		return nil, errors.WithStack(err)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}
	user.SetPasswordHash(hash, srv.now())

	plain, hashed, err := entity.NewOneTimeToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate confirm token")
	}
	user.ConfirmToken = hashed

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Info("User signed up", slog.String("userID", user.ID.String()))

	if err := srv.mailer.SendWelcome(ctx, user, srv.baseURL+confirmPath+plain); err != nil {
		srv.log(ctx).Error("Failed to send welcome email", slog.String("userID", user.ID.String()), slog.Any("error", err))

		user.ConfirmToken = ""
		if updateErr := srv.userRepo.Update(ctx, user); updateErr != nil {
			srv.log(ctx).Error("Failed to withdraw confirm token", slog.Any("error", updateErr))
		}

		return nil, errors.WithStack(domainerrors.ErrEmailSendFailed)
	}

	return srv.issue(user)
}

func (srv *authService) Confirm(ctx context.Context, token string) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByConfirmToken(ctx, entity.HashOneTimeToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrConfirmTokenInvalid)
		}

		return nil, errors.Wrap(err, "failed to find user by confirm token")
	}
	if user.Confirmed {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyConfirmed)
	}

	user.Confirmed = true
	user.ConfirmToken = ""
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to confirm user")
	}

	return srv.issue(user)
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt is CPU-bound and runs outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return srv.issue(user)
}

// ForgotPassword emails a reset link valid for ten minutes.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errors.WithStack(domainerrors.ErrNoUserWithEmail)
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	plain, hashed, err := entity.NewOneTimeToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}
	expires := srv.now().Add(entity.PasswordResetTTL)
	user.PasswordResetToken = hashed
	user.PasswordResetExpires = &expires

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	if err := srv.mailer.SendPasswordReset(ctx, user, srv.baseURL+resetPasswordPath+plain); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.String("userID", user.ID.String()), slog.Any("error", err))

		user.PasswordResetToken = ""
		user.PasswordResetExpires = nil
		if updateErr := srv.userRepo.Update(ctx, user); updateErr != nil {
			srv.log(ctx).Error("Failed to withdraw reset token", slog.Any("error", updateErr))
		}

		return errors.WithStack(domainerrors.ErrEmailSendFailed)
	}

	return nil
}

func (srv *authService) ResetPassword(ctx context.Context, token string, input *usecase.ResetPasswordInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByResetToken(ctx, entity.HashOneTimeToken(token), srv.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrResetTokenInvalid)
		}

		return nil, errors.Wrap(err, "failed to find user by reset token")
	}
	if err := validation.Struct(input); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := srv.changePassword(ctx, user, input.Password); err != nil {
		return nil, err
	}

	return srv.issue(user)
}

func (srv *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePasswordInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, userID, "failed to find user")
	}
	if !srv.hasher.Check(input.PasswordCurrent, user.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrIncorrectPassword)
	}
	if err := validation.Struct(input); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := srv.changePassword(ctx, user, input.Password); err != nil {
		return nil, err
	}

	return srv.issue(user)
}

func (srv *authService) changePassword(ctx context.Context, user *entity.User, password string) error {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	user.SetPasswordHash(hash, srv.now())

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}
	srv.log(ctx).Info("Password changed", slog.String("userID", user.ID.String()))

	return nil
}

// Authenticate checks a session token and the state of its user.
func (srv *authService) Authenticate(ctx context.Context, token string, requireConfirmed bool) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTokenUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load token user")
	}
	if user.ChangedPasswordAfter(claims.IssuedAt) {
		return nil, errors.WithStack(domainerrors.ErrPasswordChangedAfterToken)
	}
	if requireConfirmed && !user.Confirmed {
		return nil, errors.WithStack(domainerrors.ErrUserNotConfirmed)
	}

	return user, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
