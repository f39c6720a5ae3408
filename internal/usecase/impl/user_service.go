package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/domain/validation"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
)

const userPhotoSize = 500

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	images   service.ImageProcessor
	logger   *slog.Logger
	now      func() time.Time
}

func NewUserService(
	userRepo repository.UserRepository,
	images service.ImageProcessor,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		images:   images,
		logger:   logger,
		now:      time.Now,
	}
}

// Create is not offered; accounts are made through signup.
func (srv *userService) Create(_ context.Context, _ *usecase.UserInput) (*entity.User, error) {
	return nil, errors.WithStack(domainerrors.ErrUseSignup)
}

func (srv *userService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to find user")
	}

	return user, nil
}

func (srv *userService) List(ctx context.Context, features *query.Features) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) Update(ctx context.Context, id uuid.UUID, patch *usecase.UserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to find user")
	}

	patch.Apply(user)
	if err := srv.save(ctx, user); err != nil {
		return nil, lookupError(err, id, "failed to update user")
	}

	return user, nil
}

func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return lookupError(err, id, "failed to delete user")
	}
	requestLogger(ctx, srv.logger).Info("User deleted", slog.String("userID", id.String()))

	return nil
}

func (srv *userService) UpdateMe(ctx context.Context, userID uuid.UUID, input *usecase.UpdateMeInput) (*entity.User, error) {
	if input.Password != nil || input.PasswordConfirm != nil {
		return nil, errors.WithStack(domainerrors.ErrPasswordUpdateRoute)
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, userID, "failed to find user")
	}

	setIfPresent(&user.Name, input.Name)
	setIfPresent(&user.Email, input.Email)

	if input.Photo != nil {
		filename := fmt.Sprintf("user-%s-%d.jpeg", userID, srv.now().UnixMilli())
		if err := srv.images.SaveResized(input.Photo, service.ImageKindUser, filename, userPhotoSize, userPhotoSize); err != nil {
			return nil, errors.Wrap(err, "failed to save user photo")
		}
		user.Photo = filename
	}

	if err := srv.save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteMe only deactivates the account; inactive users disappear from every lookup.
func (srv *userService) DeleteMe(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return lookupError(err, userID, "failed to find user")
	}

	user.Active = false
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to deactivate user")
	}
	requestLogger(ctx, srv.logger).Info("User deactivated", slog.String("userID", userID.String()))

	return nil
}

func (srv *userService) save(ctx context.Context, user *entity.User) error {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := validation.Struct(user); err != nil {
		return errors.WithStack(err)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

// setIfPresent ignores empty form values so a blank field keeps the stored value.
func setIfPresent(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}
