package usecase

import (
	"context"
	"io"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase covers user administration and the self-service account routes.
type UserUsecase interface {
	Resource[entity.User, UserInput, UserInput]

	// UpdateMe changes the caller's name, email and photo. Password fields are rejected.
	UpdateMe(ctx context.Context, userID uuid.UUID, input *UpdateMeInput) (*entity.User, error)
	// DeleteMe deactivates the caller's account.
	DeleteMe(ctx context.Context, userID uuid.UUID) error
}

// UserInput carries the fields an admin may change.
type UserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Photo *string `json:"photo"`
	Role  *string `json:"role"`
}

// Apply copies every set field onto user.
func (in *UserInput) Apply(user *entity.User) {
	if in == nil {
		return
	}
	setIf(&user.Name, in.Name)
	setIf(&user.Email, in.Email)
	setIf(&user.Photo, in.Photo)
	if in.Role != nil {
		user.Role = entity.Role(*in.Role)
	}
}

// UpdateMeInput is the self-service profile update. Photo is an optional upload.
type UpdateMeInput struct {
	Name            *string   `json:"name" form:"name"`
	Email           *string   `json:"email" form:"email"`
	Password        *string   `json:"password" form:"password"`
	PasswordConfirm *string   `json:"passwordConfirm" form:"passwordConfirm"`
	Photo           io.Reader `json:"-" form:"-"`
}
