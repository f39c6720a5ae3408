package usecase

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthUsecase covers signup, login and password management.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Confirm(ctx context.Context, token string) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, input *ResetPasswordInput) (*AuthOutput, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, input *UpdatePasswordInput) (*AuthOutput, error)

	// Authenticate resolves a session token to its user.
	// requireConfirmed rejects users who have not confirmed their email yet.
	Authenticate(ctx context.Context, token string, requireConfirmed bool) (*entity.User, error)
}

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Photo           string `json:"photo" form:"photo"`
	Password        string `json:"password" form:"password" validate:"required,min=8" msg:"required=Please provide a password;min=A password must have more or equal then 8 characters"`
	PasswordConfirm string `json:"passwordConfirm" form:"passwordConfirm" validate:"required,eqfield=Password" msg:"required=Please confirm your password;eqfield=Password are not the same!"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// ResetPasswordInput sets a new password through an emailed reset token.
type ResetPasswordInput struct {
	Password        string `json:"password" validate:"required,min=8" msg:"required=Please provide a password;min=A password must have more or equal then 8 characters"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password" msg:"required=Please confirm your password;eqfield=Password are not the same!"`
}

// UpdatePasswordInput changes the password of a logged-in user.
type UpdatePasswordInput struct {
	PasswordCurrent string `json:"passwordCurrent"`
	Password        string `json:"password" validate:"required,min=8" msg:"required=Please provide a password;min=A password must have more or equal then 8 characters"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password" msg:"required=Please confirm your password;eqfield=Password are not the same!"`
}

// --- Output DTOs ---

// AuthOutput is a freshly signed session for User.
type AuthOutput struct {
	Token string
	User  *entity.User
}
