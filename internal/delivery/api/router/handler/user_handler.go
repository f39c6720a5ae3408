package handler

import (
	"io"
	"net/http"

	"natours/internal/delivery/api/response"
	"natours/internal/domain/entity"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler serves the account routes and user administration.
type UserHandler struct {
	userUC usecase.UserUsecase
	users  resource[entity.User, usecase.UserInput, usecase.UserInput]
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		users:  newResource[entity.User, usecase.UserInput, usecase.UserInput](params.UserUC),
	}
}

func (h *UserHandler) GetAllUsers(c echo.Context) error { return h.users.getAll()(c) }

func (h *UserHandler) GetUser(c echo.Context) error { return h.users.getOne()(c) }

// CreateUser always fails; accounts are created through signup.
func (h *UserHandler) CreateUser(c echo.Context) error { return h.users.createOne()(c) }

func (h *UserHandler) UpdateUser(c echo.Context) error { return h.users.updateOne()(c) }

func (h *UserHandler) DeleteUser(c echo.Context) error { return h.users.deleteOne()(c) }

// GetMe returns the logged-in user.
func (h *UserHandler) GetMe(c echo.Context) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.Get(c.Request().Context(), me.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Document(c, http.StatusOK, user)
}

// UpdateMe changes name, email and photo of the logged-in user.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	input, closers, err := updateMeInput(c)
	if err != nil {
		return err
	}
	defer closeAll(closers)

	user, err := h.userUC.UpdateMe(c.Request().Context(), me.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, response.UserData{User: user})
}

// DeleteMe deactivates the logged-in user.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteMe(c.Request().Context(), me.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// updateMeInput reads a JSON body or a multipart form with an optional photo upload.
func updateMeInput(c echo.Context) (*usecase.UpdateMeInput, []io.Closer, error) {
	input := &usecase.UpdateMeInput{}
	if !isMultipart(c) {
		if err := bindBody(c, input); err != nil {
			return nil, nil, err
		}

		return input, nil, nil
	}

	form, err := parseMultipart(c)
	if err != nil {
		return nil, nil, err
	}
	input.Name = formValue(c, "name")
	input.Email = formValue(c, "email")
	input.Password = formValue(c, "password")
	input.PasswordConfirm = formValue(c, "passwordConfirm")

	photos, closers, err := openUploads(form, "photo", 1)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	if len(photos) > 0 {
		input.Photo = photos[0]
	}

	return input, closers, nil
}
