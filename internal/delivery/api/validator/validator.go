// Package validator plugs the domain validation rules into echo.
package validator

import (
	"natours/internal/domain/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared rule set.
type CustomValidator struct{}

var _ echo.Validator = (*CustomValidator)(nil)

// New creates the validator installed on the echo instance.
func New() *CustomValidator {
	return &CustomValidator{}
}

// Validate returns a *ValidationError listing every failed rule of i.
func (cv *CustomValidator) Validate(i any) error {
	return validation.Struct(i)
}
