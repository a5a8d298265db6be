// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "costbook/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates an Echo validator backed by go-playground/validator struct tags.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

// Validate checks the struct tags and maps failures to the domain's
// validation error so the error middleware renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
