// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "storefront/internal/domain/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New constructs the Echo request validator.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs struct-tag validation and converts failures into the
// application error taxonomy so the error handler renders them as 400s.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
