package util

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// notBlankRule rejects strings made only of whitespace
func notBlankRule(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// RegisterNotBlank registers the "notblank" validation tag with v.
// Registering twice is not an error.
func RegisterNotBlank(v *validator.Validate) error {
	err := v.RegisterValidation("notblank", notBlankRule)
	if err != nil && err.Error() == "validator: tag 'notblank' already exists" {
		return nil
	}
	return err
}

// NewValidator returns a validator with the project's custom tags registered
func NewValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterNotBlank(v); err != nil {
		return nil, err
	}
	return v, nil
}
