// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"strings"

	domainerrors "dealerlot/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// requestValidator wraps a validator instance for echo.
type requestValidator struct {
	validate *playground.Validate
}

// New constructs the echo request validator.
func New() *requestValidator {
	return &requestValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Constraint violations are converted into a
// ValidationError carrying one human-readable message per failed field.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fieldMessage(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(details...)
}

func fieldMessage(fieldErr playground.FieldError) string {
	field := lowerFirst(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "alphanum":
		return fmt.Sprintf("%s may only contain alphanumeric characters", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
