// Package validator adapts go-playground validation to Echo's Validator hook.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	domainerrors "garage/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance for Echo.
type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator. Field names in violation messages come
// from the json tags so clients see the wire names, not Go identifiers.
func New() *echoValidator {
	validate := playground.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	return &echoValidator{validate: validate}
}

// Validate checks a bound request struct and converts every failed rule into
// one human-readable violation. All violations are reported together, not just
// the first.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors playground.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	violations := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, describe(fe))
	}

	return domainerrors.NewValidationError(violations)
}

// describe renders one violation in plain language keyed by the wire field name.
func describe(fe playground.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", field, strings.ReplaceAll(fe.Param(), "2006-01-02", "YYYY-MM-DD"))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
