// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/ocial123/qr-event-app/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// notBlankRule rejects strings that are empty or contain only whitespace.
// Implemented as a plain Rule because string rules built with
// NewStringRuleWithError skip empty values and NotBlank must fire on them too.
type notBlankRule struct{}

// Validate checks that the value is a non-blank string
func (notBlankRule) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_not_blank", "must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "must not be blank")
	}
	return nil
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank validation.Rule = notBlankRule{}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)
