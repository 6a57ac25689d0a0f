// Package errors provides the shared sentinel errors of the token service.
// Domain packages wrap these with business-specific messages; handlers map
// them to HTTP status codes without inspecting error strings.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels shared by the token and admin modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate token value).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// Wrap adds context to an error while preserving the error chain, so a
// sentinel stays matchable through every layer.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
