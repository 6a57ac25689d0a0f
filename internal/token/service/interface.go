// Package service provides token value generation for the issuer.
package service

// TokenGenerator creates globally-unique opaque token values.
type TokenGenerator interface {
	// Generate returns a new token value rendered as a canonical string.
	Generate() (string, error)

	// Validate checks if the value has the expected token format.
	Validate(token string) error
}
