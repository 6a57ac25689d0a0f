// Package service provides technical services for admin authentication.
//
// This package implements credential verification against the configured
// allow-list and session token generation using cryptographically secure
// randomness.
package service

// CredentialService verifies admin credentials against the configured
// allow-list of username to Argon2id password hash pairs.
type CredentialService interface {
	// Verify compares a plain text password against the stored hash for the
	// given username. Returns false for unknown usernames and wrong
	// passwords alike.
	Verify(username string, password string) bool

	// HashPassword hashes a plain text password using Argon2id. Used to
	// produce allow-list entries.
	HashPassword(plainPassword string) (hashedPassword string, err error)
}

// SessionTokenService defines operations for session token generation and
// hashing. Implementations must use cryptographically secure random
// generation and fast hashing algorithms suitable for session tokens
// (e.g., SHA-256).
type SessionTokenService interface {
	// GenerateToken creates a new cryptographically secure random token.
	// Returns both the plain text token (to be shared with the admin) and
	// the hashed version (to be stored in the database).
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken hashes a plain text token using SHA-256.
	// Used for session validation by comparing hashes.
	HashToken(plainToken string) string
}
