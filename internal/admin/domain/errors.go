package domain

import (
	"github.com/ocial123/qr-event-app/internal/errors"
)

// Admin authentication errors.
var (
	// ErrInvalidCredentials covers unknown usernames and wrong passwords so
	// that login responses cannot be used to enumerate admin accounts.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrSessionNotFound indicates a session token that is unknown or expired.
	ErrSessionNotFound = errors.Wrap(errors.ErrUnauthorized, "session not found or expired")
)
