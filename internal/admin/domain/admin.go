// Package domain defines core entities for admin authentication.
package domain

import "time"

// Admin is a resolved operator identity from the configured allow-list.
type Admin struct {
	Username string
}

// Session is a server-side admin session. Only the SHA-256 hash of the
// session token is stored; the plain token exists client-side only.
type Session struct {
	ID        int64
	TokenHash string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiration time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// LoginInput contains the credentials presented to Login.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the session token issued by a successful login.
// SECURITY: The plain token is only returned once.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}
