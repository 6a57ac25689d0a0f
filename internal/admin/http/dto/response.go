package dto

import "time"

// LoginResponse contains the result of a successful login.
// SECURITY: The session token is only returned once and must be saved securely.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
