package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	apperrors "github.com/ocial123/qr-event-app/internal/errors"
)

// sessionTokenService implements SessionTokenService using SHA-256 for token hashing.
type sessionTokenService struct{}

// GenerateToken creates a new cryptographically secure 32-byte random token.
// The token is base64 URL-encoded for easy transmission and storage.
// Returns the plain token and its SHA-256 hash.
func (s *sessionTokenService) GenerateToken() (plainToken string, tokenHash string, err error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}

	plainToken = base64.URLEncoding.EncodeToString(randomBytes)
	tokenHash = s.HashToken(plainToken)

	return plainToken, tokenHash, nil
}

// HashToken hashes a plain text token using SHA-256.
// Returns the hash as a hexadecimal string.
func (s *sessionTokenService) HashToken(plainToken string) string {
	hash := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(hash[:])
}

// NewSessionTokenService creates a new SessionTokenService instance using SHA-256 hashing.
func NewSessionTokenService() SessionTokenService {
	return &sessionTokenService{}
}
