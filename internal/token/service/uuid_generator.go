package service

import (
	"errors"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

// NewUUIDGenerator creates a new UUID token generator. Generates random
// (version 4) UUIDs: 128 bits from crypto/rand, rendered canonically, so
// collision probability is negligible by construction.
func NewUUIDGenerator() TokenGenerator {
	return &uuidGenerator{}
}

// Generate creates a new random UUID token value.
func (g *uuidGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Validate checks if the token is a valid UUID format.
func (g *uuidGenerator) Validate(token string) error {
	_, err := uuid.Parse(token)
	if err != nil {
		return errors.New("invalid UUID format")
	}
	return nil
}
