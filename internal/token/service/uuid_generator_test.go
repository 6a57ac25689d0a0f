package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	t.Run("Success_GeneratesValidUUID", func(t *testing.T) {
		token, err := gen.Generate()
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		// Validate it's a proper UUID
		parsed, err := uuid.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
	})

	t.Run("Success_GeneratesUniqueTokens", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token, err := gen.Generate()
			assert.NoError(t, err)
			assert.False(t, seen[token], "tokens should be unique")
			seen[token] = true
		}
	})
}

func TestUUIDGenerator_Validate(t *testing.T) {
	gen := NewUUIDGenerator()

	tests := []struct {
		name        string
		token       string
		expectError bool
	}{
		{
			name:        "Valid_UUIDv4",
			token:       "550e8400-e29b-41d4-a716-446655440000",
			expectError: false,
		},
		{
			name:        "Invalid_NotUUID",
			token:       "not-a-uuid",
			expectError: true,
		},
		{
			name:        "Invalid_Empty",
			token:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gen.Validate(tt.token)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
