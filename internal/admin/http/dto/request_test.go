package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   LoginRequest
		shouldErr bool
	}{
		{
			name:    "valid request",
			request: LoginRequest{Username: "alice", Password: "password"},
		},
		{
			name:      "missing username",
			request:   LoginRequest{Password: "password"},
			shouldErr: true,
		},
		{
			name:      "missing password",
			request:   LoginRequest{Username: "alice"},
			shouldErr: true,
		},
		{
			name:      "blank username",
			request:   LoginRequest{Username: "   ", Password: "password"},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
