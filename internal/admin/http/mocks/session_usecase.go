// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	adminDomain "github.com/ocial123/qr-event-app/internal/admin/domain"
)

// MockSessionUseCase is a mock implementation of SessionUseCase for testing.
type MockSessionUseCase struct {
	mock.Mock
}

// Login mocks the Login method of SessionUseCase.
func (m *MockSessionUseCase) Login(
	ctx context.Context,
	input *adminDomain.LoginInput,
) (*adminDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adminDomain.LoginOutput), args.Error(1)
}

// Authenticate mocks the Authenticate method of SessionUseCase.
func (m *MockSessionUseCase) Authenticate(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.Admin, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adminDomain.Admin), args.Error(1)
}
