// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
	tokenUseCase "github.com/ocial123/qr-event-app/internal/token/usecase"
)

// MockTokenUseCase is a mock implementation of UseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// Issue mocks the Issue method of UseCase.
func (m *MockTokenUseCase) Issue(
	ctx context.Context,
	input *tokenDomain.IssueInput,
) (*tokenDomain.IssueOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.IssueOutput), args.Error(1)
}

// Redeem mocks the Redeem method of UseCase.
func (m *MockTokenUseCase) Redeem(
	ctx context.Context,
	input *tokenDomain.RedeemInput,
) (*tokenDomain.RedeemResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.RedeemResult), args.Error(1)
}

// Lookup mocks the Lookup method of UseCase.
func (m *MockTokenUseCase) Lookup(
	ctx context.Context,
	tokenValue string,
) (*tokenDomain.StatusOutput, error) {
	args := m.Called(ctx, tokenValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.StatusOutput), args.Error(1)
}

// Dashboard mocks the Dashboard method of UseCase.
func (m *MockTokenUseCase) Dashboard(
	ctx context.Context,
	limit int,
) (*tokenUseCase.DashboardOutput, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenUseCase.DashboardOutput), args.Error(1)
}
