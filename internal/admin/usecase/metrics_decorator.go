package usecase

import (
	"context"
	"time"

	adminDomain "github.com/ocial123/qr-event-app/internal/admin/domain"
	"github.com/ocial123/qr-event-app/internal/metrics"
)

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a session UseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for admin login attempts.
func (s *sessionUseCaseWithMetrics) Login(
	ctx context.Context,
	input *adminDomain.LoginInput,
) (*adminDomain.LoginOutput, error) {
	start := time.Now()
	output, err := s.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "admin", "login", status)
	s.metrics.RecordDuration(ctx, "admin", "login", time.Since(start), status)

	return output, err
}

// Authenticate records metrics for session resolution.
func (s *sessionUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.Admin, error) {
	start := time.Now()
	admin, err := s.next.Authenticate(ctx, tokenHash)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "admin", "authenticate", status)
	s.metrics.RecordDuration(ctx, "admin", "authenticate", time.Since(start), status)

	return admin, err
}
