package usecase

import (
	"context"
	"time"

	"github.com/ocial123/qr-event-app/internal/metrics"
	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
)

// useCaseWithMetrics decorates UseCase with metrics instrumentation.
type useCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUseCaseWithMetrics wraps a token UseCase with metrics recording.
func NewUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &useCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance operations.
func (u *useCaseWithMetrics) Issue(
	ctx context.Context,
	input *tokenDomain.IssueInput,
) (*tokenDomain.IssueOutput, error) {
	start := time.Now()
	output, err := u.next.Issue(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "token", "issue", status)
	u.metrics.RecordDuration(ctx, "token", "issue", time.Since(start), status)

	return output, err
}

// Redeem records metrics for redemption operations. An already-used token is a
// success from the instrumentation's point of view: the operation completed.
func (u *useCaseWithMetrics) Redeem(
	ctx context.Context,
	input *tokenDomain.RedeemInput,
) (*tokenDomain.RedeemResult, error) {
	start := time.Now()
	result, err := u.next.Redeem(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "token", "redeem", status)
	u.metrics.RecordDuration(ctx, "token", "redeem", time.Since(start), status)

	return result, err
}

// Lookup records metrics for public status lookups.
func (u *useCaseWithMetrics) Lookup(
	ctx context.Context,
	tokenValue string,
) (*tokenDomain.StatusOutput, error) {
	start := time.Now()
	output, err := u.next.Lookup(ctx, tokenValue)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "token", "lookup", status)
	u.metrics.RecordDuration(ctx, "token", "lookup", time.Since(start), status)

	return output, err
}

// Dashboard records metrics for dashboard reads.
func (u *useCaseWithMetrics) Dashboard(ctx context.Context, limit int) (*DashboardOutput, error) {
	start := time.Now()
	output, err := u.next.Dashboard(ctx, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "token", "dashboard", status)
	u.metrics.RecordDuration(ctx, "token", "dashboard", time.Since(start), status)

	return output, err
}
