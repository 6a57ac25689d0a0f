// Package usecase defines business logic interfaces for the redemption token lifecycle.
package usecase

import (
	"context"
	"time"

	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
)

// TokenRepository defines persistence operations for redemption tokens.
// Implementations must support transaction-aware operations via context propagation.
type TokenRepository interface {
	// Create stores a new token, assigning its store-generated ID.
	// Returns ErrDuplicateToken if the token value already exists.
	Create(ctx context.Context, token *tokenDomain.Token) error

	// GetByValue retrieves a token by its opaque string value.
	// Returns ErrTokenNotFound if not found.
	GetByValue(ctx context.Context, tokenValue string) (*tokenDomain.Token, error)

	// TryRedeem atomically transitions the token to redeemed if and only if it
	// is currently unredeemed. Concurrent calls on the same token have exactly
	// one Redeemed outcome; the rest observe the winner's redemption.
	TryRedeem(
		ctx context.Context,
		tokenValue string,
		usedBy string,
		now time.Time,
	) (*tokenDomain.RedeemOutcome, error)

	// Stats returns aggregate token counts.
	Stats(ctx context.Context) (*tokenDomain.Stats, error)

	// Recent retrieves up to limit tokens, newest-created first.
	Recent(ctx context.Context, limit int) ([]*tokenDomain.Token, error)
}

// UseCase defines the business operations of the token lifecycle: batch
// issuance, admin-attributed redemption, the public status lookup, and the
// admin dashboard view.
type UseCase interface {
	// Issue generates and persists a batch of unredeemed tokens. The whole
	// batch is created in one transaction; a duplicate value fails everything.
	// Returns ErrInvalidInput if the count is not positive.
	Issue(ctx context.Context, input *tokenDomain.IssueInput) (*tokenDomain.IssueOutput, error)

	// Redeem attempts the one-time consumption of a token attributed to a
	// resolved admin identity. An already-used token is a reportable outcome,
	// not an error. Returns ErrInvalidInput for an empty token value and
	// ErrTokenNotFound for an unknown one.
	Redeem(ctx context.Context, input *tokenDomain.RedeemInput) (*tokenDomain.RedeemResult, error)

	// Lookup is the public, side-effect-free status query. It reveals nothing
	// beyond existence and used state; an unknown token is not an error.
	Lookup(ctx context.Context, tokenValue string) (*tokenDomain.StatusOutput, error)

	// Dashboard returns aggregate counts plus the most recently created tokens.
	Dashboard(ctx context.Context, limit int) (*DashboardOutput, error)
}

// DashboardOutput bundles stats and the recent-token listing for the admin view.
type DashboardOutput struct {
	Stats  *tokenDomain.Stats
	Recent []*tokenDomain.Token
}
