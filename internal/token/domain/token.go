// Package domain defines the redemption token entity and its lifecycle types.
package domain

import (
	"time"
)

// Token represents a single-use redemption token. The zero state is unredeemed:
// UsedAt and UsedBy are nil until the token is redeemed, and they are set
// together, exactly once.
type Token struct {
	ID        int64
	Token     string
	Meta      string
	CreatedAt time.Time
	UsedAt    *time.Time
	UsedBy    *string
}

// Used reports whether the token has been redeemed.
func (t *Token) Used() bool {
	return t.UsedAt != nil
}

// RedeemOutcomeStatus enumerates the possible results of a conditional redeem.
type RedeemOutcomeStatus string

const (
	// RedeemOutcomeRedeemed means this call won the transition to redeemed.
	RedeemOutcomeRedeemed RedeemOutcomeStatus = "redeemed"

	// RedeemOutcomeAlreadyRedeemed means an earlier call already redeemed the
	// token; UsedAt and UsedBy carry the winning redemption's facts.
	RedeemOutcomeAlreadyRedeemed RedeemOutcomeStatus = "already_redeemed"

	// RedeemOutcomeNotFound means no token with that value exists.
	RedeemOutcomeNotFound RedeemOutcomeStatus = "not_found"
)

// RedeemOutcome is the result of a store-level conditional redeem attempt.
type RedeemOutcome struct {
	Status RedeemOutcomeStatus
	UsedAt *time.Time
	UsedBy *string
}

// Stats holds aggregate token counts.
type Stats struct {
	Total int64
	Used  int64
}

// IssueInput contains the parameters for issuing a batch of tokens.
type IssueInput struct {
	Count int
	Meta  string
}

// IssueOutput contains the issued token strings in generation order.
type IssueOutput struct {
	Tokens []string
}

// RedeemInput contains the parameters for redeeming a token. RedeemedBy is a
// resolved admin identity, never raw credentials.
type RedeemInput struct {
	Token      string
	RedeemedBy string
}

// RedeemResultStatus enumerates the business outcomes of a redemption attempt.
type RedeemResultStatus string

const (
	// RedeemResultRedeemed means the token was consumed by this call.
	RedeemResultRedeemed RedeemResultStatus = "redeemed"

	// RedeemResultAlreadyUsed means the token was consumed by a previous call.
	// This is an expected, reportable state, not an error.
	RedeemResultAlreadyUsed RedeemResultStatus = "already_used"
)

// RedeemResult is the outcome of a redemption attempt. UsedAt and UsedBy are
// set for both statuses: for a fresh redemption they describe this call, for
// an already-used token they describe the original redemption.
type RedeemResult struct {
	Status RedeemResultStatus
	UsedAt time.Time
	UsedBy string
}

// StatusOutput is the public view of a token. It intentionally carries nothing
// beyond existence and used state.
type StatusOutput struct {
	Exists bool
	Used   bool
}
