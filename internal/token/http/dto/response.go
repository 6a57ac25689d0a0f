package dto

import (
	"time"

	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
)

// IssueTokensResponse contains the result of issuing a batch of tokens.
// SECURITY: The token values are only returned once, at issuance.
type IssueTokensResponse struct {
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
}

// RedeemTokenResponse contains the outcome of a redemption attempt. For an
// already used token it carries the original consumption attribution.
type RedeemTokenResponse struct {
	Status string    `json:"status"`
	UsedAt time.Time `json:"used_at"`
	UsedBy string    `json:"used_by"`
}

// MapRedeemResultToResponse converts a domain redeem result to an API response.
func MapRedeemResultToResponse(result *tokenDomain.RedeemResult) RedeemTokenResponse {
	return RedeemTokenResponse{
		Status: string(result.Status),
		UsedAt: result.UsedAt,
		UsedBy: result.UsedBy,
	}
}

// TokenStatusResponse is the public view of a token. It intentionally exposes
// nothing beyond the two booleans.
type TokenStatusResponse struct {
	Exists bool `json:"exists"`
	Used   bool `json:"used"`
}

// TokenResponse represents a token in admin API responses.
type TokenResponse struct {
	Token     string     `json:"token"`
	Meta      string     `json:"meta,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	UsedBy    *string    `json:"used_by,omitempty"`
}

// MapTokenToResponse converts a domain token to an API response.
func MapTokenToResponse(token *tokenDomain.Token) TokenResponse {
	return TokenResponse{
		Token:     token.Token,
		Meta:      token.Meta,
		CreatedAt: token.CreatedAt,
		UsedAt:    token.UsedAt,
		UsedBy:    token.UsedBy,
	}
}

// StatsResponse holds aggregate token counts.
type StatsResponse struct {
	Total int64 `json:"total"`
	Used  int64 `json:"used"`
}

// DashboardResponse combines aggregate stats with the most recent tokens.
type DashboardResponse struct {
	Stats  StatsResponse   `json:"stats"`
	Tokens []TokenResponse `json:"tokens"`
}

// MapDashboardToResponse converts dashboard data to an API response.
func MapDashboardToResponse(stats *tokenDomain.Stats, recent []*tokenDomain.Token) DashboardResponse {
	tokenResponses := make([]TokenResponse, 0, len(recent))
	for _, token := range recent {
		tokenResponses = append(tokenResponses, MapTokenToResponse(token))
	}
	return DashboardResponse{
		Stats: StatsResponse{
			Total: stats.Total,
			Used:  stats.Used,
		},
		Tokens: tokenResponses,
	}
}
