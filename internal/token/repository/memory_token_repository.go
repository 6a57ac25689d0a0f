package repository

import (
	"context"
	"sync"
	"time"

	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
)

// MemoryTokenRepository implements Token persistence in process memory. A
// single mutex serializes all mutations, which makes the conditional redeem
// trivially atomic. Used by tests and suitable for local development; data
// does not survive a restart.
type MemoryTokenRepository struct {
	mu     sync.Mutex
	nextID int64
	tokens map[string]*tokenDomain.Token
	order  []string
}

// NewMemoryTokenRepository creates an empty in-memory Token repository.
func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{
		nextID: 1,
		tokens: make(map[string]*tokenDomain.Token),
	}
}

// Create stores a new Token and assigns its ID. Returns ErrDuplicateToken if
// the token value already exists.
func (m *MemoryTokenRepository) Create(ctx context.Context, token *tokenDomain.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tokens[token.Token]; exists {
		return tokenDomain.ErrDuplicateToken
	}

	stored := *token
	stored.ID = m.nextID
	m.nextID++

	m.tokens[token.Token] = &stored
	m.order = append(m.order, token.Token)
	token.ID = stored.ID

	return nil
}

// GetByValue retrieves a copy of the Token with the given value. Returns
// ErrTokenNotFound if the token doesn't exist.
func (m *MemoryTokenRepository) GetByValue(
	ctx context.Context,
	tokenValue string,
) (*tokenDomain.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, exists := m.tokens[tokenValue]
	if !exists {
		return nil, tokenDomain.ErrTokenNotFound
	}

	token := *stored
	return &token, nil
}

// TryRedeem atomically transitions the token from unredeemed to redeemed
// while holding the repository mutex, so concurrent calls on the same token
// have exactly one winner.
func (m *MemoryTokenRepository) TryRedeem(
	ctx context.Context,
	tokenValue string,
	usedBy string,
	now time.Time,
) (*tokenDomain.RedeemOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, exists := m.tokens[tokenValue]
	if !exists {
		return &tokenDomain.RedeemOutcome{
			Status: tokenDomain.RedeemOutcomeNotFound,
		}, nil
	}

	if stored.UsedAt != nil {
		return &tokenDomain.RedeemOutcome{
			Status: tokenDomain.RedeemOutcomeAlreadyRedeemed,
			UsedAt: stored.UsedAt,
			UsedBy: stored.UsedBy,
		}, nil
	}

	usedAt := now
	by := usedBy
	stored.UsedAt = &usedAt
	stored.UsedBy = &by

	return &tokenDomain.RedeemOutcome{
		Status: tokenDomain.RedeemOutcomeRedeemed,
		UsedAt: stored.UsedAt,
		UsedBy: stored.UsedBy,
	}, nil
}

// Stats returns aggregate token counts.
func (m *MemoryTokenRepository) Stats(ctx context.Context) (*tokenDomain.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &tokenDomain.Stats{Total: int64(len(m.tokens))}
	for _, token := range m.tokens {
		if token.UsedAt != nil {
			stats.Used++
		}
	}

	return stats, nil
}

// Recent retrieves up to limit tokens ordered newest-created first.
func (m *MemoryTokenRepository) Recent(
	ctx context.Context,
	limit int,
) ([]*tokenDomain.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var tokens []*tokenDomain.Token
	for i := len(m.order) - 1; i >= 0 && len(tokens) < limit; i-- {
		token := *m.tokens[m.order[i]]
		tokens = append(tokens, &token)
	}

	return tokens, nil
}
