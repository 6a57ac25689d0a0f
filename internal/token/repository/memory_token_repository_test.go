package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
)

func TestMemoryTokenRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTokenRepository()

	token := &tokenDomain.Token{
		Token:     "token-1",
		Meta:      "gate-A",
		CreatedAt: time.Now().UTC(),
	}

	err := repo.Create(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), token.ID)

	// Same value again violates uniqueness.
	err = repo.Create(ctx, &tokenDomain.Token{Token: "token-1", CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, tokenDomain.ErrDuplicateToken)
}

func TestMemoryTokenRepository_GetByValue(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTokenRepository()

	_, err := repo.GetByValue(ctx, "missing")
	assert.ErrorIs(t, err, tokenDomain.ErrTokenNotFound)

	require.NoError(t, repo.Create(ctx, &tokenDomain.Token{
		Token:     "token-1",
		CreatedAt: time.Now().UTC(),
	}))

	token, err := repo.GetByValue(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, token.Used())

	// Mutating the returned copy must not leak into the store.
	bogus := time.Now().UTC()
	token.UsedAt = &bogus

	again, err := repo.GetByValue(ctx, "token-1")
	require.NoError(t, err)
	assert.Nil(t, again.UsedAt)
}

func TestMemoryTokenRepository_TryRedeem(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("RedeemThenAlreadyRedeemed", func(t *testing.T) {
		repo := NewMemoryTokenRepository()
		require.NoError(t, repo.Create(ctx, &tokenDomain.Token{
			Token:     "token-1",
			CreatedAt: now.Add(-time.Hour),
		}))

		outcome, err := repo.TryRedeem(ctx, "token-1", "first-admin", now)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.RedeemOutcomeRedeemed, outcome.Status)

		later := now.Add(time.Minute)
		outcome, err = repo.TryRedeem(ctx, "token-1", "second-admin", later)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.RedeemOutcomeAlreadyRedeemed, outcome.Status)
		require.NotNil(t, outcome.UsedAt)
		require.NotNil(t, outcome.UsedBy)
		assert.Equal(t, now, *outcome.UsedAt)
		assert.Equal(t, "first-admin", *outcome.UsedBy)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := NewMemoryTokenRepository()
		outcome, err := repo.TryRedeem(ctx, "missing", "admin", now)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.RedeemOutcomeNotFound, outcome.Status)
	})
}

// Fifty concurrent redemption attempts on the same token must yield exactly
// one winner, with every other caller observing the winner's redemption.
func TestMemoryTokenRepository_TryRedeem_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTokenRepository()

	require.NoError(t, repo.Create(ctx, &tokenDomain.Token{
		Token:     "contested-token",
		CreatedAt: time.Now().UTC(),
	}))

	const attempts = 50
	outcomes := make([]*tokenDomain.RedeemOutcome, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = repo.TryRedeem(
				ctx,
				"contested-token",
				"admin",
				time.Now().UTC(),
			)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var redeemed, alreadyRedeemed int
	for _, outcome := range outcomes {
		switch outcome.Status {
		case tokenDomain.RedeemOutcomeRedeemed:
			redeemed++
		case tokenDomain.RedeemOutcomeAlreadyRedeemed:
			alreadyRedeemed++
		default:
			t.Fatalf("unexpected outcome status %q", outcome.Status)
		}
	}

	assert.Equal(t, 1, redeemed)
	assert.Equal(t, attempts-1, alreadyRedeemed)

	// The store ends with exactly one redeemed row.
	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Used)
}

func TestMemoryTokenRepository_Recent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTokenRepository()

	base := time.Now().UTC()
	for i, value := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &tokenDomain.Token{
			Token:     value,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	tokens, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "third", tokens[0].Token)
	assert.Equal(t, "second", tokens[1].Token)
}
