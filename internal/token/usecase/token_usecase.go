// Package usecase implements business logic orchestration for the token lifecycle.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ocial123/qr-event-app/internal/database"
	apperrors "github.com/ocial123/qr-event-app/internal/errors"
	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
	tokenService "github.com/ocial123/qr-event-app/internal/token/service"
)

// tokenUseCase implements UseCase for the redemption token lifecycle.
type tokenUseCase struct {
	txManager database.TxManager
	tokenRepo TokenRepository
	generator tokenService.TokenGenerator
}

// Issue generates count independent random token values and persists them
// inside a single transaction. A store-level uniqueness violation rolls back
// the whole batch: the caller never sees partial success.
func (t *tokenUseCase) Issue(
	ctx context.Context,
	input *tokenDomain.IssueInput,
) (*tokenDomain.IssueOutput, error) {
	if input.Count <= 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "count must be a positive integer")
	}

	createdAt := time.Now().UTC()
	tokens := make([]string, 0, input.Count)

	err := t.txManager.WithTx(ctx, func(ctx context.Context) error {
		for i := 0; i < input.Count; i++ {
			value, err := t.generator.Generate()
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			token := &tokenDomain.Token{
				Token:     value,
				Meta:      input.Meta,
				CreatedAt: createdAt,
			}

			if err := t.tokenRepo.Create(ctx, token); err != nil {
				return err
			}

			tokens = append(tokens, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &tokenDomain.IssueOutput{Tokens: tokens}, nil
}

// Redeem performs the at-most-once consumption of a token. The caller must
// pass a resolved admin identity; this method does not authenticate.
//
// Outcome mapping:
//   - malformed token value -> ErrTokenNotFound
//   - store NotFound -> ErrTokenNotFound
//   - store AlreadyRedeemed -> RedeemResult with the original used_at/used_by
//   - store Redeemed -> RedeemResult attributed to this call
func (t *tokenUseCase) Redeem(
	ctx context.Context,
	input *tokenDomain.RedeemInput,
) (*tokenDomain.RedeemResult, error) {
	if input.Token == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token must not be empty")
	}
	if input.RedeemedBy == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "redeemer identity must not be empty")
	}

	// A value that fails format validation was never issued.
	if err := t.generator.Validate(input.Token); err != nil {
		return nil, tokenDomain.ErrTokenNotFound
	}

	outcome, err := t.tokenRepo.TryRedeem(ctx, input.Token, input.RedeemedBy, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	switch outcome.Status {
	case tokenDomain.RedeemOutcomeRedeemed:
		return &tokenDomain.RedeemResult{
			Status: tokenDomain.RedeemResultRedeemed,
			UsedAt: *outcome.UsedAt,
			UsedBy: *outcome.UsedBy,
		}, nil

	case tokenDomain.RedeemOutcomeAlreadyRedeemed:
		return &tokenDomain.RedeemResult{
			Status: tokenDomain.RedeemResultAlreadyUsed,
			UsedAt: *outcome.UsedAt,
			UsedBy: *outcome.UsedBy,
		}, nil

	case tokenDomain.RedeemOutcomeNotFound:
		return nil, tokenDomain.ErrTokenNotFound

	default:
		return nil, fmt.Errorf("unexpected redeem outcome status: %s", outcome.Status)
	}
}

// Lookup returns the public existence/used view of a token. An unknown token
// yields {Exists: false, Used: false} rather than an error so that callers
// cannot distinguish states beyond the two booleans.
func (t *tokenUseCase) Lookup(
	ctx context.Context,
	tokenValue string,
) (*tokenDomain.StatusOutput, error) {
	// A value that fails format validation was never issued, so the store
	// round trip is skipped.
	if err := t.generator.Validate(tokenValue); err != nil {
		return &tokenDomain.StatusOutput{Exists: false, Used: false}, nil
	}

	token, err := t.tokenRepo.GetByValue(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, tokenDomain.ErrTokenNotFound) {
			return &tokenDomain.StatusOutput{Exists: false, Used: false}, nil
		}
		return nil, err
	}

	return &tokenDomain.StatusOutput{
		Exists: true,
		Used:   token.Used(),
	}, nil
}

// Dashboard returns aggregate stats and the most recently created tokens.
func (t *tokenUseCase) Dashboard(ctx context.Context, limit int) (*DashboardOutput, error) {
	stats, err := t.tokenRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := t.tokenRepo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &DashboardOutput{
		Stats:  stats,
		Recent: recent,
	}, nil
}

// NewTokenUseCase creates a new token UseCase with the provided dependencies.
func NewTokenUseCase(
	txManager database.TxManager,
	tokenRepo TokenRepository,
	generator tokenService.TokenGenerator,
) UseCase {
	return &tokenUseCase{
		txManager: txManager,
		tokenRepo: tokenRepo,
		generator: generator,
	}
}
