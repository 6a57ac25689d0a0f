// Package repository implements redemption token persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/ocial123/qr-event-app/internal/database"
	apperrors "github.com/ocial123/qr-event-app/internal/errors"
	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
)

// PostgreSQLTokenRepository implements Token persistence for PostgreSQL.
// Uses transaction support via database.GetTx().
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new Token and assigns its store-generated ID. Returns
// ErrDuplicateToken if the token value violates the uniqueness constraint.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *tokenDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tokens (token, meta, created_at)
			  VALUES ($1, $2, $3)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		token.Token,
		token.Meta,
		token.CreatedAt,
	).Scan(&token.ID)
	if err != nil {
		if isPostgresDuplicateKeyError(err) {
			return tokenDomain.ErrDuplicateToken
		}
		return apperrors.Wrap(err, "failed to create token")
	}

	return nil
}

// GetByValue retrieves a Token by its opaque string value. Returns
// ErrTokenNotFound if the token doesn't exist.
func (p *PostgreSQLTokenRepository) GetByValue(
	ctx context.Context,
	tokenValue string,
) (*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token, meta, created_at, used_at, used_by
			  FROM tokens WHERE token = $1`

	var token tokenDomain.Token

	err := querier.QueryRowContext(ctx, query, tokenValue).Scan(
		&token.ID,
		&token.Token,
		&token.Meta,
		&token.CreatedAt,
		&token.UsedAt,
		&token.UsedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tokenDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token")
	}

	return &token, nil
}

// TryRedeem performs the atomic conditional transition from unredeemed to
// redeemed. The UPDATE only matches a row whose used_at is still null, so two
// concurrent calls on the same token produce exactly one affected row: the
// winner gets the Redeemed outcome, everyone else re-reads the row and
// observes the winner's used_at/used_by.
func (p *PostgreSQLTokenRepository) TryRedeem(
	ctx context.Context,
	tokenValue string,
	usedBy string,
	now time.Time,
) (*tokenDomain.RedeemOutcome, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE tokens
			  SET used_at = $1, used_by = $2
			  WHERE token = $3 AND used_at IS NULL`

	result, err := querier.ExecContext(ctx, query, now, usedBy, tokenValue)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to redeem token")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get rows affected")
	}

	if rowsAffected == 1 {
		return &tokenDomain.RedeemOutcome{
			Status: tokenDomain.RedeemOutcomeRedeemed,
			UsedAt: &now,
			UsedBy: &usedBy,
		}, nil
	}

	// No row transitioned: the token is either already redeemed or unknown.
	token, err := p.GetByValue(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, tokenDomain.ErrTokenNotFound) {
			return &tokenDomain.RedeemOutcome{
				Status: tokenDomain.RedeemOutcomeNotFound,
			}, nil
		}
		return nil, err
	}

	return &tokenDomain.RedeemOutcome{
		Status: tokenDomain.RedeemOutcomeAlreadyRedeemed,
		UsedAt: token.UsedAt,
		UsedBy: token.UsedBy,
	}, nil
}

// Stats returns aggregate token counts.
func (p *PostgreSQLTokenRepository) Stats(ctx context.Context) (*tokenDomain.Stats, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*),
			  		 COUNT(used_at)
			  FROM tokens`

	var stats tokenDomain.Stats

	err := querier.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.Used)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get token stats")
	}

	return &stats, nil
}

// Recent retrieves up to limit tokens ordered newest-created first.
func (p *PostgreSQLTokenRepository) Recent(
	ctx context.Context,
	limit int,
) ([]*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token, meta, created_at, used_at, used_by
			  FROM tokens
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1`

	rows, err := querier.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list recent tokens")
	}
	defer rows.Close()

	var tokens []*tokenDomain.Token
	for rows.Next() {
		var token tokenDomain.Token
		err := rows.Scan(
			&token.ID,
			&token.Token,
			&token.Meta,
			&token.CreatedAt,
			&token.UsedAt,
			&token.UsedBy,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan token")
		}
		tokens = append(tokens, &token)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate tokens")
	}

	return tokens, nil
}

// isPostgresDuplicateKeyError checks if the error is a unique constraint violation.
func isPostgresDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL Token repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}
