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

// MySQLTokenRepository implements Token persistence for MySQL.
// Uses transaction support via database.GetTx().
type MySQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new Token and assigns its store-generated ID. Returns
// ErrDuplicateToken if the token value violates the uniqueness constraint.
func (m *MySQLTokenRepository) Create(ctx context.Context, token *tokenDomain.Token) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO tokens (token, meta, created_at)
			  VALUES (?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		token.Token,
		token.Meta,
		token.CreatedAt,
	)
	if err != nil {
		if isMySQLDuplicateKeyError(err) {
			return tokenDomain.ErrDuplicateToken
		}
		return apperrors.Wrap(err, "failed to create token")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted token id")
	}
	token.ID = id

	return nil
}

// GetByValue retrieves a Token by its opaque string value. Returns
// ErrTokenNotFound if the token doesn't exist.
func (m *MySQLTokenRepository) GetByValue(
	ctx context.Context,
	tokenValue string,
) (*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token, meta, created_at, used_at, used_by
			  FROM tokens WHERE token = ?`

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
// redeemed. See PostgreSQLTokenRepository.TryRedeem for the concurrency
// contract; the guarded UPDATE is identical.
func (m *MySQLTokenRepository) TryRedeem(
	ctx context.Context,
	tokenValue string,
	usedBy string,
	now time.Time,
) (*tokenDomain.RedeemOutcome, error) {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE tokens
			  SET used_at = ?, used_by = ?
			  WHERE token = ? AND used_at IS NULL`

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

	token, err := m.GetByValue(ctx, tokenValue)
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
func (m *MySQLTokenRepository) Stats(ctx context.Context) (*tokenDomain.Stats, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLTokenRepository) Recent(
	ctx context.Context,
	limit int,
) ([]*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token, meta, created_at, used_at, used_by
			  FROM tokens
			  ORDER BY created_at DESC, id DESC
			  LIMIT ?`

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

// isMySQLDuplicateKeyError checks if the error is a unique constraint violation.
func isMySQLDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

// NewMySQLTokenRepository creates a new MySQL Token repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}
