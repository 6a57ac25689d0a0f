// Package repository implements admin session persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	adminDomain "github.com/ocial123/qr-event-app/internal/admin/domain"
	"github.com/ocial123/qr-event-app/internal/database"
	apperrors "github.com/ocial123/qr-event-app/internal/errors"
)

// PostgreSQLSessionRepository implements Session persistence for PostgreSQL.
// Uses transaction support via database.GetTx().
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// Create inserts a new Session and assigns its store-generated ID.
func (p *PostgreSQLSessionRepository) Create(
	ctx context.Context,
	session *adminDomain.Session,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO admin_sessions (token_hash, username, created_at, expires_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		session.TokenHash,
		session.Username,
		session.CreatedAt,
		session.ExpiresAt,
	).Scan(&session.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create admin session")
	}

	return nil
}

// GetByTokenHash retrieves a Session by its token hash. Returns
// ErrSessionNotFound if no session matches.
func (p *PostgreSQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token_hash, username, created_at, expires_at
			  FROM admin_sessions WHERE token_hash = $1`

	var session adminDomain.Session

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&session.ID,
		&session.TokenHash,
		&session.Username,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, adminDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get admin session")
	}

	return &session, nil
}

// DeleteExpired removes sessions whose expiration time has passed.
// Returns the number of sessions removed.
func (p *PostgreSQLSessionRepository) DeleteExpired(
	ctx context.Context,
	now time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM admin_sessions WHERE expires_at <= $1`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired sessions")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get rows affected")
	}

	return rowsAffected, nil
}

// NewPostgreSQLSessionRepository creates a new PostgreSQL Session repository.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}
