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

// MySQLSessionRepository implements Session persistence for MySQL.
// Uses transaction support via database.GetTx().
type MySQLSessionRepository struct {
	db *sql.DB
}

// Create inserts a new Session and assigns its store-generated ID.
func (m *MySQLSessionRepository) Create(
	ctx context.Context,
	session *adminDomain.Session,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO admin_sessions (token_hash, username, created_at, expires_at)
			  VALUES (?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		session.TokenHash,
		session.Username,
		session.CreatedAt,
		session.ExpiresAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create admin session")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get last insert id")
	}
	session.ID = id

	return nil
}

// GetByTokenHash retrieves a Session by its token hash. Returns
// ErrSessionNotFound if no session matches.
func (m *MySQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.Session, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token_hash, username, created_at, expires_at
			  FROM admin_sessions WHERE token_hash = ?`

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
func (m *MySQLSessionRepository) DeleteExpired(
	ctx context.Context,
	now time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM admin_sessions WHERE expires_at <= ?`

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

// NewMySQLSessionRepository creates a new MySQL Session repository.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}
