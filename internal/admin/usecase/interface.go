// Package usecase implements business logic orchestration for admin sessions.
package usecase

import (
	"context"
	"time"

	adminDomain "github.com/ocial123/qr-event-app/internal/admin/domain"
)

// SessionRepository defines persistence operations for admin sessions.
type SessionRepository interface {
	// Create inserts a new Session and assigns its store-generated ID.
	Create(ctx context.Context, session *adminDomain.Session) error

	// GetByTokenHash retrieves a Session by its token hash. Returns
	// ErrSessionNotFound if no session matches.
	GetByTokenHash(ctx context.Context, tokenHash string) (*adminDomain.Session, error)

	// DeleteExpired removes sessions whose expiration time has passed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SessionUseCase defines the admin session operations.
type SessionUseCase interface {
	// Login verifies credentials against the allow-list and issues a new
	// session token. Unknown usernames and wrong passwords both return
	// ErrInvalidCredentials.
	Login(ctx context.Context, input *adminDomain.LoginInput) (*adminDomain.LoginOutput, error)

	// Authenticate resolves a session token hash to an Admin identity.
	// Unknown and expired sessions return ErrSessionNotFound.
	Authenticate(ctx context.Context, tokenHash string) (*adminDomain.Admin, error)
}
