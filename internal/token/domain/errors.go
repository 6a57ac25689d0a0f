package domain

import (
	"github.com/ocial123/qr-event-app/internal/errors"
)

// Token lifecycle errors.
var (
	// ErrTokenNotFound indicates a token with the specified value was not found.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrDuplicateToken indicates the store's uniqueness constraint rejected a
	// token value. Under correct generation this is effectively unreachable,
	// but the constraint is the enforced backstop and the whole batch fails.
	ErrDuplicateToken = errors.Wrap(errors.ErrConflict, "duplicate token")
)
