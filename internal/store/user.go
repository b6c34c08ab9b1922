package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/holocron-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The user must carry a HashedPassword; the
	// store never hashes. Sets user.ID on success.
	// Returns ErrDuplicate if the username or email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// Exists reports whether a user with the ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// List returns every user ordered by ID. An empty store yields an empty slice.
	List(ctx context.Context) ([]*domain.User, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
