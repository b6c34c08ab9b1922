package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/holocron-api/internal/domain"
)

// FavoriteStore defines persistence of favorite links. Each kind lives in its
// own table with a UNIQUE (user_id, item_id) constraint.
type FavoriteStore interface {
	// Create inserts the link and sets link.ID.
	// Returns ErrDuplicate when the (user, item) pair already exists for the kind,
	// and ErrInvalidEntity when the user or item does not exist.
	Create(ctx context.Context, link *domain.FavoriteLink) error

	// Get returns the link for the triple, or ErrFavoriteNotFound.
	Get(ctx context.Context, userID, itemID int64, kind domain.Kind) (*domain.FavoriteLink, error)

	// Delete removes the link for the triple in a single statement.
	// Returns ErrFavoriteNotFound when no row matched.
	Delete(ctx context.Context, userID, itemID int64, kind domain.Kind) error

	// ListByUser returns the favorited catalog items of a user grouped by kind.
	// Groups are empty, never nil. It does not check that the user exists.
	ListByUser(ctx context.Context, userID int64) (*domain.Favorites, error)

	// ListAll returns the favorites of every user keyed by user ID, with one
	// query per kind. Users without favorites are absent from the map.
	ListAll(ctx context.Context) (map[int64]*domain.Favorites, error)

	// WithTx returns a new FavoriteStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) FavoriteStore
}
