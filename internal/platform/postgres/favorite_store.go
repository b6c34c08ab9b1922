package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/phrazzld/holocron-api/internal/platform/logger"
	"github.com/phrazzld/holocron-api/internal/store"
)

// PostgresFavoriteStore implements the store.FavoriteStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFavoriteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFavoriteStore creates a new PostgreSQL implementation of the FavoriteStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresFavoriteStore(db store.DBTX, logger *slog.Logger) *PostgresFavoriteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresFavoriteStore{
		db:     db,
		logger: logger.With(slog.String("component", "favorite_store")),
	}
}

// Ensure PostgresFavoriteStore implements store.FavoriteStore interface
var _ store.FavoriteStore = (*PostgresFavoriteStore)(nil)

const (
	favoriteCharactersQuery = `
		SELECT c.id, c.first_name, c.last_name, c.image_url, c.biography, c.birthday, c.gender
		FROM favorite_characters f
		JOIN characters c ON c.id = f.character_id
		WHERE f.user_id = $1
		ORDER BY f.id
	`
	favoritePlanetsQuery = `
		SELECT p.id, p.name, p.image_url, p.history, p.population, p.terrain, p.inhabitants, p.language
		FROM favorite_planets f
		JOIN planets p ON p.id = f.planet_id
		WHERE f.user_id = $1
		ORDER BY f.id
	`
	favoriteVehiclesQuery = `
		SELECT v.id, v.name, v.type, v.passengers
		FROM favorite_vehicles f
		JOIN vehicles v ON v.id = f.vehicle_id
		WHERE f.user_id = $1
		ORDER BY f.id
	`

	allFavoriteCharactersQuery = `
		SELECT f.user_id, c.id, c.first_name, c.last_name, c.image_url, c.biography, c.birthday, c.gender
		FROM favorite_characters f
		JOIN characters c ON c.id = f.character_id
		ORDER BY f.user_id, f.id
	`
	allFavoritePlanetsQuery = `
		SELECT f.user_id, p.id, p.name, p.image_url, p.history, p.population, p.terrain, p.inhabitants, p.language
		FROM favorite_planets f
		JOIN planets p ON p.id = f.planet_id
		ORDER BY f.user_id, f.id
	`
	allFavoriteVehiclesQuery = `
		SELECT f.user_id, v.id, v.name, v.type, v.passengers
		FROM favorite_vehicles f
		JOIN vehicles v ON v.id = f.vehicle_id
		ORDER BY f.user_id, f.id
	`
)

// owned pairs a scanned catalog item with the user that favorited it.
type owned[T any] struct {
	userID int64
	item   *T
}

// ownerScanner scans the leading user_id column before the item columns.
type ownerScanner struct {
	rowScanner
	userID *int64
}

func (o ownerScanner) Scan(dest ...any) error {
	return o.rowScanner.Scan(append([]any{o.userID}, dest...)...)
}

func ownedBy[T any](scan func(rowScanner) (*T, error)) func(rowScanner) (*owned[T], error) {
	return func(r rowScanner) (*owned[T], error) {
		var o owned[T]
		item, err := scan(ownerScanner{rowScanner: r, userID: &o.userID})
		if err != nil {
			return nil, err
		}
		o.item = item
		return &o, nil
	}
}

// Create implements store.FavoriteStore.Create.
// The pair uniqueness is enforced by the table's UNIQUE constraint, so two
// concurrent inserts of the same link yield one row and one ErrDuplicate.
func (s *PostgresFavoriteStore) Create(ctx context.Context, link *domain.FavoriteLink) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("kind", link.Kind.String()),
		slog.Int64("user_id", link.UserID),
		slog.Int64("item_id", link.ItemID),
	)

	t, err := tablesFor(link.Kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (user_id, %s) VALUES ($1, $2) RETURNING id",
		t.favorite, t.column,
	)
	if err := s.db.QueryRowContext(ctx, query, link.UserID, link.ItemID).Scan(&link.ID); err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			log.Debug("favorite already exists")
		} else {
			log.Error("failed to create favorite", slog.String("error", err.Error()))
		}
		return mapped
	}

	log.Info("favorite created", slog.Int64("favorite_id", link.ID))
	return nil
}

// Get implements store.FavoriteStore.Get.
func (s *PostgresFavoriteStore) Get(
	ctx context.Context,
	userID, itemID int64,
	kind domain.Kind,
) (*domain.FavoriteLink, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	link := &domain.FavoriteLink{UserID: userID, ItemID: itemID, Kind: kind}
	query := fmt.Sprintf("SELECT id FROM %s WHERE user_id = $1 AND %s = $2", t.favorite, t.column)
	if err := s.db.QueryRowContext(ctx, query, userID, itemID).Scan(&link.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrFavoriteNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get favorite",
			slog.String("error", err.Error()),
			slog.String("kind", kind.String()),
			slog.Int64("user_id", userID),
			slog.Int64("item_id", itemID))
		return nil, err
	}
	return link, nil
}

// Delete implements store.FavoriteStore.Delete.
func (s *PostgresFavoriteStore) Delete(ctx context.Context, userID, itemID int64, kind domain.Kind) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("kind", kind.String()),
		slog.Int64("user_id", userID),
		slog.Int64("item_id", itemID),
	)

	t, err := tablesFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1 AND %s = $2", t.favorite, t.column)
	result, err := s.db.ExecContext(ctx, query, userID, itemID)
	if err != nil {
		log.Error("failed to delete favorite", slog.String("error", err.Error()))
		return err
	}
	if err := CheckRowsAffected(result, store.ErrFavoriteNotFound); err != nil {
		if errors.Is(err, store.ErrFavoriteNotFound) {
			log.Debug("favorite not found for deletion")
		} else {
			log.Error("failed to check deleted rows", slog.String("error", err.Error()))
		}
		return err
	}

	log.Info("favorite deleted")
	return nil
}

// ListByUser implements store.FavoriteStore.ListByUser.
func (s *PostgresFavoriteStore) ListByUser(ctx context.Context, userID int64) (*domain.Favorites, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("user_id", userID))

	characters, err := queryList(ctx, s.db, log, "favorite characters",
		favoriteCharactersQuery, scanCharacter, userID)
	if err != nil {
		return nil, err
	}
	planets, err := queryList(ctx, s.db, log, "favorite planets",
		favoritePlanetsQuery, scanPlanet, userID)
	if err != nil {
		return nil, err
	}
	vehicles, err := queryList(ctx, s.db, log, "favorite vehicles",
		favoriteVehiclesQuery, scanVehicle, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Favorites{
		Characters: characters,
		Planets:    planets,
		Vehicles:   vehicles,
	}, nil
}

// ListAll implements store.FavoriteStore.ListAll.
func (s *PostgresFavoriteStore) ListAll(ctx context.Context) (map[int64]*domain.Favorites, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	characters, err := queryList(ctx, s.db, log, "favorite characters",
		allFavoriteCharactersQuery, ownedBy(scanCharacter))
	if err != nil {
		return nil, err
	}
	planets, err := queryList(ctx, s.db, log, "favorite planets",
		allFavoritePlanetsQuery, ownedBy(scanPlanet))
	if err != nil {
		return nil, err
	}
	vehicles, err := queryList(ctx, s.db, log, "favorite vehicles",
		allFavoriteVehiclesQuery, ownedBy(scanVehicle))
	if err != nil {
		return nil, err
	}

	byUser := make(map[int64]*domain.Favorites)
	group := func(userID int64) *domain.Favorites {
		favs, ok := byUser[userID]
		if !ok {
			favs = domain.NewFavorites()
			byUser[userID] = favs
		}
		return favs
	}
	for _, o := range characters {
		g := group(o.userID)
		g.Characters = append(g.Characters, o.item)
	}
	for _, o := range planets {
		g := group(o.userID)
		g.Planets = append(g.Planets, o.item)
	}
	for _, o := range vehicles {
		g := group(o.userID)
		g.Vehicles = append(g.Vehicles, o.item)
	}

	log.Debug("listed favorites for all users", slog.Int("users", len(byUser)))
	return byUser, nil
}

// WithTx implements store.FavoriteStore.WithTx.
func (s *PostgresFavoriteStore) WithTx(tx *sql.Tx) store.FavoriteStore {
	return &PostgresFavoriteStore{db: tx, logger: s.logger}
}
