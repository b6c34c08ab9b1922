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

// PostgresCatalogStore implements the store.CatalogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCatalogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCatalogStore creates a new PostgreSQL implementation of the CatalogStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCatalogStore(db store.DBTX, logger *slog.Logger) *PostgresCatalogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCatalogStore{
		db:     db,
		logger: logger.With(slog.String("component", "catalog_store")),
	}
}

// Ensure PostgresCatalogStore implements store.CatalogStore interface
var _ store.CatalogStore = (*PostgresCatalogStore)(nil)

// queryList runs query and scans every row with scan. The result is never nil.
func queryList[T any](
	ctx context.Context,
	db store.DBTX,
	log *slog.Logger,
	entity string,
	query string,
	scan func(rowScanner) (*T, error),
	args ...any,
) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query "+entity, slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Error("failed to scan "+entity+" row", slog.String("error", err.Error()))
			return nil, store.NewStoreError(entity, "list", "failed to scan row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating "+entity+" rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError(entity, "list", "failed to iterate rows", err)
	}
	return items, nil
}

// getOne scans the single row selected by id, returning notFound when absent.
func getOne[T any](
	ctx context.Context,
	db store.DBTX,
	log *slog.Logger,
	query string,
	id int64,
	scan func(rowScanner) (*T, error),
	notFound error,
) (*T, error) {
	item, err := scan(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("catalog item not found",
				slog.Int64("id", id),
				slog.String("error", notFound.Error()))
			return nil, notFound
		}
		log.Error("failed to get catalog item",
			slog.String("error", err.Error()),
			slog.Int64("id", id))
		return nil, err
	}
	return item, nil
}

// ListCharacters implements store.CatalogStore.ListCharacters.
func (s *PostgresCatalogStore) ListCharacters(ctx context.Context) ([]*domain.Character, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	return queryList(ctx, s.db, log, "characters",
		"SELECT "+characterColumns+" FROM characters ORDER BY id", scanCharacter)
}

// GetCharacter implements store.CatalogStore.GetCharacter.
func (s *PostgresCatalogStore) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	return getOne(ctx, s.db, log,
		"SELECT "+characterColumns+" FROM characters WHERE id = $1", id,
		scanCharacter, store.ErrCharacterNotFound)
}

// ListPlanets implements store.CatalogStore.ListPlanets.
func (s *PostgresCatalogStore) ListPlanets(ctx context.Context) ([]*domain.Planet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	return queryList(ctx, s.db, log, "planets",
		"SELECT "+planetColumns+" FROM planets ORDER BY id", scanPlanet)
}

// GetPlanet implements store.CatalogStore.GetPlanet.
func (s *PostgresCatalogStore) GetPlanet(ctx context.Context, id int64) (*domain.Planet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	return getOne(ctx, s.db, log,
		"SELECT "+planetColumns+" FROM planets WHERE id = $1", id,
		scanPlanet, store.ErrPlanetNotFound)
}

// ListVehicles implements store.CatalogStore.ListVehicles.
func (s *PostgresCatalogStore) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	return queryList(ctx, s.db, log, "vehicles",
		"SELECT "+vehicleColumns+" FROM vehicles ORDER BY id", scanVehicle)
}

// GetVehicle implements store.CatalogStore.GetVehicle.
func (s *PostgresCatalogStore) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	return getOne(ctx, s.db, log,
		"SELECT "+vehicleColumns+" FROM vehicles WHERE id = $1", id,
		scanVehicle, store.ErrVehicleNotFound)
}

// ItemExists implements store.CatalogStore.ItemExists.
func (s *PostgresCatalogStore) ItemExists(ctx context.Context, kind domain.Kind, id int64) (bool, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", t.catalog)
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check item existence",
			slog.String("error", err.Error()),
			slog.String("kind", kind.String()),
			slog.Int64("item_id", id))
		return false, err
	}
	return exists, nil
}

// CreateCharacter implements store.CatalogStore.CreateCharacter.
func (s *PostgresCatalogStore) CreateCharacter(ctx context.Context, c *domain.Character) error {
	if err := c.Validate(); err != nil {
		return err
	}
	query := `
		INSERT INTO characters (first_name, last_name, image_url, biography, birthday, gender)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return s.insert(ctx, "character", query, &c.ID,
		c.FirstName, c.LastName, c.ImageURL, c.Biography, c.Birthday, c.Gender)
}

// CreatePlanet implements store.CatalogStore.CreatePlanet.
func (s *PostgresCatalogStore) CreatePlanet(ctx context.Context, p *domain.Planet) error {
	if err := p.Validate(); err != nil {
		return err
	}
	query := `
		INSERT INTO planets (name, image_url, history, population, terrain, inhabitants, language)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return s.insert(ctx, "planet", query, &p.ID,
		p.Name, p.ImageURL, p.History, p.Population, p.Terrain, p.Inhabitants, p.Language)
}

// CreateVehicle implements store.CatalogStore.CreateVehicle.
func (s *PostgresCatalogStore) CreateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	query := `
		INSERT INTO vehicles (name, type, passengers)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return s.insert(ctx, "vehicle", query, &v.ID, v.Name, v.Type, v.Passengers)
}

func (s *PostgresCatalogStore) insert(ctx context.Context, entity, query string, id *int64, args ...any) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(id); err != nil {
		log.Error("failed to create "+entity, slog.String("error", err.Error()))
		return MapError(err)
	}
	log.Debug(entity+" created", slog.Int64("id", *id))
	return nil
}

// WithTx implements store.CatalogStore.WithTx.
func (s *PostgresCatalogStore) WithTx(tx *sql.Tx) store.CatalogStore {
	return &PostgresCatalogStore{db: tx, logger: s.logger}
}
