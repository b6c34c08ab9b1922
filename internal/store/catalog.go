package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/holocron-api/internal/domain"
)

// CatalogStore defines read access to the catalog plus the inserts used by
// the seed loader. Catalog rows are immutable once stored.
type CatalogStore interface {
	// ListCharacters returns all characters ordered by ID.
	ListCharacters(ctx context.Context) ([]*domain.Character, error)
	// GetCharacter returns ErrCharacterNotFound when no row has the ID.
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)

	// ListPlanets returns all planets ordered by ID.
	ListPlanets(ctx context.Context) ([]*domain.Planet, error)
	// GetPlanet returns ErrPlanetNotFound when no row has the ID.
	GetPlanet(ctx context.Context, id int64) (*domain.Planet, error)

	// ListVehicles returns all vehicles ordered by ID.
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	// GetVehicle returns ErrVehicleNotFound when no row has the ID.
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)

	// ItemExists reports whether the catalog holds an item of the kind with the ID.
	ItemExists(ctx context.Context, kind domain.Kind, id int64) (bool, error)

	// CreateCharacter, CreatePlanet and CreateVehicle insert a row and set its ID.
	CreateCharacter(ctx context.Context, c *domain.Character) error
	CreatePlanet(ctx context.Context, p *domain.Planet) error
	CreateVehicle(ctx context.Context, v *domain.Vehicle) error

	// WithTx returns a new CatalogStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CatalogStore
}
