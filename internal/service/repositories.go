package service

import (
	"context"

	"github.com/phrazzld/holocron-api/internal/domain"
)

// CatalogRepository is the read side of store.CatalogStore used by the services.
type CatalogRepository interface {
	ListCharacters(ctx context.Context) ([]*domain.Character, error)
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
	ListPlanets(ctx context.Context) ([]*domain.Planet, error)
	GetPlanet(ctx context.Context, id int64) (*domain.Planet, error)
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	ItemExists(ctx context.Context, kind domain.Kind, id int64) (bool, error)
}

// UserRepository is the subset of store.UserStore used by the services.
type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// FavoriteRepository is the subset of store.FavoriteStore used by the services.
type FavoriteRepository interface {
	Create(ctx context.Context, link *domain.FavoriteLink) error
	Get(ctx context.Context, userID, itemID int64, kind domain.Kind) (*domain.FavoriteLink, error)
	Delete(ctx context.Context, userID, itemID int64, kind domain.Kind) error
	ListByUser(ctx context.Context, userID int64) (*domain.Favorites, error)
	ListAll(ctx context.Context) (map[int64]*domain.Favorites, error)
}
