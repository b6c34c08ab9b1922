package api

import (
	"context"
	"io"
	"log/slog"

	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockCatalogService mocks the service.CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCharacters(ctx context.Context) ([]*domain.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Character), args.Error(1)
}

func (m *MockCatalogService) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCatalogService) ListPlanets(ctx context.Context) ([]*domain.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Planet), args.Error(1)
}

func (m *MockCatalogService) GetPlanet(ctx context.Context, id int64) (*domain.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Planet), args.Error(1)
}

func (m *MockCatalogService) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockCatalogService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

// MockUserService mocks the service.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*domain.UserWithFavorites, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserWithFavorites), args.Error(1)
}

// MockFavoritesService mocks the service.FavoritesService interface
type MockFavoritesService struct {
	mock.Mock
}

func (m *MockFavoritesService) AddFavorite(
	ctx context.Context,
	userID, itemID int64,
	kind domain.Kind,
) (*domain.FavoriteLink, bool, error) {
	args := m.Called(ctx, userID, itemID, kind)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.FavoriteLink), args.Bool(1), args.Error(2)
}

func (m *MockFavoritesService) RemoveFavorite(ctx context.Context, userID, itemID int64, kind domain.Kind) error {
	args := m.Called(ctx, userID, itemID, kind)
	return args.Error(0)
}

func (m *MockFavoritesService) ListFavorites(ctx context.Context, userID int64) (*domain.Favorites, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorites), args.Error(1)
}
