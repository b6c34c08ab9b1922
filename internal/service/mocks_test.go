package service

import (
	"context"
	"slices"
	"sync"

	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/phrazzld/holocron-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository mocks the CatalogRepository interface
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListCharacters(ctx context.Context) ([]*domain.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Character), args.Error(1)
}

func (m *MockCatalogRepository) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCatalogRepository) ListPlanets(ctx context.Context) ([]*domain.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Planet), args.Error(1)
}

func (m *MockCatalogRepository) GetPlanet(ctx context.Context, id int64) (*domain.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Planet), args.Error(1)
}

func (m *MockCatalogRepository) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockCatalogRepository) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockCatalogRepository) ItemExists(ctx context.Context, kind domain.Kind, id int64) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// MockFavoriteRepository mocks the FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, link *domain.FavoriteLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Get(
	ctx context.Context,
	userID, itemID int64,
	kind domain.Kind,
) (*domain.FavoriteLink, error) {
	args := m.Called(ctx, userID, itemID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteLink), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, itemID int64, kind domain.Kind) error {
	args := m.Called(ctx, userID, itemID, kind)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID int64) (*domain.Favorites, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorites), args.Error(1)
}

func (m *MockFavoriteRepository) ListAll(ctx context.Context) (map[int64]*domain.Favorites, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*domain.Favorites), args.Error(1)
}

// memoryStore is an in-memory implementation of the three repositories that
// enforces the (user, item) uniqueness per kind the way the database does.
type memoryStore struct {
	mu         sync.Mutex
	users      map[int64]bool
	characters map[int64]*domain.Character
	planets    map[int64]*domain.Planet
	vehicles   map[int64]*domain.Vehicle
	links      []*domain.FavoriteLink
	nextID     int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:      map[int64]bool{},
		characters: map[int64]*domain.Character{},
		planets:    map[int64]*domain.Planet{},
		vehicles:   map[int64]*domain.Vehicle{},
	}
}

func (s *memoryStore) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id], nil
}

func (s *memoryStore) List(_ context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	users := []*domain.User{}
	for _, id := range ids {
		users = append(users, &domain.User{ID: id})
	}
	return users, nil
}

func (s *memoryStore) ListCharacters(context.Context) ([]*domain.Character, error) { return nil, nil }
func (s *memoryStore) ListPlanets(context.Context) ([]*domain.Planet, error)       { return nil, nil }
func (s *memoryStore) ListVehicles(context.Context) ([]*domain.Vehicle, error)     { return nil, nil }

func (s *memoryStore) GetCharacter(_ context.Context, id int64) (*domain.Character, error) {
	return nil, store.ErrCharacterNotFound
}

func (s *memoryStore) GetPlanet(_ context.Context, id int64) (*domain.Planet, error) {
	return nil, store.ErrPlanetNotFound
}

func (s *memoryStore) GetVehicle(_ context.Context, id int64) (*domain.Vehicle, error) {
	return nil, store.ErrVehicleNotFound
}

func (s *memoryStore) ItemExists(_ context.Context, kind domain.Kind, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case domain.KindCharacter:
		_, ok := s.characters[id]
		return ok, nil
	case domain.KindPlanet:
		_, ok := s.planets[id]
		return ok, nil
	case domain.KindVehicle:
		_, ok := s.vehicles[id]
		return ok, nil
	}
	return false, domain.ErrInvalidKind
}

func (s *memoryStore) find(userID, itemID int64, kind domain.Kind) (int, *domain.FavoriteLink) {
	for i, l := range s.links {
		if l.UserID == userID && l.ItemID == itemID && l.Kind == kind {
			return i, l
		}
	}
	return -1, nil
}

func (s *memoryStore) Create(_ context.Context, link *domain.FavoriteLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, existing := s.find(link.UserID, link.ItemID, link.Kind); existing != nil {
		return store.ErrDuplicate
	}
	s.nextID++
	link.ID = s.nextID
	stored := *link
	s.links = append(s.links, &stored)
	return nil
}

func (s *memoryStore) Get(_ context.Context, userID, itemID int64, kind domain.Kind) (*domain.FavoriteLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, l := s.find(userID, itemID, kind); l != nil {
		found := *l
		return &found, nil
	}
	return nil, store.ErrFavoriteNotFound
}

func (s *memoryStore) Delete(_ context.Context, userID, itemID int64, kind domain.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, l := s.find(userID, itemID, kind)
	if l == nil {
		return store.ErrFavoriteNotFound
	}
	s.links = append(s.links[:i], s.links[i+1:]...)
	return nil
}

func (s *memoryStore) ListByUser(_ context.Context, userID int64) (*domain.Favorites, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	favs := domain.NewFavorites()
	for _, l := range s.links {
		if l.UserID != userID {
			continue
		}
		switch l.Kind {
		case domain.KindCharacter:
			favs.Characters = append(favs.Characters, s.characters[l.ItemID])
		case domain.KindPlanet:
			favs.Planets = append(favs.Planets, s.planets[l.ItemID])
		case domain.KindVehicle:
			favs.Vehicles = append(favs.Vehicles, s.vehicles[l.ItemID])
		}
	}
	return favs, nil
}

func (s *memoryStore) ListAll(ctx context.Context) (map[int64]*domain.Favorites, error) {
	s.mu.Lock()
	owners := map[int64]bool{}
	for _, l := range s.links {
		owners[l.UserID] = true
	}
	s.mu.Unlock()

	byUser := map[int64]*domain.Favorites{}
	for id := range owners {
		favs, err := s.ListByUser(ctx, id)
		if err != nil {
			return nil, err
		}
		byUser[id] = favs
	}
	return byUser, nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.links)
}
