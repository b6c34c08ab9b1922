package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/phrazzld/holocron-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSeededMemoryStore() *memoryStore {
	s := newMemoryStore()
	s.users[1] = true
	s.users[2] = true
	s.characters[5] = &domain.Character{ID: 5, FirstName: "Han", LastName: "Solo"}
	s.planets[3] = &domain.Planet{ID: 3, Name: "Tatooine"}
	s.vehicles[4] = &domain.Vehicle{ID: 4, Name: "X-wing"}
	return s
}

func newFavoritesServiceWith(t *testing.T, s *memoryStore) FavoritesService {
	t.Helper()
	svc, err := NewFavoritesService(s, s, s, testLogger())
	require.NoError(t, err)
	return svc
}

func TestNewFavoritesService(t *testing.T) {
	s := newMemoryStore()
	tests := []struct {
		name      string
		users     UserRepository
		catalog   CatalogRepository
		favorites FavoriteRepository
	}{
		{"nil users", nil, s, s},
		{"nil catalog", s, nil, s},
		{"nil favorites", s, s, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewFavoritesService(tt.users, tt.catalog, tt.favorites, nil)
			assert.Nil(t, svc)
			var svcErr *ServiceError
			assert.ErrorAs(t, err, &svcErr)
		})
	}
}

func TestFavoritesService_AddFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("creates link", func(t *testing.T) {
		s := newSeededMemoryStore()
		svc := newFavoritesServiceWith(t, s)

		link, created, err := svc.AddFavorite(ctx, 1, 3, domain.KindPlanet)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(1), link.UserID)
		assert.Equal(t, int64(3), link.ItemID)
		assert.Equal(t, domain.KindPlanet, link.Kind)
		assert.Equal(t, 1, s.count())
	})

	t.Run("adding twice keeps one link", func(t *testing.T) {
		s := newSeededMemoryStore()
		svc := newFavoritesServiceWith(t, s)

		first, created, err := svc.AddFavorite(ctx, 1, 3, domain.KindPlanet)
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.AddFavorite(ctx, 1, 3, domain.KindPlanet)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, s.count())
	})

	t.Run("same item different kinds are distinct", func(t *testing.T) {
		s := newSeededMemoryStore()
		s.characters[3] = &domain.Character{ID: 3, FirstName: "Leia"}
		svc := newFavoritesServiceWith(t, s)

		_, created, err := svc.AddFavorite(ctx, 1, 3, domain.KindPlanet)
		require.NoError(t, err)
		assert.True(t, created)
		_, created, err = svc.AddFavorite(ctx, 1, 3, domain.KindCharacter)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 2, s.count())
	})

	t.Run("concurrent adds produce one link", func(t *testing.T) {
		s := newSeededMemoryStore()
		svc := newFavoritesServiceWith(t, s)

		const workers = 16
		var wg sync.WaitGroup
		var mu sync.Mutex
		createdCount := 0
		errs := make(chan error, workers)

		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, created, err := svc.AddFavorite(ctx, 2, 4, domain.KindVehicle)
				if err != nil {
					errs <- err
					return
				}
				if created {
					mu.Lock()
					createdCount++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
		assert.Equal(t, 1, createdCount)
		assert.Equal(t, 1, s.count())
	})

	t.Run("unknown user", func(t *testing.T) {
		s := newSeededMemoryStore()
		svc := newFavoritesServiceWith(t, s)

		_, _, err := svc.AddFavorite(ctx, 42, 3, domain.KindPlanet)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Equal(t, 0, s.count())
	})

	t.Run("unknown item reports kind", func(t *testing.T) {
		s := newSeededMemoryStore()
		svc := newFavoritesServiceWith(t, s)

		_, _, err := svc.AddFavorite(ctx, 1, 300, domain.KindVehicle)
		assert.ErrorIs(t, err, ErrVehicleNotFound)
		assert.Equal(t, 0, s.count())
	})

	t.Run("validation", func(t *testing.T) {
		svc := newFavoritesServiceWith(t, newSeededMemoryStore())

		_, _, err := svc.AddFavorite(ctx, 0, 3, domain.KindPlanet)
		assert.ErrorIs(t, err, domain.ErrInvalidID)

		_, _, err = svc.AddFavorite(ctx, 1, -1, domain.KindPlanet)
		assert.ErrorIs(t, err, domain.ErrInvalidID)

		_, _, err = svc.AddFavorite(ctx, 1, 3, domain.Kind("starship"))
		assert.ErrorIs(t, err, domain.ErrInvalidKind)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("lost race returns existing link", func(t *testing.T) {
		users := &MockUserRepository{}
		catalog := &MockCatalogRepository{}
		favorites := &MockFavoriteRepository{}
		existing := &domain.FavoriteLink{ID: 9, UserID: 1, ItemID: 3, Kind: domain.KindPlanet}

		users.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		catalog.On("ItemExists", mock.Anything, domain.KindPlanet, int64(3)).Return(true, nil)
		favorites.On("Create", mock.Anything, mock.AnythingOfType("*domain.FavoriteLink")).Return(store.ErrDuplicate)
		favorites.On("Get", mock.Anything, int64(1), int64(3), domain.KindPlanet).Return(existing, nil)

		svc, err := NewFavoritesService(users, catalog, favorites, testLogger())
		require.NoError(t, err)

		link, created, err := svc.AddFavorite(ctx, 1, 3, domain.KindPlanet)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, link)
		favorites.AssertExpectations(t)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		users := &MockUserRepository{}
		cause := errors.New("connection reset")
		users.On("Exists", mock.Anything, int64(1)).Return(false, cause)

		svc, _ := NewFavoritesService(users, &MockCatalogRepository{}, &MockFavoriteRepository{}, testLogger())

		_, _, err := svc.AddFavorite(ctx, 1, 3, domain.KindPlanet)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.ErrorIs(t, err, cause)
	})
}

func TestFavoritesService_RemoveFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("removes existing link", func(t *testing.T) {
		s := newSeededMemoryStore()
		svc := newFavoritesServiceWith(t, s)

		_, _, err := svc.AddFavorite(ctx, 1, 5, domain.KindCharacter)
		require.NoError(t, err)

		require.NoError(t, svc.RemoveFavorite(ctx, 1, 5, domain.KindCharacter))
		assert.Equal(t, 0, s.count())
	})

	t.Run("absent link is not found", func(t *testing.T) {
		svc := newFavoritesServiceWith(t, newSeededMemoryStore())

		err := svc.RemoveFavorite(ctx, 1, 5, domain.KindCharacter)
		assert.ErrorIs(t, err, ErrFavoriteNotFound)
		var svcErr *ServiceError
		assert.False(t, errors.As(err, &svcErr))
	})

	t.Run("removing twice", func(t *testing.T) {
		svc := newFavoritesServiceWith(t, newSeededMemoryStore())

		_, _, err := svc.AddFavorite(ctx, 1, 5, domain.KindCharacter)
		require.NoError(t, err)
		require.NoError(t, svc.RemoveFavorite(ctx, 1, 5, domain.KindCharacter))
		assert.ErrorIs(t, svc.RemoveFavorite(ctx, 1, 5, domain.KindCharacter), ErrFavoriteNotFound)
	})

	t.Run("only the matching link is removed", func(t *testing.T) {
		s := newSeededMemoryStore()
		svc := newFavoritesServiceWith(t, s)

		_, _, err := svc.AddFavorite(ctx, 1, 3, domain.KindPlanet)
		require.NoError(t, err)
		_, _, err = svc.AddFavorite(ctx, 2, 3, domain.KindPlanet)
		require.NoError(t, err)

		require.NoError(t, svc.RemoveFavorite(ctx, 1, 3, domain.KindPlanet))

		remaining, err := svc.ListFavorites(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, remaining.Planets, 1)
		assert.Equal(t, 1, s.count())
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		favorites := &MockFavoriteRepository{}
		favorites.On("Delete", mock.Anything, int64(1), int64(3), domain.KindPlanet).Return(errors.New("timeout"))

		svc, _ := NewFavoritesService(&MockUserRepository{}, &MockCatalogRepository{}, favorites, testLogger())

		err := svc.RemoveFavorite(ctx, 1, 3, domain.KindPlanet)
		var svcErr *ServiceError
		assert.ErrorAs(t, err, &svcErr)
	})
}

func TestFavoritesService_ListFavorites(t *testing.T) {
	ctx := context.Background()

	t.Run("groups by kind", func(t *testing.T) {
		s := newSeededMemoryStore()
		svc := newFavoritesServiceWith(t, s)

		_, _, err := svc.AddFavorite(ctx, 1, 5, domain.KindCharacter)
		require.NoError(t, err)

		favs, err := svc.ListFavorites(ctx, 1)
		require.NoError(t, err)
		require.Len(t, favs.Characters, 1)
		assert.Equal(t, int64(5), favs.Characters[0].ID)
		assert.Empty(t, favs.Planets)
		assert.Empty(t, favs.Vehicles)
	})

	t.Run("empty but present user", func(t *testing.T) {
		svc := newFavoritesServiceWith(t, newSeededMemoryStore())

		favs, err := svc.ListFavorites(ctx, 2)
		require.NoError(t, err)
		assert.NotNil(t, favs.Characters)
		assert.NotNil(t, favs.Planets)
		assert.NotNil(t, favs.Vehicles)
		assert.Zero(t, favs.Len())
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newFavoritesServiceWith(t, newSeededMemoryStore())

		_, err := svc.ListFavorites(ctx, 77)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
