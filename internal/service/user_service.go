package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/phrazzld/holocron-api/internal/platform/logger"
)

// UserService lists users together with their favorites.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.UserWithFavorites, error)
}

type userServiceImpl struct {
	users     UserRepository
	favorites FavoriteRepository
	logger    *slog.Logger
}

// NewUserService creates a UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(users UserRepository, favorites FavoriteRepository, logger *slog.Logger) (UserService, error) {
	if users == nil {
		return nil, missingDependency("user", "users")
	}
	if favorites == nil {
		return nil, missingDependency("user", "favorites")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		users:     users,
		favorites: favorites,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

// ListUsers returns every user in ID order with their grouped favorites.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.UserWithFavorites, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	users, err := s.users.List(ctx)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, wrapError("user", "list_users", "failed to list users", err)
	}

	result := make([]*domain.UserWithFavorites, 0, len(users))
	if len(users) == 0 {
		return result, nil
	}

	byUser, err := s.favorites.ListAll(ctx)
	if err != nil {
		log.Error("failed to list favorites", slog.String("error", err.Error()))
		return nil, wrapError("user", "list_users", "failed to list favorites", err)
	}

	for _, u := range users {
		favs, ok := byUser[u.ID]
		if !ok {
			favs = domain.NewFavorites()
		}
		result = append(result, &domain.UserWithFavorites{User: u, Favorites: favs})
	}

	log.Debug("listed users", slog.Int("count", len(result)))
	return result, nil
}
