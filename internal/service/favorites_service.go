package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/phrazzld/holocron-api/internal/platform/logger"
	"github.com/phrazzld/holocron-api/internal/store"
)

// FavoritesService manages favorite links between users and catalog items.
type FavoritesService interface {
	// AddFavorite links the user to the item. When the link already exists
	// the existing link is returned with created false; no duplicate row is
	// ever written. Returns ErrUserNotFound or the kind's item not-found error
	// when either side does not exist.
	AddFavorite(
		ctx context.Context,
		userID, itemID int64,
		kind domain.Kind,
	) (link *domain.FavoriteLink, created bool, err error)

	// RemoveFavorite deletes the link. Returns ErrFavoriteNotFound when absent.
	RemoveFavorite(ctx context.Context, userID, itemID int64, kind domain.Kind) error

	// ListFavorites returns the user's favorites grouped by kind.
	// Returns ErrUserNotFound for an unknown user.
	ListFavorites(ctx context.Context, userID int64) (*domain.Favorites, error)
}

type favoritesServiceImpl struct {
	users     UserRepository
	catalog   CatalogRepository
	favorites FavoriteRepository
	logger    *slog.Logger
}

// NewFavoritesService creates a FavoritesService.
// It returns an error if any of the required dependencies are nil.
func NewFavoritesService(
	users UserRepository,
	catalog CatalogRepository,
	favorites FavoriteRepository,
	logger *slog.Logger,
) (FavoritesService, error) {
	if users == nil {
		return nil, missingDependency("favorites", "users")
	}
	if catalog == nil {
		return nil, missingDependency("favorites", "catalog")
	}
	if favorites == nil {
		return nil, missingDependency("favorites", "favorites")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &favoritesServiceImpl{
		users:     users,
		catalog:   catalog,
		favorites: favorites,
		logger:    logger.With(slog.String("component", "favorites_service")),
	}, nil
}

func validateLink(userID, itemID int64, kind domain.Kind) error {
	if !kind.Valid() {
		return domain.NewValidationError("kind", "must be one of character, planet, vehicle", domain.ErrInvalidKind)
	}
	if userID <= 0 {
		return invalidID("user_id")
	}
	if itemID <= 0 {
		return invalidID("id")
	}
	return nil
}

func (s *favoritesServiceImpl) AddFavorite(
	ctx context.Context,
	userID, itemID int64,
	kind domain.Kind,
) (*domain.FavoriteLink, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("kind", kind.String()),
		slog.Int64("user_id", userID),
		slog.Int64("item_id", itemID),
	)

	if err := validateLink(userID, itemID, kind); err != nil {
		return nil, false, err
	}

	if err := s.requireUser(ctx, "add_favorite", userID); err != nil {
		return nil, false, err
	}

	ok, err := s.catalog.ItemExists(ctx, kind, itemID)
	if err != nil {
		log.Error("failed to check item existence", slog.String("error", err.Error()))
		return nil, false, wrapError("favorites", "add_favorite", "failed to check item", err)
	}
	if !ok {
		return nil, false, store.ItemNotFoundError(kind)
	}

	link := &domain.FavoriteLink{UserID: userID, ItemID: itemID, Kind: kind}
	err = s.favorites.Create(ctx, link)
	switch {
	case err == nil:
		log.Info("favorite added", slog.Int64("favorite_id", link.ID))
		return link, true, nil
	case store.IsDuplicateError(err):
		existing, getErr := s.favorites.Get(ctx, userID, itemID, kind)
		if getErr != nil {
			log.Error("failed to load existing favorite", slog.String("error", getErr.Error()))
			return nil, false, wrapError("favorites", "add_favorite", "failed to load existing favorite", getErr)
		}
		log.Debug("favorite already present", slog.Int64("favorite_id", existing.ID))
		return existing, false, nil
	default:
		if !errors.Is(err, store.ErrInvalidEntity) {
			log.Error("failed to add favorite", slog.String("error", err.Error()))
		}
		return nil, false, wrapError("favorites", "add_favorite", "failed to add favorite", err)
	}
}

func (s *favoritesServiceImpl) RemoveFavorite(
	ctx context.Context,
	userID, itemID int64,
	kind domain.Kind,
) error {
	if err := validateLink(userID, itemID, kind); err != nil {
		return err
	}

	err := s.favorites.Delete(ctx, userID, itemID, kind)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to remove favorite",
				slog.String("error", err.Error()),
				slog.String("kind", kind.String()),
				slog.Int64("user_id", userID),
				slog.Int64("item_id", itemID))
		}
		return wrapError("favorites", "remove_favorite", "failed to remove favorite", err)
	}
	return nil
}

func (s *favoritesServiceImpl) ListFavorites(ctx context.Context, userID int64) (*domain.Favorites, error) {
	if userID <= 0 {
		return nil, invalidID("id")
	}
	if err := s.requireUser(ctx, "list_favorites", userID); err != nil {
		return nil, err
	}

	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list favorites",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, wrapError("favorites", "list_favorites", "failed to list favorites", err)
	}
	return favs, nil
}

func (s *favoritesServiceImpl) requireUser(ctx context.Context, op string, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check user existence",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return wrapError("favorites", op, "failed to check user", err)
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
