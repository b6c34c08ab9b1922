package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/phrazzld/holocron-api/internal/platform/logger"
)

// CatalogService provides read-only access to the catalog.
type CatalogService interface {
	ListCharacters(ctx context.Context) ([]*domain.Character, error)
	// GetCharacter returns ErrCharacterNotFound when the ID is unknown.
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)

	ListPlanets(ctx context.Context) ([]*domain.Planet, error)
	// GetPlanet returns ErrPlanetNotFound when the ID is unknown.
	GetPlanet(ctx context.Context, id int64) (*domain.Planet, error)

	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	// GetVehicle returns ErrVehicleNotFound when the ID is unknown.
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
}

type catalogServiceImpl struct {
	catalog CatalogRepository
	logger  *slog.Logger
}

// NewCatalogService creates a CatalogService.
// It returns an error if catalog is nil.
func NewCatalogService(catalog CatalogRepository, logger *slog.Logger) (CatalogService, error) {
	if catalog == nil {
		return nil, missingDependency("catalog", "catalog")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogServiceImpl{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "catalog_service")),
	}, nil
}

func (s *catalogServiceImpl) ListCharacters(ctx context.Context) ([]*domain.Character, error) {
	items, err := s.catalog.ListCharacters(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list_characters", "failed to list characters", err)
	}
	return items, nil
}

func (s *catalogServiceImpl) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	if id <= 0 {
		return nil, invalidID("id")
	}
	item, err := s.catalog.GetCharacter(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get_character", "failed to get character", err)
	}
	return item, nil
}

func (s *catalogServiceImpl) ListPlanets(ctx context.Context) ([]*domain.Planet, error) {
	items, err := s.catalog.ListPlanets(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list_planets", "failed to list planets", err)
	}
	return items, nil
}

func (s *catalogServiceImpl) GetPlanet(ctx context.Context, id int64) (*domain.Planet, error) {
	if id <= 0 {
		return nil, invalidID("id")
	}
	item, err := s.catalog.GetPlanet(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get_planet", "failed to get planet", err)
	}
	return item, nil
}

func (s *catalogServiceImpl) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	items, err := s.catalog.ListVehicles(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list_vehicles", "failed to list vehicles", err)
	}
	return items, nil
}

func (s *catalogServiceImpl) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	if id <= 0 {
		return nil, invalidID("id")
	}
	item, err := s.catalog.GetVehicle(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get_vehicle", "failed to get vehicle", err)
	}
	return item, nil
}

func (s *catalogServiceImpl) fail(ctx context.Context, op, msg string, err error) error {
	wrapped := wrapError("catalog", op, msg, err)
	if _, unexpected := wrapped.(*ServiceError); unexpected {
		logger.FromContextOrDefault(ctx, s.logger).Error(msg,
			slog.String("operation", op),
			slog.String("error", err.Error()))
	}
	return wrapped
}

func invalidID(field string) error {
	return domain.NewValidationError(field, "must be a positive integer", domain.ErrInvalidID)
}
