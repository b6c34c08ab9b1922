package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/holocron-api/internal/config"
	"github.com/phrazzld/holocron-api/internal/platform/postgres"
	"github.com/phrazzld/holocron-api/internal/service"
	"github.com/phrazzld/holocron-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	catalogStore  store.CatalogStore
	favoriteStore store.FavoriteStore

	catalogService   service.CatalogService
	favoritesService service.FavoritesService
	userService      service.UserService
}

// newApplication wires stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("database cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.catalogStore = postgres.NewPostgresCatalogStore(db, logger)
	app.favoriteStore = postgres.NewPostgresFavoriteStore(db, logger)

	var err error
	app.catalogService, err = service.NewCatalogService(app.catalogStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	app.favoritesService, err = service.NewFavoritesService(
		app.userStore,
		app.catalogStore,
		app.favoriteStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create favorites service: %w", err)
	}

	app.userService, err = service.NewUserService(app.userStore, app.favoriteStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("Application shutdown completed")
}
