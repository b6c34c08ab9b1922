package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/holocron-api/internal/api"
	apiMiddleware "github.com/phrazzld/holocron-api/internal/api/middleware"
	"github.com/phrazzld/holocron-api/internal/api/shared"
	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Metrics)
	r.Use(apiMiddleware.CORS(app.config.HTTP))
	r.Use(apiMiddleware.RateLimit(app.config.HTTP))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	catalogHandler := api.NewCatalogHandler(app.catalogService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.favoritesService, app.logger)
	favoriteHandler := api.NewFavoriteHandler(app.favoritesService, app.logger)

	r.Get("/", api.SitemapHandler(r))
	r.Get("/health", api.HealthHandler(app.db))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Catalog endpoints
	r.Get("/character", catalogHandler.ListCharacters)
	r.Get("/character/{id}", catalogHandler.GetCharacter)
	r.Get("/planets", catalogHandler.ListPlanets)
	r.Get("/planets/{id}", catalogHandler.GetPlanet)
	r.Get("/vehicles", catalogHandler.ListVehicles)
	r.Get("/vehicles/{id}", catalogHandler.GetVehicle)

	// User endpoints
	r.Get("/users", userHandler.ListUsers)
	r.Get("/users/{id}/favorites", userHandler.GetUserFavorites)

	// Favorite endpoints, one concrete path per kind
	for _, kind := range domain.Kinds() {
		path := "/favorite/" + kind.String() + "/{id}"
		r.Post(path, favoriteHandler.AddFavorite(kind))
		r.Delete(path, favoriteHandler.RemoveFavorite(kind))
	}

	return r
}
