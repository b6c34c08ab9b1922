package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/holocron-api/internal/api/shared"
	"github.com/phrazzld/holocron-api/internal/platform/logger"
	"github.com/phrazzld/holocron-api/internal/service"
)

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CatalogHandler")
	}
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "catalog_handler")),
	}
}

// ListCharacters handles GET /character
func (h *CatalogHandler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListCharacters(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list characters")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(items, characterToResponse))
}

// GetCharacter handles GET /character/{id}
func (h *CatalogHandler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	item, err := h.catalog.GetCharacter(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get character")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, characterToResponse(item))
}

// ListPlanets handles GET /planets
func (h *CatalogHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListPlanets(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list planets")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(items, planetToResponse))
}

// GetPlanet handles GET /planets/{id}
func (h *CatalogHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	item, err := h.catalog.GetPlanet(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get planet")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, planetToResponse(item))
}

// ListVehicles handles GET /vehicles
func (h *CatalogHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListVehicles(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list vehicles")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(items, vehicleToResponse))
}

// GetVehicle handles GET /vehicles/{id}
func (h *CatalogHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	item, err := h.catalog.GetVehicle(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get vehicle")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, vehicleToResponse(item))
}

func (h *CatalogHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r, "id")
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid catalog id",
			slog.String("path", r.URL.Path))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}
