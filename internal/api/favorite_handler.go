package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/holocron-api/internal/api/shared"
	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/phrazzld/holocron-api/internal/metrics"
	"github.com/phrazzld/holocron-api/internal/platform/logger"
	"github.com/phrazzld/holocron-api/internal/service"
	"github.com/phrazzld/holocron-api/internal/store"
)

// FavoriteHandler serves POST and DELETE /favorite/{kind}/{id}.
type FavoriteHandler struct {
	favorites service.FavoritesService
	logger    *slog.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favorites service.FavoritesService, logger *slog.Logger) *FavoriteHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FavoriteHandler")
	}
	return &FavoriteHandler{
		favorites: favorites,
		logger:    logger.With(slog.String("component", "favorite_handler")),
	}
}

// favoriteTarget parses the item id and body shared by both endpoints.
// It writes the error response and returns false on failure.
func (h *FavoriteHandler) favoriteTarget(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	itemID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}
	var req FavoriteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}
	return itemID, req.UserID, true
}

// AddFavorite returns the handler for POST /favorite/{kind}/{id}.
// It responds 201 when the link is new and 200 with the same body when it
// already existed.
func (h *FavoriteHandler) AddFavorite(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.addFavorite(w, r, kind)
	}
}

// RemoveFavorite returns the handler for DELETE /favorite/{kind}/{id}.
func (h *FavoriteHandler) RemoveFavorite(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.removeFavorite(w, r, kind)
	}
}

func (h *FavoriteHandler) addFavorite(w http.ResponseWriter, r *http.Request, kind domain.Kind) {
	itemID, userID, ok := h.favoriteTarget(w, r)
	if !ok {
		return
	}
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	link, created, err := h.favorites.AddFavorite(r.Context(), userID, itemID, kind)
	if err != nil {
		metrics.RecordFavoriteOperation(kind.String(), "add", outcomeFor(err))
		HandleAPIError(w, r, err, "Failed to add favorite")
		return
	}

	status := http.StatusOK
	outcome := metrics.OutcomeExisting
	if created {
		status = http.StatusCreated
		outcome = metrics.OutcomeCreated
	}
	metrics.RecordFavoriteOperation(kind.String(), "add", outcome)

	log.Debug("favorite add handled",
		slog.String("kind", kind.String()),
		slog.Int64("user_id", userID),
		slog.Int64("item_id", itemID),
		slog.Bool("created", created))
	shared.RespondWithJSON(w, r, status, linkToResponse(link))
}

func (h *FavoriteHandler) removeFavorite(w http.ResponseWriter, r *http.Request, kind domain.Kind) {
	itemID, userID, ok := h.favoriteTarget(w, r)
	if !ok {
		return
	}

	if err := h.favorites.RemoveFavorite(r.Context(), userID, itemID, kind); err != nil {
		metrics.RecordFavoriteOperation(kind.String(), "remove", outcomeFor(err))
		HandleAPIError(w, r, err, "Failed to delete favorite")
		return
	}

	metrics.RecordFavoriteOperation(kind.String(), "remove", metrics.OutcomeDeleted)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Favorite deleted"})
}

func outcomeFor(err error) string {
	if store.IsNotFoundError(err) {
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeError
}
