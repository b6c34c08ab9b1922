package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/holocron-api/internal/api/shared"
	"github.com/phrazzld/holocron-api/internal/service"
)

// UserHandler serves the user listing and per-user favorites.
type UserHandler struct {
	users     service.UserService
	favorites service.FavoritesService
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	users service.UserService,
	favorites service.FavoritesService,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}
	return &UserHandler{
		users:     users,
		favorites: favorites,
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userToResponse(u))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetUserFavorites handles GET /users/{id}/favorites
func (h *UserHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	favs, err := h.favorites.ListFavorites(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list favorites")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, UserFavoritesResponse{Favorites: favoritesToResponse(favs)})
}
