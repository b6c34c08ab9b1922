package api

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/holocron-api/internal/api/shared"
	"github.com/phrazzld/holocron-api/internal/platform/logger"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// healthTimeout bounds the database ping of the health check.
const healthTimeout = 2 * time.Second

// HealthHandler responds 200 "OK" when the database answers a ping and 503 otherwise.
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
				shared.KindInternal, "Database unavailable", err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// SitemapHandler lists every route registered on routes, sorted by path then method.
func SitemapHandler(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := []RouteResponse{}
		err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			route = strings.TrimSuffix(strings.ReplaceAll(route, "/*/", "/"), "/*")
			if route == "" {
				route = "/"
			}
			entries = append(entries, RouteResponse{Method: method, Path: route})
			return nil
		})
		if err != nil {
			logger.FromContext(r.Context()).Error("failed to walk routes", slog.String("error", err.Error()))
			HandleAPIError(w, r, err, "Failed to build sitemap")
			return
		}

		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Path != entries[j].Path {
				return entries[i].Path < entries[j].Path
			}
			return entries[i].Method < entries[j].Method
		})
		shared.RespondWithJSON(w, r, http.StatusOK, entries)
	}
}
