// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/common/clock"
	"github.com/jason-s-yu/roster/internal/middleware"
	"github.com/jason-s-yu/roster/internal/roster"
)

// RouterConfig holds what the HTTP surface needs. Service and Logger are
// required.
type RouterConfig struct {
	Service roster.Service
	Logger  *logrus.Logger
	Clock   clock.Clock

	// CORSOrigin is a comma separated allow list, "*" for any origin.
	CORSOrigin string
}

// NewRouter mounts every lobby route under /api.
func NewRouter(cfg *RouterConfig) http.Handler {
	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}
	log := cfg.Logger

	r := chi.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.LogMiddleware(log))
	r.Use(middleware.CORS(cfg.CORSOrigin))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler(c))

		r.Route("/lobbies", func(r chi.Router) {
			r.Post("/", CreateLobbyHandler(cfg.Service, log))
			r.Get("/", ListLobbiesHandler(cfg.Service, log))

			r.Route("/{lobbyId}", func(r chi.Router) {
				r.Get("/", GetLobbyHandler(cfg.Service, log))
				r.Delete("/", DeleteLobbyHandler(cfg.Service, log))
				r.Post("/join", JoinLobbyHandler(cfg.Service, log))
				r.Delete("/leave", LeaveLobbyHandler(cfg.Service, log))
				r.Post("/kick", KickPlayerHandler(cfg.Service, log))
				r.Post("/close", CloseLobbyHandler(cfg.Service, log))
				r.Get("/player-count", PlayerCountHandler(cfg.Service, log))
				r.Get("/events", LobbyEventsHandler(cfg.Service, log))
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "route not found"})
	})
	return r
}

// PingHandler is the liveness endpoint polled by the keep-alive job.
func PingHandler(c clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "alive",
			"time":   c.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		})
	}
}
