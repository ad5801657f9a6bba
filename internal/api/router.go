package api

import (
	"net/http"
	"os"

	"github.com/gkevents/server/internal/api/handlers"
	"github.com/gkevents/server/internal/api/middleware"
	"github.com/gkevents/server/internal/config"
	"github.com/gkevents/server/internal/domain/events"
	"github.com/gkevents/server/internal/domain/rsvp"
	"github.com/gkevents/server/internal/domain/users"
	"github.com/gkevents/server/internal/metrics"
	"github.com/gkevents/server/internal/session"
	"github.com/gkevents/server/internal/storage/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const staticDir = "public"

// NewRouter wires repositories, services and handlers over the given pool
// and returns the fully middleware-wrapped handler.
func NewRouter(cfg config.Config, logger zerolog.Logger, pool *pgxpool.Pool) (http.Handler, error) {
	repo, err := postgres.NewRepository(pool)
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(repo.Sessions(), cfg.Session.CookieName, cfg.Session.TTL)

	deps := routerDeps{
		auth:     handlers.NewAuthHandler(users.NewService(repo.Users()), sessions),
		events:   handlers.NewEventsHandler(events.NewService(repo.Events())),
		rsvp:     handlers.NewRSVPHandler(rsvp.NewService(repo.RSVP())),
		health:   handlers.Health(pool),
		sessions: sessions,
		logger:   logger,
	}
	return newHandler(deps), nil
}

type routerDeps struct {
	auth     *handlers.AuthHandler
	events   *handlers.EventsHandler
	rsvp     *handlers.RSVPHandler
	health   http.HandlerFunc
	sessions *session.Manager
	logger   zerolog.Logger
}

func newHandler(deps routerDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", deps.health)

	mux.HandleFunc("POST /api/register", deps.auth.Register)
	mux.HandleFunc("POST /api/login", deps.auth.Login)
	mux.HandleFunc("POST /api/logout", deps.auth.Logout)
	mux.HandleFunc("GET /api/me", deps.auth.Me)

	mux.HandleFunc("GET /api/events", deps.events.List)
	mux.HandleFunc("POST /api/events", deps.events.Create)
	mux.HandleFunc("GET /api/events/{id}", deps.events.Get)
	mux.HandleFunc("PUT /api/events/{id}", deps.events.Update)
	mux.HandleFunc("DELETE /api/events/{id}", deps.events.Delete)

	mux.HandleFunc("POST /api/events/{id}/confirm", deps.rsvp.Confirm)
	mux.HandleFunc("DELETE /api/events/{id}/confirm", deps.rsvp.Unconfirm)

	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	var handler http.Handler = mux
	handler = middleware.Session(deps.sessions)(handler)
	handler = middleware.RequestLogging(deps.logger)(handler)
	handler = metrics.HTTPMiddleware(handler)
	return handler
}
