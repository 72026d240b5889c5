package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/config"
	"github.com/heartmarshall/minutes-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Health     *HealthHandler
	Meetings   *MeetingHandler
	ChangeSets *ChangeSetHandler
	Projects   *ProjectHandler
	// Metrics serves the Prometheus exposition. Nil disables /metrics.
	Metrics    http.Handler

	Tokens    tokenValidator
	Limiter   *middleware.RateLimiter
	RateLimit int
	CORS      config.CORSConfig
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler: probes and metrics at the root, the
// authenticated review API under /api.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Tokens), middleware.RequireUser())
		if deps.Limiter != nil && deps.RateLimit > 0 {
			r.Use(deps.Limiter.Limit(deps.RateLimit))
		}

		deps.Meetings.Register(r)
		deps.ChangeSets.Register(r)
		deps.Projects.Register(r)
	})

	return r
}
