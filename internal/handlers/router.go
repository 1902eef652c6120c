package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/webutil"
)

// RouterConfig holds what the router needs besides the handlers.
type RouterConfig struct {
	Logger         *slog.Logger
	Auth           func(http.Handler) http.Handler
	AllowedOrigins []string
	RequestTimeout time.Duration
	// HealthCheck reports whether the backing store is reachable.
	HealthCheck func(ctx context.Context) error
}

type Handlers struct {
	Auth       *AuthHandler
	Words      *WordHandler
	Reviews    *ReviewHandler
	Enrichment *EnrichmentHandler
	Stats      *StatsHandler
}

// NewRouter wires every API route under /api/v1 plus /health.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 25 * time.Second
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(cfg.Logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", healthHandler(cfg.HealthCheck))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			if cfg.Auth != nil {
				r.Use(cfg.Auth)
			}

			r.Get("/auth/me", h.Auth.Me)
			r.Patch("/auth/me", h.Auth.UpdateSettings)

			r.Route("/words", func(r chi.Router) {
				r.Post("/", h.Words.PostWord)
				r.Get("/", h.Words.GetWords)
				r.Get("/{word_id}", h.Words.GetWord)
				r.Delete("/{word_id}", h.Words.DeleteWord)
				r.Get("/{word_id}/history", h.Words.GetHistory)
				r.Post("/{word_id}/enrichment/{kind}", h.Enrichment.Refresh)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.Reviews.GetReviewWords)
				r.Get("/next", h.Reviews.GetNextWord)
				r.Put("/{word_id}/result", h.Reviews.SubmitReviewResult)
			})

			r.Get("/stats", h.Stats.GetStats)
		})
	})

	return r
}

func healthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLogger(r.Context())
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				logger.Error("Health check failed: database ping error", "error", err)
				webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
