package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"

	"github.com/probox/probox-api/internal/middleware"
)

// RouterConfig holds the handlers and options used to build the API router.
type RouterConfig struct {
	Auth     *AuthHandler
	Sensor   *SensorHandler
	Verifier middleware.TokenVerifier

	// AuthRequired gates /api/probox and /api/history behind TokenAuth.
	AuthRequired bool

	LoginRateLimit float64
	LoginRateBurst int
}

// NewRouter builds the HTTP handler for the API. ctx bounds background work
// started by the middleware.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if cfg.LoginRateLimit > 0 {
				r.Use(middleware.RateLimit(ctx, cfg.LoginRateLimit, cfg.LoginRateBurst))
			}
			r.Post("/login", cfg.Auth.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			if cfg.AuthRequired {
				r.Use(middleware.TokenAuth(cfg.Verifier))
			}
			r.Get("/probox", cfg.Sensor.HandleLatest)
			r.Get("/history", cfg.Sensor.HandleHistory)
		})

		r.With(middleware.TokenAuth(cfg.Verifier)).Get("/test", cfg.Auth.HandleTest)
	})

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
	return cors(r)
}
