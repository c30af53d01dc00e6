package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vbalan/bankcore/internal/adapter/http/handler"
	"github.com/vbalan/bankcore/internal/adapter/http/middleware"
	"github.com/vbalan/bankcore/internal/infrastructure/auth"
	"github.com/vbalan/bankcore/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler      *handler.AuthHandler
	AccountHandler   *handler.AccountHandler
	TransferHandler  *handler.TransferHandler
	HistoryHandler   *handler.HistoryHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)

	// A wrong verb on a known route gets the same envelope as every
	// other error.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"status":"error","message":"method not allowed"}`))
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":"error","message":"not found"}`))
	})

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTManager))

			r.Route("/transfers", func(r chi.Router) {
				if cfg.IdempotencyStore != nil {
					idem := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
					r.Use(idem.Wrap)
				}
				r.Post("/", cfg.TransferHandler.Create)
			})

			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", cfg.AccountHandler.Open)
				r.Get("/", cfg.AccountHandler.List)
				r.Get("/{number}", cfg.AccountHandler.Get)
				r.Get("/{number}/history", cfg.HistoryHandler.ListByAccount)
			})

			r.Get("/transactions/{id}", cfg.HistoryHandler.Get)
		})
	})

	return r
}
