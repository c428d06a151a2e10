package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sitebooks/ledger/internal/adapter/http/handler"
	"github.com/sitebooks/ledger/internal/adapter/http/middleware"
	"github.com/sitebooks/ledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler        *handler.AccountHandler
	TransactionHandler    *handler.TransactionHandler
	QueryHandler          *handler.QueryHandler
	ReconciliationHandler *handler.ReconciliationHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	RateLimiter           *middleware.RateLimiter
	Logger                zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts and their ledgers
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Post("/{id}/transactions", cfg.TransactionHandler.Record)
			r.Get("/{id}/transactions", cfg.TransactionHandler.List)
			r.Get("/{id}/balance", cfg.TransactionHandler.BalanceAt)
			r.Get("/{id}/summary", cfg.QueryHandler.Summary)
			r.Post("/{id}/reconcile", cfg.ReconciliationHandler.Reconcile)
			r.Post("/{id}/resume", cfg.ReconciliationHandler.Resume)
		})

		// Read-side projections
		r.Get("/summaries", cfg.QueryHandler.Summaries)
		r.Route("/reports", func(r chi.Router) {
			r.Get("/overdue", cfg.QueryHandler.Overdue)
			r.Get("/low-stock", cfg.QueryHandler.LowStock)
		})

		// Fleet-wide consistency check
		r.Post("/reconcile", cfg.ReconciliationHandler.ReconcileAll)
	})

	return r
}
