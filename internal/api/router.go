// Package api exposes the session planner over JSON/HTTP.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/peak/internal/config"
	"github.com/alexanderramin/peak/internal/service"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	plans service.PlanService,
	catalog service.CatalogService,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()

	r.Use(CORS(cfg.CORSOrigin))
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	sessionH := NewSessionHandler(plans, cfg.DefaultDuration, cfg.DefaultInput, logger)
	catalogH := NewCatalogHandler(catalog)

	r.Get("/health", Health)
	r.Get("/categories", catalogH.List)
	r.Post("/start_session", sessionH.Start)

	return r
}
