// Package app wires the loaded table, services, and HTTP surface together so
// main() stays small.
package app

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"launchdash/internal/api"
	"launchdash/internal/config"
	"launchdash/internal/domain"
	"launchdash/internal/middleware"
	"launchdash/internal/service/launch"
	"launchdash/internal/ui"
)

// App holds the wired application.
type App struct {
	Launch *launch.Service
	Router chi.Router
}

// New builds the services and the HTTP router from the loaded table.
func New(cfg *config.Config, table domain.Table, logger *slog.Logger) *App {
	launchSvc := launch.NewService(table)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(logger.With("component", "http")))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	ui.MountRoutes(r, ui.NewHandler(launchSvc))
	r.Route("/v1", func(r chi.Router) {
		api.MountRoutes(r, api.NewHandler(launchSvc, logger.With("component", "api")))
	})

	return &App{Launch: launchSvc, Router: r}
}
