package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"launchdash/internal/ui/assets"
)

// MountRoutes registers the dashboard page and its static assets.
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", h.Dashboard)
}
