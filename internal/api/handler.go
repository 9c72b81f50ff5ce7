// Package api exposes the dashboard views as a JSON API. Every endpoint is a
// pure read: it recomputes its view from the immutable table on each call.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"launchdash/internal/domain"
	"launchdash/internal/middleware"
	"launchdash/internal/service/launch"
)

// Handler serves the JSON API.
type Handler struct {
	Launch *launch.Service
	Logger *slog.Logger
}

// NewHandler creates the API handler.
func NewHandler(launchSvc *launch.Service, logger *slog.Logger) *Handler {
	return &Handler{Launch: launchSvc, Logger: logger}
}

// MountRoutes registers the API endpoints on the given router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.Health)
	r.Get("/sites", h.Sites)
	r.Get("/distribution", h.Distribution)
	r.Get("/correlation", h.Correlation)
}

// Health reports liveness and the size of the loaded table.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	bounds := h.Launch.PayloadBounds()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"sites":       len(h.Launch.Sites()),
		"payload_min": bounds.Lo,
		"payload_max": bounds.Hi,
	})
}

// Sites returns the distinct launch sites plus the ALL sentinel accepted by
// the other endpoints.
func (h *Handler) Sites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"all":   domain.SiteAll,
		"sites": h.Launch.Sites(),
	})
}

// Distribution returns the proportion breakdown for ?site= (default ALL).
func (h *Handler) Distribution(w http.ResponseWriter, r *http.Request) {
	site := siteParam(r)
	writeJSON(w, http.StatusOK, h.Launch.DistributionFor(site))
}

// Correlation returns the scatter projection for ?site=&min=&max=.
// min and max default to the observed payload bounds.
func (h *Handler) Correlation(w http.ResponseWriter, r *http.Request) {
	site := siteParam(r)
	bounds := h.Launch.PayloadBounds()

	lo, err := floatParam(r, "min", bounds.Lo)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	hi, err := floatParam(r, "max", bounds.Hi)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.Launch.CorrelationFor(site, domain.PayloadRange{Lo: lo, Hi: hi}))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatusFromDomainError(err)
	requestID := middleware.RequestIDFromContext(r.Context())
	if status >= http.StatusInternalServerError {
		h.Logger.Error("api request failed", "error", err, "request_id", requestID)
	}
	writeJSON(w, status, map[string]interface{}{
		"error":      err.Error(),
		"request_id": requestID,
	})
}

func siteParam(r *http.Request) string {
	site := r.URL.Query().Get("site")
	if site == "" {
		return domain.SiteAll
	}
	return site
}

func floatParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.ErrValidation("invalid %s parameter %q: must be a number", name, raw)
	}
	return parsed, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
