// Package ui renders the server-side dashboard. Each request recomputes both
// views from the immutable table and re-renders the full page; the control
// panel round-trips its state as query parameters.
package ui

import (
	"net/http"
	"strconv"

	gomponents "maragu.dev/gomponents"

	"launchdash/internal/domain"
	"launchdash/internal/service/launch"
)

// Handler serves the dashboard page.
type Handler struct {
	Launch *launch.Service
}

// NewHandler creates the UI handler.
func NewHandler(launchSvc *launch.Service) *Handler {
	return &Handler{Launch: launchSvc}
}

// Dashboard renders the page for the current control-panel state.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	state := h.stateFromRequest(r)
	dist := h.Launch.DistributionFor(state.Site)
	corr := h.Launch.CorrelationFor(state.Site, state.Range)
	renderHTML(w, http.StatusOK, dashboardPage(state, dist, corr))
}

// stateFromRequest derives the control-panel state from query parameters.
// Absent or malformed values fall back to defaults (ALL, full span); supplied
// values are clamped to the dataset bounds — the only validation applied.
func (h *Handler) stateFromRequest(r *http.Request) dashboardState {
	bounds := h.Launch.PayloadBounds()
	state := dashboardState{
		Site:   domain.SiteAll,
		Range:  bounds,
		Bounds: bounds,
		Sites:  h.Launch.Sites(),
	}

	if site := r.URL.Query().Get("site"); site != "" {
		state.Site = site
	}

	selected := bounds
	if raw := r.URL.Query().Get("min"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			selected.Lo = parsed
		}
	}
	if raw := r.URL.Query().Get("max"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			selected.Hi = parsed
		}
	}
	state.Range = selected.Clamp(bounds)

	return state
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
