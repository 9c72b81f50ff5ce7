package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/internal/domain"
	"launchdash/internal/service/launch"
)

func testRouter() http.Handler {
	table := domain.NewTable([]domain.LaunchRecord{
		{Site: "CCAFS LC-40", Outcome: 1, PayloadMass: 500, BoosterCategory: "v1.0"},
		{Site: "CCAFS LC-40", Outcome: 0, PayloadMass: 3000, BoosterCategory: "v1.1"},
		{Site: "KSC LC-39A", Outcome: 1, PayloadMass: 5300, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", Outcome: 1, PayloadMass: 9600, BoosterCategory: "B4"},
	})
	r := chi.NewRouter()
	MountRoutes(r, NewHandler(launch.NewService(table)))
	return r
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDashboard_DefaultState(t *testing.T) {
	rec := get(t, testRouter(), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "SpaceX Launch Records Dashboard")
	assert.Contains(t, body, "Total Successful Launches by Site")
	assert.Contains(t, body, "Correlation between Payload and Success (All Sites)")
	assert.Contains(t, body, "All Sites")
	assert.Contains(t, body, "CCAFS LC-40")
	assert.Contains(t, body, "KSC LC-39A")
}

func TestDashboard_SiteSelection(t *testing.T) {
	body := get(t, testRouter(), "/?site=CCAFS+LC-40").Body.String()

	assert.Contains(t, body, "Launch Outcomes for CCAFS LC-40")
	assert.Contains(t, body, "Correlation between Payload and Success (CCAFS LC-40)")
	assert.Contains(t, body, "Success")
	assert.Contains(t, body, "Failure")
}

func TestDashboard_EmptyRangeRendersEmptyChart(t *testing.T) {
	body := get(t, testRouter(), "/?min=0&max=0").Body.String()

	assert.Contains(t, body, "No launches in the selected payload range.")
}

func TestDashboard_UnknownSiteRendersEmptyChart(t *testing.T) {
	body := get(t, testRouter(), "/?site=VAFB+SLC-4E").Body.String()

	assert.Contains(t, body, "No matching launch records for this selection.")
}

func TestDashboard_MalformedRangeFallsBackToFullSpan(t *testing.T) {
	body := get(t, testRouter(), "/?min=abc&max=xyz").Body.String()

	// Full span keeps all four launches in the scatter.
	assert.Contains(t, body, "4 launches between 500 kg and 9600 kg")
}

func TestStaticAssets(t *testing.T) {
	rec := get(t, testRouter(), "/static/app.css")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".app-main")
}
