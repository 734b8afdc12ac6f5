package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airlens/airlens/internal/airquality"
	"github.com/airlens/airlens/internal/api"
	"github.com/airlens/airlens/internal/api/models"
	"github.com/airlens/airlens/internal/report"
)

type stubProvider struct {
	sample *report.Sample
	err    error
}

func (p *stubProvider) CurrentSample(context.Context, float64, float64) (*report.Sample, error) {
	return p.sample, p.err
}

type stubGeocoder struct{ name string }

func (g *stubGeocoder) PlaceName(context.Context, float64, float64) (string, error) {
	return g.name, nil
}

func newTestRouter(provider report.Provider) http.Handler {
	logger := zerolog.New(io.Discard)
	service := report.NewService(report.ServiceConfig{
		Provider: provider,
		Geocoder: &stubGeocoder{name: "Amsterdam, North Holland, NL"},
		Logger:   logger,
	})
	return api.NewRouter(api.RouterConfig{
		Version:       "test",
		BuildTime:     "2026-01-01T00:00:00Z",
		Logger:        logger,
		ReportService: service,
	})
}

func moderateSample() *report.Sample {
	return &report.Sample{
		AQI: 3,
		Concentrations: map[string]float64{
			"pm2_5": 20,
			"pm10":  30,
			"o3":    90,
		},
		MeasuredAt: time.Now(),
	}
}

func TestRouter_GetAirQuality(t *testing.T) {
	router := newTestRouter(&stubProvider{sample: moderateSample()})

	req := httptest.NewRequest(http.MethodGet, "/api/air-quality?lat=52.37&lon=4.89", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var rep airquality.Report
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rep))

	assert.Equal(t, 3, rep.AQI.Value)
	assert.Equal(t, "Moderate", rep.AQI.Description)
	assert.Equal(t, "#ff7e00", rep.AQI.Color)
	assert.Len(t, rep.Components, 6)
	assert.Equal(t, 80.0, rep.Components["pm2_5"].Percentage)
	assert.Equal(t, 0.0, rep.Components["co"].Value, "missing pollutants report as zero")
	require.NotNil(t, rep.Location)
	assert.Equal(t, "Amsterdam, North Holland, NL", rep.Location.Name)
}

func TestRouter_GetAirQuality_MissingCoordinates(t *testing.T) {
	router := newTestRouter(&stubProvider{sample: moderateSample()})

	for _, target := range []string{
		"/api/air-quality",
		"/api/air-quality?lat=52.37",
		"/api/air-quality?lon=4.89",
		"/api/air-quality?lat=abc&lon=4.89",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)

		var body models.ErrorBody
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Latitude and longitude are required", body.Error)
	}
}

func TestRouter_GetAirQuality_NoData(t *testing.T) {
	router := newTestRouter(&stubProvider{err: report.ErrNoData})

	req := httptest.NewRequest(http.MethodGet, "/api/air-quality?lat=0&lon=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body models.ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "No air quality data available", body.Error)
}

func TestRouter_GetAirQuality_UpstreamFailure(t *testing.T) {
	router := newTestRouter(&stubProvider{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/air-quality?lat=52.37&lon=4.89", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body models.ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Failed to fetch air quality data", body.Error)
	assert.NotContains(t, w.Body.String(), "connection refused", "upstream detail is not leaked")
}

func TestRouter_OpsHealth(t *testing.T) {
	router := newTestRouter(&stubProvider{sample: moderateSample()})

	req := httptest.NewRequest(http.MethodGet, "/ops/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var health models.Health
	require.NoError(t, json.NewDecoder(w.Body).Decode(&health))
	assert.Equal(t, models.HealthStatusOK, health.Status)
	assert.Equal(t, "test", health.Details["version"])
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router := newTestRouter(&stubProvider{sample: moderateSample()})

	req := httptest.NewRequest(http.MethodGet, "/ops/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(&stubProvider{sample: moderateSample()})

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
