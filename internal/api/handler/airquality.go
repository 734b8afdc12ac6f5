// Package handler provides HTTP handlers for the AirLens API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/airlens/airlens/internal/api/response"
	"github.com/airlens/airlens/internal/report"
)

// Fixed error messages of the air quality endpoint.
const (
	msgCoordinatesRequired = "Latitude and longitude are required"
	msgNoData              = "No air quality data available"
	msgFetchFailed         = "Failed to fetch air quality data"
)

// AirQualityHandler handles air quality report requests.
type AirQualityHandler struct {
	service *report.Service
	logger  zerolog.Logger
}

// NewAirQualityHandler creates a new AirQualityHandler.
func NewAirQualityHandler(service *report.Service, logger zerolog.Logger) *AirQualityHandler {
	return &AirQualityHandler{service: service, logger: logger}
}

// GetAirQuality handles GET /api/air-quality?lat=&lon=.
func (h *AirQualityHandler) GetAirQuality(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		response.BadRequest(w, r, msgCoordinatesRequired)
		return
	}

	rep, err := h.service.Lookup(r.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			response.NotFound(w, r, msgNoData)
			return
		}
		h.logger.Error().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("report lookup failed")
		response.InternalError(w, r, msgFetchFailed)
		return
	}

	response.JSON(w, r, http.StatusOK, rep)
}
