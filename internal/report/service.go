// Package report assembles air quality reports for a coordinate from an
// upstream pollution provider and a reverse geocoder.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/airlens/airlens/internal/airquality"
)

// ErrNoData is returned when the provider has no reading for the
// requested coordinate.
var ErrNoData = errors.New("no air quality data available")

// Sample is a raw pollution reading from an upstream provider.
type Sample struct {
	// AQI is the provider-classified category, 1 (good) to 5 (very poor).
	AQI int

	// Concentrations maps pollutant key to concentration in µg/m³.
	Concentrations map[string]float64

	// MeasuredAt is the reading timestamp.
	MeasuredAt time.Time
}

// Provider supplies raw pollution samples.
type Provider interface {
	CurrentSample(ctx context.Context, lat, lon float64) (*Sample, error)
}

// Geocoder resolves a coordinate to a human-readable place name.
type Geocoder interface {
	PlaceName(ctx context.Context, lat, lon float64) (string, error)
}

// guidelineMax holds the WHO guideline concentration per pollutant in
// µg/m³, used as the 100% mark. Percentages are not capped: a reading
// above the guideline reports above 100.
var guidelineMax = map[string]float64{
	airquality.KeyPM25: 25,
	airquality.KeyPM10: 50,
	airquality.KeyCO:   10000,
	airquality.KeyNO2:  200,
	airquality.KeySO2:  350,
	airquality.KeyO3:   180,
}

var componentMeta = map[string]struct {
	name        string
	description string
}{
	airquality.KeyPM25: {"PM2.5", "Fine Particulate Matter"},
	airquality.KeyPM10: {"PM10", "Coarse Particulate Matter"},
	airquality.KeyCO:   {"CO", "Carbon Monoxide"},
	airquality.KeyNO2:  {"NO₂", "Nitrogen Dioxide"},
	airquality.KeySO2:  {"SO₂", "Sulfur Dioxide"},
	airquality.KeyO3:   {"O₃", "Ozone"},
}

const concentrationUnit = "µg/m³"

// unknownLocation is reported when reverse geocoding fails; geocoding
// never fails the lookup itself.
const unknownLocation = "Unknown Location"

// ServiceConfig holds configuration for the report service.
type ServiceConfig struct {
	// Provider supplies pollution samples (required).
	Provider Provider

	// Geocoder resolves place names. Optional; when nil the location
	// name is reported as unknown.
	Geocoder Geocoder

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service builds air quality reports.
type Service struct {
	provider Provider
	geocoder Geocoder
	logger   zerolog.Logger
}

// NewService creates a report service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		geocoder: cfg.Geocoder,
		logger:   cfg.Logger,
	}
}

// Lookup fetches the current pollution sample for the coordinate and
// assembles the full report: classified AQI summary, one component per
// guideline pollutant (missing concentrations reported as zero), and a
// best-effort location name.
func (s *Service) Lookup(ctx context.Context, lat, lon float64) (*airquality.Report, error) {
	sample, err := s.provider.CurrentSample(ctx, lat, lon)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching pollution sample: %w", err)
	}

	descriptor := airquality.DescriptorForCategory(sample.AQI)

	components := make(map[string]airquality.Component, len(guidelineMax))
	for key, max := range guidelineMax {
		meta := componentMeta[key]
		value := sample.Concentrations[key]
		components[key] = airquality.Component{
			Name:        meta.name,
			Description: meta.description,
			Value:       value,
			Unit:        concentrationUnit,
			Percentage:  value / max * 100,
		}
	}

	report := &airquality.Report{
		AQI: airquality.AQI{
			Value:       sample.AQI,
			Description: descriptor.Description,
			Class:       descriptor.Class,
			Color:       descriptor.Color,
		},
		Components: components,
		Location: &airquality.Location{
			Lat:  lat,
			Lon:  lon,
			Name: s.placeName(ctx, lat, lon),
		},
	}

	s.logger.Debug().
		Float64("lat", lat).
		Float64("lon", lon).
		Int("aqi", sample.AQI).
		Msg("report assembled")

	return report, nil
}

func (s *Service) placeName(ctx context.Context, lat, lon float64) string {
	if s.geocoder == nil {
		return unknownLocation
	}
	name, err := s.geocoder.PlaceName(ctx, lat, lon)
	if err != nil {
		s.logger.Warn().Err(err).Msg("reverse geocoding failed")
		return unknownLocation
	}
	if name == "" {
		return unknownLocation
	}
	return name
}
