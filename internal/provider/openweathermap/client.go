// Package openweathermap implements the pollution provider and reverse
// geocoder against the OpenWeatherMap API.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/airlens/airlens/internal/provider/resilience"
	"github.com/airlens/airlens/internal/report"
)

const (
	// ProviderName identifies this provider in health reports and metrics.
	ProviderName = "openweathermap"

	// DefaultPollutionURL is the OpenWeatherMap air pollution endpoint.
	DefaultPollutionURL = "https://api.openweathermap.org/data/2.5/air_pollution"

	// DefaultGeocodingURL is the OpenWeatherMap reverse geocoding endpoint.
	DefaultGeocodingURL = "https://api.openweathermap.org/geo/1.0/reverse"
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// PollutionURL overrides the air pollution endpoint (optional).
	PollutionURL string

	// GeocodingURL overrides the reverse geocoding endpoint (optional).
	GeocodingURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Registry records request outcomes for health reporting (optional).
	Registry *resilience.Registry

	// Metrics records provider request metrics (optional).
	Metrics *resilience.ProviderMetrics

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap API client implementing report.Provider
// and report.Geocoder.
type Client struct {
	apiKey       string
	pollutionURL string
	geocodingURL string
	httpClient   *resilience.Client
	registry     *resilience.Registry
	metrics      *resilience.ProviderMetrics
	logger       zerolog.Logger
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	pollutionURL := cfg.PollutionURL
	if pollutionURL == "" {
		pollutionURL = DefaultPollutionURL
	}

	geocodingURL := cfg.GeocodingURL
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	if cfg.Registry != nil {
		cfg.Registry.Register(ProviderName, httpClient)
	}

	return &Client{
		apiKey:       cfg.APIKey,
		pollutionURL: pollutionURL,
		geocodingURL: geocodingURL,
		httpClient:   httpClient,
		registry:     cfg.Registry,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
	}
}

// CurrentSample fetches the current pollution reading for a coordinate.
func (c *Client) CurrentSample(ctx context.Context, lat, lon float64) (*report.Sample, error) {
	start := time.Now()
	sample, err := c.fetchSample(ctx, lat, lon)
	c.record("air_pollution", time.Since(start), err)
	return sample, err
}

func (c *Client) fetchSample(ctx context.Context, lat, lon float64) (*report.Sample, error) {
	url := fmt.Sprintf("%s?lat=%.6f&lon=%.6f&appid=%s", c.pollutionURL, lat, lon, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var owmResp airPollutionResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(owmResp.List) == 0 {
		return nil, report.ErrNoData
	}

	entry := owmResp.List[0]
	return &report.Sample{
		AQI:            entry.Main.AQI,
		Concentrations: entry.Components,
		MeasuredAt:     time.Unix(entry.Dt, 0),
	}, nil
}

// PlaceName reverse-geocodes a coordinate into "name, state, country",
// omitting parts the geocoder does not return.
func (c *Client) PlaceName(ctx context.Context, lat, lon float64) (string, error) {
	start := time.Now()
	name, err := c.fetchPlaceName(ctx, lat, lon)
	c.record("reverse_geocode", time.Since(start), err)
	return name, err
}

func (c *Client) fetchPlaceName(ctx context.Context, lat, lon float64) (string, error) {
	url := fmt.Sprintf("%s?lat=%.6f&lon=%.6f&limit=1&appid=%s", c.geocodingURL, lat, lon, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var places []reverseGeocodeEntry
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(places) == 0 {
		return "", nil
	}

	place := places[0]
	parts := make([]string, 0, 3)
	for _, part := range []string{place.Name, place.State, place.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", "), nil
}

func (c *Client) record(operation string, duration time.Duration, err error) {
	c.metrics.RecordRequest(ProviderName, operation, duration, err)
	if c.registry == nil {
		return
	}
	if err != nil {
		c.registry.RecordFailure(ProviderName, err)
		return
	}
	c.registry.RecordSuccess(ProviderName)
}

// OpenWeatherMap API response structures.

type airPollutionResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components map[string]float64 `json:"components"`
	} `json:"list"`
}

type reverseGeocodeEntry struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}
