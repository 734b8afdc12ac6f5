package geolocate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultIPAPIURL is the ip-api.com JSON endpoint.
const DefaultIPAPIURL = "http://ip-api.com/json/"

// IPLocatorConfig holds configuration for the IP-based locator.
type IPLocatorConfig struct {
	// BaseURL overrides the lookup endpoint (optional).
	BaseURL string

	// Options for position requests. Zero fields take defaults.
	Options Options

	// HTTPClient to use (optional). The request timeout comes from
	// Options.Timeout regardless.
	HTTPClient *http.Client

	// Logger for locator operations.
	Logger zerolog.Logger
}

// IPLocator resolves the host position from its public IP address.
// It caches the last successful position and reuses it while it is
// younger than Options.MaximumAge.
type IPLocator struct {
	baseURL    string
	options    Options
	httpClient *http.Client
	logger     zerolog.Logger

	mu     sync.Mutex
	cached *Position
}

// NewIPLocator creates an IP-based locator.
func NewIPLocator(cfg IPLocatorConfig) *IPLocator {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultIPAPIURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &IPLocator{
		baseURL:    baseURL,
		options:    cfg.Options.withDefaults(),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Region  string  `json:"regionName"`
	Country string  `json:"country"`
}

// CurrentPosition resolves the current position, reusing a cached one
// younger than MaximumAge.
func (l *IPLocator) CurrentPosition(ctx context.Context) (*Position, error) {
	l.mu.Lock()
	if l.cached != nil && time.Since(l.cached.ObservedAt) <= l.options.MaximumAge {
		cached := l.cached
		l.mu.Unlock()
		l.logger.Debug().
			Time("observed_at", cached.ObservedAt).
			Msg("reusing cached position")
		return cached, nil
	}
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, l.options.Timeout)
	defer cancel()

	position, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cached = position
	l.mu.Unlock()

	return position, nil
}

func (l *IPLocator) fetch(ctx context.Context) (*Position, error) {
	url := l.baseURL + "?fields=status,message,lat,lon,city,regionName,country"
	if !l.options.HighAccuracy {
		url = l.baseURL + "?fields=status,message,lat,lon"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", ErrPermissionDenied, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrPositionUnavailable, resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrPositionUnavailable, err)
	}

	if body.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrPositionUnavailable, body.Message)
	}

	position := &Position{
		Lat:        body.Lat,
		Lon:        body.Lon,
		Place:      joinPlace(body.City, body.Region, body.Country),
		ObservedAt: time.Now(),
	}

	l.logger.Debug().
		Float64("lat", position.Lat).
		Float64("lon", position.Lon).
		Str("place", position.Place).
		Msg("position resolved")

	return position, nil
}

func joinPlace(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
