// Package lookup drives the user-facing workflow: resolve the current
// position, fetch the air quality report for it, and render the result.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/airlens/airlens/internal/airquality"
)

// Client fetches air quality reports from the AirLens API.
type Client interface {
	FetchReport(ctx context.Context, lat, lon float64) (*airquality.Report, error)
}

// BackendError is a failure the API reported in its error envelope.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return e.Message
}

// fetchFallbackMessage is used when a failing response carries no
// usable error field.
const fetchFallbackMessage = "Failed to fetch air quality data"

// HTTPClientConfig holds configuration for the API client.
type HTTPClientConfig struct {
	// BaseURL of the AirLens API, without trailing slash (required).
	BaseURL string

	// HTTPClient to use (optional). A failed fetch is surfaced to the
	// user and retried only on explicit request, so the client is
	// deliberately single-shot with no retry policy.
	HTTPClient *http.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// HTTPClient is the HTTP implementation of Client.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewHTTPClient creates an API client.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPClient{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// FetchReport fetches the report for a coordinate. A failing status
// yields a BackendError carrying the body's error field; transport and
// parse failures are returned as-is for the caller to compose into a
// message.
func (c *HTTPClient) FetchReport(ctx context.Context, lat, lon float64) (*airquality.Report, error) {
	url := fmt.Sprintf("%s/api/air-quality?lat=%.6f&lon=%.6f", c.baseURL, lat, lon)

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
		message := fetchFallbackMessage
		var envelope struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Error != "" {
			message = envelope.Error
		}
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("message", message).
			Msg("backend reported failure")
		return nil, &BackendError{StatusCode: resp.StatusCode, Message: message}
	}

	var report airquality.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &report, nil
}
