package lookup

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/airlens/airlens/internal/geolocate"
	"github.com/airlens/airlens/internal/view"
)

// ErrNoLocator is returned when the environment has no geolocation
// capability at all.
var ErrNoLocator = errors.New("geolocation capability unavailable")

// Fixed user-facing messages. These are part of the UI contract and do
// not vary with the underlying error text.
const (
	msgLocating    = "Getting your location..."
	msgFetching    = "Fetching air quality data..."
	msgUnsupported = "Geolocation is not supported in this environment."
	msgDenied      = "Location access was denied. Please allow location access and try again."
	msgUnavailable = "Your location could not be determined."
	msgTimeout     = "Timed out while determining your location."
	msgUnknown     = "An unknown error occurred while determining your location."
)

// Config holds configuration for the orchestrator.
type Config struct {
	// Locator resolves the current position. Nil models an environment
	// without geolocation support.
	Locator geolocate.Locator

	// Client fetches reports from the API (required).
	Client Client

	// Sections controls region visibility (required).
	Sections *view.Sections

	// Renderer draws fetched reports (required).
	Renderer *view.Renderer

	// Logger for workflow diagnostics.
	Logger zerolog.Logger
}

// Orchestrator runs the lookup workflow. It holds the last successful
// position so a refresh can skip the location step.
//
// The workflow is not cancellable once started and requests are not
// deduplicated: overlapping refreshes each run to completion, the later
// rendering overwriting the earlier, so result order under concurrent
// refreshes is undefined. Run it from a single goroutine.
type Orchestrator struct {
	locator  geolocate.Locator
	client   Client
	sections *view.Sections
	renderer *view.Renderer
	logger   zerolog.Logger

	position *geolocate.Position
}

// New creates an orchestrator with no held position.
func New(cfg Config) *Orchestrator {
	return &Orchestrator{
		locator:  cfg.Locator,
		client:   cfg.Client,
		sections: cfg.Sections,
		renderer: cfg.Renderer,
		logger:   cfg.Logger,
	}
}

// RequestLocation runs the full workflow: locate, fetch, render. Every
// failure surfaces in the error region with a fixed message and is also
// returned; nothing is retried automatically.
func (o *Orchestrator) RequestLocation(ctx context.Context) error {
	o.sections.Loading(msgLocating)

	if o.locator == nil {
		o.logger.Error().Msg("no geolocation capability")
		o.sections.Error(msgUnsupported)
		return ErrNoLocator
	}

	position, err := o.locator.CurrentPosition(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("locating failed")
		o.sections.Error(locationMessage(err))
		return err
	}
	o.position = position

	return o.fetchAndRender(ctx, position)
}

// Refresh repeats the fetch with the held position. Without one it
// behaves exactly like RequestLocation.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	if o.position == nil {
		return o.RequestLocation(ctx)
	}
	return o.fetchAndRender(ctx, o.position)
}

// Retry restarts the workflow from the location request.
func (o *Orchestrator) Retry(ctx context.Context) error {
	return o.RequestLocation(ctx)
}

// Position returns the held position, nil before the first success.
func (o *Orchestrator) Position() *geolocate.Position {
	return o.position
}

func (o *Orchestrator) fetchAndRender(ctx context.Context, position *geolocate.Position) error {
	o.sections.Loading(msgFetching)

	report, err := o.client.FetchReport(ctx, position.Lat, position.Lon)
	if err != nil {
		o.logger.Error().Err(err).Msg("fetch failed")
		var backendErr *BackendError
		if errors.As(err, &backendErr) {
			o.sections.Error(backendErr.Message)
		} else {
			o.sections.Error("Error fetching air quality data: " + err.Error())
		}
		return err
	}

	withSummary, err := o.renderer.Render(report)
	if err != nil {
		o.logger.Error().Err(err).Msg("render failed")
		o.sections.Error("Error fetching air quality data: " + err.Error())
		return err
	}

	o.sections.Results(withSummary)
	return nil
}

// locationMessage maps each location failure cause to its fixed
// user-facing message.
func locationMessage(err error) string {
	switch {
	case errors.Is(err, geolocate.ErrPermissionDenied):
		return msgDenied
	case errors.Is(err, geolocate.ErrPositionUnavailable):
		return msgUnavailable
	case errors.Is(err, geolocate.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	default:
		return msgUnknown
	}
}
