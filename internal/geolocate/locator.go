// Package geolocate resolves the host's current position.
package geolocate

import (
	"context"
	"errors"
	"time"
)

// Location failure causes. Callers map each to a distinct user-facing
// message.
var (
	// ErrPermissionDenied means the position source refused the request.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrPositionUnavailable means no position could be determined.
	ErrPositionUnavailable = errors.New("position unavailable")

	// ErrTimeout means the position request did not complete in time.
	ErrTimeout = errors.New("location request timed out")
)

// Position is a resolved coordinate. Overwritten wholesale on each
// successful request, never persisted.
type Position struct {
	Lat        float64
	Lon        float64
	Place      string
	ObservedAt time.Time
}

// Locator resolves the current position. A nil Locator models an
// environment without any geolocation capability.
type Locator interface {
	CurrentPosition(ctx context.Context) (*Position, error)
}

// Options controls position requests.
type Options struct {
	// HighAccuracy asks the source for its most precise answer.
	HighAccuracy bool

	// Timeout bounds a single position request. Default: 10s.
	Timeout time.Duration

	// MaximumAge allows reuse of a previously resolved position up to
	// this old instead of issuing a new request. Default: 5m.
	MaximumAge time.Duration
}

// DefaultOptions returns the standard position request options.
func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   5 * time.Minute,
	}
}

func (o Options) withDefaults() Options {
	if o.Timeout == 0 {
		o.Timeout = 10 * time.Second
	}
	if o.MaximumAge == 0 {
		o.MaximumAge = 5 * time.Minute
	}
	return o
}
