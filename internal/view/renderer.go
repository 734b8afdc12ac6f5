package view

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/airlens/airlens/internal/airquality"
)

// RendererConfig holds configuration for the renderer.
type RendererConfig struct {
	// Target receives the rendered content (required).
	Target Target

	// Charts draws the pollutant chart (required).
	Charts ChartFactory

	// Logger for renderer operations.
	Logger zerolog.Logger
}

// Renderer projects a report onto the target. It owns at most one live
// chart: the previous chart is closed before a replacement is drawn.
type Renderer struct {
	target Target
	charts ChartFactory
	logger zerolog.Logger
	chart  Chart
}

// NewRenderer creates a renderer with no live chart.
func NewRenderer(cfg RendererConfig) *Renderer {
	return &Renderer{
		target: cfg.Target,
		charts: cfg.Charts,
		logger: cfg.Logger,
	}
}

// Render draws the full report: AQI summary, location, pollutant cards
// in sorted key order, the chart, the advice list, and the overall
// summary. It reports whether the overall summary has content, which is
// true iff at least one tracked pollutant is present.
func (r *Renderer) Render(report *airquality.Report) (bool, error) {
	r.target.SetAQI(report.AQI.Value, report.AQI.Description, report.AQI.Class, report.AQI.Color)

	if report.Location != nil && report.Location.Name != "" {
		r.target.SetLocationName(report.Location.Name)
	}

	keys := report.ComponentKeys()
	cards := make([]Card, 0, len(keys))
	bars := make([]Bar, 0, len(keys))
	for _, key := range keys {
		component := report.Components[key]
		band := airquality.BandForPercentage(component.Percentage)
		cards = append(cards, Card{
			Key:         key,
			Name:        component.Name,
			Description: component.Description,
			Value:       component.Value,
			Unit:        component.Unit,
			Percentage:  component.Percentage,
			Band:        band,
		})
		bars = append(bars, Bar{
			Label: component.Name,
			Value: component.Value,
			Color: band.Color(),
		})
	}
	r.target.SetCards(cards)

	if err := r.replaceChart(bars); err != nil {
		return false, err
	}

	r.target.SetAdvice(airquality.AdviceForCategory(report.AQI.Value))

	if !airquality.HasTrackedPollutant(report.Components) {
		return false, nil
	}
	overall := airquality.OverallPercentage(report.Components)
	r.target.SetSummary(overall, airquality.BandForPercentage(float64(overall)))
	return true, nil
}

// replaceChart closes the current chart, if any, before drawing the new
// one. Skipping the close would leak the chart's drawing surface.
func (r *Renderer) replaceChart(bars []Bar) error {
	if r.chart != nil {
		if err := r.chart.Close(); err != nil {
			r.logger.Warn().Err(err).Msg("closing previous chart")
		}
		r.chart = nil
	}

	chart, err := r.charts.NewChart(bars)
	if err != nil {
		return fmt.Errorf("drawing chart: %w", err)
	}
	r.chart = chart
	return nil
}

// Close releases the current chart, if any.
func (r *Renderer) Close() error {
	if r.chart == nil {
		return nil
	}
	err := r.chart.Close()
	r.chart = nil
	return err
}
