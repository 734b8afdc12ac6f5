// Package view renders air quality reports onto an abstract display
// target and controls which display regions are visible.
package view

import "github.com/airlens/airlens/internal/airquality"

// Region identifies a display region controlled by Sections.
type Region int

// Display regions. Loading, Error and Results are mutually exclusive;
// Summary is only shown alongside Results.
const (
	RegionLoading Region = iota
	RegionError
	RegionResults
	RegionSummary
)

// Regions lists every region, in hide order.
var Regions = []Region{RegionLoading, RegionError, RegionResults, RegionSummary}

// Card is the displayable form of a single pollutant component.
type Card struct {
	Key         string
	Name        string
	Description string
	Value       float64
	Unit        string
	Percentage  float64
	Band        airquality.Band
}

// Bar is a single chart bar. Value sets the bar height, Color comes
// from the component's exposure band.
type Bar struct {
	Label string
	Value float64
	Color string
}

// Chart is a live chart resource. The renderer owns at most one at a
// time and closes it before drawing a replacement.
type Chart interface {
	Close() error
}

// ChartFactory draws a new chart from bars.
type ChartFactory interface {
	NewChart(bars []Bar) (Chart, error)
}

// Target is the capability set the renderer and section controller draw
// on. Implementations include the terminal console and test doubles.
type Target interface {
	ShowRegion(region Region)
	HideRegion(region Region)

	SetLoadingMessage(message string)
	SetErrorMessage(message string)

	// SetAQI shows the index value and description in the
	// backend-supplied color; the color is never recomputed locally.
	SetAQI(value int, description, class, color string)
	SetLocationName(name string)
	SetCards(cards []Card)
	SetAdvice(items []airquality.Advice)
	SetSummary(percentage int, band airquality.Band)
}
