package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airlens/airlens/internal/airquality"
	"github.com/airlens/airlens/internal/view"
)

// fakeTarget records visibility and content for assertions.
type fakeTarget struct {
	visible        map[view.Region]bool
	loadingMessage string
	errorMessage   string

	aqiValue       int
	aqiDescription string
	aqiClass       string
	aqiColor       string
	locationName   string
	cards          []view.Card
	advice         []airquality.Advice
	summaryPct     int
	summaryBand    airquality.Band
	summarySet     bool
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{visible: make(map[view.Region]bool)}
}

func (f *fakeTarget) ShowRegion(region view.Region) { f.visible[region] = true }
func (f *fakeTarget) HideRegion(region view.Region) { f.visible[region] = false }

func (f *fakeTarget) SetLoadingMessage(message string) { f.loadingMessage = message }
func (f *fakeTarget) SetErrorMessage(message string)   { f.errorMessage = message }

func (f *fakeTarget) SetAQI(value int, description, class, color string) {
	f.aqiValue = value
	f.aqiDescription = description
	f.aqiClass = class
	f.aqiColor = color
}

func (f *fakeTarget) SetLocationName(name string)        { f.locationName = name }
func (f *fakeTarget) SetCards(cards []view.Card)         { f.cards = cards }
func (f *fakeTarget) SetAdvice(items []airquality.Advice) { f.advice = items }

func (f *fakeTarget) SetSummary(percentage int, band airquality.Band) {
	f.summaryPct = percentage
	f.summaryBand = band
	f.summarySet = true
}

// visibleRegions returns which of the exclusive regions are shown.
func (f *fakeTarget) visibleRegions() []view.Region {
	var shown []view.Region
	for _, region := range []view.Region{view.RegionLoading, view.RegionError, view.RegionResults} {
		if f.visible[region] {
			shown = append(shown, region)
		}
	}
	return shown
}

func TestSections_InitialStateIsIdle(t *testing.T) {
	target := newFakeTarget()
	sections := view.NewSections(target)

	assert.Equal(t, view.StateIdle, sections.State())
	assert.Empty(t, target.visibleRegions())
}

func TestSections_Exclusivity(t *testing.T) {
	target := newFakeTarget()
	sections := view.NewSections(target)

	sections.Loading("Getting your location...")
	assert.Equal(t, view.StateLoading, sections.State())
	assert.Equal(t, []view.Region{view.RegionLoading}, target.visibleRegions())
	assert.Equal(t, "Getting your location...", target.loadingMessage)

	sections.Error("boom")
	assert.Equal(t, view.StateError, sections.State())
	assert.Equal(t, []view.Region{view.RegionError}, target.visibleRegions())
	assert.Equal(t, "boom", target.errorMessage)

	sections.Results(true)
	assert.Equal(t, view.StateResults, sections.State())
	assert.Equal(t, []view.Region{view.RegionResults}, target.visibleRegions())
	assert.True(t, target.visible[view.RegionSummary])

	// Any state may follow any other.
	sections.Loading("again")
	assert.Equal(t, []view.Region{view.RegionLoading}, target.visibleRegions())
	assert.False(t, target.visible[view.RegionSummary], "summary is hidden on every transition")
}

func TestSections_ResultsWithoutSummary(t *testing.T) {
	target := newFakeTarget()
	sections := view.NewSections(target)

	sections.Results(false)
	assert.Equal(t, []view.Region{view.RegionResults}, target.visibleRegions())
	assert.False(t, target.visible[view.RegionSummary])
}

func TestSections_Reset(t *testing.T) {
	target := newFakeTarget()
	sections := view.NewSections(target)

	sections.Results(true)
	sections.Reset()

	assert.Equal(t, view.StateIdle, sections.State())
	assert.Empty(t, target.visibleRegions())
	assert.False(t, target.visible[view.RegionSummary])
}
