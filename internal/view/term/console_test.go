package term_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airlens/airlens/internal/airquality"
	"github.com/airlens/airlens/internal/view"
	"github.com/airlens/airlens/internal/view/term"
)

func TestConsole_LoadingAndError(t *testing.T) {
	var buf bytes.Buffer
	console := term.NewConsole(term.ConsoleConfig{Writer: &buf})

	console.SetLoadingMessage("Getting your location...")
	console.ShowRegion(view.RegionLoading)
	assert.Contains(t, buf.String(), "Getting your location...")

	buf.Reset()
	console.SetErrorMessage("upstream timeout")
	console.ShowRegion(view.RegionError)
	assert.Contains(t, buf.String(), "upstream timeout")
}

func TestConsole_Results(t *testing.T) {
	var buf bytes.Buffer
	console := term.NewConsole(term.ConsoleConfig{Writer: &buf})

	console.SetAQI(3, "Moderate", "moderate", "#ff7e00")
	console.SetLocationName("Santa Cruz, California, US")
	console.SetCards([]view.Card{
		{Key: "pm2_5", Name: "PM2.5", Value: 20.125, Unit: "µg/m³", Percentage: 80, Band: airquality.BandModerate},
	})
	console.SetAdvice(airquality.AdviceForCategory(3))

	_, err := console.NewChart([]view.Bar{
		{Label: "PM2.5", Value: 20.125, Color: airquality.BandModerate.Color()},
	})
	require.NoError(t, err)

	console.ShowRegion(view.RegionResults)
	out := buf.String()

	assert.Contains(t, out, "Air Quality Index: 3 (Moderate)")
	assert.Contains(t, out, "Santa Cruz, California, US")
	assert.Contains(t, out, "20.13", "values are formatted to two decimals")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "Sensitive groups should reduce prolonged outdoor exertion.")
}

func TestConsole_Summary(t *testing.T) {
	var buf bytes.Buffer
	console := term.NewConsole(term.ConsoleConfig{Writer: &buf})

	console.SetSummary(70, airquality.BandFair)
	console.ShowRegion(view.RegionSummary)

	assert.Contains(t, buf.String(), "70%")
	assert.Contains(t, buf.String(), "Fair")
}

func TestConsole_SummaryBandTitleCased(t *testing.T) {
	var buf bytes.Buffer
	console := term.NewConsole(term.ConsoleConfig{Writer: &buf})

	console.SetSummary(180, airquality.BandVeryPoor)
	console.ShowRegion(view.RegionSummary)

	assert.Contains(t, buf.String(), "Very Poor")
}

func TestConsole_ChartNegativeValue(t *testing.T) {
	var buf bytes.Buffer
	console := term.NewConsole(term.ConsoleConfig{Writer: &buf})

	assert.NotPanics(t, func() {
		_, err := console.NewChart([]view.Bar{
			{Label: "O₃", Value: 108, Color: "#ffff00"},
			{Label: "NO₂", Value: -4, Color: "#00e400"},
		})
		require.NoError(t, err)
	})

	console.ShowRegion(view.RegionResults)
	assert.Contains(t, buf.String(), "-4.00")
}

func TestConsole_ClosedChartIsNotPrinted(t *testing.T) {
	var buf bytes.Buffer
	console := term.NewConsole(term.ConsoleConfig{Writer: &buf})

	chart, err := console.NewChart([]view.Bar{{Label: "O3", Value: 42, Color: "#00e400"}})
	require.NoError(t, err)
	require.NoError(t, chart.Close())

	console.ShowRegion(view.RegionResults)
	assert.NotContains(t, buf.String(), "42.00")
}
