// Package term implements the view target and chart factory for a
// terminal, writing plain text with optional ANSI colors.
package term

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/airlens/airlens/internal/airquality"
	"github.com/airlens/airlens/internal/view"
)

const (
	cardBarWidth  = 20
	chartBarWidth = 30
)

// ansiByHex maps the fixed palette colors to terminal colors.
var ansiByHex = map[string]string{
	"#00e400": "\x1b[32m", // green
	"#ffff00": "\x1b[33m", // yellow
	"#ff7e00": "\x1b[93m", // bright yellow
	"#ff0000": "\x1b[31m", // red
	"#8f3f97": "\x1b[35m", // magenta
	"#999999": "\x1b[90m", // gray
}

const ansiReset = "\x1b[0m"

// ConsoleConfig holds configuration for the terminal console.
type ConsoleConfig struct {
	// Writer receives the rendered output (required).
	Writer io.Writer

	// Color enables ANSI color escapes.
	Color bool
}

// Console renders onto a terminal. It implements view.Target and
// view.ChartFactory. The terminal is append-only, so hiding a region
// simply stops it from being printed again; showing one prints it.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	color  bool
	titler cases.Caser

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

	chart *consoleChart
}

// NewConsole creates a terminal console.
func NewConsole(cfg ConsoleConfig) *Console {
	return &Console{
		w:      cfg.Writer,
		color:  cfg.Color,
		titler: cases.Title(language.English),
	}
}

// ShowRegion prints the region's current content.
func (c *Console) ShowRegion(region view.Region) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch region {
	case view.RegionLoading:
		fmt.Fprintf(c.w, "... %s\n", c.loadingMessage)
	case view.RegionError:
		fmt.Fprintf(c.w, "%serror:%s %s\n", c.paint("#ff0000"), c.reset(), c.errorMessage)
	case view.RegionResults:
		c.printResults()
	case view.RegionSummary:
		c.printSummary()
	}
}

// HideRegion is a no-op for an append-only terminal; the region is just
// not printed again.
func (c *Console) HideRegion(view.Region) {}

// SetLoadingMessage stores the loading text.
func (c *Console) SetLoadingMessage(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadingMessage = message
}

// SetErrorMessage stores the error text.
func (c *Console) SetErrorMessage(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorMessage = message
}

// SetAQI stores the index summary.
func (c *Console) SetAQI(value int, description, class, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aqiValue = value
	c.aqiDescription = description
	c.aqiClass = class
	c.aqiColor = color
}

// SetLocationName stores the resolved place name.
func (c *Console) SetLocationName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locationName = name
}

// SetCards stores the pollutant cards.
func (c *Console) SetCards(cards []view.Card) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards = cards
}

// SetAdvice stores the health advice list.
func (c *Console) SetAdvice(items []airquality.Advice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advice = items
}

// SetSummary stores the overall pollution summary.
func (c *Console) SetSummary(percentage int, band airquality.Band) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summaryPct = percentage
	c.summaryBand = band
}

func (c *Console) printResults() {
	header := fmt.Sprintf("Air Quality Index: %d (%s)", c.aqiValue, c.aqiDescription)
	fmt.Fprintf(c.w, "%s%s%s\n", c.paint(c.aqiColor), header, c.reset())
	fmt.Fprintf(c.w, "%s\n", strings.Repeat("-", len(header)))
	if c.locationName != "" {
		fmt.Fprintf(c.w, "Location: %s\n", c.locationName)
	}
	fmt.Fprintln(c.w)

	for _, card := range c.cards {
		filled := int(math.Round(card.Percentage / 100 * cardBarWidth))
		if filled < 0 {
			filled = 0
		}
		pad := cardBarWidth - filled
		if pad < 0 {
			pad = 0 // above guideline, the bar overflows its track
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", pad)
		fmt.Fprintf(c.w, "%-6s %9.2f %-6s [%s%s%s] %.0f%%\n",
			card.Name, card.Value, card.Unit,
			c.paint(card.Band.Color()), bar, c.reset(),
			card.Percentage)
	}
	fmt.Fprintln(c.w)

	if c.chart != nil {
		for _, line := range c.chart.lines {
			fmt.Fprintln(c.w, line)
		}
		fmt.Fprintln(c.w)
	}

	for _, item := range c.advice {
		fmt.Fprintf(c.w, "  [%s] %s\n", item.Icon, item.Text)
	}
}

func (c *Console) printSummary() {
	bandName := c.titler.String(strings.ReplaceAll(string(c.summaryBand), "-", " "))
	fmt.Fprintf(c.w, "\nOverall pollution: %s%d%%%s of WHO guideline (%s)\n",
		c.paint(c.summaryBand.Color()), c.summaryPct, c.reset(), bandName)
}

func (c *Console) paint(hex string) string {
	if !c.color {
		return ""
	}
	return ansiByHex[hex]
}

func (c *Console) reset() string {
	if !c.color {
		return ""
	}
	return ansiReset
}

// consoleChart is a rendered chart block owned by the console until
// closed.
type consoleChart struct {
	console *Console
	lines   []string
}

// Close releases the chart's lines. After Close the console no longer
// prints this chart.
func (ch *consoleChart) Close() error {
	ch.console.mu.Lock()
	defer ch.console.mu.Unlock()
	if ch.console.chart == ch {
		ch.console.chart = nil
	}
	ch.lines = nil
	return nil
}

// NewChart renders bars as horizontal lines scaled to the largest
// value and takes ownership of the console's chart slot.
func (c *Console) NewChart(bars []view.Bar) (view.Chart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxValue := 0.0
	for _, bar := range bars {
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}

	lines := make([]string, 0, len(bars))
	for _, bar := range bars {
		width := 0
		if maxValue > 0 {
			width = int(math.Round(bar.Value / maxValue * chartBarWidth))
		}
		if width < 0 {
			width = 0 // negative readings get an empty bar, like the cards
		}
		lines = append(lines, fmt.Sprintf("%-6s %s%s%s %.2f",
			bar.Label, c.paint(bar.Color), strings.Repeat("▇", width), c.reset(), bar.Value))
	}

	chart := &consoleChart{console: c, lines: lines}
	c.chart = chart
	return chart, nil
}
