// Package airquality defines the air quality report model shared by the
// API server and the lookup client, plus the classification and
// aggregation rules applied to it.
package airquality

import "sort"

// Pollutant keys as they appear in report component maps.
const (
	KeyPM25 = "pm2_5"
	KeyPM10 = "pm10"
	KeyCO   = "co"
	KeyNO2  = "no2"
	KeySO2  = "so2"
	KeyO3   = "o3"
)

// TrackedPollutants are the component keys included in the overall
// exposure average. CO is reported but excluded from the average.
var TrackedPollutants = []string{KeyPM25, KeyPM10, KeyNO2, KeySO2, KeyO3}

// AQI is the backend-classified air quality index summary.
// Color and Class are supplied by the backend and rendered as-is.
type AQI struct {
	Value       int    `json:"value"`
	Description string `json:"description"`
	Class       string `json:"class"`
	Color       string `json:"color"`
}

// Component is a single pollutant reading. Value and Percentage are
// supplied independently; Percentage is relative to the WHO guideline
// concentration and may exceed 100.
type Component struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Percentage  float64 `json:"percentage"`
}

// Location is the resolved place for a report.
type Location struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

// Report is the air quality response for a coordinate. Reports are
// replaced wholesale on every lookup, never merged.
type Report struct {
	AQI        AQI                  `json:"aqi"`
	Components map[string]Component `json:"components"`
	Location   *Location            `json:"location,omitempty"`
}

// ComponentKeys returns the component keys in sorted order, which is the
// display order for cards and chart bars.
func (r *Report) ComponentKeys() []string {
	keys := make([]string, 0, len(r.Components))
	for key := range r.Components {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
