package airquality

import "math"

// OverallPercentage averages the guideline percentages of the tracked
// pollutants present in components, rounded half-up. Missing tracked keys
// are skipped rather than counted as zero; untracked keys are ignored.
// Returns 0 when no tracked pollutant is present.
func OverallPercentage(components map[string]Component) int {
	var sum float64
	count := 0
	for _, key := range TrackedPollutants {
		component, ok := components[key]
		if !ok {
			continue
		}
		sum += component.Percentage
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Floor(sum/float64(count) + 0.5))
}

// HasTrackedPollutant reports whether at least one tracked pollutant is
// present in components. The overall summary is only shown when true.
func HasTrackedPollutant(components map[string]Component) bool {
	for _, key := range TrackedPollutants {
		if _, ok := components[key]; ok {
			return true
		}
	}
	return false
}
