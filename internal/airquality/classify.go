package airquality

// Band is a qualitative exposure band derived from a guideline percentage.
type Band string

// Exposure bands, from least to most severe.
const (
	BandGood     Band = "good"
	BandFair     Band = "fair"
	BandModerate Band = "moderate"
	BandPoor     Band = "poor"
	BandVeryPoor Band = "very-poor"
)

var bandColors = map[Band]string{
	BandGood:     "#00e400",
	BandFair:     "#ffff00",
	BandModerate: "#ff7e00",
	BandPoor:     "#ff0000",
	BandVeryPoor: "#8f3f97",
}

// Color returns the fixed display color for the band.
func (b Band) Color() string {
	return bandColors[b]
}

// BandForPercentage classifies a guideline percentage into a band.
// Bounds are inclusive: exactly 50 is still good, exactly 100 is still
// moderate. Negative input lands in the good band.
func BandForPercentage(percentage float64) Band {
	switch {
	case percentage <= 50:
		return BandGood
	case percentage <= 75:
		return BandFair
	case percentage <= 100:
		return BandModerate
	case percentage <= 150:
		return BandPoor
	default:
		return BandVeryPoor
	}
}

// Advice is a single health recommendation with a display icon token.
type Advice struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

var adviceByCategory = map[int][]Advice{
	1: {
		{Icon: "sun", Text: "Air quality is ideal for outdoor activities."},
		{Icon: "wind", Text: "Open your windows and enjoy the fresh air."},
		{Icon: "activity", Text: "A great time for a run or a bike ride."},
	},
	2: {
		{Icon: "sun", Text: "Outdoor activities are fine for most people."},
		{Icon: "info", Text: "Unusually sensitive people should watch for symptoms."},
		{Icon: "wind", Text: "Ventilating indoor spaces is still a good idea."},
	},
	3: {
		{Icon: "alert-circle", Text: "Sensitive groups should reduce prolonged outdoor exertion."},
		{Icon: "home", Text: "Consider keeping windows closed during peak traffic hours."},
		{Icon: "activity", Text: "Shorten intense outdoor workouts."},
	},
	4: {
		{Icon: "alert-triangle", Text: "Everyone should reduce prolonged outdoor exertion."},
		{Icon: "home", Text: "Keep windows closed and stay indoors when possible."},
		{Icon: "shield", Text: "Sensitive groups should wear a mask outdoors."},
		{Icon: "heart", Text: "Watch for coughing or shortness of breath."},
	},
	5: {
		{Icon: "alert-octagon", Text: "Avoid all outdoor physical activity."},
		{Icon: "home", Text: "Stay indoors with windows closed."},
		{Icon: "shield", Text: "Wear a respirator mask if you must go outside."},
		{Icon: "wind", Text: "Run an air purifier if one is available."},
		{Icon: "heart", Text: "Seek medical advice if you experience symptoms."},
	},
}

// AdviceForCategory returns the health advice list for an AQI category.
// Categories outside 1..5 yield a single fallback item.
func AdviceForCategory(category int) []Advice {
	if advice, ok := adviceByCategory[category]; ok {
		return advice
	}
	return []Advice{
		{Icon: "help-circle", Text: "Air quality category is not recognized."},
	}
}
