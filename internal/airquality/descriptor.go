package airquality

// CategoryDescriptor is the display classification of an AQI category.
type CategoryDescriptor struct {
	Description string
	Class       string
	Color       string
}

var categoryDescriptors = map[int]CategoryDescriptor{
	1: {Description: "Good", Class: "good", Color: "#00e400"},
	2: {Description: "Fair", Class: "fair", Color: "#ffff00"},
	3: {Description: "Moderate", Class: "moderate", Color: "#ff7e00"},
	4: {Description: "Poor", Class: "poor", Color: "#ff0000"},
	5: {Description: "Very Poor", Class: "very-poor", Color: "#8f3f97"},
}

// DescriptorForCategory returns the descriptor for an AQI category 1..5.
// Other values yield the unknown descriptor.
func DescriptorForCategory(category int) CategoryDescriptor {
	if d, ok := categoryDescriptors[category]; ok {
		return d
	}
	return CategoryDescriptor{Description: "Unknown", Class: "unknown", Color: "#999999"}
}
