// pkg/plan/normalize/template.go

package normalize

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"agriai/pkg/plan/types"
)

const (
	defaultFocus      = "Detailed crop growth, nutrition, irrigation, and crop protection schedule"
	defaultIrrigation = "Follow stage-wise irrigation based on local weather and soil moisture; prefer morning irrigation and avoid waterlogging."
	defaultYield      = "AI estimate unavailable"
)

var iconKeywords = map[string]string{
	"sprout":       "seedling,planting,farm",
	"water":        "irrigation,water,field",
	"shield-check": "pest-control,crop,field",
	"sun":          "sunlight,crop,field",
	"tractor":      "tractor,field,farming",
	"leaf":         "crop,plant,agriculture",
}

// TaskImageURL derives a stable illustrative-image reference from an icon and
// crop name. Same inputs always give the same URL.
func TaskImageURL(icon, cropName string) string {
	keywords, ok := iconKeywords[icon]
	if !ok {
		keywords = iconKeywords["leaf"]
	}
	cropTerm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(cropName)), " ", "-")
	return "https://source.unsplash.com/featured/320x180?" + url.QueryEscape(keywords+","+cropTerm)
}

// defaultDayItem synthesizes a full day entry from the rotating six-category
// task template. Purely a function of (day, month number, crop name, anchor),
// so partially broken raw plans degrade deterministically.
func defaultDayItem(cropName string, monthAnchor time.Time, day, monthNumber int) types.DayItem {
	var title, description, icon string
	switch day % 6 {
	case 1:
		title = "Soil moisture and root-zone check"
		description = "Check topsoil and root-zone moisture. If moisture is low, schedule irrigation in early morning. Avoid overwatering to protect root health."
		icon = "water"
	case 2:
		title = "Nutrient and fertilizer application"
		description = "Apply stage-appropriate nutrients in split dose. Observe leaf color and growth response. Record quantity applied for cost and yield tracking."
		icon = "sprout"
	case 3:
		title = "Pest and disease scouting"
		description = "Walk across the field and inspect leaves, stems, and lower canopy. Remove infected plant parts and apply recommended control measures if needed."
		icon = "shield-check"
	case 4:
		title = "Weeding and field sanitation"
		description = "Remove weeds near crop rows and bunds. Keep channels clean for better water flow. Maintain field hygiene to reduce pest pressure."
		icon = "tractor"
	case 5:
		title = "Sunlight and canopy management"
		description = "Assess canopy density and sunlight penetration. Prune or adjust spacing where needed to improve airflow and reduce disease risk."
		icon = "sun"
	default:
		title = "Growth recording and planning"
		description = "Record plant height, flowering/fruiting status, and weather impact. Use observations to plan next day irrigation, nutrition, and protection tasks."
		icon = "leaf"
	}

	return types.DayItem{
		Day:         day,
		Date:        dateOf(monthAnchor, day),
		Title:       fmt.Sprintf("%s: %s", cropName, title),
		Description: fmt.Sprintf("Month %d • %s", monthNumber, description),
		Icon:        icon,
		ImageURL:    TaskImageURL(icon, cropName),
	}
}

// monthAnchor returns the first day of the civil month monthIndex months
// after start's month, rolling over year boundaries.
func monthAnchor(start time.Time, monthIndex int) time.Time {
	m := int(start.Month()) - 1 + monthIndex
	year := start.Year() + m/12
	month := time.Month(m%12 + 1)
	return time.Date(year, month, 1, 0, 0, 0, 0, start.Location())
}

// daysInMonth is leap-year aware (day 0 of the next month).
func daysInMonth(anchor time.Time) int {
	return time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, anchor.Location()).Day()
}

func dateOf(monthAnchor time.Time, day int) string {
	return time.Date(monthAnchor.Year(), monthAnchor.Month(), day, 0, 0, 0, 0, monthAnchor.Location()).Format("02/01/2006")
}

func monthLabel(anchor time.Time) string {
	return anchor.Format("January 2006")
}
