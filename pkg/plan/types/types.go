package types

import "strings"

// CropPlan is the guaranteed plan shape stored on a field and returned to
// clients. day_plan mirrors the first month's schedule for backward-compatible
// flat access.
type CropPlan struct {
	CropName                  string      `json:"crop_name"`
	DurationDays              int         `json:"duration_days"`
	EstimatedCost             float64     `json:"estimated_cost"`
	ExpectedYield             string      `json:"expected_yield"`
	EstimatedProfit           float64     `json:"estimated_profit"`
	FertilizerRecommendations []string    `json:"fertilizer_recommendations"`
	IrrigationGuidance        string      `json:"irrigation_guidance"`
	MonthlyPlans              []MonthPlan `json:"monthly_plans"`
	DayPlan                   []DayItem   `json:"day_plan"`
}

type MonthPlan struct {
	MonthNumber int       `json:"month_number"`
	MonthLabel  string    `json:"month_label"`
	Focus       string    `json:"focus"`
	DayPlan     []DayItem `json:"day_plan"`
}

type DayItem struct {
	Day         int    `json:"day"`
	Date        string `json:"date"` // DD/MM/YYYY
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // sprout|water|shield-check|sun|tractor|leaf
	ImageURL    string `json:"image_url"`
}

// AllowedIcons is the closed icon set; anything else coerces to "leaf".
var AllowedIcons = map[string]bool{
	"sprout":       true,
	"water":        true,
	"shield-check": true,
	"sun":          true,
	"tractor":      true,
	"leaf":         true,
}

// CoerceIcon maps an arbitrary icon string into the allowed set.
func CoerceIcon(icon string) string {
	icon = strings.ToLower(strings.TrimSpace(icon))
	if AllowedIcons[icon] {
		return icon
	}
	return "leaf"
}
