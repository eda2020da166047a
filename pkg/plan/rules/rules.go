// pkg/plan/rules/rules.go

package rules

import (
	"fmt"
	"math"
	"strings"
	"time"

	"agriai/pkg/plan/types"
)

// cropRow is one entry of the static crop table: duration in days, base cost
// per acre, yield range per acre.
type cropRow struct {
	Key       string
	Duration  int
	BaseCost  float64
	YieldLow  float64
	YieldHigh float64
	Unit      string
}

// cropTable order is significant: the first row whose key substring-matches
// the normalized crop name wins.
var cropTable = []cropRow{
	{"paddy", 120, 25000, 25, 35, "quintals"},
	{"wheat", 120, 18000, 35, 50, "quintals"},
	{"cotton", 180, 40000, 8, 12, "quintals"},
	{"sugarcane", 365, 60000, 400, 500, "quintals"},
	{"maize", 100, 22000, 40, 55, "quintals"},
	{"chickpea", 100, 12000, 8, 12, "quintals"},
	{"mustard", 120, 15000, 12, 18, "quintals"},
	{"groundnut", 110, 20000, 15, 22, "quintals"},
	{"soybean", 90, 18000, 20, 30, "quintals"},
	{"rice", 120, 25000, 25, 35, "quintals"},
	{"bajra", 80, 10000, 12, 18, "quintals"},
	{"jowar", 100, 12000, 15, 25, "quintals"},
}

var soilFertilizer = map[string][]string{
	"black":    {"NPK 20:20:20", "Urea", "Compost", "Potash"},
	"red":      {"NPK 19:19:19", "Rock Phosphate", "Compost", "Gypsum"},
	"alluvial": {"NPK 20:20:20", "Urea", "DAP", "Compost"},
	"laterite": {"Lime", "NPK 12:32:16", "Organic manure", "Micronutrients"},
	"clay":     {"Gypsum", "Compost", "NPK 20:20:20", "Vermicompost"},
	"sandy":    {"Organic manure", "NPK 17:17:17", "Mulching", "Compost"},
	"loam":     {"NPK 20:20:20", "Compost", "Urea", "DAP"},
}

var irrigationGuidance = map[string]string{
	"low":    "Low water: Irrigate 2 times per week. Use drip irrigation. Rely on rainfall when possible.",
	"medium": "Medium water: Irrigate 3-4 times per week. Use mulching to retain soil moisture.",
	"high":   "High water: Regular irrigation. Adjust water based on crop growth stage.",
}

type phase struct {
	FromDay, ToDay int
	Title          string
	Description    string
}

var phases = []phase{
	{1, 7, "Seed preparation", "Select seeds, treat them, and prepare for sowing."},
	{8, 14, "Land preparation", "Plough, add manure, and level the field."},
	{15, 30, "Sowing", "Sow at the right time. Maintain proper seed depth and spacing."},
	{31, 60, "Weeding", "Remove weeds and apply first irrigation."},
	{61, 90, "Irrigation and fertilizer", "Regular irrigation and top dressing."},
	{91, 1 << 30, "Crop care", "Pest and disease control. Monitor until harvest."},
}

func normalizeCrop(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}

func lookupCrop(name string) cropRow {
	key := normalizeCrop(name)
	for _, row := range cropTable {
		if strings.Contains(key, row.Key) || strings.Contains(row.Key, key) {
			return row
		}
	}
	return cropTable[0]
}

func costMultiplier(investment string) float64 {
	switch investment {
	case "low":
		return 0.8
	case "high":
		return 1.25
	}
	return 1.0
}

func profitMultiplier(investment string) float64 {
	switch investment {
	case "low":
		return 0.9
	case "high":
		return 1.15
	}
	return 1.0
}

// BuildPlan generates the synchronous rule-based plan used when no AI
// generation is requested. The flat day plan covers at most 30 calendar days
// from today; monthly_plans stays empty at this stage.
func BuildPlan(areaAcres float64, soilType, cropName, waterAvailability, investmentLevel string) types.CropPlan {
	return buildPlanAt(time.Now(), areaAcres, soilType, cropName, waterAvailability, investmentLevel)
}

func buildPlanAt(start time.Time, areaAcres float64, soilType, cropName, waterAvailability, investmentLevel string) types.CropPlan {
	crop := lookupCrop(cropName)
	totalCost := math.Round(crop.BaseCost * areaAcres * costMultiplier(investmentLevel))

	avgYield := (crop.YieldLow + crop.YieldHigh) / 2 * areaAcres
	pricePerUnit := 2500.0
	if key := normalizeCrop(cropName); strings.Contains(key, "paddy") || strings.Contains(key, "rice") {
		pricePerUnit = 2000.0
	}
	revenue := avgYield * pricePerUnit
	profit := math.Round((revenue - totalCost) * profitMultiplier(investmentLevel))

	fertilizers, ok := soilFertilizer[strings.ToLower(strings.TrimSpace(soilType))]
	if !ok {
		fertilizers = soilFertilizer["alluvial"]
	}
	irrigation, ok := irrigationGuidance[waterAvailability]
	if !ok {
		irrigation = irrigationGuidance["medium"]
	}

	days := crop.Duration
	if days > 30 {
		days = 30
	}
	dayPlan := make([]types.DayItem, 0, days)
	for d := 1; d <= days; d++ {
		date := start.AddDate(0, 0, d-1)
		title, desc := phaseFor(d)
		dayPlan = append(dayPlan, types.DayItem{
			Day:         d,
			Date:        date.Format("02/01/2006"),
			Title:       title,
			Description: desc,
			Icon:        phaseIcon(d),
		})
	}

	return types.CropPlan{
		CropName:                  cropName,
		DurationDays:              crop.Duration,
		EstimatedCost:             totalCost,
		ExpectedYield:             fmt.Sprintf("%v-%v %s per acre", crop.YieldLow, crop.YieldHigh, crop.Unit),
		EstimatedProfit:           profit,
		FertilizerRecommendations: fertilizers,
		IrrigationGuidance:        irrigation,
		MonthlyPlans:              []types.MonthPlan{},
		DayPlan:                   dayPlan,
	}
}

func phaseFor(day int) (string, string) {
	for _, p := range phases {
		if day >= p.FromDay && day <= p.ToDay {
			return p.Title, p.Description
		}
	}
	return "Crop care", "Regular monitoring and necessary care."
}

func phaseIcon(day int) string {
	switch {
	case day <= 14:
		return "sprout"
	case day <= 60:
		return "water"
	}
	return "shield-check"
}
