// pkg/advisor/tables.go

package advisor

// Static scoring tables. Loaded once, never mutated at runtime.

// soilCropMatrix maps a normalized soil type to its candidate crops and their
// base suitability. Crops absent for a soil are never candidates on it.
var soilCropMatrix = map[string]map[string]int{
	"black":    {"Cotton": 92, "Soybean": 88, "Maize": 78, "Paddy": 74},
	"red":      {"Groundnut": 90, "Millet": 84, "Cotton": 80, "Pulses": 82},
	"alluvial": {"Paddy": 91, "Wheat": 90, "Sugarcane": 85, "Maize": 83},
	"clay":     {"Paddy": 90, "Sugarcane": 82, "Wheat": 76, "Soybean": 70},
	"sandy":    {"Groundnut": 88, "Millet": 86, "Pulses": 79, "Cotton": 76},
	"loam":     {"Wheat": 88, "Maize": 86, "Paddy": 84, "Vegetables": 82},
}

// candidateOrder fixes iteration order per soil so equal scores keep a stable
// rank across runs.
var candidateOrder = map[string][]string{
	"black":    {"Cotton", "Soybean", "Maize", "Paddy"},
	"red":      {"Groundnut", "Millet", "Cotton", "Pulses"},
	"alluvial": {"Paddy", "Wheat", "Sugarcane", "Maize"},
	"clay":     {"Paddy", "Sugarcane", "Wheat", "Soybean"},
	"sandy":    {"Groundnut", "Millet", "Pulses", "Cotton"},
	"loam":     {"Wheat", "Maize", "Paddy", "Vegetables"},
}

var seasonBonus = map[string]map[string]int{
	"kharif": {"Paddy": 8, "Cotton": 7, "Soybean": 6, "Maize": 5},
	"rabi":   {"Wheat": 8, "Mustard": 7, "Chickpea": 6, "Barley": 5},
	"zaid":   {"Maize": 6, "Vegetables": 7, "Groundnut": 5, "Pulses": 4},
}

// waterSensitivity is the per-crop water-need class used for both the weather
// and water-availability adjustments.
var waterSensitivity = map[string]string{
	"Paddy":      "high",
	"Sugarcane":  "high",
	"Cotton":     "medium",
	"Wheat":      "medium",
	"Soybean":    "medium",
	"Maize":      "medium",
	"Mustard":    "low",
	"Chickpea":   "low",
	"Groundnut":  "low",
	"Millet":     "low",
	"Pulses":     "low",
	"Vegetables": "medium",
}

type baseFinancials struct {
	Cost       int
	ProfitLow  int
	ProfitHigh int
	Yield      int // quintals per acre
}

var cropFinancials = map[string]baseFinancials{
	"Paddy":      {26000, 12000, 28000, 28},
	"Wheat":      {20000, 11000, 25000, 32},
	"Cotton":     {42000, 18000, 52000, 10},
	"Sugarcane":  {62000, 22000, 70000, 430},
	"Soybean":    {21000, 10000, 26000, 24},
	"Maize":      {24000, 12000, 30000, 40},
	"Groundnut":  {22000, 13000, 32000, 18},
	"Millet":     {13000, 7000, 17000, 15},
	"Pulses":     {15000, 8000, 19000, 11},
	"Mustard":    {17000, 9000, 22000, 14},
	"Chickpea":   {16000, 8000, 20000, 10},
	"Vegetables": {30000, 15000, 45000, 75},
}

// referenceCrop backs financial estimates for crop names missing a table row.
const referenceCrop = "Paddy"

var highCostCrops = map[string]bool{"Sugarcane": true, "Cotton": true, "Vegetables": true}
var lowCostCrops = map[string]bool{"Millet": true, "Pulses": true, "Chickpea": true, "Mustard": true}
