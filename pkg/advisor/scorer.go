// pkg/advisor/scorer.go

package advisor

import (
	"sort"
	"strings"

	"agriai/pkg/weather"
)

// ScoredCrop is one ranked recommendation with attached financials.
type ScoredCrop struct {
	CropName                string `json:"crop_name"`
	SuitabilityScore        int    `json:"suitability_score"`
	RiskScore               string `json:"risk_score"`
	EstimatedInvestmentCost int    `json:"estimated_investment_cost"`
	EstimatedProfitMin      int    `json:"estimated_profit_min"`
	EstimatedProfitMax      int    `json:"estimated_profit_max"`
	ExpectedYieldEstimation string `json:"expected_yield_estimation"`
}

// Input carries the farmer-supplied parameters for one scoring pass.
type Input struct {
	SoilType          string
	AreaAcres         float64
	Season            string
	WaterAvailability string // low|medium|high
	InvestmentLevel   string // low|medium|high
}

// NormalizeSoil coerces free-form soil text into a matrix key. Unknown soils
// score as alluvial.
func NormalizeSoil(soilType string) string {
	s := strings.ToLower(strings.TrimSpace(soilType))
	if _, ok := soilCropMatrix[s]; ok {
		return s
	}
	switch {
	case strings.Contains(s, "black"):
		return "black"
	case strings.Contains(s, "red"):
		return "red"
	case strings.Contains(s, "clay"):
		return "clay"
	case strings.Contains(s, "sand"):
		return "sandy"
	case strings.Contains(s, "loam"):
		return "loam"
	}
	return "alluvial"
}

// NormalizeSeason coerces a season string into a bonus-table key, defaulting
// to kharif.
func NormalizeSeason(season string) string {
	s := strings.ToLower(strings.TrimSpace(season))
	if _, ok := seasonBonus[s]; ok {
		return s
	}
	return "kharif"
}

// Recommend scores every crop compatible with the soil and returns the top
// three, ordered by suitability descending. Pure: identical inputs and
// weather always produce identical output.
func Recommend(in Input, w weather.Summary) []ScoredCrop {
	soilKey := NormalizeSoil(in.SoilType)
	seasonKey := NormalizeSeason(in.Season)
	base := soilCropMatrix[soilKey]

	scored := make([]ScoredCrop, 0, len(base))
	for _, crop := range candidateOrder[soilKey] {
		suitability := clamp(
			base[crop]+
				seasonBonus[seasonKey][crop]+
				weatherAdjustment(crop, w)+
				waterAdjustment(crop, in.WaterAvailability)+
				investmentAdjustment(crop, in.InvestmentLevel),
			40, 99)

		sc := ScoredCrop{
			CropName:         crop,
			SuitabilityScore: suitability,
			RiskScore:        RiskLabel(suitability),
		}
		attachFinancials(&sc, Estimate(crop, in.AreaAcres, in.InvestmentLevel, suitability))
		scored = append(scored, sc)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SuitabilityScore > scored[j].SuitabilityScore
	})
	if len(scored) > 3 {
		scored = scored[:3]
	}
	return scored
}

// ScoreSingle scores one named crop against the field parameters. When the
// crop is not a candidate on that soil it gets a neutral 60 with reference
// financials.
func ScoreSingle(cropName string, in Input, w weather.Summary) ScoredCrop {
	for _, sc := range Recommend(in, w) {
		if strings.EqualFold(sc.CropName, cropName) {
			return sc
		}
	}
	out := ScoredCrop{
		CropName:         cropName,
		SuitabilityScore: 60,
		RiskScore:        RiskLabel(60),
	}
	attachFinancials(&out, Estimate(cropName, in.AreaAcres, in.InvestmentLevel, 60))
	return out
}

// RiskLabel bands a suitability score: >=80 Low, >=60 Medium, else High.
func RiskLabel(score int) string {
	switch {
	case score >= 80:
		return "Low"
	case score >= 60:
		return "Medium"
	}
	return "High"
}

func weatherAdjustment(crop string, w weather.Summary) int {
	score := 0
	need := waterNeed(crop)
	switch {
	case need == "high" && w.RainfallMM >= 6:
		score += 6
	case need == "high" && w.RainfallMM <= 1:
		score -= 7
	case need == "low" && w.RainfallMM <= 4:
		score += 5
	case need == "low" && w.RainfallMM >= 10:
		score -= 5
	}

	if w.TemperatureC >= 22 && w.TemperatureC <= 32 {
		score += 4
	} else if w.TemperatureC > 38 || w.TemperatureC < 14 {
		score -= 6
	}
	return score
}

func waterAdjustment(crop, availability string) int {
	need := waterNeed(crop)
	switch {
	case need == availability:
		return 6
	case need == "high" && availability == "low":
		return -8
	case need == "low" && availability == "high":
		return -1
	}
	return 2
}

func investmentAdjustment(crop, level string) int {
	switch {
	case level == "low" && highCostCrops[crop]:
		return -8
	case level == "high" && highCostCrops[crop]:
		return 5
	case level == "low" && lowCostCrops[crop]:
		return 5
	}
	return 1
}

func waterNeed(crop string) string {
	if need, ok := waterSensitivity[crop]; ok {
		return need
	}
	return "medium"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
