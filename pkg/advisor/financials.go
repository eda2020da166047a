// pkg/advisor/financials.go

package advisor

import (
	"fmt"
	"math"
)

// Financials is a cost/profit/yield projection for one crop on one field.
type Financials struct {
	EstimatedInvestmentCost int
	EstimatedProfitMin      int
	EstimatedProfitMax      int
	ExpectedYieldEstimation string
}

// Estimate projects cost and profit for a crop. Unknown crop names use the
// reference crop's baseline. Cost scales with the investment factor, profit
// and yield with a score factor clamped to [0.7, 1.25].
func Estimate(cropName string, areaAcres float64, investmentLevel string, suitabilityScore int) Financials {
	base, ok := cropFinancials[cropName]
	if !ok {
		base = cropFinancials[referenceCrop]
	}

	investmentFactor := 1.0
	switch investmentLevel {
	case "low":
		investmentFactor = 0.9
	case "high":
		investmentFactor = 1.2
	}
	scoreFactor := math.Max(0.7, math.Min(1.25, float64(suitabilityScore)/85.0))

	profitLow := int(math.Round(float64(base.ProfitLow) * areaAcres * scoreFactor))
	profitHigh := int(math.Round(float64(base.ProfitHigh) * areaAcres * scoreFactor))
	expectedYield := math.Round(float64(base.Yield)*areaAcres*scoreFactor*10) / 10

	return Financials{
		EstimatedInvestmentCost: int(math.Round(float64(base.Cost) * areaAcres * investmentFactor)),
		EstimatedProfitMin:      min(profitLow, profitHigh),
		EstimatedProfitMax:      max(profitLow, profitHigh),
		ExpectedYieldEstimation: fmt.Sprintf("%v quintals", expectedYield),
	}
}

func attachFinancials(sc *ScoredCrop, f Financials) {
	sc.EstimatedInvestmentCost = f.EstimatedInvestmentCost
	sc.EstimatedProfitMin = f.EstimatedProfitMin
	sc.EstimatedProfitMax = f.EstimatedProfitMax
	sc.ExpectedYieldEstimation = f.ExpectedYieldEstimation
}
