package domain

import "math"

// ProfitMarginSentinel is the margin reported when revenue rounds to zero.
// It signals a total loss and is not a computed ratio.
const ProfitMarginSentinel = -100.0

// Financials holds the derived economics of one day.
type Financials struct {
	ProductionCosts float64 // whole currency units
	Revenue         float64 // whole currency units
	ProfitMargin    float64 // %, one decimal
}

// CalculateFinancials derives costs, revenue and margin from production.
//
// Costs scale with area and a ±15% variance on the crop's cost per hectare.
// The selling price is the crop's base price adjusted by the season and by
// product quality (0.7 at quality 4 rising 0.05 per point).
func CalculateFinancials(rng Random, production, area float64, crop CropType, season Season, quality float64) (Financials, error) {
	cp, err := cropParamsFor(crop)
	if err != nil {
		return Financials{}, err
	}
	sp, err := seasonParamsFor(season)
	if err != nil {
		return Financials{}, err
	}

	totalCosts := cp.costPerHectare * area * rng.Uniform(costVarianceMin, costVarianceMax)
	finalPrice := cp.pricePerKg * sp.priceMultiplier * qualityMultiplier(quality)
	totalRevenue := production * finalPrice

	revenue := math.Round(totalRevenue)
	margin := ProfitMarginSentinel
	if revenue > 0 {
		margin = round1((totalRevenue - totalCosts) / totalRevenue * 100)
	}

	return Financials{
		ProductionCosts: math.Round(totalCosts),
		Revenue:         revenue,
		ProfitMargin:    margin,
	}, nil
}

func qualityMultiplier(quality float64) float64 {
	return 0.7 + (quality-qualityMin)*0.05
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
