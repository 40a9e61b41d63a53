package domain

import "math"

// KPIs holds the performance indicators of one day.
type KPIs struct {
	ProductivityEfficiency float64 // kg/ha, rounded
	Sustainability         float64 // 1–10, one decimal
}

// CalculateKPIs derives efficiency and a sustainability score. Days hotter
// than 30 °C lose two sustainability points. area must be positive; the
// production generator guarantees it.
func CalculateKPIs(rng Random, production, area, temperature float64) KPIs {
	score := rng.Uniform(sustainabilityBaseMin, sustainabilityBaseMax)
	if temperature > heatStressThreshold {
		score -= heatStressPenalty
	}
	score = math.Min(sustainabilityCeiling, math.Max(sustainabilityFloor, score))

	return KPIs{
		ProductivityEfficiency: math.Round(production / area),
		Sustainability:         round1(score),
	}
}
