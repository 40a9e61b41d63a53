package domain

// Production holds harvest, area and quality metrics for one day.
type Production struct {
	HarvestQuantity float64 // kg
	CultivatedArea  float64 // hectares
	ProductQuality  float64 // 4–10
	CropType        CropType
}

// GenerateProduction draws harvest metrics for a crop. Summer and autumn
// harvests are scaled by 1.2, spring and winter by 0.8.
func GenerateProduction(rng Random, crop CropType, season Season) (Production, error) {
	cp, err := cropParamsFor(crop)
	if err != nil {
		return Production{}, err
	}
	sp, err := seasonParamsFor(season)
	if err != nil {
		return Production{}, err
	}

	variance := rng.Uniform(harvestVarianceMin, harvestVarianceMax)

	return Production{
		HarvestQuantity: cp.baseYield * sp.yieldModifier * variance,
		CultivatedArea:  rng.Uniform(areaMin, areaMax),
		ProductQuality:  rng.Uniform(qualityMin, qualityMax),
		CropType:        crop,
	}, nil
}
