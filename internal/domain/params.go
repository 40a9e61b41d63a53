package domain

// seasonParams holds every per-season constant used by the generators.
type seasonParams struct {
	baseTemperature float64 // °C
	sunshineMin     float64 // hours
	sunshineMax     float64
	yieldModifier   float64
	priceMultiplier float64
}

// cropParams holds every per-crop constant used by the generators.
type cropParams struct {
	baseYield      float64 // kg
	costPerHectare float64 // currency units
	pricePerKg     float64 // currency units
}

func seasonParamsFor(s Season) (seasonParams, error) {
	switch s {
	case Spring:
		return seasonParams{baseTemperature: 15, sunshineMin: 6, sunshineMax: 12, yieldModifier: 0.8, priceMultiplier: 1.15}, nil
	case Summer:
		return seasonParams{baseTemperature: 28, sunshineMin: 10, sunshineMax: 14, yieldModifier: 1.2, priceMultiplier: 0.9}, nil
	case Autumn:
		return seasonParams{baseTemperature: 18, sunshineMin: 6, sunshineMax: 12, yieldModifier: 1.2, priceMultiplier: 1.05}, nil
	case Winter:
		return seasonParams{baseTemperature: 5, sunshineMin: 6, sunshineMax: 12, yieldModifier: 0.8, priceMultiplier: 1.25}, nil
	default:
		return seasonParams{}, invalidSeason(s)
	}
}

func cropParamsFor(c CropType) (cropParams, error) {
	switch c {
	case Cereals:
		return cropParams{baseYield: 3000, costPerHectare: 1200, pricePerKg: 0.45}, nil
	case Vegetables:
		return cropParams{baseYield: 15000, costPerHectare: 2800, pricePerKg: 1.8}, nil
	case Fruits:
		return cropParams{baseYield: 8000, costPerHectare: 3500, pricePerKg: 2.2}, nil
	default:
		return cropParams{}, invalidCropType(c)
	}
}

// BaseTemperature returns the seasonal temperature baseline in °C.
func BaseTemperature(s Season) (float64, error) {
	p, err := seasonParamsFor(s)
	if err != nil {
		return 0, err
	}
	return p.baseTemperature, nil
}

// Ranges shared by the generators and ValidateRecord.
const (
	temperatureSpread = 5.0

	humidityMin, humidityMax = 40.0, 80.0
	rainfallMin, rainfallMax = 0.0, 20.0

	harvestVarianceMin, harvestVarianceMax = 0.8, 1.2
	areaMin, areaMax                       = 5.0, 25.0
	qualityMin, qualityMax                 = 4.0, 10.0

	costVarianceMin, costVarianceMax = 0.85, 1.15

	waterPerHectareMin, waterPerHectareMax = 2000.0, 3000.0
	fuelPerHectareMin, fuelPerHectareMax   = 80.0, 120.0
	laborPerHectareMin, laborPerHectareMax = 15.0, 25.0

	sustainabilityBaseMin, sustainabilityBaseMax = 8.0, 10.0
	sustainabilityFloor, sustainabilityCeiling   = 1.0, 10.0
	heatStressThreshold                          = 30.0 // °C
	heatStressPenalty                            = 2.0
)
