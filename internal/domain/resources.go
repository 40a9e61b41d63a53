package domain

// ResourceUsage holds per-day consumption, all proportional to area.
type ResourceUsage struct {
	WaterConsumption float64 // L
	FuelConsumption  float64 // L
	LaborHours       float64 // h
}

// CalculateResourceUsage draws per-hectare rates and scales them by area.
func CalculateResourceUsage(rng Random, area float64) ResourceUsage {
	return ResourceUsage{
		WaterConsumption: area * rng.Uniform(waterPerHectareMin, waterPerHectareMax),
		FuelConsumption:  area * rng.Uniform(fuelPerHectareMin, fuelPerHectareMax),
		LaborHours:       area * rng.Uniform(laborPerHectareMin, laborPerHectareMax),
	}
}
