package domain

import "time"

// FarmRecord is one immutable snapshot of one farm-day. Field order is the
// export column order.
type FarmRecord struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	FarmName string    `json:"farmName"`

	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Rainfall      float64 `json:"rainfall"`
	SunshineHours float64 `json:"sunshineHours"`

	HarvestQuantity float64  `json:"harvestQuantity"`
	CultivatedArea  float64  `json:"cultivatedArea"`
	ProductQuality  float64  `json:"productQuality"`
	CropType        CropType `json:"cropType"`

	ProductionCosts float64 `json:"productionCosts"`
	Revenue         float64 `json:"revenue"`
	ProfitMargin    float64 `json:"profitMargin"`

	WaterConsumption float64 `json:"waterConsumption"`
	FuelConsumption  float64 `json:"fuelConsumption"`
	LaborHours       float64 `json:"laborHours"`

	ProductivityEfficiency float64 `json:"productivityEfficiency"`
	Sustainability         float64 `json:"sustainability"`

	Season Season `json:"season"`
}

// FarmDataset is an ordered sequence of records, one per simulated day, in
// insertion order.
type FarmDataset []FarmRecord

// BuildCompleteRecord runs every generator for one farm-day and stamps
// today's date. Draws happen in a fixed order (weather, production,
// financials, resources, KPIs) so seeded sources reproduce records exactly.
func BuildCompleteRecord(rng Random, id, farmName string, season Season, crop CropType) (FarmRecord, error) {
	weather, err := GenerateWeather(rng, season)
	if err != nil {
		return FarmRecord{}, err
	}
	prod, err := GenerateProduction(rng, crop, season)
	if err != nil {
		return FarmRecord{}, err
	}
	fin, err := CalculateFinancials(rng, prod.HarvestQuantity, prod.CultivatedArea, crop, season, prod.ProductQuality)
	if err != nil {
		return FarmRecord{}, err
	}
	res := CalculateResourceUsage(rng, prod.CultivatedArea)
	kpi := CalculateKPIs(rng, prod.HarvestQuantity, prod.CultivatedArea, weather.Temperature)

	return FarmRecord{
		ID:       id,
		Date:     Today(),
		FarmName: farmName,

		Temperature:   weather.Temperature,
		Humidity:      weather.Humidity,
		Rainfall:      weather.Rainfall,
		SunshineHours: weather.SunshineHours,

		HarvestQuantity: prod.HarvestQuantity,
		CultivatedArea:  prod.CultivatedArea,
		ProductQuality:  prod.ProductQuality,
		CropType:        prod.CropType,

		ProductionCosts: fin.ProductionCosts,
		Revenue:         fin.Revenue,
		ProfitMargin:    fin.ProfitMargin,

		WaterConsumption: res.WaterConsumption,
		FuelConsumption:  res.FuelConsumption,
		LaborHours:       res.LaborHours,

		ProductivityEfficiency: kpi.ProductivityEfficiency,
		Sustainability:         kpi.Sustainability,

		Season: season,
	}, nil
}
