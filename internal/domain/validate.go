package domain

import (
	"errors"
	"fmt"
)

// boundsTolerance absorbs float error in products such as area × rate.
const boundsTolerance = 1e-9

// ValidateRecord checks a record against the generators' output ranges and
// returns every violation joined, or nil.
func ValidateRecord(r FarmRecord) error {
	var errs []error
	check := func(field string, v, lo, hi float64) {
		if v < lo-boundsTolerance || v > hi+boundsTolerance {
			errs = append(errs, fmt.Errorf("%s %g outside [%g, %g]", field, v, lo, hi))
		}
	}

	if r.ID == "" {
		errs = append(errs, errors.New("id is empty"))
	}
	if r.Date.IsZero() {
		errs = append(errs, errors.New("date is zero"))
	}

	sp, err := seasonParamsFor(r.Season)
	if err != nil {
		errs = append(errs, err)
	} else {
		check("temperature", r.Temperature, sp.baseTemperature-temperatureSpread, sp.baseTemperature+temperatureSpread)
		check("sunshineHours", r.SunshineHours, sp.sunshineMin, sp.sunshineMax)
	}
	if !r.CropType.Valid() {
		errs = append(errs, invalidCropType(r.CropType))
	}

	check("humidity", r.Humidity, humidityMin, humidityMax)
	check("rainfall", r.Rainfall, rainfallMin, rainfallMax)
	check("cultivatedArea", r.CultivatedArea, areaMin, areaMax)
	check("productQuality", r.ProductQuality, qualityMin, qualityMax)
	check("sustainability", r.Sustainability, sustainabilityFloor, sustainabilityCeiling)

	if r.ProductionCosts < 0 {
		errs = append(errs, fmt.Errorf("productionCosts %g is negative", r.ProductionCosts))
	}
	if r.Revenue < 0 {
		errs = append(errs, fmt.Errorf("revenue %g is negative", r.Revenue))
	}
	if r.Revenue == 0 && r.ProfitMargin != ProfitMarginSentinel {
		errs = append(errs, fmt.Errorf("profitMargin %g with zero revenue, want %g", r.ProfitMargin, ProfitMarginSentinel))
	}

	area := r.CultivatedArea
	check("waterConsumption", r.WaterConsumption, area*waterPerHectareMin, area*waterPerHectareMax)
	check("fuelConsumption", r.FuelConsumption, area*fuelPerHectareMin, area*fuelPerHectareMax)
	check("laborHours", r.LaborHours, area*laborPerHectareMin, area*laborPerHectareMax)

	return errors.Join(errs...)
}

// ValidateDataset validates every record, prefixing errors with the record
// index and ID.
func ValidateDataset(dataset FarmDataset) error {
	var errs []error
	for i, r := range dataset {
		if err := ValidateRecord(r); err != nil {
			errs = append(errs, fmt.Errorf("record %d (%s): %w", i, r.ID, err))
		}
	}
	return errors.Join(errs...)
}
