package domain

// Weather is one day's environmental metrics.
type Weather struct {
	Temperature   float64 // °C
	Humidity      float64 // %
	Rainfall      float64 // mm
	SunshineHours float64 // h
}

// GenerateWeather draws one day of weather around the season's baseline.
func GenerateWeather(rng Random, season Season) (Weather, error) {
	p, err := seasonParamsFor(season)
	if err != nil {
		return Weather{}, err
	}
	return Weather{
		Temperature:   p.baseTemperature + rng.Uniform(-temperatureSpread, temperatureSpread),
		Humidity:      rng.Uniform(humidityMin, humidityMax),
		Rainfall:      rng.Uniform(rainfallMin, rainfallMax),
		SunshineHours: rng.Uniform(p.sunshineMin, p.sunshineMax),
	}, nil
}
