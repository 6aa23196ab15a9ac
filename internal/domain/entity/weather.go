package entity

import "time"

// CurrentConditions is the normalized current weather for a city.
// ObservedAt is zero when the provider omits the observation timestamp.
type CurrentConditions struct {
	City         string
	TemperatureC float64
	Condition    string
	Humidity     int
	WindSpeedMS  float64
	ObservedAt   time.Time
}

// ForecastEntry is one normalized 3 hour forecast slot.
type ForecastEntry struct {
	At           time.Time
	TemperatureC float64
	Condition    string
	Humidity     int
	WindSpeedMS  float64
}

// WeatherReport is the combined result of one city lookup. An empty Forecast
// means the provider had no forecast slots for the city.
type WeatherReport struct {
	City     string
	Current  CurrentConditions
	Forecast []ForecastEntry
}
