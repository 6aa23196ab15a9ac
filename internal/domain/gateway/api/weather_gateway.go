package api

import (
	"go-weather/internal/domain/model/external"
)

// WeatherGateway defines the interface for weather provider API calls
type WeatherGateway interface {
	// GetCurrentConditions fetches the current weather for a city by name.
	// Failures come back as model.FetchError values classified by cause.
	GetCurrentConditions(city string) (*external.CurrentConditionsResponse, error)

	// GetForecast fetches the 5 day / 3 hour forecast for a city by name.
	// Failures come back as model.FetchError values classified by cause.
	GetForecast(city string) (*external.ForecastResponse, error)
}
