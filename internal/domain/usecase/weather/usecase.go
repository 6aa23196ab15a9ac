package weather

import (
	"go-weather/internal/domain/entity"
)

type UseCase interface {
	// CurrentConditions fetches and normalizes the current weather for a city
	CurrentConditions(requestID string, city string) (*entity.CurrentConditions, error)

	// Forecast fetches and normalizes the 5 day forecast for a city.
	// A city the provider does not know yields an empty slice, not an error.
	Forecast(requestID string, city string) ([]entity.ForecastEntry, error)

	// LookupCity fetches current conditions and forecast for a city as a single
	// report. The first failure short-circuits and becomes the city's one
	// reported error.
	LookupCity(requestID string, city string) (*entity.WeatherReport, error)
}
