package weather

import (
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

// kelvinZeroCelsius is the provider's temperature origin; payloads carry Kelvin.
const kelvinZeroCelsius = 273.15

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
	}
}

// CurrentConditions fetches and normalizes the current weather for a city
func (uc *weatherUseCase) CurrentConditions(requestID string, city string) (*entity.CurrentConditions, error) {
	response, err := uc.apiGateway.GetCurrentConditions(city)
	if err != nil {
		log.Warn("Current conditions fetch failed",
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.Error(err))
		return nil, err
	}

	conditions, err := uc.convertCurrentResponse(city, response)
	if err != nil {
		log.Warn("Current conditions payload rejected",
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.Error(err))
		return nil, err
	}

	log.Info("Fetched current conditions",
		zap.String("request_id", requestID),
		zap.String("city", conditions.City))
	return conditions, nil
}

// Forecast fetches and normalizes the 5 day forecast for a city. A city the
// provider does not know yields an empty forecast rather than an error.
func (uc *weatherUseCase) Forecast(requestID string, city string) ([]entity.ForecastEntry, error) {
	response, err := uc.apiGateway.GetForecast(city)
	if err != nil {
		if fetchErr, ok := model.AsFetchError(err); ok && fetchErr.Kind == model.CityNotFound {
			return []entity.ForecastEntry{}, nil
		}
		log.Warn("Forecast fetch failed",
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.Error(err))
		return nil, err
	}

	entries, err := uc.convertForecastResponse(city, response)
	if err != nil {
		log.Warn("Forecast payload rejected",
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.Error(err))
		return nil, err
	}

	log.Info("Fetched forecast",
		zap.String("request_id", requestID),
		zap.String("city", city),
		zap.Int("slots", len(entries)))
	return entries, nil
}

// LookupCity fetches current conditions and forecast for a city as a single report
func (uc *weatherUseCase) LookupCity(requestID string, city string) (*entity.WeatherReport, error) {
	current, err := uc.CurrentConditions(requestID, city)
	if err != nil {
		return nil, err
	}

	forecast, err := uc.Forecast(requestID, city)
	if err != nil {
		return nil, err
	}

	return &entity.WeatherReport{
		City:     current.City,
		Current:  *current,
		Forecast: forecast,
	}, nil
}

// convertCurrentResponse validates and maps a current weather payload
func (uc *weatherUseCase) convertCurrentResponse(city string, response *external.CurrentConditionsResponse) (*entity.CurrentConditions, error) {
	if response == nil || response.Main == nil || response.Wind == nil ||
		len(response.Weather) == 0 || strings.TrimSpace(response.Name) == "" {
		return nil, model.NewFetchError(model.MalformedResponse, city, "weather payload is missing expected fields", nil)
	}

	return &entity.CurrentConditions{
		City:         response.Name,
		TemperatureC: kelvinToCelsius(response.Main.Temp),
		Condition:    response.Weather[0].Description,
		Humidity:     response.Main.Humidity,
		WindSpeedMS:  response.Wind.Speed,
		ObservedAt:   unixToUTC(response.Dt),
	}, nil
}

// convertForecastResponse validates and maps a forecast payload
func (uc *weatherUseCase) convertForecastResponse(city string, response *external.ForecastResponse) ([]entity.ForecastEntry, error) {
	if response == nil || response.City == nil || response.List == nil {
		return nil, model.NewFetchError(model.MalformedResponse, city, "forecast payload is missing expected fields", nil)
	}

	entries := make([]entity.ForecastEntry, 0, len(response.List))
	for _, slot := range response.List {
		if slot.Main == nil || slot.Wind == nil || len(slot.Weather) == 0 {
			return nil, model.NewFetchError(model.MalformedResponse, city, "forecast slot is missing expected fields", nil)
		}

		entries = append(entries, entity.ForecastEntry{
			At:           unixToUTC(slot.Dt),
			TemperatureC: kelvinToCelsius(slot.Main.Temp),
			Condition:    slot.Weather[0].Description,
			Humidity:     slot.Main.Humidity,
			WindSpeedMS:  slot.Wind.Speed,
		})
	}

	return entries, nil
}

// kelvinToCelsius converts a provider temperature to Celsius, rounded to one decimal
func kelvinToCelsius(kelvin float64) float64 {
	return math.Round((kelvin-kelvinZeroCelsius)*10) / 10
}

// unixToUTC maps a provider timestamp to UTC; an absent timestamp stays the zero time
func unixToUTC(seconds int64) time.Time {
	if seconds == 0 {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}
