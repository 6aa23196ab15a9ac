package api

import (
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	apiKey     string
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// The API key is sent as a query parameter on every request.
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &weatherGatewayImpl{
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// GetCurrentConditions fetches the current weather for a city by name
func (w *weatherGatewayImpl) GetCurrentConditions(city string) (*external.CurrentConditionsResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(w.queryParams(city)).
		WithSuccessResp(&external.CurrentConditionsResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.CurrentConditionsResponse), nil
	}

	return nil, w.classifyError(city, errResp, status, err)
}

// GetForecast fetches the 5 day / 3 hour forecast for a city by name
func (w *weatherGatewayImpl) GetForecast(city string) (*external.ForecastResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(w.queryParams(city)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}

	return nil, w.classifyError(city, errResp, status, err)
}

func (w *weatherGatewayImpl) queryParams(city string) map[string]string {
	return map[string]string{
		"q":     city,
		"appid": w.apiKey,
	}
}

// classifyError maps a failed provider call to a FetchError. A 404 means the
// city is unknown, no status at all means the call never completed, and a
// failure on a success status means the body did not decode.
func (w *weatherGatewayImpl) classifyError(city string, errResp any, status int, err error) error {
	var message string
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
		message = apiErr.Message
	}

	switch {
	case status == 404:
		if message == "" {
			message = "city not found"
		}
		return model.NewFetchError(model.CityNotFound, city, message, err)
	case status == 0:
		return model.NewFetchError(model.NetworkFailure, city, "", err)
	case status >= 200 && status < 300:
		return model.NewFetchError(model.MalformedResponse, city, "malformed response from weather provider", err)
	default:
		return model.NewFetchError(model.ProviderError, city, message, err)
	}
}
