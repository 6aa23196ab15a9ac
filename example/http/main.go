package main

import (
	"os"

	"go-weather/pkg/http"
	"go-weather/pkg/log"
)

type CurrentWeatherResponse struct {
	Name    string         `json:"name"`
	Dt      int64          `json:"dt"`
	Main    MainBlock      `json:"main"`
	Wind    WindBlock      `json:"wind"`
	Weather []WeatherBlock `json:"weather"`
}

type MainBlock struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

type WindBlock struct {
	Speed float64 `json:"speed"`
}

type WeatherBlock struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type ForecastResponse struct {
	City ForecastCity  `json:"city"`
	List []ForecastRow `json:"list"`
}

type ForecastCity struct {
	Name string `json:"name"`
}

type ForecastRow struct {
	Dt   int64     `json:"dt"`
	Main MainBlock `json:"main"`
}

// OpenWeatherMap error payloads carry cod as a string on 404 and as a number on 401.
type ProviderErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

func main() {
	apiKey := os.Getenv("WEATHER_API_KEY")
	if apiKey == "" {
		log.Fatalf("WEATHER_API_KEY must be set to run this example")
	}

	// Client Options with JSON as default content type
	clientOptions := http.ClientOptions{
		FollowRedirect:     true,
		Dismiss404:         false,
		DefaultContentType: "application/json",
	}

	// Creating a Client
	client := http.NewHttpClient("http://api.openweathermap.org/data/2.5", clientOptions)

	queryParams := map[string]string{
		"q":     "London",
		"appid": apiKey,
	}

	// Success Request
	success, failure, status, err := client.Get("/weather", queryParams, nil, &CurrentWeatherResponse{}, &ProviderErrorResponse{})

	if err != nil {
		log.Errorw("Request Error", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Request Success", "status", status, "body", success)
	}

	// Error Request: a city the provider does not know returns 404 with an error payload
	queryParams["q"] = "Atlantis"

	success, failure, status, err = client.Get("/weather", queryParams, nil, &CurrentWeatherResponse{}, &ProviderErrorResponse{})

	if err != nil {
		log.Errorw("Request Error", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Request Success", "status", status, "body", success)
	}

	// Creating a Client that dismisses 404s instead of reporting them as errors
	dismissClient := http.NewHttpClient("http://api.openweathermap.org/data/2.5", http.ClientOptions{Dismiss404: true})

	success, failure, status, err = dismissClient.Get("/weather", queryParams, nil, &CurrentWeatherResponse{}, nil)

	if err != nil {
		log.Errorw("Request Error", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Request Dismissed 404", "status", status, "body", success)
	}

	// Using Request Builder
	requestSuccessBody, requestErrorBody, requestStatus, requestErr := client.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(map[string]string{"q": "London", "appid": apiKey}).
		WithSuccessResp(&ForecastResponse{}).
		WithErrorResp(&ProviderErrorResponse{}).
		Execute()

	if requestErr != nil {
		log.Errorw("Request Error", "status", requestStatus, "error", requestErr, "body", requestErrorBody)
	} else {
		log.Infow("Request Success", "status", requestStatus, "body", requestSuccessBody)
	}
}
