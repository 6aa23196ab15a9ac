package main

import (
	"go-weather/configs"
	"go-weather/internal/application/console"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
	"os"
)

func main() {
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	if configs.Env.WeatherAPIKey == "" {
		log.Fatal(msg.GetMessage("app.config.missing-api-key"))
	}

	// Init WeatherGateway
	clientOptions := http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.provider.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.provider.timeout"),
	}
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.provider.base-url"),
		configs.Env.WeatherAPIKey,
		clientOptions,
	)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)

	// Init Console
	weatherConsole := console.NewConsole(os.Stdin, os.Stdout, weatherUseCase)

	if err := weatherConsole.Run(); err != nil {
		log.Fatal(msg.GetMessage("app.stop-error", configs.Env.ApplicationName, err))
	}

	log.Info(msg.GetMessage("app.stop", configs.Env.ApplicationName))
}
