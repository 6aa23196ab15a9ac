package configs

import (
	"github.com/spf13/viper"
	"go-weather/pkg/env"
)

type EnvConfig struct {
	ApplicationName string
	WeatherAPIKey   string
}

var Env *EnvConfig

func init() {
	env.Load()
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "go-weather"),
		WeatherAPIKey:   viper.GetString("WEATHER_API_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
