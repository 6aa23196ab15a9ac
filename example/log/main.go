package main

import (
	"go-weather/pkg/log"
	"go.uber.org/zap"
)

type lookupResult struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
}

func main() {

	var found bool = true
	var city string = "London"
	var slots int64 = 40
	var temperature float64 = 10.5
	result := lookupResult{
		City:        "London",
		Temperature: 10.5,
	}

	// Remember to set APPLICATION_NAME env
	log.Info("Strongly typed fields with the plain logger. log.Debug, log.Warn and log.Error work the same way.",
		zap.Bool("found", found),
		zap.String("city", city),
		zap.Int64p("slots", &slots),
		zap.Float64("temperature", temperature),
		zap.Any("result", result),
	)

	log.Infow("Loosely typed key/value pairs with the sugared logger. log.Debugw, log.Warnw and log.Errorw work the same way.",
		"found", found,
		"city", city,
		"slots", slots,
		"temperature", temperature,
		"result", result)

	log.Warnw("Warnings land on stderr with the same structured fields.",
		"city", city,
		"reason", "provider timeout")

	log.Infof("Printf-style formatting with the sugared logger. log.Debugf, log.Warnf and log.Errorf work the same way."+
		" Example message: 'failed to fetch weather for %s'", city)
}
