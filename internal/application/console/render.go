package console

import (
	"fmt"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

const separatorWidth = 40

// renderReport prints the current conditions block followed by the forecast,
// or the no-forecast notice when the provider returned no slots. Headers carry
// the provider's canonical city name; the notice echoes the name as entered.
func (c *Console) renderReport(city string, report *entity.WeatherReport) {
	c.renderConditions(report.Current)

	if len(report.Forecast) == 0 {
		fmt.Fprintf(c.out, "No forecast available for '%s'.\n", city)
		return
	}

	fmt.Fprintf(c.out, "\n5-Day Forecast for %s:\n", report.City)
	for _, slot := range report.Forecast {
		fmt.Fprintln(c.out, strings.Repeat("-", separatorWidth))
		c.renderConditions(entity.CurrentConditions{
			City:         report.City,
			TemperatureC: slot.TemperatureC,
			Condition:    slot.Condition,
			Humidity:     slot.Humidity,
			WindSpeedMS:  slot.WindSpeedMS,
			ObservedAt:   slot.At,
		})
	}
}

// renderConditions prints one weather block. The Time line is omitted when
// the observation timestamp is absent.
func (c *Console) renderConditions(conditions entity.CurrentConditions) {
	fmt.Fprintf(c.out, "\nWeather for %s:\n", conditions.City)
	fmt.Fprintf(c.out, "Temperature: %.1f°C\n", conditions.TemperatureC)
	fmt.Fprintf(c.out, "Condition: %s\n", conditions.Condition)
	fmt.Fprintf(c.out, "Humidity: %d%%\n", conditions.Humidity)
	fmt.Fprintf(c.out, "Wind Speed: %.1f m/s\n", conditions.WindSpeedMS)
	if !conditions.ObservedAt.IsZero() {
		fmt.Fprintf(c.out, "Time: %s UTC\n", conditions.ObservedAt.Format("2006-01-02 15:04:05"))
	}
}

// renderError prints the per-city failure message for a classified lookup
// error, with a generic line for anything unclassified.
func (c *Console) renderError(city string, err error) {
	fetchErr, ok := model.AsFetchError(err)
	if !ok {
		fmt.Fprintf(c.out, "Unexpected error: %v\n", err)
		return
	}

	if fetchErr.Kind == model.CityNotFound {
		fmt.Fprintf(c.out, "City '%s' not found.\n", city)
		return
	}

	fmt.Fprintf(c.out, "Error: %v\n", fetchErr)
}
