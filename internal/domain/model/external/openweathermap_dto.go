package external

// CurrentConditionsResponse represents the response from the current weather API.
// Main and Wind are pointers so an absent block is distinguishable from a zero one.
type CurrentConditionsResponse struct {
	Name    string                `json:"name"`
	Dt      int64                 `json:"dt"`
	Main    *MainDTO              `json:"main"`
	Wind    *WindDTO              `json:"wind"`
	Weather []WeatherConditionDTO `json:"weather"`
}

// MainDTO represents the temperature block of a weather payload, temperature in Kelvin
type MainDTO struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

// WindDTO represents the wind block of a weather payload, speed in m/s
type WindDTO struct {
	Speed float64 `json:"speed"`
}

// WeatherConditionDTO represents a single weather condition descriptor
type WeatherConditionDTO struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// ForecastResponse represents the response from the 5 day / 3 hour forecast API
type ForecastResponse struct {
	City *ForecastCityDTO   `json:"city"`
	List []ForecastEntryDTO `json:"list"`
}

// ForecastCityDTO identifies the city a forecast belongs to
type ForecastCityDTO struct {
	Name string `json:"name"`
}

// ForecastEntryDTO represents a single 3 hour forecast slot
type ForecastEntryDTO struct {
	Dt      int64                 `json:"dt"`
	Main    *MainDTO              `json:"main"`
	Wind    *WindDTO              `json:"wind"`
	Weather []WeatherConditionDTO `json:"weather"`
}

// APIErrorResponse represents error responses from the weather API.
// Cod is untyped because the provider mixes string and numeric codes.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
