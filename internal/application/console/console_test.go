package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

type fakeUseCase struct {
	reports map[string]*entity.WeatherReport
	errs    map[string]error
	calls   []string
}

func (f *fakeUseCase) CurrentConditions(requestID string, city string) (*entity.CurrentConditions, error) {
	return nil, nil
}

func (f *fakeUseCase) Forecast(requestID string, city string) ([]entity.ForecastEntry, error) {
	return nil, nil
}

func (f *fakeUseCase) LookupCity(requestID string, city string) (*entity.WeatherReport, error) {
	f.calls = append(f.calls, city)
	if err, ok := f.errs[city]; ok {
		return nil, err
	}
	if report, ok := f.reports[city]; ok {
		return report, nil
	}
	return nil, model.NewFetchError(model.CityNotFound, city, "city not found", nil)
}

func runConsole(t *testing.T, input string, useCase *fakeUseCase) string {
	t.Helper()
	var out bytes.Buffer
	if err := NewConsole(strings.NewReader(input), &out, useCase).Run(); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	return out.String()
}

func londonReport() *entity.WeatherReport {
	return &entity.WeatherReport{
		City: "London",
		Current: entity.CurrentConditions{
			City:         "London",
			TemperatureC: 15.0,
			Condition:    "Cloudy",
			Humidity:     80,
			WindSpeedMS:  5.0,
			ObservedAt:   time.Date(2021, 11, 1, 15, 0, 0, 0, time.UTC),
		},
		Forecast: []entity.ForecastEntry{
			{At: time.Date(2021, 11, 1, 18, 0, 0, 0, time.UTC), TemperatureC: 14.0, Condition: "light rain", Humidity: 75, WindSpeedMS: 4.0},
			{TemperatureC: 12.5, Condition: "few clouds", Humidity: 70, WindSpeedMS: 3.0},
		},
	}
}

func TestParseCities(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"London", []string{"London"}},
		{"London, Paris ,Tokyo", []string{"London", "Paris", "Tokyo"}},
		{"  New York , Rio de Janeiro ", []string{"New York", "Rio de Janeiro"}},
		{" , ,,", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := parseCities(tt.line)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("parseCities(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestBlankLineDispatchesNothing(t *testing.T) {
	useCase := &fakeUseCase{}
	output := runConsole(t, " , ,,  \nquit\n", useCase)

	if len(useCase.calls) != 0 {
		t.Errorf("expected no lookups, got %v", useCase.calls)
	}
	if !strings.Contains(output, "Exiting...") {
		t.Errorf("expected exit message, got %q", output)
	}
}

func TestCityNamesAreTrimmed(t *testing.T) {
	useCase := &fakeUseCase{reports: map[string]*entity.WeatherReport{"London": londonReport()}}
	runConsole(t, "   London  \nquit\n", useCase)

	if len(useCase.calls) != 1 || useCase.calls[0] != "London" {
		t.Errorf("expected one trimmed lookup for London, got %v", useCase.calls)
	}
}

func TestRenderedReportContainsProviderValues(t *testing.T) {
	useCase := &fakeUseCase{reports: map[string]*entity.WeatherReport{"London": londonReport()}}
	output := runConsole(t, "London\nquit\n", useCase)

	for _, want := range []string{
		"Enter city names (separated by commas) or 'quit' to exit.",
		"Fetching weather for London...",
		"Weather for London:",
		"Temperature: 15.0°C",
		"Condition: Cloudy",
		"Humidity: 80%",
		"Wind Speed: 5.0 m/s",
		"Time: 2021-11-01 15:00:00 UTC",
		"5-Day Forecast for London:",
		strings.Repeat("-", 40),
		"Condition: light rain",
		"Temperature: 12.5°C",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestUnknownCityContinuesWithNextCity(t *testing.T) {
	useCase := &fakeUseCase{reports: map[string]*entity.WeatherReport{"London": londonReport()}}
	output := runConsole(t, "Atlantis, London\nquit\n", useCase)

	if len(useCase.calls) != 2 || useCase.calls[0] != "Atlantis" || useCase.calls[1] != "London" {
		t.Fatalf("expected lookups for both cities in order, got %v", useCase.calls)
	}
	if !strings.Contains(output, "City 'Atlantis' not found.") {
		t.Errorf("expected not-found message, got:\n%s", output)
	}
	if !strings.Contains(output, "Weather for London:") {
		t.Errorf("expected London weather block after the failure, got:\n%s", output)
	}
}

func TestQuitKeywordIsCaseInsensitive(t *testing.T) {
	for _, input := range []string{"quit\n", "QUIT\n", "Quit\n", "  qUiT  \n"} {
		useCase := &fakeUseCase{}
		output := runConsole(t, input, useCase)

		if len(useCase.calls) != 0 {
			t.Errorf("input %q: expected no lookups, got %v", input, useCase.calls)
		}
		if !strings.Contains(output, "Exiting...") {
			t.Errorf("input %q: expected exit message, got %q", input, output)
		}
	}
}

func TestEndOfInputTerminatesLikeQuit(t *testing.T) {
	useCase := &fakeUseCase{}
	output := runConsole(t, "", useCase)

	if !strings.Contains(output, "Exiting...") {
		t.Errorf("expected exit message on end of input, got %q", output)
	}
	if len(useCase.calls) != 0 {
		t.Errorf("expected no lookups, got %v", useCase.calls)
	}
}

func TestNetworkFailureRendersErrorLine(t *testing.T) {
	useCase := &fakeUseCase{errs: map[string]error{
		"London": model.NewFetchError(model.NetworkFailure, "London", "", errors.New("connection refused")),
	}}
	output := runConsole(t, "London\nquit\n", useCase)

	if !strings.Contains(output, "Error: connection refused") {
		t.Errorf("expected network error line, got:\n%s", output)
	}
}

func TestUnclassifiedErrorRendersUnexpectedLine(t *testing.T) {
	useCase := &fakeUseCase{errs: map[string]error{"London": errors.New("boom")}}
	output := runConsole(t, "London\nquit\n", useCase)

	if !strings.Contains(output, "Unexpected error: boom") {
		t.Errorf("expected unexpected error line, got:\n%s", output)
	}
}

func TestEmptyForecastRendersNotice(t *testing.T) {
	report := londonReport()
	report.Forecast = nil
	useCase := &fakeUseCase{reports: map[string]*entity.WeatherReport{"London": report}}
	output := runConsole(t, "London\nquit\n", useCase)

	if !strings.Contains(output, "No forecast available for 'London'.") {
		t.Errorf("expected no-forecast notice, got:\n%s", output)
	}
	if strings.Contains(output, "5-Day Forecast") {
		t.Errorf("expected no forecast header, got:\n%s", output)
	}
}

func TestNoForecastNoticeEchoesInputName(t *testing.T) {
	report := londonReport()
	report.Forecast = nil
	useCase := &fakeUseCase{reports: map[string]*entity.WeatherReport{"london": report}}
	output := runConsole(t, "london\nquit\n", useCase)

	if !strings.Contains(output, "No forecast available for 'london'.") {
		t.Errorf("expected notice with the name as entered, got:\n%s", output)
	}
	if !strings.Contains(output, "Weather for London:") {
		t.Errorf("expected provider name in the weather header, got:\n%s", output)
	}
}

func TestForecastSlotWithoutTimestampSkipsTimeLine(t *testing.T) {
	useCase := &fakeUseCase{reports: map[string]*entity.WeatherReport{"London": londonReport()}}
	output := runConsole(t, "London\nquit\n", useCase)

	if got := strings.Count(output, "Time: "); got != 2 {
		t.Errorf("expected 2 Time lines (current plus first slot), got %d in:\n%s", got, output)
	}
}
