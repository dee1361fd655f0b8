package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/i474232898/weather-cli/internal/weather"
)

func sampleSnapshot(withSeries bool) weather.Snapshot {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	data := weather.SnapshotData{
		Location:   "London",
		Provider:   "wttr.in",
		ObservedAt: base,
		Current: weather.Current{
			TemperatureC: 15,
			FeelsLikeC:   13,
			HumidityPct:  71,
			WindSpeedMS:  5,
			Condition:    weather.ConditionCloudy,
			Description:  "cloudy",
		},
	}
	if withSeries {
		for i := 0; i < 8; i++ {
			data.Hourly = append(data.Hourly, weather.HourlyPoint{Time: base.Add(time.Duration(i*3) * time.Hour), TemperatureC: float64(9 + i)})
		}
		data.Forecast = []weather.DailyForecast{
			{Date: base.AddDate(0, 0, 1), HighC: 16, LowC: 8, Condition: weather.ConditionRain, Description: "light rain"},
			{Date: base.AddDate(0, 0, 2), HighC: 20, LowC: 11, Condition: weather.ConditionClear, Description: "sunny"},
		}
	}
	return weather.NewSnapshot(data)
}

func TestPlainRenderCelsius(t *testing.T) {
	var b strings.Builder
	if err := (Plain{}).Render(&b, sampleSnapshot(true), weather.Celsius); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"Location: London",
		"Time: 2024-05-01 10:00",
		"Cloudy",
		"Temp: 15.0C  Feels: 13C",
		"Humidity: 71%  Wind: 5 m/s",
		"Next 24h:",
		"min 9C  max 16C",
		"Thu 02 May: Light rain",
		"16C/8C",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	for _, r := range out {
		if r > 127 {
			t.Fatalf("plain output contains non-ASCII %q:\n%s", r, out)
		}
	}
}

func TestPlainRenderFahrenheit(t *testing.T) {
	var b strings.Builder
	if err := (Plain{}).Render(&b, sampleSnapshot(false), weather.Fahrenheit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "Temp: 59.0F") {
		t.Errorf("expected 59.0F in:\n%s", out)
	}
	if !strings.Contains(out, "mph") {
		t.Errorf("imperial output should use mph:\n%s", out)
	}
	if !strings.Contains(out, "Next 24h: n/a") || !strings.Contains(out, "3-day forecast: n/a") {
		t.Errorf("missing series should render as n/a:\n%s", out)
	}
}

func TestRichRenderWithoutColor(t *testing.T) {
	var b strings.Builder
	if err := (Rich{}).Render(&b, sampleSnapshot(true), weather.Fahrenheit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()
	if strings.Contains(out, "\033[") {
		t.Error("colour disabled but escape codes written")
	}
	for _, want := range []string{"╭", "London", "59.0°F", "▁", "3-day forecast", "source: wttr.in"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestRichRenderWithColor(t *testing.T) {
	var b strings.Builder
	if err := (Rich{Color: true}).Render(&b, sampleSnapshot(false), weather.Celsius); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, ansiBold+ansiGreen+"15.0°C"+ansiReset) {
		t.Errorf("15°C should be painted green:\n%q", out)
	}
	if !strings.Contains(out, "no forecast from wttr.in") {
		t.Errorf("missing forecast note:\n%s", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRenderReportsWriteErrors(t *testing.T) {
	for _, r := range []Renderer{Plain{}, Rich{}} {
		if err := r.Render(failingWriter{}, sampleSnapshot(true), weather.Celsius); err == nil {
			t.Errorf("%T: expected write error", r)
		}
	}
}

func TestTemperature(t *testing.T) {
	if got := Temperature(15, weather.Fahrenheit, 1); got != "59.0°F" {
		t.Errorf("Temperature = %q, want 59.0°F", got)
	}
	if got := Temperature(-3.6, weather.Celsius, 0); got != "-4°C" {
		t.Errorf("Temperature = %q, want -4°C", got)
	}
}
