package providers

import (
	"strings"
	"testing"
	"time"

	"github.com/i474232898/weather-cli/internal/weather"
)

func TestConditionFromText(t *testing.T) {
	tests := []struct {
		input string
		want  weather.Condition
	}{
		{"Sunny", weather.ConditionClear},
		{"Clear sky", weather.ConditionClear},
		{"Partly cloudy", weather.ConditionCloudy},
		{"Overcast", weather.ConditionCloudy},
		{"Patchy light rain", weather.ConditionRain},
		{"Light drizzle", weather.ConditionRain},
		{"Patchy light rain with thunder", weather.ConditionStorm},
		{"Moderate snow", weather.ConditionSnow},
		{"Light sleet showers", weather.ConditionSnow},
		{"Freezing fog", weather.ConditionMist},
		{"Mist", weather.ConditionMist},
		{"", weather.ConditionUnknown},
		{"Volcanic", weather.ConditionUnknown},
	}
	for _, tt := range tests {
		if got := conditionFromText(tt.input); got != tt.want {
			t.Errorf("conditionFromText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMapOpenWeatherCondition(t *testing.T) {
	tests := []struct {
		main string
		want weather.Condition
	}{
		{"Clear", weather.ConditionClear},
		{"Clouds", weather.ConditionCloudy},
		{"Drizzle", weather.ConditionRain},
		{"Thunderstorm", weather.ConditionStorm},
		{"Haze", weather.ConditionMist},
	}
	for _, tt := range tests {
		if got := mapOpenWeatherCondition([]owmWeatherItem{{Main: tt.main}}); got != tt.want {
			t.Errorf("mapOpenWeatherCondition(%q) = %q, want %q", tt.main, got, tt.want)
		}
	}
	if got := mapOpenWeatherCondition(nil); got != weather.ConditionUnknown {
		t.Errorf("empty weather list = %q, want unknown", got)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"15", 15, true},
		{" -3.5 ", -3.5, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseNumber(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseNumber(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestUpstreamMessage(t *testing.T) {
	if upstreamMessage([]byte("  ")) != nil {
		t.Error("blank body should give no message")
	}
	long := upstreamMessage([]byte(strings.Repeat("x", 500)))
	if long == nil || len(long.Error()) != 123 {
		t.Errorf("long body should be cut to 120 runes plus ellipsis, got %v", long)
	}
}

func TestHourlyTime(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if _, ok := hourlyTime(day, "2400"); ok {
		t.Error("2400 is out of range")
	}
	got, ok := hourlyTime(day, "1530")
	if !ok || got.Hour() != 15 || got.Minute() != 30 {
		t.Errorf("hourlyTime(1530) = %v, %v", got, ok)
	}
}
