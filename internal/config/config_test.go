package config

import (
	"strings"
	"testing"
	"time"

	"github.com/i474232898/weather-cli/internal/weather"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OPENWEATHER_KEY", "WEATHER_UNITS", "WEATHER_DEFAULT_CITY", "WEATHER_HTTP_TIMEOUT",
		"OPENWEATHER_BASE_URL", "WTTR_BASE_URL", "WEATHER_DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "" {
		t.Errorf("key = %q, want empty", cfg.OpenWeatherAPIKey)
	}
	if cfg.Units != weather.Celsius || cfg.DefaultCity != "London" || cfg.HTTPTimeout != 8*time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.WttrBaseURL != "https://wttr.in" || cfg.OpenWeatherBaseURL != "https://api.openweathermap.org" {
		t.Errorf("unexpected base URLs: %q %q", cfg.WttrBaseURL, cfg.OpenWeatherBaseURL)
	}
	if cfg.Debug {
		t.Error("debug should be off by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENWEATHER_KEY", "  abc  ")
	t.Setenv("WEATHER_UNITS", "imperial")
	t.Setenv("WEATHER_DEFAULT_CITY", "Berlin")
	t.Setenv("WEATHER_HTTP_TIMEOUT", "3s")
	t.Setenv("WEATHER_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "abc" {
		t.Errorf("key = %q, want trimmed abc", cfg.OpenWeatherAPIKey)
	}
	if cfg.Units != weather.Fahrenheit || cfg.DefaultCity != "Berlin" || cfg.HTTPTimeout != 3*time.Second || !cfg.Debug {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"WEATHER_UNITS", "kelvin", "WEATHER_UNITS"},
		{"WEATHER_HTTP_TIMEOUT", "soon", "WEATHER_HTTP_TIMEOUT"},
		{"WEATHER_HTTP_TIMEOUT", "2m", "HTTPTimeout"},
		{"WEATHER_HTTP_TIMEOUT", "10ms", "HTTPTimeout"},
		{"WTTR_BASE_URL", "not a url", "WttrBaseURL"},
		{"WEATHER_DEFAULT_CITY", strings.Repeat("x", 101), "DefaultCity"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}
