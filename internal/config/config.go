package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-cli/internal/weather"
	"github.com/i474232898/weather-cli/internal/weather/providers"
)

var validate = validator.New()

type AppConfig struct {
	// OpenWeatherAPIKey selects OpenWeatherMap when set; wttr.in otherwise.
	OpenWeatherAPIKey string

	Units weather.Unit

	// DefaultCity is used by OpenWeatherMap when no location is given.
	DefaultCity string `validate:"required,max=100"`

	HTTPTimeout time.Duration `validate:"min=1s,max=30s"`

	OpenWeatherBaseURL string `validate:"required,url"`
	WttrBaseURL        string `validate:"required,url"`

	Debug bool
}

// Load reads configuration from the environment (and .env, if present) with
// sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = strings.TrimSpace(os.Getenv("OPENWEATHER_KEY"))

	units, err := weather.ParseUnit(getenvDefault("WEATHER_UNITS", "metric"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_UNITS: %w", err)
	}
	cfg.Units = units

	cfg.DefaultCity = getenvDefault("WEATHER_DEFAULT_CITY", "London")

	timeout, err := time.ParseDuration(getenvDefault("WEATHER_HTTP_TIMEOUT", "8s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.OpenWeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", providers.DefaultOpenWeatherBaseURL)
	cfg.WttrBaseURL = getenvDefault("WTTR_BASE_URL", providers.DefaultWttrBaseURL)
	cfg.Debug = getenvBool("WEATHER_DEBUG", false)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
