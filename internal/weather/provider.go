package weather

import (
	"context"
)

// Provider abstracts a weather data source (OpenWeatherMap, wttr.in).
// Fetch returns a *FetchError on failure.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, loc Location) (Snapshot, error)
}

// KeyedProviderFactory builds the primary provider for an API key.
type KeyedProviderFactory func(apiKey string) Provider
