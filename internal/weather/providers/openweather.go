package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/i474232898/weather-cli/internal/weather"
)

const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org"

// oneCallFallbackStatuses are the One Call answers that mean "this key cannot
// use the combined endpoint". Anything else non-2xx is a hard rejection.
var oneCallFallbackStatuses = map[int]bool{
	http.StatusUnauthorized:   true,
	http.StatusForbidden:      true,
	http.StatusNotFound:       true,
	http.StatusNotImplemented: true,
}

var errOneCallUnsupported = errors.New("one call endpoint unsupported")

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name        string
	apiKey      string
	baseURL     string
	defaultCity string
	client      *http.Client
}

func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL, defaultCity string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	return &OpenWeatherProvider{
		name:        "openweathermap",
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		defaultCity: defaultCity,
		client:      client,
	}
}

// NewOpenWeatherFactory returns a weather.KeyedProviderFactory that hands out
// one provider per distinct key.
func NewOpenWeatherFactory(client *http.Client, baseURL, defaultCity string) weather.KeyedProviderFactory {
	var (
		mu    sync.Mutex
		byKey = make(map[string]*OpenWeatherProvider)
	)
	return func(apiKey string) weather.Provider {
		mu.Lock()
		defer mu.Unlock()
		p, ok := byKey[apiKey]
		if !ok {
			p = NewOpenWeatherProvider(client, apiKey, baseURL, defaultCity)
			byKey[apiKey] = p
		}
		return p
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// place is a geocoding hit.
type place struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

func (pl place) label() string {
	if pl.Country == "" {
		return pl.Name
	}
	return pl.Name + ", " + pl.Country
}

type owmWeatherItem struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context, loc weather.Location) (weather.Snapshot, error) {
	target := loc
	if loc.Implicit() {
		target = weather.Location(p.defaultCity)
	}
	if target.Implicit() {
		return weather.Snapshot{}, notFoundError(p.name, target)
	}

	pl, err := p.geocode(ctx, target)
	if err != nil {
		return weather.Snapshot{}, err
	}

	snap, err := p.fetchOneCall(ctx, target, pl)
	if errors.Is(err, errOneCallUnsupported) {
		log.Printf("DEBUG: %s: %v, using current weather endpoint", p.name, err)
		return p.fetchCurrent(ctx, target, pl)
	}
	return snap, err
}

func (p *OpenWeatherProvider) endpoint(path string, values url.Values) string {
	values.Set("appid", p.apiKey)
	return fmt.Sprintf("%s%s?%s", p.baseURL, path, values.Encode())
}

func coordValues(pl place) url.Values {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", pl.Lat))
	values.Set("lon", fmt.Sprintf("%f", pl.Lon))
	values.Set("units", "metric")
	return values
}

func (p *OpenWeatherProvider) geocode(ctx context.Context, loc weather.Location) (place, error) {
	values := url.Values{}
	values.Set("q", string(loc))
	values.Set("limit", "1")

	resp, err := doRequest(ctx, p.client, p.endpoint("/geo/1.0/direct", values))
	if err != nil {
		return place{}, networkError(p.name, loc, err)
	}
	if !resp.ok() {
		return place{}, rejectedError(p.name, loc, resp)
	}

	var hits []place
	if err := json.Unmarshal(resp.body, &hits); err != nil {
		return place{}, malformedError(p.name, loc, fmt.Errorf("decode geocoding: %w", err))
	}
	if len(hits) == 0 {
		return place{}, notFoundError(p.name, loc)
	}

	pl := hits[0]
	if pl.Name == "" {
		pl.Name = string(loc)
	}
	return pl, nil
}

func (p *OpenWeatherProvider) fetchOneCall(ctx context.Context, loc weather.Location, pl place) (weather.Snapshot, error) {
	values := coordValues(pl)
	values.Set("exclude", "minutely,alerts")

	resp, err := doRequest(ctx, p.client, p.endpoint("/data/2.5/onecall", values))
	if err != nil {
		return weather.Snapshot{}, networkError(p.name, loc, err)
	}
	if oneCallFallbackStatuses[resp.status] {
		return weather.Snapshot{}, fmt.Errorf("%w: HTTP %d", errOneCallUnsupported, resp.status)
	}
	if !resp.ok() {
		return weather.Snapshot{}, rejectedError(p.name, loc, resp)
	}

	var payload struct {
		TimezoneOffset int64 `json:"timezone_offset"`
		Current        *struct {
			Dt        int64            `json:"dt"`
			Temp      float64          `json:"temp"`
			FeelsLike float64          `json:"feels_like"`
			Humidity  float64          `json:"humidity"`
			WindSpeed float64          `json:"wind_speed"`
			Weather   []owmWeatherItem `json:"weather"`
		} `json:"current"`
		Hourly []struct {
			Dt   int64    `json:"dt"`
			Temp *float64 `json:"temp"`
		} `json:"hourly"`
		Daily []struct {
			Dt   int64 `json:"dt"`
			Temp struct {
				Min *float64 `json:"min"`
				Max *float64 `json:"max"`
			} `json:"temp"`
			Weather []owmWeatherItem `json:"weather"`
		} `json:"daily"`
	}

	if err := json.Unmarshal(resp.body, &payload); err != nil {
		return weather.Snapshot{}, malformedError(p.name, loc, fmt.Errorf("decode one call: %w", err))
	}
	if payload.Current == nil {
		return weather.Snapshot{}, malformedError(p.name, loc, errors.New("one call payload has no current conditions"))
	}

	cur := payload.Current
	data := weather.SnapshotData{
		Location:   pl.label(),
		Provider:   p.name,
		ObservedAt: unixUTC(cur.Dt),
		Current: weather.Current{
			TemperatureC: cur.Temp,
			FeelsLikeC:   cur.FeelsLike,
			HumidityPct:  cur.Humidity,
			WindSpeedMS:  cur.WindSpeed,
			Condition:    mapOpenWeatherCondition(cur.Weather),
			Description:  describe(cur.Weather),
		},
	}

	for _, h := range payload.Hourly {
		if len(data.Hourly) >= weather.MaxHourlyPoints {
			break
		}
		if h.Temp == nil {
			continue
		}
		data.Hourly = append(data.Hourly, weather.HourlyPoint{
			Time:         unixUTC(h.Dt),
			TemperatureC: *h.Temp,
		})
	}

	// daily[0] is today.
	for i, d := range payload.Daily {
		if i == 0 {
			continue
		}
		if len(data.Forecast) >= weather.MaxForecastDays {
			break
		}
		if d.Temp.Min == nil || d.Temp.Max == nil {
			continue
		}
		data.Forecast = append(data.Forecast, weather.DailyForecast{
			Date:        localDay(d.Dt, payload.TimezoneOffset),
			HighC:       *d.Temp.Max,
			LowC:        *d.Temp.Min,
			Condition:   mapOpenWeatherCondition(d.Weather),
			Description: describe(d.Weather),
		})
	}

	return weather.NewSnapshot(data), nil
}

// fetchCurrent uses the current-weather endpoint, which has no forecast or hourly data.
func (p *OpenWeatherProvider) fetchCurrent(ctx context.Context, loc weather.Location, pl place) (weather.Snapshot, error) {
	resp, err := doRequest(ctx, p.client, p.endpoint("/data/2.5/weather", coordValues(pl)))
	if err != nil {
		return weather.Snapshot{}, networkError(p.name, loc, err)
	}
	if resp.status == http.StatusNotFound {
		return weather.Snapshot{}, notFoundError(p.name, loc)
	}
	if !resp.ok() {
		return weather.Snapshot{}, rejectedError(p.name, loc, resp)
	}

	var payload struct {
		Dt   int64 `json:"dt"`
		Main *struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []owmWeatherItem `json:"weather"`
	}

	if err := json.Unmarshal(resp.body, &payload); err != nil {
		return weather.Snapshot{}, malformedError(p.name, loc, fmt.Errorf("decode current weather: %w", err))
	}
	if payload.Main == nil {
		return weather.Snapshot{}, malformedError(p.name, loc, errors.New("current weather payload has no main section"))
	}

	return weather.NewSnapshot(weather.SnapshotData{
		Location:   pl.label(),
		Provider:   p.name,
		ObservedAt: unixUTC(payload.Dt),
		Current: weather.Current{
			TemperatureC: payload.Main.Temp,
			FeelsLikeC:   payload.Main.FeelsLike,
			HumidityPct:  payload.Main.Humidity,
			WindSpeedMS:  payload.Wind.Speed,
			Condition:    mapOpenWeatherCondition(payload.Weather),
			Description:  describe(payload.Weather),
		},
	}), nil
}

func unixUTC(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

// localDay returns midnight of the calendar day ts falls on at the given UTC offset.
func localDay(ts, offset int64) time.Time {
	t := time.Unix(ts+offset, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func describe(items []owmWeatherItem) string {
	if len(items) == 0 {
		return ""
	}
	if items[0].Description != "" {
		return items[0].Description
	}
	return items[0].Main
}

func mapOpenWeatherCondition(items []owmWeatherItem) weather.Condition {
	if len(items) == 0 {
		return weather.ConditionUnknown
	}
	switch items[0].Main {
	case "Clear":
		return weather.ConditionClear
	case "Clouds":
		return weather.ConditionCloudy
	case "Rain", "Drizzle":
		return weather.ConditionRain
	case "Snow":
		return weather.ConditionSnow
	case "Thunderstorm", "Squall", "Tornado":
		return weather.ConditionStorm
	case "Mist", "Smoke", "Haze", "Fog", "Dust", "Sand", "Ash":
		return weather.ConditionMist
	default:
		return conditionFromText(items[0].Description)
	}
}
