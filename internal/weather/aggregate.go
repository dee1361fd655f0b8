package weather

import (
	"sort"
	"time"
)

const (
	// MaxForecastDays bounds Snapshot.Forecast.
	MaxForecastDays = 3
	// MaxHourlyPoints bounds Snapshot.Hourly.
	MaxHourlyPoints = 24
)

// SnapshotData is the raw material a provider hands to NewSnapshot.
type SnapshotData struct {
	Location   string
	Provider   string
	ObservedAt time.Time
	Current    Current
	Forecast   []DailyForecast
	Hourly     []HourlyPoint
}

// Snapshot is the normalized, provider-independent result of one fetch.
// It is read-only once built: accessors hand out copies.
type Snapshot struct {
	location   string
	provider   string
	observedAt time.Time
	current    Current
	forecast   []DailyForecast
	hourly     []HourlyPoint
}

// NewSnapshot orders the forecast and hourly series by time and truncates them
// to MaxForecastDays and MaxHourlyPoints.
func NewSnapshot(d SnapshotData) Snapshot {
	forecast := append([]DailyForecast(nil), d.Forecast...)
	sort.SliceStable(forecast, func(i, j int) bool {
		return forecast[i].Date.Before(forecast[j].Date)
	})
	if len(forecast) > MaxForecastDays {
		forecast = forecast[:MaxForecastDays]
	}

	hourly := append([]HourlyPoint(nil), d.Hourly...)
	sort.SliceStable(hourly, func(i, j int) bool {
		return hourly[i].Time.Before(hourly[j].Time)
	})
	if len(hourly) > MaxHourlyPoints {
		hourly = hourly[:MaxHourlyPoints]
	}

	observed := d.ObservedAt
	if observed.IsZero() {
		observed = time.Now().UTC()
	}

	cond := d.Current
	if cond.Condition == "" {
		cond.Condition = ConditionUnknown
	}

	return Snapshot{
		location:   d.Location,
		provider:   d.Provider,
		observedAt: observed,
		current:    cond,
		forecast:   forecast,
		hourly:     hourly,
	}
}

func (s Snapshot) Location() string      { return s.location }
func (s Snapshot) Provider() string      { return s.provider }
func (s Snapshot) ObservedAt() time.Time { return s.observedAt }
func (s Snapshot) Current() Current      { return s.current }

// Forecast returns up to MaxForecastDays entries ordered by date.
func (s Snapshot) Forecast() []DailyForecast {
	return append([]DailyForecast(nil), s.forecast...)
}

// Hourly returns up to MaxHourlyPoints samples ordered by time.
func (s Snapshot) Hourly() []HourlyPoint {
	return append([]HourlyPoint(nil), s.hourly...)
}

// HourlyTemperatures returns the Celsius values of the hourly series in order.
func (s Snapshot) HourlyTemperatures() []float64 {
	out := make([]float64, 0, len(s.hourly))
	for _, p := range s.hourly {
		out = append(out, p.TemperatureC)
	}
	return out
}
