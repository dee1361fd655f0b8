package weather

import (
	"strings"
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// Location is a free-text place name. The empty Location asks the provider
// to resolve a default place on its own.
type Location string

// NewLocation joins command-line words into a Location.
func NewLocation(words ...string) Location {
	return Location(strings.TrimSpace(strings.Join(words, " ")))
}

// Implicit reports whether no place name was given.
func (l Location) Implicit() bool {
	return strings.TrimSpace(string(l)) == ""
}

func (l Location) String() string {
	if l.Implicit() {
		return "(auto)"
	}
	return string(l)
}

// Current holds the conditions observed right now. Temperatures are Celsius,
// wind speed is metres per second.
type Current struct {
	TemperatureC float64
	FeelsLikeC   float64
	HumidityPct  float64
	WindSpeedMS  float64
	Condition    Condition
	Description  string
}

// DailyForecast is one day of the short forecast.
type DailyForecast struct {
	Date        time.Time
	HighC       float64
	LowC        float64
	Condition   Condition
	Description string
}

// HourlyPoint is one sample of the next-24h temperature series.
type HourlyPoint struct {
	Time         time.Time
	TemperatureC float64
}
