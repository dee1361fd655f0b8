package render

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/i474232898/weather-cli/internal/weather"
)

// Renderer writes a snapshot in one presentation style, converting
// temperatures to the display unit on the way out.
type Renderer interface {
	Render(w io.Writer, s weather.Snapshot, u weather.Unit) error
}

const (
	timeLayout = "2006-01-02 15:04"
	dayLayout  = "Mon 02 Jan"
	sparkWidth = 36
)

var icons = map[weather.Condition]string{
	weather.ConditionClear:  "☀️",
	weather.ConditionCloudy: "☁️",
	weather.ConditionRain:   "🌧️",
	weather.ConditionSnow:   "❄️",
	weather.ConditionStorm:  "⛈️",
	weather.ConditionMist:   "🌫️",
}

// Icon returns an emoji for c, or "" for unknown conditions.
func Icon(c weather.Condition) string {
	return icons[c]
}

// Temperature formats a Celsius value in u with the given precision, e.g. "59.0°F".
func Temperature(c float64, u weather.Unit, decimals int) string {
	return fmt.Sprintf("%.*f%s", decimals, u.FromCelsius(c), u.Symbol())
}

// asciiTemperature is Temperature without the degree sign.
func asciiTemperature(c float64, u weather.Unit, decimals int) string {
	letter := "C"
	if u == weather.Fahrenheit {
		letter = "F"
	}
	return fmt.Sprintf("%.*f%s", decimals, u.FromCelsius(c), letter)
}

func wind(ms float64, u weather.Unit) string {
	return fmt.Sprintf("%.0f %s", u.WindFromMS(ms), u.WindLabel())
}

func observed(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(timeLayout)
}

// hourlyRange returns the min and max of the hourly series in Celsius.
func hourlyRange(temps []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range temps {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func description(d string, c weather.Condition) string {
	if d == "" {
		return string(c)
	}
	return d
}
