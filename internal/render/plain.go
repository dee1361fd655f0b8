package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/i474232898/weather-cli/internal/common"
	"github.com/i474232898/weather-cli/internal/weather"
)

const plainRule = 48

// Plain renders ASCII-only lines: no colour, no emoji, ASCII sparkline.
type Plain struct{}

func (Plain) Render(w io.Writer, s weather.Snapshot, u weather.Unit) error {
	var b strings.Builder
	heavy := strings.Repeat("=", plainRule)
	light := strings.Repeat("-", plainRule)
	cur := s.Current()

	fmt.Fprintln(&b, heavy)
	fmt.Fprintln(&b, " Quick Weather - CLI with hourly sparkline")
	fmt.Fprintln(&b, heavy)
	fmt.Fprintf(&b, "Location: %s\n", s.Location())
	fmt.Fprintf(&b, "Time: %s\n", observed(s.ObservedAt()))
	fmt.Fprintf(&b, "Source: %s\n", s.Provider())
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, common.Capitalize(description(cur.Description, cur.Condition)))
	fmt.Fprintf(&b, "Temp: %s  Feels: %s\n",
		asciiTemperature(cur.TemperatureC, u, 1), asciiTemperature(cur.FeelsLikeC, u, 0))
	fmt.Fprintf(&b, "Humidity: %.0f%%  Wind: %s\n", cur.HumidityPct, wind(cur.WindSpeedMS, u))
	fmt.Fprintln(&b, light)

	temps := s.HourlyTemperatures()
	if len(temps) > 0 {
		lo, hi := hourlyRange(temps)
		fmt.Fprintln(&b, "Next 24h:")
		fmt.Fprintf(&b, "%s  min %s  max %s\n",
			Sparkline(temps, sparkWidth, ASCIIRamp), asciiTemperature(lo, u, 0), asciiTemperature(hi, u, 0))
	} else {
		fmt.Fprintln(&b, "Next 24h: n/a")
	}
	fmt.Fprintln(&b, light)

	forecast := s.Forecast()
	if len(forecast) > 0 {
		fmt.Fprintln(&b, "3-day forecast:")
		for _, d := range forecast {
			fmt.Fprintf(&b, "%s: %-18s  %s/%s\n",
				d.Date.Format(dayLayout),
				common.Capitalize(description(d.Description, d.Condition)),
				asciiTemperature(d.HighC, u, 0), asciiTemperature(d.LowC, u, 0))
		}
	} else {
		fmt.Fprintln(&b, "3-day forecast: n/a")
	}
	fmt.Fprintln(&b, heavy)

	_, err := io.WriteString(w, b.String())
	return err
}
