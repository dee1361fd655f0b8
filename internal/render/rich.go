package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/i474232898/weather-cli/internal/common"
	"github.com/i474232898/weather-cli/internal/weather"
)

// ANSI SGR codes.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
)

const labelWidth = 10

// Rich renders a coloured header panel, a conditions table with the block
// sparkline, and a forecast table. With Color false the layout is the same
// but no escape codes are written.
type Rich struct {
	Color bool
}

func (r Rich) paint(s string, codes ...string) string {
	if !r.Color || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + ansiReset
}

// tempColor goes from blue for freezing to red for hot.
func tempColor(c float64) string {
	switch {
	case c < 0:
		return ansiBlue
	case c < 10:
		return ansiCyan
	case c < 20:
		return ansiGreen
	case c < 28:
		return ansiYellow
	default:
		return ansiRed
	}
}

// panel draws a rounded box around one line; width is measured on the
// unstyled text so escape codes don't skew it.
func (r Rich) panel(b *strings.Builder, plain, styled string) {
	inner := runewidth.StringWidth(plain) + 2
	fmt.Fprintf(b, "╭%s╮\n", strings.Repeat("─", inner))
	fmt.Fprintf(b, "│ %s │\n", styled)
	fmt.Fprintf(b, "╰%s╯\n", strings.Repeat("─", inner))
}

func (r Rich) row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", r.paint(runewidth.FillRight(label, labelWidth), ansiBold), value)
}

func (r Rich) Render(w io.Writer, s weather.Snapshot, u weather.Unit) error {
	var b strings.Builder
	cur := s.Current()

	when := observed(s.ObservedAt())
	r.panel(&b,
		s.Location()+"  "+when,
		r.paint(s.Location(), ansiBold, ansiCyan)+"  "+r.paint(when, ansiDim))

	cond := common.Capitalize(description(cur.Description, cur.Condition))
	if icon := Icon(cur.Condition); icon != "" {
		cond = icon + " " + cond
	}
	r.row(&b, "Condition", cond)
	r.row(&b, "Temp", fmt.Sprintf("%s (feels %s)",
		r.paint(Temperature(cur.TemperatureC, u, 1), ansiBold, tempColor(cur.TemperatureC)),
		Temperature(cur.FeelsLikeC, u, 0)))
	r.row(&b, "Humidity", fmt.Sprintf("%.0f%%", cur.HumidityPct))
	r.row(&b, "Wind", wind(cur.WindSpeedMS, u))

	temps := s.HourlyTemperatures()
	if len(temps) > 0 {
		lo, hi := hourlyRange(temps)
		r.row(&b, "Next 24h", fmt.Sprintf("%s  min %s max %s",
			r.paint(Sparkline(temps, sparkWidth, BlockRamp), ansiYellow),
			r.paint(Temperature(lo, u, 0), tempColor(lo)),
			r.paint(Temperature(hi, u, 0), tempColor(hi))))
	} else {
		r.row(&b, "Next 24h", r.paint("—", ansiDim))
	}

	forecast := s.Forecast()
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "  %s\n", r.paint("3-day forecast", ansiBold, ansiGreen))
	if len(forecast) == 0 {
		fmt.Fprintf(&b, "  %s\n", r.paint("no forecast from "+s.Provider(), ansiDim))
	}
	for _, d := range forecast {
		desc := common.Capitalize(description(d.Description, d.Condition))
		if icon := Icon(d.Condition); icon != "" {
			desc = icon + " " + desc
		}
		fmt.Fprintf(&b, "  %s  %s %s/%s\n",
			r.paint(d.Date.Format(dayLayout), ansiBold),
			runewidth.FillRight(runewidth.Truncate(desc, 22, "…"), 22),
			r.paint(Temperature(d.HighC, u, 0), tempColor(d.HighC)),
			r.paint(Temperature(d.LowC, u, 0), tempColor(d.LowC)))
	}
	fmt.Fprintf(&b, "  %s\n", r.paint("source: "+s.Provider(), ansiDim))

	_, err := io.WriteString(w, b.String())
	return err
}
