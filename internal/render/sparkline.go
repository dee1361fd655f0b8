package render

import (
	"math"
	"strings"
)

// Ramp is an ordered set of glyphs from lowest to highest level.
type Ramp []rune

var (
	BlockRamp = Ramp("▁▂▃▄▅▆▇█")
	ASCIIRamp = Ramp("_.-:=+*#")
)

// Sparkline draws values as exactly width glyphs of ramp, scaled between the
// series' own min and max. width <= 0 means one glyph per value. Longer input
// is sampled down; shorter input is padded with its last value. A flat series
// renders as the ramp's middle glyph.
func Sparkline(values []float64, width int, ramp Ramp) string {
	if len(values) == 0 || len(ramp) == 0 {
		return ""
	}
	if width <= 0 {
		width = len(values)
	}
	vals := fit(values, width)

	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder
	top := len(ramp) - 1
	if hi == lo {
		mid := string(ramp[top/2])
		return strings.Repeat(mid, len(vals))
	}
	for _, v := range vals {
		idx := int(math.Round((v - lo) / (hi - lo) * float64(top)))
		if idx < 0 {
			idx = 0
		} else if idx > top {
			idx = top
		}
		b.WriteRune(ramp[idx])
	}
	return b.String()
}

func fit(values []float64, width int) []float64 {
	out := make([]float64, width)
	if len(values) > width {
		step := float64(len(values)) / float64(width)
		for i := range out {
			out[i] = values[int(float64(i)*step)]
		}
		return out
	}
	n := copy(out, values)
	for i := n; i < width; i++ {
		out[i] = values[len(values)-1]
	}
	return out
}
