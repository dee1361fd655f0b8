package render

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSparklineEmpty(t *testing.T) {
	if got := Sparkline(nil, 24, BlockRamp); got != "" {
		t.Errorf("Sparkline(nil) = %q, want empty", got)
	}
	if got := Sparkline([]float64{}, 0, ASCIIRamp); got != "" {
		t.Errorf("Sparkline([]) = %q, want empty", got)
	}
}

func TestSparklineConstant(t *testing.T) {
	for _, ramp := range []Ramp{BlockRamp, ASCIIRamp} {
		got := Sparkline([]float64{20, 20, 20, 20}, 0, ramp)
		mid := string(ramp[(len(ramp)-1)/2])
		if got != strings.Repeat(mid, 4) {
			t.Errorf("Sparkline(constant) = %q, want %q", got, strings.Repeat(mid, 4))
		}
	}
}

func TestSparklineExtremes(t *testing.T) {
	got := []rune(Sparkline([]float64{0, 7, 3.5, 1, 6}, 0, BlockRamp))
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0] != '▁' || got[1] != '█' {
		t.Errorf("min/max glyphs = %q %q, want ▁ █", got[0], got[1])
	}
	if got[3] != '▂' || got[4] != '▇' {
		t.Errorf("intermediate glyphs = %q %q, want ▂ ▇", got[3], got[4])
	}
}

func TestSparklineWidth(t *testing.T) {
	values := make([]float64, 24)
	for i := range values {
		values[i] = float64(i)
	}
	tests := []struct {
		name  string
		in    []float64
		width int
	}{
		{"sampled down", values, 12},
		{"padded", values[:5], 36},
		{"natural", values, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.width
			if want == 0 {
				want = len(tt.in)
			}
			got := Sparkline(tt.in, tt.width, BlockRamp)
			if n := utf8.RuneCountInString(got); n != want {
				t.Errorf("width = %d, want %d (%q)", n, want, got)
			}
		})
	}
}

func TestSparklinePaddingRepeatsLastValue(t *testing.T) {
	got := Sparkline([]float64{1, 2, 3}, 6, ASCIIRamp)
	if got != "_=####" {
		t.Errorf("Sparkline padded = %q, want %q", got, "_=####")
	}
}
