package renderer

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"gonum.org/v1/plot"
)

func tickLabels(ticks []plot.Tick) []string {
	labels := make([]string, 0, len(ticks))
	for _, t := range ticks {
		labels = append(labels, t.Label)
	}
	return labels
}

func TestGridTicker(t *testing.T) {
	testCases := []struct {
		name   string
		step   int
		lo, hi float64
		want   []string
	}{
		{name: "columns", step: 10, lo: 0, hi: 50, want: []string{"0", "10", "20", "30", "40", "50"}},
		{name: "rows", step: 5, lo: 0, hi: 30, want: []string{"0", "5", "10", "15", "20", "25", "30"}},
		{name: "partial range", step: 5, lo: 3, hi: 12, want: []string{"5", "10"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tickLabels(labelledTicks(gridTicker(tc.step), tc.lo, tc.hi))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ticks = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestColorBarTicks checks the default ticker on the ranges the colour
// bars actually use: every drawn tick has a short label that reads back as
// its value.
func TestColorBarTicks(t *testing.T) {
	testCases := []struct {
		name   string
		lo, hi float64
	}{
		{name: "risk", lo: 0, hi: 1},
		{name: "risk elevated only", lo: 0, hi: 0.5},
		{name: "density", lo: 0, hi: 7},
		{name: "flat field", lo: 2.5, hi: 3.5},
		{name: "grid rows", lo: 0, hi: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ticks := labelledTicks(plot.DefaultTicks{}, tc.lo, tc.hi)
			if len(ticks) < 2 {
				t.Fatalf("only %d labelled ticks in [%v, %v]", len(ticks), tc.lo, tc.hi)
			}
			for _, tick := range ticks {
				if tick.Value < tc.lo || tick.Value > tc.hi {
					t.Errorf("tick %v outside [%v, %v]", tick.Value, tc.lo, tc.hi)
				}
				v, err := strconv.ParseFloat(tick.Label, 64)
				if err != nil || math.Abs(v-tick.Value) > 1e-9*math.Max(1, math.Abs(v)) {
					t.Errorf("label %q does not match value %v", tick.Label, tick.Value)
				}
				if i := strings.IndexByte(tick.Label, '.'); i >= 0 && len(tick.Label)-i-1 > 3 {
					t.Errorf("label %q carries float noise", tick.Label)
				}
			}
		})
	}
}

func TestLabelledTicks_SkipsMinorTicks(t *testing.T) {
	ticker := plot.TickerFunc(func(min, max float64) []plot.Tick {
		return []plot.Tick{
			{Value: 0, Label: "0"},
			{Value: 0.25},
			{Value: 0.5, Label: "0.5"},
			{Value: 2, Label: "2"},
		}
	})

	got := tickLabels(labelledTicks(ticker, 0, 1))
	if want := []string{"0", "0.5"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ticks = %v, want %v", got, want)
	}
}
