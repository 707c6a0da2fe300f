package field

import (
	"math"
	"testing"
)

var venue = Grid{Rows: 30, Cols: 50}

// TestEllipseMask_MatchesFormula checks every cell of the 30x50 venue
// against ((col-25)/25)² + ((row-15)/15)² <= 1.
func TestEllipseMask_MatchesFormula(t *testing.T) {
	m := NewEllipseMask(venue)

	for row := 0; row < venue.Rows; row++ {
		for col := 0; col < venue.Cols; col++ {
			dx := (float64(col) - 25) / 25
			dy := (float64(row) - 15) / 15
			want := dx*dx+dy*dy <= 1
			if got := m.Inside(row, col); got != want {
				t.Errorf("Inside(%d, %d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestEllipseMask_KnownCells(t *testing.T) {
	m := NewEllipseMask(venue)

	testCases := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"centre", 15, 25, true},
		{"top-left corner", 0, 0, false},
		{"bottom-right corner", 29, 49, false},
		{"west tip on boundary", 15, 0, true},
		{"north tip on boundary", 0, 25, true},
		{"off grid", -1, 25, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Inside(tc.row, tc.col); got != tc.want {
				t.Errorf("Inside(%d, %d) = %v, want %v", tc.row, tc.col, got, tc.want)
			}
		})
	}

	if n := m.Count(); n <= 0 || n >= venue.Cells() {
		t.Errorf("Count() = %d, want strictly between 0 and %d", n, venue.Cells())
	}
}

func TestPaint_LastWriterWins(t *testing.T) {
	g := Grid{Rows: 4, Cols: 4}
	f := Paint(g, []Assignment{
		{Rect: Rect{Row0: 0, Row1: 3, Col0: 0, Col1: 3}, Value: 2},
		{Rect: Rect{Row0: 1, Row1: 4, Col0: 1, Col1: 4}, Value: 5},
	})

	want := [4][4]float64{
		{2, 2, 2, 0},
		{2, 5, 5, 5},
		{2, 5, 5, 5},
		{0, 5, 5, 5},
	}
	for row := range want {
		for col := range want[row] {
			if got := f.At(row, col); got != want[row][col] {
				t.Errorf("At(%d, %d) = %v, want %v", row, col, got, want[row][col])
			}
		}
	}
}

func TestPaint_ClipsToGrid(t *testing.T) {
	g := Grid{Rows: 3, Cols: 3}
	f := Paint(g, []Assignment{{Rect: Rect{Row0: -2, Row1: 10, Col0: 2, Col1: 10}, Value: 1}})

	for row := 0; row < 3; row++ {
		if f.At(row, 2) != 1 || f.At(row, 1) != 0 {
			t.Errorf("row %d = [%v %v %v], want [0 0 1]", row, f.At(row, 0), f.At(row, 1), f.At(row, 2))
		}
	}
}

func TestClamp_Ceiling(t *testing.T) {
	g := Grid{Rows: 1, Cols: 4}
	f := New(g)
	for col, v := range []float64{0, 7.0, 9.0, 6.99} {
		f.Set(0, col, v)
	}

	c := f.Clamp(7.0)
	want := []float64{0, 7.0, 7.0, 6.99}
	for col, w := range want {
		if got := c.At(0, col); got != w {
			t.Errorf("Clamp At(0, %d) = %v, want %v", col, got, w)
		}
	}
	if f.At(0, 2) != 9.0 {
		t.Error("Clamp modified the source field")
	}
}

func TestMasked_OutsideIsMissing(t *testing.T) {
	m := NewEllipseMask(venue)
	f := Paint(venue, []Assignment{{Rect: Rect{Row0: 0, Row1: 30, Col0: 0, Col1: 50}, Value: 4}})
	masked := f.Masked(m)

	for row := 0; row < venue.Rows; row++ {
		for col := 0; col < venue.Cols; col++ {
			if m.Inside(row, col) {
				if masked.At(row, col) != 4 {
					t.Fatalf("inside cell (%d, %d) = %v, want 4", row, col, masked.At(row, col))
				}
			} else if !masked.Missing(row, col) {
				t.Fatalf("outside cell (%d, %d) = %v, want missing", row, col, masked.At(row, col))
			}
		}
	}

	if got := masked.Count(func(float64) bool { return true }); got != m.Count() {
		t.Errorf("non-missing cells = %d, want %d", got, m.Count())
	}
}

func TestRange(t *testing.T) {
	g := Grid{Rows: 1, Cols: 3}
	f := New(g)
	f.Set(0, 0, math.NaN())
	f.Set(0, 1, 1.5)
	f.Set(0, 2, 4)

	lo, hi, ok := f.Range()
	if !ok || lo != 1.5 || hi != 4 {
		t.Errorf("Range() = (%v, %v, %v), want (1.5, 4, true)", lo, hi, ok)
	}

	empty := New(g)
	for col := 0; col < g.Cols; col++ {
		empty.Set(0, col, math.NaN())
	}
	if _, _, ok := empty.Range(); ok {
		t.Error("Range() on an all-missing field reported ok")
	}
}

func TestThresholds_Level(t *testing.T) {
	th := Thresholds{Elevated: 3.0, High: 5.5}

	testCases := []struct {
		density float64
		want    float64
	}{
		{0, RiskNone},
		{3.0, RiskNone},
		{3.0001, RiskElevated},
		{4.0, RiskElevated},
		{5.5, RiskElevated},
		{5.5001, RiskHigh},
		{6.0, RiskHigh},
		{7.0, RiskHigh},
	}

	for _, tc := range testCases {
		if got := th.Level(tc.density); got != tc.want {
			t.Errorf("Level(%v) = %v, want %v", tc.density, got, tc.want)
		}
	}
}

func TestRisk_KeepsMissing(t *testing.T) {
	g := Grid{Rows: 1, Cols: 2}
	d := New(g)
	d.Set(0, 0, math.NaN())
	d.Set(0, 1, 6)

	r := Risk(d, Thresholds{Elevated: 3, High: 5.5})
	if !r.Missing(0, 0) {
		t.Error("missing density produced a risk value")
	}
	if r.At(0, 1) != RiskHigh {
		t.Errorf("risk = %v, want %v", r.At(0, 1), RiskHigh)
	}
}
