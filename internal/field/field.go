package field

import (
	"math"
)

// Field is a real-valued grid stored row-major. Missing cells hold NaN.
type Field struct {
	grid   Grid
	values []float64
}

// Assignment writes Value into every cell of Rect.
type Assignment struct {
	Rect  Rect
	Value float64
}

// New returns a zero-filled field
func New(g Grid) *Field {
	return &Field{grid: g, values: make([]float64, g.Cells())}
}

// Paint builds a field from assignments applied in slice order. Where
// rectangles overlap the later assignment wins; uncovered cells stay 0.
func Paint(g Grid, assignments []Assignment) *Field {
	f := New(g)
	for _, a := range assignments {
		f.Fill(a.Rect, a.Value)
	}
	return f
}

// At returns the value of a cell
func (f *Field) At(row, col int) float64 {
	return f.values[row*f.grid.Cols+col]
}

// Set stores the value of a cell
func (f *Field) Set(row, col int, v float64) {
	f.values[row*f.grid.Cols+col] = v
}

// Missing reports whether a cell has no value
func (f *Field) Missing(row, col int) bool {
	return math.IsNaN(f.At(row, col))
}

// Fill writes v into every cell of r, clipped to the grid
func (f *Field) Fill(r Rect, v float64) {
	r = r.clip(f.grid)
	for row := r.Row0; row < r.Row1; row++ {
		base := row * f.grid.Cols
		for col := r.Col0; col < r.Col1; col++ {
			f.values[base+col] = v
		}
	}
}

// Map returns a new field with fn applied to every non-missing cell
func (f *Field) Map(fn func(float64) float64) *Field {
	out := &Field{grid: f.grid, values: make([]float64, len(f.values))}
	for i, v := range f.values {
		if math.IsNaN(v) {
			out.values[i] = v
			continue
		}
		out.values[i] = fn(v)
	}
	return out
}

// Clamp returns a copy with every value capped at ceiling
func (f *Field) Clamp(ceiling float64) *Field {
	return f.Map(func(v float64) float64 {
		if v > ceiling {
			return ceiling
		}
		return v
	})
}

// Masked returns a copy where cells outside the mask are missing
func (f *Field) Masked(m *Mask) *Field {
	out := &Field{grid: f.grid, values: make([]float64, len(f.values))}
	for row := 0; row < f.grid.Rows; row++ {
		for col := 0; col < f.grid.Cols; col++ {
			i := row*f.grid.Cols + col
			if m.Inside(row, col) {
				out.values[i] = f.values[i]
			} else {
				out.values[i] = math.NaN()
			}
		}
	}
	return out
}

// Range returns the min and max over non-missing cells. ok is false when
// every cell is missing.
func (f *Field) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.values {
		if math.IsNaN(v) {
			continue
		}
		ok = true
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Count returns the number of non-missing cells matching pred
func (f *Field) Count(pred func(float64) bool) int {
	n := 0
	for _, v := range f.values {
		if !math.IsNaN(v) && pred(v) {
			n++
		}
	}
	return n
}
