// Package field holds the venue grid, the elliptical venue mask, and the
// per-cell density and risk fields derived for each time block.
package field

// Grid is the H x W cell space, origin top-left.
type Grid struct {
	Rows int
	Cols int
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Center returns the integer centre column and row
func (g Grid) Center() (cx, cy int) {
	return g.Cols / 2, g.Rows / 2
}

// Contains reports whether the cell lies on the grid
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Cell addresses one grid cell.
type Cell struct {
	Row int
	Col int
}

// Rect is a half-open block of cells: rows [Row0, Row1), columns [Col0, Col1).
type Rect struct {
	Row0, Row1 int
	Col0, Col1 int
}

// clip restricts the rectangle to the grid
func (r Rect) clip(g Grid) Rect {
	return Rect{
		Row0: clampInt(r.Row0, 0, g.Rows),
		Row1: clampInt(r.Row1, 0, g.Rows),
		Col0: clampInt(r.Col0, 0, g.Cols),
		Col1: clampInt(r.Col1, 0, g.Cols),
	}
}

// Contains reports whether the cell lies inside the rectangle
func (r Rect) Contains(c Cell) bool {
	return c.Row >= r.Row0 && c.Row < r.Row1 && c.Col >= r.Col0 && c.Col < r.Col1
}

// Mask is an immutable boolean field over a grid.
type Mask struct {
	grid   Grid
	inside []bool
}

// NewEllipseMask builds the venue mask: the ellipse inscribed in the grid with
// semi-axes a = cx, b = cy, true where ((x-cx)/a)² + ((y-cy)/b)² <= 1.
func NewEllipseMask(g Grid) *Mask {
	cx, cy := g.Center()
	a, b := float64(cx), float64(cy)

	inside := make([]bool, g.Cells())
	for row := 0; row < g.Rows; row++ {
		dy := (float64(row) - float64(cy)) / b
		for col := 0; col < g.Cols; col++ {
			dx := (float64(col) - float64(cx)) / a
			inside[row*g.Cols+col] = dx*dx+dy*dy <= 1
		}
	}

	return &Mask{grid: g, inside: inside}
}

// Inside reports whether the cell is within the venue
func (m *Mask) Inside(row, col int) bool {
	if row < 0 || row >= m.grid.Rows || col < 0 || col >= m.grid.Cols {
		return false
	}
	return m.inside[row*m.grid.Cols+col]
}

// Count returns the number of cells inside the mask
func (m *Mask) Count() int {
	n := 0
	for _, in := range m.inside {
		if in {
			n++
		}
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
