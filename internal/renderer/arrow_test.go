package renderer

import (
	"math"
	"testing"
)

func TestArrowPolygon(t *testing.T) {
	pts := arrowPolygon(point{0, 0}, point{100, 0}, 4)
	if len(pts) != 7 {
		t.Fatalf("got %d points, want 7", len(pts))
	}
	if pts[3] != (point{100, 0}) {
		t.Errorf("tip = %v, want (100, 0)", pts[3])
	}
	// Head is wider than the shaft
	if math.Abs(pts[2].Y) <= math.Abs(pts[1].Y) {
		t.Errorf("head half-width %v not wider than shaft %v", pts[2].Y, pts[1].Y)
	}

	if arrowPolygon(point{5, 5}, point{5, 5}, 4) != nil {
		t.Error("zero-length arrow should have no outline")
	}
}
