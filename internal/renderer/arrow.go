package renderer

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Arrow head proportions, in multiples of the shaft width
const (
	headWidth      = 3.0
	headLength     = 5.0
	headAxisLength = 4.5
)

// point is a canvas position in pixels
type point struct {
	X, Y float64
}

// arrowPolygon returns the outline of a quiver-style arrow from tail to tip.
// The head shrinks with the arrow when it would be longer than the arrow itself.
func arrowPolygon(tail, tip point, shaftWidth float64) []point {
	dx, dy := tip.X-tail.X, tip.Y-tail.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}

	// Unit direction and normal
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux

	w := shaftWidth
	hl := headLength * w
	hal := headAxisLength * w
	if hl > length {
		shrink := length / hl
		w *= shrink
		hl *= shrink
		hal *= shrink
	}
	hw := headWidth * w

	at := func(along, across float64) point {
		return point{
			X: tail.X + ux*along + nx*across,
			Y: tail.Y + uy*along + ny*across,
		}
	}

	return []point{
		at(0, -w/2),
		at(length-hal, -w/2),
		at(length-hl, -hw/2),
		at(length, 0),
		at(length-hl, hw/2),
		at(length-hal, w/2),
		at(0, w/2),
	}
}

// fillPolygon rasterises a closed polygon onto img with anti-aliasing
func fillPolygon(img *image.RGBA, pts []point, c color.Color) {
	if len(pts) < 3 {
		return
	}

	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X-float64(b.Min.X)), float32(pts[0].Y-float64(b.Min.Y)))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X-float64(b.Min.X)), float32(p.Y-float64(b.Min.Y)))
	}
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

// drawArrow draws a filled arrow from tail to tip
func drawArrow(img *image.RGBA, tail, tip point, shaftWidth float64, c color.Color) {
	fillPolygon(img, arrowPolygon(tail, tip, shaftWidth), c)
}
