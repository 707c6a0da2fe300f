package renderer

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// measureText returns the width and actual bounds of rendered text
// (bounds.Min.Y is negative for ascent, Max.Y positive for descent)
func measureText(face font.Face, text string) (int, fixed.Rectangle26_6) {
	d := &font.Drawer{Face: face}
	bounds, _ := d.BoundString(text)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	return width, bounds
}

// drawText draws text with its baseline starting at (x, y)
func drawText(img draw.Image, face font.Face, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  freetype.Pt(x, y),
	}
	d.DrawString(text)
}

// drawCenteredText draws text centred horizontally on centerX
func drawCenteredText(img draw.Image, face font.Face, text string, centerX, baselineY int, c color.Color) {
	width, _ := measureText(face, text)
	drawText(img, face, text, centerX-width/2, baselineY, c)
}

// drawRightAlignedText draws text ending at rightX
func drawRightAlignedText(img draw.Image, face font.Face, text string, rightX, baselineY int, c color.Color) {
	width, _ := measureText(face, text)
	drawText(img, face, text, rightX-width, baselineY, c)
}

// drawVerticalText draws text rotated 90° counter-clockwise (reading bottom
// to top), centred on (centerX, centerY)
func drawVerticalText(img *image.RGBA, face font.Face, text string, centerX, centerY int, c color.Color) {
	if text == "" {
		return
	}

	width, _ := measureText(face, text)
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()

	// Render horizontally first
	tempImg := image.NewRGBA(image.Rect(0, 0, width, height))
	drawText(tempImg, face, text, 0, ascent, c)

	// Rotate: src (x, y) -> dst (y, width - x)
	m := f64.Aff3{
		0, 1, 0,
		-1, 0, float64(width),
	}
	rotatedImg := image.NewRGBA(image.Rect(0, 0, height, width))
	draw.BiLinear.Transform(rotatedImg, m, tempImg, tempImg.Bounds(), draw.Over, nil)

	destX := centerX - height/2
	destY := centerY - width/2
	destRect := image.Rect(destX, destY, destX+height, destY+width)
	draw.Draw(img, destRect, rotatedImg, image.Point{}, draw.Over)
}
