package renderer

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/golang/freetype/truetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/linuxmatters/festmap/internal/config"
)

// LoadBackgroundImage decodes the map image and resamples it to exactly
// width x height pixels, one pixel per grid cell.
func LoadBackgroundImage(filename string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening background image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding background image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))

	if bounds.Dx() != width || bounds.Dy() != height {
		// Heavy downsampling, CatmullRom keeps the map legible
		draw.CatmullRom.Scale(rgba, rgba.Bounds(), img, bounds, draw.Src, nil)
	} else {
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return rgba, nil
}

// Fonts holds the faces used on a figure
type Fonts struct {
	Title font.Face
	Label font.Face
	Tick  font.Face
}

// LoadFont loads the bundled Go Regular TrueType font at the given size
func LoadFont(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	return face, nil
}

// LoadFonts loads every face a figure needs
func LoadFonts() (*Fonts, error) {
	title, err := LoadFont(config.TitleFontSize)
	if err != nil {
		return nil, err
	}
	label, err := LoadFont(config.LabelFontSize)
	if err != nil {
		return nil, err
	}
	tick, err := LoadFont(config.TickFontSize)
	if err != nil {
		return nil, err
	}

	return &Fonts{Title: title, Label: label, Tick: tick}, nil
}

// Close releases the font faces
func (f *Fonts) Close() {
	for _, face := range []font.Face{f.Title, f.Label, f.Tick} {
		if face != nil {
			face.Close()
		}
	}
}
