package renderer

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/linuxmatters/festmap/internal/config"
	"github.com/linuxmatters/festmap/internal/field"
)

// ColorScale maps field values onto a colour map whose range is fitted to
// the data being drawn. A reversed scale samples the map from its top end.
type ColorScale struct {
	cmap     palette.ColorMap
	reversed bool
}

// HeatScale is the black → red → yellow → white scale used for density
func HeatScale() *ColorScale {
	return &ColorScale{cmap: moreland.BlackBody()}
}

// RedScale is the monochrome scale used for risk, near-white at the low end
// and dark red at the high end.
func RedScale() (*ColorScale, error) {
	lr, lg, lb := config.MustParseHexColor(config.RiskLowColorHex)
	hr, hg, hb := config.MustParseHexColor(config.RiskHighColorHex)

	// Luminance maps need increasing luminance, so build dark to light and mirror in At
	cm, err := moreland.NewLuminance([]color.Color{
		color.NRGBA{R: hr, G: hg, B: hb, A: 255},
		color.NRGBA{R: lr, G: lg, B: lb, A: 255},
	})
	if err != nil {
		return nil, fmt.Errorf("building red scale: %w", err)
	}

	return &ColorScale{cmap: cm, reversed: true}, nil
}

// Fit sets the scale's range to the min and max of the non-missing cells.
// A flat or empty field gets the range [lo, lo+1] so it maps to the low end.
func (s *ColorScale) Fit(f *field.Field) (lo, hi float64) {
	lo, hi, ok := f.Range()
	if !ok {
		lo, hi = 0, 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	s.SetRange(lo, hi)
	return lo, hi
}

// SetRange sets the value range explicitly
func (s *ColorScale) SetRange(lo, hi float64) {
	s.cmap.SetMax(hi)
	s.cmap.SetMin(lo)
}

// Range returns the current value range
func (s *ColorScale) Range() (lo, hi float64) {
	return s.cmap.Min(), s.cmap.Max()
}

// At returns the opaque colour for v, clamped into the scale's range
func (s *ColorScale) At(v float64) color.NRGBA {
	lo, hi := s.Range()
	v = clampFloat(v, lo, hi)
	if s.reversed {
		// hi - (v - lo) can round just outside the range
		v = clampFloat(lo+hi-v, lo, hi)
	}

	c, err := s.cmap.At(v)
	if err != nil {
		// NaN has no colour
		return color.NRGBA{}
	}
	col := color.NRGBAModel.Convert(c).(color.NRGBA)
	col.A = 255
	return col
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
