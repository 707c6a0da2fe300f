package config

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Grid settings
const (
	GridHeight = 30
	GridWidth  = 50
)

// Crowd model settings
const (
	DensityCeiling       = 7.0 // people/m², values above are clamped
	ElevatedRiskDensity  = 3.0 // density strictly above this is elevated risk
	HighRiskDensity      = 5.5 // density strictly above this is high risk
	OverlayOpacity       = 0.6 // opacity of density/risk overlay on the map
	SurgeShaftWidthRatio = 0.02
)

// Canvas layout in pixels
const (
	CanvasWidth  = 640
	CanvasHeight = 380

	PlotLeft  = 72
	PlotTop   = 48
	PlotWidth = 440 // plot height follows the grid aspect ratio

	ColorBarGap   = 18
	ColorBarWidth = 16

	TitleFontSize = 16
	LabelFontSize = 12
	TickFontSize  = 10
	TickLength    = 4
)

// Appearance
// Surge arrow is magenta (#FF00FF), text is black on a white canvas.
const (
	SurgeColorHex  = "#FF00FF"
	TextColorHex   = "#000000"
	CanvasColorHex = "#FFFFFF"

	// Monochrome red scale endpoints
	RiskLowColorHex  = "#FFF5F0"
	RiskHighColorHex = "#67000D"
)

// Labels
const (
	AxisLabelX       = "East-West"
	AxisLabelY       = "North-South"
	DensityBarLabel  = "Density (people/m²)"
	RiskBarLabel     = "Risk Level"
	SurgeLegendLabel = "Surge Flow"
)

// Paths
const (
	BackgroundImageAsset = "assets/festival-map.jpeg"
	OutputDir            = "output"
)

// Time-lapse settings
const (
	AnimationFPS         = 1
	AnimationJPEGQuality = 90
)

// RuntimeConfig holds user overrides. Empty fields fall back to the defaults above.
type RuntimeConfig struct {
	BackgroundImagePath string
	OutputDir           string
	SurgeColor          string // hex, e.g. "#FF00FF"
}

// GetBackgroundImagePath returns the background override or the default asset path
func (c *RuntimeConfig) GetBackgroundImagePath() string {
	if c.BackgroundImagePath == "" {
		return BackgroundImageAsset
	}
	return c.BackgroundImagePath
}

// GetOutputDir returns the output directory override or the default
func (c *RuntimeConfig) GetOutputDir() string {
	if c.OutputDir == "" {
		return OutputDir
	}
	return c.OutputDir
}

// GetSurgeColor returns the surge arrow colour. An unparsable override
// falls back to the default.
func (c *RuntimeConfig) GetSurgeColor() (uint8, uint8, uint8) {
	if c.SurgeColor != "" {
		if r, g, b, err := ParseHexColor(c.SurgeColor); err == nil {
			return r, g, b
		}
	}
	r, g, b, _ := ParseHexColor(SurgeColorHex)
	return r, g, b
}

// ParseHexColor parses an RRGGBB colour with an optional leading '#'.
func ParseHexColor(s string) (uint8, uint8, uint8, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return b[0], b[1], b[2], nil
}

// MustParseHexColor is ParseHexColor for compile-time constants
func MustParseHexColor(s string) (uint8, uint8, uint8) {
	r, g, b, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return r, g, b
}

// Axis tick spacing in grid cells
const (
	ColumnTickStep = 10
	RowTickStep    = 5
)
