package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"gonum.org/v1/plot"

	"github.com/linuxmatters/festmap/internal/config"
	"github.com/linuxmatters/festmap/internal/field"
)

// Layout is the pixel geometry of a figure
type Layout struct {
	Canvas   image.Rectangle
	Plot     image.Rectangle
	ColorBar image.Rectangle
}

// NewLayout sizes the plot area to the grid's aspect ratio, with the colour
// bar to its right
func NewLayout(g field.Grid) Layout {
	plotHeight := config.PlotWidth * g.Rows / g.Cols
	area := image.Rect(config.PlotLeft, config.PlotTop, config.PlotLeft+config.PlotWidth, config.PlotTop+plotHeight)

	barLeft := area.Max.X + config.ColorBarGap
	bar := image.Rect(barLeft, area.Min.Y, barLeft+config.ColorBarWidth, area.Max.Y)

	return Layout{
		Canvas:   image.Rect(0, 0, config.CanvasWidth, config.CanvasHeight),
		Plot:     area,
		ColorBar: bar,
	}
}

// Arrow is a flow annotation in grid coordinates (x = column, y = row)
type Arrow struct {
	From  field.Cell
	To    field.Cell
	Label string
}

// Panel describes one figure: a masked field drawn over the map
type Panel struct {
	Title         string
	ColorBarLabel string
	Values        *field.Field
	Scale         *ColorScale
	Arrow         *Arrow
}

// Figure is a rendered canvas. Release it once saved.
type Figure struct {
	img *image.RGBA
}

var canvasPool = sync.Pool{
	New: func() interface{} {
		return image.NewRGBA(image.Rect(0, 0, config.CanvasWidth, config.CanvasHeight))
	},
}

// Image returns the figure's pixels
func (f *Figure) Image() *image.RGBA {
	return f.img
}

// Save encodes the figure as PNG, replacing any existing file
func (f *Figure) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := png.Encode(out, f.img); err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// Release returns the canvas to the pool
func (f *Figure) Release() {
	if f.img != nil {
		canvasPool.Put(f.img)
		f.img = nil
	}
}

// Renderer draws panels over a fixed background map
type Renderer struct {
	grid       field.Grid
	layout     Layout
	background image.Image
	fonts      *Fonts
	opacity    float64

	textColor   color.RGBA
	canvasColor color.RGBA
	surgeColor  color.RGBA

	columnTicks plot.Ticker
	rowTicks    plot.Ticker
	barTicks    plot.Ticker
}

// NewRenderer creates a renderer for the given grid. background is drawn
// stretched across the plot area of every figure.
func NewRenderer(g field.Grid, background image.Image, fonts *Fonts, surgeColor color.RGBA) *Renderer {
	tr, tg, tb := config.MustParseHexColor(config.TextColorHex)
	cr, cg, cb := config.MustParseHexColor(config.CanvasColorHex)

	return &Renderer{
		grid:        g,
		layout:      NewLayout(g),
		background:  background,
		fonts:       fonts,
		opacity:     config.OverlayOpacity,
		textColor:   color.RGBA{R: tr, G: tg, B: tb, A: 255},
		canvasColor: color.RGBA{R: cr, G: cg, B: cb, A: 255},
		surgeColor:  surgeColor,
		columnTicks: gridTicker(config.ColumnTickStep),
		rowTicks:    gridTicker(config.RowTickStep),
		barTicks:    plot.DefaultTicks{},
	}
}

// Layout returns the renderer's figure geometry
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render draws a panel onto a fresh canvas
func (r *Renderer) Render(p Panel) *Figure {
	img := canvasPool.Get().(*image.RGBA)
	draw.Draw(img, img.Bounds(), image.NewUniform(r.canvasColor), image.Point{}, draw.Src)

	lo, hi := p.Scale.Fit(p.Values)

	r.drawBackground(img)
	r.drawOverlay(img, p.Values, p.Scale)
	r.drawAxes(img)

	drawCenteredText(img, r.fonts.Title, p.Title, (r.layout.Plot.Min.X+r.layout.Plot.Max.X)/2, r.layout.Plot.Min.Y-16, r.textColor)

	r.drawColorBar(img, p.Scale, lo, hi, p.ColorBarLabel)

	if p.Arrow != nil {
		r.drawSurge(img, *p.Arrow)
	}

	return &Figure{img: img}
}

// dataToPixel maps grid coordinates (x = column, y = row, row 0 at the top)
// onto the plot area
func (r *Renderer) dataToPixel(x, y float64) point {
	area := r.layout.Plot
	return point{
		X: float64(area.Min.X) + x*float64(area.Dx())/float64(r.grid.Cols),
		Y: float64(area.Min.Y) + y*float64(area.Dy())/float64(r.grid.Rows),
	}
}

func (r *Renderer) drawBackground(img *image.RGBA) {
	if r.background == nil {
		return
	}
	draw.BiLinear.Scale(img, r.layout.Plot, r.background, r.background.Bounds(), draw.Src, nil)
}

// drawOverlay blends one translucent block per cell over the map. Missing
// cells stay fully transparent.
func (r *Renderer) drawOverlay(img *image.RGBA, values *field.Field, scale *ColorScale) {
	alpha := uint8(math.Round(r.opacity * 255))

	overlay := image.NewNRGBA(image.Rect(0, 0, r.grid.Cols, r.grid.Rows))
	for row := 0; row < r.grid.Rows; row++ {
		for col := 0; col < r.grid.Cols; col++ {
			if values.Missing(row, col) {
				continue
			}
			c := scale.At(values.At(row, col))
			c.A = alpha
			overlay.SetNRGBA(col, row, c)
		}
	}

	draw.NearestNeighbor.Scale(img, r.layout.Plot, overlay, overlay.Bounds(), draw.Over, nil)
}

// drawAxes draws the plot frame, ticks, tick labels and axis labels
func (r *Renderer) drawAxes(img *image.RGBA) {
	area := r.layout.Plot
	strokeRect(img, area, r.textColor)

	for _, t := range labelledTicks(r.columnTicks, 0, float64(r.grid.Cols)) {
		x := int(math.Round(r.dataToPixel(t.Value, 0).X))
		fillRect(img, image.Rect(x, area.Max.Y, x+1, area.Max.Y+config.TickLength), r.textColor)
		drawCenteredText(img, r.fonts.Tick, t.Label, x, area.Max.Y+config.TickLength+12, r.textColor)
	}

	for _, t := range labelledTicks(r.rowTicks, 0, float64(r.grid.Rows)) {
		y := int(math.Round(r.dataToPixel(0, t.Value).Y))
		fillRect(img, image.Rect(area.Min.X-config.TickLength, y, area.Min.X, y+1), r.textColor)
		drawRightAlignedText(img, r.fonts.Tick, t.Label, area.Min.X-config.TickLength-3, y+4, r.textColor)
	}

	drawCenteredText(img, r.fonts.Label, config.AxisLabelX, (area.Min.X+area.Max.X)/2, area.Max.Y+config.TickLength+32, r.textColor)
	drawVerticalText(img, r.fonts.Label, config.AxisLabelY, area.Min.X-44, (area.Min.Y+area.Max.Y)/2, r.textColor)
}

// drawColorBar draws the vertical legend: low values at the bottom
func (r *Renderer) drawColorBar(img *image.RGBA, scale *ColorScale, lo, hi float64, label string) {
	bar := r.layout.ColorBar
	height := float64(bar.Dy())

	for y := bar.Min.Y; y < bar.Max.Y; y++ {
		frac := (float64(bar.Max.Y-y) - 0.5) / height
		c := scale.At(lo + frac*(hi-lo))
		fillRect(img, image.Rect(bar.Min.X, y, bar.Max.X, y+1), c)
	}
	strokeRect(img, bar, r.textColor)

	labelRight := bar.Max.X
	for _, t := range labelledTicks(r.barTicks, lo, hi) {
		y := bar.Max.Y - int(math.Round((t.Value-lo)/(hi-lo)*height))
		if y >= bar.Max.Y {
			y = bar.Max.Y - 1
		}
		fillRect(img, image.Rect(bar.Max.X, y, bar.Max.X+config.TickLength, y+1), r.textColor)

		text := t.Label
		drawText(img, r.fonts.Tick, text, bar.Max.X+config.TickLength+3, y+4, r.textColor)
		if w, _ := measureText(r.fonts.Tick, text); bar.Max.X+config.TickLength+3+w > labelRight {
			labelRight = bar.Max.X + config.TickLength + 3 + w
		}
	}

	drawVerticalText(img, r.fonts.Label, label, labelRight+14, (bar.Min.Y+bar.Max.Y)/2, r.textColor)
}

// drawSurge draws the flow arrow and its legend entry in the plot's upper left
func (r *Renderer) drawSurge(img *image.RGBA, a Arrow) {
	area := r.layout.Plot
	shaft := config.SurgeShaftWidthRatio * float64(area.Dx())

	tail := r.dataToPixel(float64(a.From.Col), float64(a.From.Row))
	tip := r.dataToPixel(float64(a.To.Col), float64(a.To.Row))
	drawArrow(img, tail, tip, shaft, r.surgeColor)

	if a.Label == "" {
		return
	}

	textWidth, _ := measureText(r.fonts.Tick, a.Label)
	box := image.Rect(area.Min.X+6, area.Min.Y+6, area.Min.X+6+48+textWidth, area.Min.Y+6+24)
	fillRect(img, box, r.canvasColor)
	strokeRect(img, box, color.RGBA{R: 204, G: 204, B: 204, A: 255})

	midY := float64(box.Min.Y+box.Max.Y) / 2
	swatchTail := point{X: float64(box.Min.X + 6), Y: midY}
	swatchTip := point{X: float64(box.Min.X + 36), Y: midY}
	drawArrow(img, swatchTail, swatchTip, 4, r.surgeColor)

	drawText(img, r.fonts.Tick, a.Label, box.Min.X+42, box.Max.Y-8, r.textColor)
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect draws a one-pixel outline just inside rect
func strokeRect(img *image.RGBA, rect image.Rectangle, c color.Color) {
	fillRect(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1), c)
	fillRect(img, image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y), c)
	fillRect(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y), c)
	fillRect(img, image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
}
