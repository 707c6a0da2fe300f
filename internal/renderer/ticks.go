package renderer

import (
	"strconv"

	"gonum.org/v1/plot"
)

// gridTicker marks every step cells along a grid axis, starting at 0
func gridTicker(step int) plot.Ticker {
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		var ticks []plot.Tick
		for v := 0; float64(v) <= max; v += step {
			if float64(v) < min {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: float64(v), Label: strconv.Itoa(v)})
		}
		return ticks
	})
}

// labelledTicks returns the major ticks of t that fall inside [lo, hi].
// Minor ticks have no label and are not drawn.
func labelledTicks(t plot.Ticker, lo, hi float64) []plot.Tick {
	var out []plot.Tick
	for _, tick := range t.Ticks(lo, hi) {
		if tick.Label == "" || tick.Value < lo || tick.Value > hi {
			continue
		}
		out = append(out, tick)
	}
	return out
}
