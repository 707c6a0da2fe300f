// Package scenario holds the static festival tables: zone rectangles, the six
// time blocks with their per-zone densities, and the surge vector.
package scenario

import (
	"github.com/linuxmatters/festmap/internal/config"
	"github.com/linuxmatters/festmap/internal/field"
)

// Zone names a stage area on the festival map
type Zone string

const (
	Cosmic  Zone = "cosmic"
	Circuit Zone = "circuit"
	Kinetic Zone = "kinetic"
	BassPod Zone = "basspod"
	Water   Zone = "water"
)

// ZoneRegion places a zone on the grid
type ZoneRegion struct {
	Zone Zone
	Rect field.Rect
}

// TimeBlock is one labelled phase of the event
type TimeBlock struct {
	Label   string
	Phase   string
	Density map[Zone]float64
	Surge   bool
}

// SurgeVector is the crowd flow drawn on the surge block's risk map
type SurgeVector struct {
	From field.Cell
	To   field.Cell
}

// Scenario is the complete, immutable input to a render run.
// Zones are applied in slice order, so a later zone wins where rectangles overlap.
type Scenario struct {
	Name   string
	Grid   field.Grid
	Zones  []ZoneRegion
	Blocks []TimeBlock
	Surge  SurgeVector
}

// Default returns the festival tables
func Default() Scenario {
	return Scenario{
		Name: "EDC",
		Grid: field.Grid{Rows: config.GridHeight, Cols: config.GridWidth},
		Zones: []ZoneRegion{
			{Zone: Kinetic, Rect: field.Rect{Row0: 2, Row1: 10, Col0: 25, Col1: 45}},
			{Zone: Circuit, Rect: field.Rect{Row0: 18, Row1: 28, Col0: 35, Col1: 49}},
			{Zone: Cosmic, Rect: field.Rect{Row0: 5, Row1: 12, Col0: 0, Col1: 15}},
			{Zone: BassPod, Rect: field.Rect{Row0: 12, Row1: 20, Col0: 30, Col1: 38}},
			{Zone: Water, Rect: field.Rect{Row0: 10, Row1: 14, Col0: 18, Col1: 22}},
		},
		Blocks: []TimeBlock{
			{
				Label: "T1", Phase: "Early entry",
				Density: map[Zone]float64{Cosmic: 3.5, Circuit: 2.0, Kinetic: 1.5, BassPod: 1.0, Water: 2.5},
			},
			{
				Label: "T2", Phase: "Main crowd building",
				Density: map[Zone]float64{Cosmic: 4.5, Circuit: 4.0, Kinetic: 3.5, BassPod: 2.5, Water: 3.0},
			},
			{
				Label: "T3", Phase: "Peak density",
				Density: map[Zone]float64{Cosmic: 5.0, Circuit: 5.5, Kinetic: 6.0, BassPod: 4.0, Water: 4.5},
			},
			{
				Label: "T4", Phase: "Circuit Grounds ends, surge to Kinetic",
				Density: map[Zone]float64{Cosmic: 3.0, Circuit: 2.0, Kinetic: 7.0, BassPod: 3.0, Water: 5.0},
				Surge:   true,
			},
			{
				Label: "T5", Phase: "Late night, fatigue",
				Density: map[Zone]float64{Cosmic: 1.5, Circuit: 1.0, Kinetic: 4.0, BassPod: 2.0, Water: 3.0},
			},
			{
				Label: "T6", Phase: "Closing time, exit buildup",
				Density: map[Zone]float64{Cosmic: 0.5, Circuit: 0.3, Kinetic: 2.5, BassPod: 1.0, Water: 2.0},
			},
		},
		Surge: SurgeVector{
			From: field.Cell{Row: 23, Col: 42},
			To:   field.Cell{Row: 6, Col: 35},
		},
	}
}

// Assignments returns the block's zone densities in zone-table order
func (s Scenario) Assignments(b TimeBlock) []field.Assignment {
	out := make([]field.Assignment, 0, len(s.Zones))
	for _, z := range s.Zones {
		out = append(out, field.Assignment{Rect: z.Rect, Value: b.Density[z.Zone]})
	}
	return out
}

// Density paints the block's unclamped density field
func (s Scenario) Density(b TimeBlock) *field.Field {
	return field.Paint(s.Grid, s.Assignments(b))
}
