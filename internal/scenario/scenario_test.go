package scenario

import (
	"testing"

	"github.com/linuxmatters/festmap/internal/field"
)

func TestDefault_BlockOrder(t *testing.T) {
	s := Default()

	want := []string{"T1", "T2", "T3", "T4", "T5", "T6"}
	if len(s.Blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(s.Blocks), len(want))
	}
	for i, b := range s.Blocks {
		if b.Label != want[i] {
			t.Errorf("block %d = %s, want %s", i, b.Label, want[i])
		}
		if len(b.Density) != len(s.Zones) {
			t.Errorf("%s has %d zone densities, want %d", b.Label, len(b.Density), len(s.Zones))
		}
	}
}

func TestDefault_ZoneOrder(t *testing.T) {
	s := Default()

	want := []Zone{Kinetic, Circuit, Cosmic, BassPod, Water}
	for i, z := range s.Zones {
		if z.Zone != want[i] {
			t.Errorf("zone %d = %s, want %s", i, z.Zone, want[i])
		}
	}
}

func TestDefault_OnlyT4Surges(t *testing.T) {
	s := Default()

	var surging []string
	for _, b := range s.Blocks {
		if b.Surge {
			surging = append(surging, b.Label)
		}
	}
	if len(surging) != 1 || surging[0] != "T4" {
		t.Errorf("surging blocks = %v, want [T4]", surging)
	}
	if !s.Grid.Contains(s.Surge.From) || !s.Grid.Contains(s.Surge.To) {
		t.Errorf("surge vector %+v leaves the grid", s.Surge)
	}
}

// TestDensity_MatchesZoneTable checks every cell of every block against the
// zone that covers it, scanning zones in table order so the last one wins.
func TestDensity_MatchesZoneTable(t *testing.T) {
	s := Default()

	for _, b := range s.Blocks {
		d := s.Density(b)
		for row := 0; row < s.Grid.Rows; row++ {
			for col := 0; col < s.Grid.Cols; col++ {
				want := 0.0
				for _, z := range s.Zones {
					if z.Rect.Contains(field.Cell{Row: row, Col: col}) {
						want = b.Density[z.Zone]
					}
				}
				if got := d.At(row, col); got != want {
					t.Fatalf("%s (%d, %d) = %v, want %v", b.Label, row, col, got, want)
				}
			}
		}
	}
}

// TestDensity_BassPodOverridesCircuit pins the one overlap in the table:
// rows 18-19, cols 35-37 belong to both circuit and basspod.
func TestDensity_BassPodOverridesCircuit(t *testing.T) {
	s := Default()
	t3 := s.Blocks[2]
	d := s.Density(t3)

	if got := d.At(18, 36); got != t3.Density[BassPod] {
		t.Errorf("overlap cell = %v, want basspod %v", got, t3.Density[BassPod])
	}
	if got := d.At(21, 36); got != t3.Density[Circuit] {
		t.Errorf("circuit-only cell = %v, want %v", got, t3.Density[Circuit])
	}
}

func TestDensity_T4KineticReachesCeiling(t *testing.T) {
	s := Default()
	d := s.Density(s.Blocks[3]).Clamp(7.0)

	if got := d.At(5, 30); got != 7.0 {
		t.Errorf("T4 kinetic = %v, want 7.0", got)
	}
}
