package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	testCases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatBytes(tc.bytes); got != tc.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tc.bytes, got, tc.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{12 * time.Second, "12.0s"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatDuration(tc.d); got != tc.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
			}
		})
	}
}

func TestFormatDensity(t *testing.T) {
	if got := FormatDensity(7); got != "7.0 people/m²" {
		t.Errorf("FormatDensity(7) = %q", got)
	}
}

func TestFormatBlockLine(t *testing.T) {
	testCases := []struct {
		name      string
		line      BlockLine
		wantSurge bool
	}{
		{
			name: "quiet block",
			line: BlockLine{Label: "T1", Phase: "Early entry", PeakDensity: 3.5, ElevatedCells: 80},
		},
		{
			name:      "surge block",
			line:      BlockLine{Label: "T4", Phase: "Circuit Grounds ends, surge to Kinetic", PeakDensity: 7, HighCells: 120, Surge: true},
			wantSurge: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatBlockLine(tc.line)
			for _, want := range []string{tc.line.Label, tc.line.Phase, FormatDensity(tc.line.PeakDensity)} {
				if !strings.Contains(got, want) {
					t.Errorf("line %q missing %q", got, want)
				}
			}
			// The phase text may itself mention a surge
			markers := strings.Count(got, "surge") - strings.Count(tc.line.Phase, "surge")
			if (markers == 1) != tc.wantSurge {
				t.Errorf("line %q: %d surge markers, want surge %v", got, markers, tc.wantSurge)
			}
		})
	}
}
