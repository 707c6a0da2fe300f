// Package pipeline renders the density and risk maps for every time block of
// a scenario and writes them to disk.
package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linuxmatters/festmap/internal/config"
	"github.com/linuxmatters/festmap/internal/field"
	"github.com/linuxmatters/festmap/internal/renderer"
	"github.com/linuxmatters/festmap/internal/scenario"
)

// Options configures a render run
type Options struct {
	Scenario   scenario.Scenario
	Thresholds field.Thresholds
	Ceiling    float64

	// Background is stretched under every figure. It is normally the map
	// resampled to one pixel per grid cell.
	Background image.Image
	SurgeColor color.RGBA

	OutputDir string
	Animate   bool

	Logger     logrus.FieldLogger
	OnProgress func(BlockSummary)
}

// DefaultOptions returns the festival scenario with the standard thresholds.
// Background and OutputDir still need to be set.
func DefaultOptions() Options {
	r, g, b := config.MustParseHexColor(config.SurgeColorHex)
	return Options{
		Scenario: scenario.Default(),
		Thresholds: field.Thresholds{
			Elevated: config.ElevatedRiskDensity,
			High:     config.HighRiskDensity,
		},
		Ceiling:    config.DensityCeiling,
		SurgeColor: color.RGBA{R: r, G: g, B: b, A: 255},
		OutputDir:  config.OutputDir,
	}
}

// BlockSummary reports what was drawn for one time block
type BlockSummary struct {
	Index int
	Total int

	Label         string
	Phase         string
	PeakDensity   float64 // inside the venue, after clamping
	ElevatedCells int
	HighCells     int
	Surge         bool
	Files         []string

	// Preview is the last figure drawn for the block. It is only valid
	// during the OnProgress call.
	Preview *image.RGBA
	Elapsed time.Duration
}

// Result summarises a completed run
type Result struct {
	OutputDir string
	Files     []string
	Blocks    []BlockSummary
	Elapsed   time.Duration
}

// DensityFileName is the density map's file name for a block label
func DensityFileName(label string) string {
	return fmt.Sprintf("density_%s.png", label)
}

// RiskFileName is the risk map's file name for a block label
func RiskFileName(label string) string {
	return fmt.Sprintf("risk_%s.png", label)
}

// Run renders every block in order. It stops at the first failure; files
// already written are left in place.
func Run(opts Options) (*Result, error) {
	start := time.Now()

	log := opts.Logger
	if log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = quiet
	}

	sc := opts.Scenario
	if len(sc.Blocks) == 0 {
		return nil, fmt.Errorf("scenario %q has no time blocks", sc.Name)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	fonts, err := renderer.LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("loading fonts: %w", err)
	}
	defer fonts.Close()

	red, err := renderer.RedScale()
	if err != nil {
		return nil, err
	}
	heat := renderer.HeatScale()

	rend := renderer.NewRenderer(sc.Grid, opts.Background, fonts, opts.SurgeColor)
	mask := field.NewEllipseMask(sc.Grid)

	log.WithFields(logrus.Fields{
		"scenario":    sc.Name,
		"blocks":      len(sc.Blocks),
		"grid":        fmt.Sprintf("%dx%d", sc.Grid.Cols, sc.Grid.Rows),
		"venue_cells": mask.Count(),
		"output":      opts.OutputDir,
	}).Debug("starting render")

	var anim *animation
	if opts.Animate {
		anim, err = newAnimation(opts.OutputDir, rend.Layout().Canvas)
		if err != nil {
			return nil, err
		}
		defer anim.abort()
	}

	result := &Result{OutputDir: opts.OutputDir}

	for i, block := range sc.Blocks {
		blockStart := time.Now()

		density := sc.Density(block).Clamp(opts.Ceiling)
		risk := field.Risk(density, opts.Thresholds).Masked(mask)
		density = density.Masked(mask)

		summary := BlockSummary{
			Index: i,
			Total: len(sc.Blocks),
			Label: block.Label,
			Phase: block.Phase,
			Surge: block.Surge,
			ElevatedCells: risk.Count(func(v float64) bool {
				return v == field.RiskElevated
			}),
			HighCells: risk.Count(func(v float64) bool {
				return v == field.RiskHigh
			}),
		}
		if _, hi, ok := density.Range(); ok {
			summary.PeakDensity = hi
		}

		densityFig := rend.Render(renderer.Panel{
			Title:         fmt.Sprintf("%s Density Map – %s", sc.Name, block.Label),
			ColorBarLabel: config.DensityBarLabel,
			Values:        density,
			Scale:         heat,
		})
		path, err := save(densityFig, opts.OutputDir, DensityFileName(block.Label), anim.addDensity)
		densityFig.Release()
		if err != nil {
			return nil, err
		}
		summary.Files = append(summary.Files, path)
		log.WithFields(logrus.Fields{"block": block.Label, "file": path}).Debug("wrote density map")

		riskPanel := renderer.Panel{
			Title:         fmt.Sprintf("Turbulence Risk – %s", block.Label),
			ColorBarLabel: config.RiskBarLabel,
			Values:        risk,
			Scale:         red,
		}
		if block.Surge {
			riskPanel.Arrow = &renderer.Arrow{
				From:  sc.Surge.From,
				To:    sc.Surge.To,
				Label: config.SurgeLegendLabel,
			}
		}
		riskFig := rend.Render(riskPanel)
		path, err = save(riskFig, opts.OutputDir, RiskFileName(block.Label), anim.addRisk)
		if err != nil {
			riskFig.Release()
			return nil, err
		}
		summary.Files = append(summary.Files, path)
		log.WithFields(logrus.Fields{"block": block.Label, "file": path, "surge": block.Surge}).Debug("wrote risk map")

		summary.Elapsed = time.Since(blockStart)
		log.WithFields(logrus.Fields{
			"block":          block.Label,
			"phase":          block.Phase,
			"peak_density":   summary.PeakDensity,
			"elevated_cells": summary.ElevatedCells,
			"high_cells":     summary.HighCells,
		}).Info("block rendered")

		if opts.OnProgress != nil {
			summary.Preview = riskFig.Image()
			opts.OnProgress(summary)
			summary.Preview = nil
		}
		riskFig.Release()

		result.Files = append(result.Files, summary.Files...)
		result.Blocks = append(result.Blocks, summary)
	}

	if anim != nil {
		files, err := anim.close()
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, files...)
		log.WithField("files", files).Debug("wrote time-lapse")
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// save writes the figure as PNG and hands it to the time-lapse, if any
func save(fig *renderer.Figure, dir, name string, addFrame func(image.Image) error) (string, error) {
	path := filepath.Join(dir, name)
	if err := fig.Save(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	if err := addFrame(fig.Image()); err != nil {
		return "", err
	}
	return path, nil
}
