package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/linuxmatters/festmap/internal/cli"
	"github.com/linuxmatters/festmap/internal/config"
	"github.com/linuxmatters/festmap/internal/pipeline"
	"github.com/linuxmatters/festmap/internal/renderer"
	"github.com/linuxmatters/festmap/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

const completionMessage = "Simulation complete. All images saved to"

type cliArgs struct {
	Background string `arg:"" name:"background" help:"Festival map image (JPEG, PNG, GIF, WebP, BMP or TIFF)" optional:""`
	Output     string `help:"Directory for the rendered maps" default:"output" short:"o" placeholder:"dir" group:"Output"`
	SurgeColor string `help:"Surge arrow colour as #RRGGBB" placeholder:"hex" group:"Rendering"`
	Animate    bool   `help:"Also write density.avi and risk.avi time-lapses" group:"Output"`
	Progress   bool   `help:"Show a live progress view while rendering" group:"Output"`
	NoPreview  bool   `help:"Disable the risk map preview in the progress view" group:"Output"`
	Summary    bool   `help:"Print per-block statistics when done" group:"Output"`
	Verbose    bool   `help:"Log each file and block as it is written" short:"v"`
	Version    bool   `help:"Show version information"`
}

var CLI cliArgs

func main() {
	kong.Parse(&CLI,
		kong.Name("festmap"),
		kong.Description(cli.AppTagline),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	if err := run(os.Stdout, CLI); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// run renders every map and reports to w. The completion line is written
// once, after the last file is on disk.
func run(w io.Writer, args cliArgs) error {
	cfg := &config.RuntimeConfig{
		BackgroundImagePath: args.Background,
		OutputDir:           args.Output,
		SurgeColor:          args.SurgeColor,
	}

	if args.SurgeColor != "" {
		if _, _, _, err := config.ParseHexColor(args.SurgeColor); err != nil {
			cli.FprintWarning(w, fmt.Sprintf("%v, using %s", err, config.SurgeColorHex))
		}
	}

	backgroundPath := cfg.GetBackgroundImagePath()
	if _, err := os.Stat(backgroundPath); os.IsNotExist(err) {
		return fmt.Errorf("background image does not exist: %s", backgroundPath)
	}

	log := newLogger(args.Verbose, args.Progress)

	opts := pipeline.DefaultOptions()
	grid := opts.Scenario.Grid

	background, err := renderer.LoadBackgroundImage(backgroundPath, grid.Cols, grid.Rows)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"path":   backgroundPath,
		"width":  grid.Cols,
		"height": grid.Rows,
	}).Debug("loaded background")

	r, g, b := cfg.GetSurgeColor()
	opts.Background = background
	opts.SurgeColor = color.RGBA{R: r, G: g, B: b, A: 255}
	opts.OutputDir = cfg.GetOutputDir()
	opts.Animate = args.Animate
	opts.Logger = log

	var result *pipeline.Result
	if args.Progress {
		result, err = runWithProgress(opts, args.NoPreview)
	} else {
		result, err = pipeline.Run(opts)
	}
	if err != nil {
		return err
	}

	if args.Summary {
		lines := make([]cli.BlockLine, 0, len(result.Blocks))
		for _, blk := range result.Blocks {
			lines = append(lines, cli.BlockLine{
				Label:         blk.Label,
				Phase:         blk.Phase,
				PeakDensity:   blk.PeakDensity,
				ElevatedCells: blk.ElevatedCells,
				HighCells:     blk.HighCells,
				Surge:         blk.Surge,
			})
		}
		cli.FprintInfo(w, "Background", backgroundPath)
		cli.FprintRunSummary(w, lines, len(result.Files), totalSize(result.Files), result.Elapsed)
	}

	cli.FprintSuccess(w, fmt.Sprintf("%s %s/ folder.", completionMessage, result.OutputDir))
	return nil
}

// totalSize sums the sizes of the written files
func totalSize(files []string) int64 {
	var n int64
	for _, f := range files {
		if info, err := os.Stat(f); err == nil {
			n += info.Size()
		}
	}
	return n
}

// newLogger writes diagnostics to stderr. The progress view owns the
// terminal, so only errors get through while it runs.
func newLogger(verbose, progress bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	switch {
	case progress:
		log.SetLevel(logrus.ErrorLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// runWithProgress renders in a goroutine while Bubbletea draws the progress view
func runWithProgress(opts pipeline.Options, noPreview bool) (*pipeline.Result, error) {
	model := ui.NewModel(len(opts.Scenario.Blocks), noPreview)
	p := tea.NewProgram(model)

	previewConfig := ui.DefaultPreviewConfig()
	opts.OnProgress = func(s pipeline.BlockSummary) {
		msg := ui.BlockProgress{
			Index:         s.Index,
			Total:         s.Total,
			Label:         s.Label,
			Phase:         s.Phase,
			PeakDensity:   s.PeakDensity,
			ElevatedCells: s.ElevatedCells,
			HighCells:     s.HighCells,
			Surge:         s.Surge,
			Files:         s.Files,
			Elapsed:       s.Elapsed,
		}
		// The figure is recycled after this call, so downsample now
		if !noPreview && s.Preview != nil {
			msg.Preview = ui.DownsampleFrame(s.Preview, previewConfig)
		}
		p.Send(msg)
	}

	// result is only read after the model has seen RenderComplete
	var result *pipeline.Result

	go func() {
		res, err := pipeline.Run(opts)
		if err != nil {
			p.Send(ui.RenderFailed{Err: err})
			return
		}
		result = res
		p.Send(ui.RenderComplete{
			OutputDir: result.OutputDir,
			Files:     len(result.Files),
			TotalTime: result.Elapsed,
		})
	}()

	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("running UI: %w", err)
	}

	if err := model.Err(); err != nil {
		return nil, err
	}
	if !model.Done() {
		return nil, fmt.Errorf("interrupted")
	}
	return result, nil
}
