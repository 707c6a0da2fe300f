package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/linuxmatters/festmap/internal/cli"
	"github.com/linuxmatters/festmap/internal/config"
)

// BlockProgress reports one rendered time block
type BlockProgress struct {
	Index int
	Total int

	Label         string
	Phase         string
	PeakDensity   float64
	ElevatedCells int
	HighCells     int
	Surge         bool
	Files         []string
	Elapsed       time.Duration

	// Preview is the downsampled risk map, nil when previews are off
	Preview [][]color.RGBA
}

// RenderComplete signals that every file has been written
type RenderComplete struct {
	OutputDir string
	Files     int
	TotalTime time.Duration
}

// RenderFailed signals that the run stopped early
type RenderFailed struct {
	Err error
}

// progressQuitMsg is sent when it's time to quit after showing completion
type progressQuitMsg struct{}

// Model is the Bubbletea model for a render run
type Model struct {
	progressBar progress.Model
	summaryBar  progress.Model

	blocks   []BlockProgress
	total    int
	complete *RenderComplete
	err      error

	startTime time.Time

	// UI state
	width           int
	noPreview       bool
	cachedPreview   string
	cachedBlock     int
	completionDelay time.Duration
}

// NewModel creates the progress model for total time blocks
func NewModel(total int, noPreview bool) *Model {
	p := progress.New(
		progress.WithGradient(string(cli.HeatEmber), string(cli.HeatYellow)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	// Per-block peak density bars
	summaryBar := progress.New(
		progress.WithGradient(string(cli.HeatEmber), string(cli.HeatYellow)),
		progress.WithWidth(20),
		progress.WithoutPercentage(),
	)

	return &Model{
		progressBar:     p,
		summaryBar:      summaryBar,
		total:           total,
		startTime:       time.Now(),
		cachedBlock:     -1,
		completionDelay: time.Second,
		noPreview:       noPreview,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progressBar.Width = min(msg.Width-30, 50)
		return m, nil

	case BlockProgress:
		m.blocks = append(m.blocks, msg)
		if msg.Total > 0 {
			m.total = msg.Total
		}
		return m, nil

	case RenderComplete:
		m.complete = &msg
		return m, tea.Tick(m.completionDelay, func(time.Time) tea.Msg {
			return progressQuitMsg{}
		})

	case RenderFailed:
		m.err = msg.Err
		return m, tea.Quit

	case progressQuitMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.complete != nil || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// Done reports whether the run finished successfully
func (m *Model) Done() bool {
	return m.complete != nil
}

// Err returns the error that stopped the run, if any
func (m *Model) Err() error {
	return m.err
}

// View renders the UI
func (m *Model) View() string {
	var s strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.HeatYellow).
		Render(cli.AppName)
	s.WriteString(title)
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(cli.HeatOrange).Render("Rendering density & risk maps"))
	s.WriteString("\n\n")

	m.renderProgress(&s)

	if len(m.blocks) > 0 {
		s.WriteString("\n\n")
		m.renderBlocks(&s)
	}

	if !m.noPreview {
		m.renderPreview(&s)
	}

	border := cli.HeatRed
	if m.complete != nil {
		border = cli.HeatOrange
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Render(s.String())
}

func (m *Model) fraction() float64 {
	if m.complete != nil {
		return 1
	}
	if m.total == 0 {
		return 0
	}
	return float64(len(m.blocks)) / float64(m.total)
}

func (m *Model) renderProgress(s *strings.Builder) {
	percent := m.fraction()

	s.WriteString("Progress: ")
	s.WriteString(m.progressBar.ViewAs(percent))
	s.WriteString(fmt.Sprintf("  %d%%", int(percent*100)))
	s.WriteString("\n\n")

	elapsed := time.Since(m.startTime)
	status := fmt.Sprintf("Block %d of %d", len(m.blocks), m.total)
	if m.complete != nil {
		elapsed = m.complete.TotalTime
		status = fmt.Sprintf("Complete: %d files in %s/", m.complete.Files, m.complete.OutputDir)
	}

	s.WriteString(lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("Time: %s  │  %s", cli.FormatDuration(elapsed), status)))
}

// renderBlocks lists finished blocks with a bar for their peak density
func (m *Model) renderBlocks(s *strings.Builder) {
	labelStyle := lipgloss.NewStyle().Faint(true)
	valueStyle := lipgloss.NewStyle()

	for i, b := range m.blocks {
		ratio := b.PeakDensity / config.DensityCeiling
		s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(cli.HeatYellow).Render(fmt.Sprintf("%-3s", b.Label)))
		s.WriteString(" ")
		s.WriteString(m.summaryBar.ViewAs(ratio))
		s.WriteString(" ")
		s.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", b.PeakDensity)))
		s.WriteString("  ")
		s.WriteString(labelStyle.Render(fmt.Sprintf("elevated %3d  high %3d  %s", b.ElevatedCells, b.HighCells, cli.FormatDuration(b.Elapsed))))
		if b.Surge {
			s.WriteString("  ")
			s.WriteString(cli.SurgeStyle.Render("surge"))
		}
		if i < len(m.blocks)-1 {
			s.WriteString("\n")
		}
	}
}

func (m *Model) renderPreview(s *strings.Builder) {
	if len(m.blocks) == 0 {
		return
	}

	last := len(m.blocks) - 1
	if last != m.cachedBlock && m.blocks[last].Preview != nil {
		m.cachedPreview = RenderPreview(fmt.Sprintf("Risk %s", m.blocks[last].Label), m.blocks[last].Preview)
		m.cachedBlock = last
	}

	if m.cachedPreview != "" {
		s.WriteString("\n\n")
		s.WriteString(m.cachedPreview)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
