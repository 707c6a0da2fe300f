package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Name and tagline shown in the banner, help and version output
const (
	AppName    = "festmap 🗺️"
	AppTagline = "Render crowd density and turbulence risk heat maps for every festival time block."
)

// Color palette
var (
	primaryColor   = HeatRed
	accentColor    = HeatOrange
	successColor   = lipgloss.Color("#00AA00") // Green
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = HeatYellow
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginTop(1).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// High-risk cell counts
	RiskStyle = lipgloss.NewStyle().
			Foreground(RiskRed)

	// Surge blocks are flagged in magenta, like the arrow on the map
	SurgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SurgeMagenta)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render(AppName))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// FprintWarning writes a warning message to w
func FprintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// FprintSuccess writes a success message to w
func FprintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", SuccessStyle.Render("✓"), message)
}

// FprintInfo writes a key-value line to w
func FprintInfo(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatDensity formats a crowd density value
func FormatDensity(d float64) string {
	return fmt.Sprintf("%.1f people/m²", d)
}

// FprintBox writes content to w in a styled box
func FprintBox(w io.Writer, content string) {
	fmt.Fprintln(w, BoxStyle.Render(content))
}

// BlockLine is one row of the run summary
type BlockLine struct {
	Label         string
	Phase         string
	PeakDensity   float64
	ElevatedCells int
	HighCells     int
	Surge         bool
}

// FormatBlockLine renders one block of the run summary
func FormatBlockLine(b BlockLine) string {
	var sb strings.Builder

	sb.WriteString(HighlightStyle.Render(fmt.Sprintf("%-3s", b.Label)))
	sb.WriteString(" ")
	sb.WriteString(KeyStyle.Render(fmt.Sprintf("%-40s", b.Phase)))
	sb.WriteString(ValueStyle.Render(fmt.Sprintf("peak %-16s", FormatDensity(b.PeakDensity))))
	sb.WriteString(KeyStyle.Render(fmt.Sprintf("  elevated %4d  ", b.ElevatedCells)))
	if b.HighCells > 0 {
		sb.WriteString(RiskStyle.Render(fmt.Sprintf("high %4d", b.HighCells)))
	} else {
		sb.WriteString(KeyStyle.Render(fmt.Sprintf("high %4d", b.HighCells)))
	}
	if b.Surge {
		sb.WriteString("  ")
		sb.WriteString(SurgeStyle.Render("surge"))
	}
	return sb.String()
}

// FprintRunSummary writes per-block statistics to w in a box
func FprintRunSummary(w io.Writer, blocks []BlockLine, files int, bytes int64, elapsed time.Duration) {
	var b strings.Builder

	b.WriteString(HeaderStyle.UnsetMargins().Render("Time blocks"))
	b.WriteString("\n")
	for _, line := range blocks {
		b.WriteString(FormatBlockLine(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Files:   "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d (%s)", files, FormatBytes(bytes))))
	b.WriteString("\n")
	b.WriteString(KeyStyle.Render("Elapsed: "))
	b.WriteString(ValueStyle.Render(FormatDuration(elapsed)))

	FprintBox(w, b.String())
}
