package cli

import "github.com/charmbracelet/lipgloss"

// Heat-map palette
// Shared by the CLI and the TUI so terminal output matches the rendered maps
var (
	// Density scale (dark to bright)
	HeatEmber  = lipgloss.Color("#8B0000") // Dark red
	HeatRed    = lipgloss.Color("#E03C20") // Hot red
	HeatOrange = lipgloss.Color("#FF8C00") // Deep orange
	HeatYellow = lipgloss.Color("#FFD700") // Bright yellow

	// Risk and surge
	RiskRed      = lipgloss.Color("#67000D") // High risk
	SurgeMagenta = lipgloss.Color("#FF00FF") // Surge flow arrow

	// Accent colours
	MapGray = lipgloss.Color("#9A8F7A") // Muted map tone for subtle text
)
