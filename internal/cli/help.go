package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/linuxmatters/festmap/internal/config"
)

// Custom help styles - heat-map theme
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(HeatYellow).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(HeatOrange).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(HeatOrange).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(HeatYellow).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(HeatRed).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(MapGray).
				Italic(true)
)

// Flag sections in display order. Flags without a group tag land in General.
var helpSections = []string{"Rendering", "Output", "General"}

// helpRow is one aligned line of a help section
type helpRow struct {
	name       string
	help       string
	defaultVal string
}

// StyledHelpPrinter creates a custom help printer with Lipgloss styling.
// Flags are listed under their kong group, with the default background and
// output folder spelled out under the usage line.
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render(AppName))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render(AppTagline))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %s [<background>] [flags]\n", ctx.Model.Name)
		sb.WriteString("  ")
		sb.WriteString(helpDefaultStyle.Render(fmt.Sprintf(
			"Reads %s when no background is given and writes maps to %s/",
			config.BackgroundImageAsset, config.OutputDir)))
		sb.WriteString("\n")

		writeHelpSection(&sb, "Arguments:", helpArgStyle, positionalRows(ctx))

		grouped := flagRows(ctx)
		for _, title := range helpSections {
			writeHelpSection(&sb, title+" flags:", helpFlagStyle, grouped[title])
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	})
}

// writeHelpSection pads every name to the widest in the section
func writeHelpSection(sb *strings.Builder, title string, nameStyle lipgloss.Style, rows []helpRow) {
	if len(rows) == 0 {
		return
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r.name))
	}

	sb.WriteString("\n")
	sb.WriteString(helpSectionStyle.Render(title))
	sb.WriteString("\n")
	for _, r := range rows {
		sb.WriteString("  ")
		sb.WriteString(nameStyle.Render(r.name))
		sb.WriteString(strings.Repeat(" ", width-len(r.name)+2))
		sb.WriteString(r.help)
		if r.defaultVal != "" {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(default: " + r.defaultVal + ")"))
		}
		sb.WriteString("\n")
	}
}

func positionalRows(ctx *kong.Context) []helpRow {
	var rows []helpRow
	for _, arg := range ctx.Model.Node.Positional {
		rows = append(rows, helpRow{name: arg.Summary(), help: arg.Help})
	}
	return rows
}

// flagRows sorts the model's flags into sections keyed by group title
func flagRows(ctx *kong.Context) map[string][]helpRow {
	sections := make(map[string][]helpRow)

	for _, f := range ctx.Model.Node.Flags {
		if f.Hidden || f.Name == "help" {
			continue
		}

		name := "--" + f.Name
		if f.Short != 0 {
			name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		}
		if !f.IsBool() && f.PlaceHolder != "" {
			name += "=" + strings.ToUpper(f.PlaceHolder)
		}

		row := helpRow{name: name, help: f.Help}
		if f.HasDefault && !f.IsBool() {
			row.defaultVal = f.Default
		}

		section := "General"
		if f.Group != nil && f.Group.Title != "" {
			section = f.Group.Title
		}
		sections[section] = append(sections[section], row)
	}

	sections["General"] = append(sections["General"], helpRow{
		name: "-h, --help",
		help: "Show context-sensitive help.",
	})
	return sections
}
