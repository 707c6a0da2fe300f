package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/linuxmatters/festmap/internal/config"
)

type helpTestCLI struct {
	Background string `arg:"" name:"background" help:"Festival map image" optional:""`
	Output     string `help:"Directory for the rendered maps" default:"output" short:"o" placeholder:"dir" group:"Output"`
	SurgeColor string `help:"Surge arrow colour as #RRGGBB" placeholder:"hex" group:"Rendering"`
	Animate    bool   `help:"Also write time-lapses" group:"Output"`
	Verbose    bool   `help:"Log each file" short:"v"`
	Secret     bool   `hidden:""`
}

func renderHelp(t *testing.T) string {
	t.Helper()

	var out bytes.Buffer
	var args helpTestCLI
	parser, err := kong.New(&args,
		kong.Name("festmap"),
		kong.Writers(&out, &out),
		kong.Exit(func(int) {}),
		kong.Help(StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	_, _ = parser.Parse([]string{"--help"})
	return out.String()
}

func TestStyledHelpPrinter_Sections(t *testing.T) {
	help := renderHelp(t)

	order := []string{"Usage:", "Arguments:", "Rendering flags:", "Output flags:", "General flags:"}
	last := -1
	for _, heading := range order {
		i := strings.Index(help, heading)
		if i < 0 {
			t.Fatalf("help has no %q section:\n%s", heading, help)
		}
		if i < last {
			t.Errorf("%q is out of order", heading)
		}
		last = i
	}

	section := func(heading string) string {
		start := strings.Index(help, heading)
		rest := help[start+len(heading):]
		for _, next := range order {
			if i := strings.Index(rest, next); i >= 0 {
				rest = rest[:i]
			}
		}
		return rest
	}

	testCases := []struct {
		section string
		want    []string
		notWant []string
	}{
		{section: "Rendering flags:", want: []string{"--surge-color=HEX"}, notWant: []string{"--output"}},
		{section: "Output flags:", want: []string{"-o, --output=DIR", "--animate", "(default: output)"}, notWant: []string{"--verbose"}},
		{section: "General flags:", want: []string{"-v, --verbose", "-h, --help"}, notWant: []string{"--secret", "--animate"}},
	}

	for _, tc := range testCases {
		t.Run(tc.section, func(t *testing.T) {
			body := section(tc.section)
			for _, w := range tc.want {
				if !strings.Contains(body, w) {
					t.Errorf("missing %q in:\n%s", w, body)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(body, w) {
					t.Errorf("unexpected %q in:\n%s", w, body)
				}
			}
		})
	}
}

func TestStyledHelpPrinter_UsageDefaults(t *testing.T) {
	help := renderHelp(t)

	for _, want := range []string{"festmap [<background>] [flags]", config.BackgroundImageAsset, config.OutputDir + "/"} {
		if !strings.Contains(help, want) {
			t.Errorf("usage does not mention %q:\n%s", want, help)
		}
	}
}
