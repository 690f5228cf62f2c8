// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI palette indices used by the color styles.
const (
	colorRed     = lipgloss.Color("9")
	colorGreen   = lipgloss.Color("10")
	colorYellow  = lipgloss.Color("11")
	colorBlue    = lipgloss.Color("12")
	colorMagenta = lipgloss.Color("13")
	colorCyan    = lipgloss.Color("14")
	colorGray    = lipgloss.Color("8")
	colorSilver  = lipgloss.Color("7")
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Diagnostic components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Kind       lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Messages, terms and their parts, as printed by "show".
	Identifier lipgloss.Style
	Attribute  lipgloss.Style
	Comment    lipgloss.Style

	// Summary block and tables
	SummaryTitle   lipgloss.Style
	SummaryValue   lipgloss.Style
	Success        lipgloss.Style
	Failure        lipgloss.Style
	TableHeader    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableWarnRow   lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode. Without color
// every style renders its input unchanged.
func NewStyles(colorEnabled bool) *Styles {
	plain := lipgloss.NewStyle()
	fg := func(c lipgloss.Color) lipgloss.Style {
		if !colorEnabled {
			return plain
		}
		return plain.Foreground(c)
	}
	bold := func(s lipgloss.Style) lipgloss.Style {
		if !colorEnabled {
			return plain
		}
		return s.Bold(true)
	}

	return &Styles{
		Error:   bold(fg(colorRed)),
		Warning: bold(fg(colorYellow)),
		Info:    bold(fg(colorBlue)),

		FilePath:   bold(plain),
		Location:   fg(colorGray),
		Kind:       fg(colorGray),
		Message:    plain,
		SourceLine: fg(colorSilver),
		Caret:      fg(colorRed),

		Identifier: bold(fg(colorCyan)),
		Attribute:  fg(colorMagenta),
		Comment:    fg(colorGray),

		SummaryTitle:   bold(plain),
		SummaryValue:   plain,
		Success:        bold(fg(colorGreen)),
		Failure:        bold(fg(colorRed)),
		TableHeader:    bold(fg(colorSilver)),
		TableErrorRow:  fg(colorRed),
		TableWarnRow:   fg(colorYellow),
		TableSeparator: fg(colorGray),

		Dim:  fg(colorGray),
		Bold: bold(plain),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
