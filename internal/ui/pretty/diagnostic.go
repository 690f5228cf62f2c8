package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/runner"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
func (s *Styles) FormatDiagnostic(path string, diag *runner.Diagnostic, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		diag.Start.Line,
		diag.Start.Column,
	)

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.Kind.Render("("+diag.Kind+")"),
	)

	if showContext && diag.SourceLine != "" {
		builder.WriteString(s.FormatSourceContext(diag.SourceLine, diag.Start.Column))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret under the given
// 1-based byte column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const (
		indent   = "        "
		tabWidth = 4
	)

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		prefix := line[:min(column-1, len(line))]
		var pad strings.Builder
		for _, r := range prefix {
			if r == '\t' {
				// Render expands tabs to tabWidth spaces.
				pad.WriteString(strings.Repeat(" ", tabWidth))
				continue
			}
			pad.WriteString(strings.Repeat(" ", lipgloss.Width(string(r))))
		}
		builder.WriteString(indent + pad.String() + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case issueCount == 1:
		header += s.Dim.Render(" (1 issue)")
	case issueCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
