package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 issues (2 errors, 1 warning) in 2 files, 1 skipped".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var suffix string
	if stats.FilesSkipped > 0 {
		suffix = s.Dim.Render(fmt.Sprintf(", %d skipped", stats.FilesSkipped))
	}

	if stats.DiagnosticsTotal == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))) +
			suffix + "\n"
	}

	var severityParts []string
	if n := stats.DiagnosticsBySeverity[config.SeverityError]; n > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", n, plural(n, "error", "errors"))))
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityWarning]; n > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", n, plural(n, "warning", "warnings"))))
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityInfo]; n > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", n)))
	}

	line := fmt.Sprintf("%d %s", stats.DiagnosticsTotal, plural(stats.DiagnosticsTotal, "issue", "issues"))
	if len(severityParts) > 0 {
		line += " (" + strings.Join(severityParts, ", ") + ")"
	}
	line += fmt.Sprintf(" in %d %s", stats.FilesWithIssues, plural(stats.FilesWithIssues, wordFile, wordFiles))

	return line + suffix + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-19s%s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files checked", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)))
	if stats.FilesSkipped > 0 {
		row("Files skipped", s.Dim.Render(strconv.Itoa(stats.FilesSkipped)))
	}
	if stats.FilesWithIssues > 0 {
		row("Files with issues", s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)))
	}
	if stats.FilesErrored > 0 {
		row("Files unreadable", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}

	builder.WriteString("\n")
	row("Messages", s.SummaryValue.Render(strconv.Itoa(stats.Messages)))
	row("Terms", s.SummaryValue.Render(strconv.Itoa(stats.Terms)))

	builder.WriteString("\n")
	row("Total issues", s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)))
	if n := stats.DiagnosticsBySeverity[config.SeverityError]; n > 0 {
		row("  Errors", s.Error.Render(strconv.Itoa(n)))
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityWarning]; n > 0 {
		row("  Warnings", s.Warning.Render(strconv.Itoa(n)))
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityInfo]; n > 0 {
		row("  Info", s.Info.Render(strconv.Itoa(n)))
	}

	builder.WriteString("\n")

	switch {
	case stats.DiagnosticsBySeverity[config.SeverityError] > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Check failed with errors"))
	case stats.DiagnosticsBySeverity[config.SeverityWarning] > 0:
		builder.WriteString(s.Warning.Render("Check completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
