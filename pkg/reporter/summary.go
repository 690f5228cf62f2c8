package reporter

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/gofluent/internal/ui/pretty"
	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/runner"
)

// Table layout for summary output. Both tables share one width.
const (
	tableWidth        = 90
	kindColWidth      = 44
	fileColWidth      = 60
	numColWidth       = 7
	warnColWidth      = 8
	maxKindNameLength = 42
	maxFilePathLength = 58
)

// padRight pads s to width. It must be applied before styling since ANSI
// sequences would count towards the width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// tally counts diagnostics for one row of a summary table.
type tally struct {
	name     string
	issues   int
	errors   int
	warnings int
}

func (t *tally) add(sev config.Severity) {
	t.issues++
	switch sev {
	case config.SeverityError:
		t.errors++
	case config.SeverityWarning:
		t.warnings++
	}
}

// sortTallies orders by issue count, most first, then by name.
func sortTallies(rows []*tally) {
	slices.SortFunc(rows, func(a, b *tally) int {
		if c := cmp.Compare(b.issues, a.issues); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
}

// SummaryReporter formats results as aggregated tables: one row per
// diagnostic kind and one row per file.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if !result.HasIssues() {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No issues found"))
		return 0, nil
	}

	byKind := make(map[string]*tally)
	var kinds, files []*tally

	for _, file := range result.Files {
		if len(file.Diagnostics) == 0 {
			continue
		}
		fileRow := &tally{name: r.opts.displayPath(file.Path)}
		files = append(files, fileRow)

		for _, diag := range file.Diagnostics {
			row, ok := byKind[diag.Kind]
			if !ok {
				row = &tally{name: diag.Kind}
				byKind[diag.Kind] = row
				kinds = append(kinds, row)
			}
			row.add(diag.Severity)
			fileRow.add(diag.Severity)
		}
	}

	sortTallies(kinds)
	sortTallies(files)

	r.renderTable("Kinds Summary", "Kind", kindColWidth, maxKindNameLength, kinds, false)
	fmt.Fprintln(r.bw)
	r.renderTable("Files Summary", "File", fileColWidth, maxFilePathLength, files, true)
	fmt.Fprintln(r.bw)
	r.renderTotals(result.Stats)

	return result.Stats.DiagnosticsTotal, nil
}

func (r *SummaryReporter) renderTable(title, header string, nameWidth, maxName int, rows []*tally, truncateLeft bool) {
	separator := r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth))

	fmt.Fprintln(r.bw, r.styles.Bold.Render(title))
	fmt.Fprintln(r.bw, separator)
	fmt.Fprintf(r.bw, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight(header, nameWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.bw, separator)

	for _, row := range rows {
		name := row.name
		if len(name) > maxName {
			if truncateLeft {
				name = "…" + name[len(name)-(maxName-1):]
			} else {
				name = name[:maxName] + "…"
			}
		}

		padded := padRight(name, nameWidth)
		switch {
		case row.errors > 0:
			padded = r.styles.TableErrorRow.Render(padded)
		case row.warnings > 0:
			padded = r.styles.TableWarnRow.Render(padded)
		}

		fmt.Fprintf(r.bw, "%s %s %s %s\n",
			padded,
			padLeft(strconv.Itoa(row.issues), numColWidth),
			padLeft(strconv.Itoa(row.errors), numColWidth),
			padLeft(strconv.Itoa(row.warnings), warnColWidth),
		)
	}
}

func (r *SummaryReporter) renderTotals(stats runner.Stats) {
	issueWord := "issues"
	if stats.DiagnosticsTotal == 1 {
		issueWord = "issue"
	}
	line := fmt.Sprintf("%d %s", stats.DiagnosticsTotal, issueWord)

	var severityParts []string
	if n := stats.DiagnosticsBySeverity[config.SeverityError]; n > 0 {
		severityParts = append(severityParts, r.styles.Error.Render(fmt.Sprintf("%d errors", n)))
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityWarning]; n > 0 {
		severityParts = append(severityParts, r.styles.Warning.Render(fmt.Sprintf("%d warnings", n)))
	}
	if len(severityParts) > 0 {
		line += " (" + strings.Join(severityParts, ", ") + ")"
	}

	fileWord := "files"
	if stats.FilesWithIssues == 1 {
		fileWord = "file"
	}
	line += fmt.Sprintf(" in %d %s", stats.FilesWithIssues, fileWord)

	fmt.Fprintln(r.bw, r.styles.Bold.Render("Total: ")+line)
}
