package runner

import (
	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/ftl/ast"
	"github.com/yaklabco/gofluent/pkg/langdetect"
	"github.com/yaklabco/gofluent/pkg/resource"
)

// KindDuplicateID is the diagnostic kind reported for a message or term
// identifier that is defined more than once in the same file.
const KindDuplicateID = "duplicate-id"

// Diagnostic is a problem found in one file.
type Diagnostic struct {
	// Kind is a stable kebab-case code such as "expected-token" or
	// "duplicate-id".
	Kind string

	// Message is the human-readable description.
	Message string

	Severity config.Severity

	// Span is the byte range of the offending input.
	Span ast.Span

	// Start and End are the 1-based positions of Span.
	Start ast.Position
	End   ast.Position

	// SourceLine is the text of the line containing Start.
	SourceLine string
}

// FileOutcome is the result of checking a single file.
type FileOutcome struct {
	Path string

	// Language is the detected language of the file.
	Language langdetect.Language

	// Skipped is set for files that were recognized as something other
	// than Fluent and therefore not parsed.
	Skipped bool

	// Resource is the parsed file. It is nil when the file was skipped or
	// could not be read.
	Resource *resource.Resource

	// Diagnostics are ordered by position.
	Diagnostics []Diagnostic

	Messages int
	Terms    int

	// Error is set if the file could not be read.
	Error error
}

// Count returns the number of diagnostics at severity sev.
func (o *FileOutcome) Count(sev config.Severity) int {
	n := 0
	for _, d := range o.Diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int

	// FilesSkipped counts files recognized as another language.
	FilesSkipped int

	FilesErrored    int
	FilesWithIssues int

	Entries  int
	Messages int
	Terms    int

	DiagnosticsTotal      int
	DiagnosticsBySeverity map[config.Severity]int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any error-severity diagnostic was found, or
// any file could not be read.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity[config.SeverityError] > 0 || r.Stats.FilesErrored > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// FailsAt reports whether the run should fail when diagnostics of
// severity threshold or worse count as failures.
func (r *Result) FailsAt(threshold config.Severity) bool {
	if r == nil {
		return false
	}
	if r.Stats.FilesErrored > 0 {
		return true
	}
	for sev, n := range r.Stats.DiagnosticsBySeverity {
		if n > 0 && sev.Rank() >= threshold.Rank() {
			return true
		}
	}
	return false
}

func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[config.Severity]int),
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.Skipped:
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Resource != nil {
		r.Stats.Entries += outcome.Resource.Len()
	}
	r.Stats.Messages += outcome.Messages
	r.Stats.Terms += outcome.Terms

	if len(outcome.Diagnostics) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.DiagnosticsTotal += len(outcome.Diagnostics)
	for _, d := range outcome.Diagnostics {
		r.Stats.DiagnosticsBySeverity[d.Severity]++
	}
}
