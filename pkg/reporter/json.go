package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gofluent/pkg/runner"
)

// jsonSchemaVersion is bumped on incompatible changes to the JSON output.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Language    string           `json:"language,omitempty"`
	Skipped     bool             `json:"skipped,omitempty"`
	Messages    int              `json:"messages"`
	Terms       int              `json:"terms"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     int    `json:"endLine"`
	EndColumn   int    `json:"endColumn"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesSkipped    int            `json:"filesSkipped"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	Messages        int            `json:"messages"`
	Terms           int            `json:"terms"`
	TotalIssues     int            `json:"totalIssues"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        r.opts.displayPath(file.Path),
			Language:    string(file.Language),
			Skipped:     file.Skipped,
			Messages:    file.Messages,
			Terms:       file.Terms,
			Diagnostics: make([]JSONDiagnostic, 0, len(file.Diagnostics)),
		}

		switch {
		case file.Error != nil:
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		case file.Skipped:
			output.Summary.FilesSkipped++
		default:
			output.Summary.FilesChecked++
		}

		for _, diag := range file.Diagnostics {
			fileResult.Diagnostics = append(fileResult.Diagnostics, JSONDiagnostic{
				Kind:        diag.Kind,
				Severity:    string(diag.Severity),
				Message:     diag.Message,
				StartLine:   diag.Start.Line,
				StartColumn: diag.Start.Column,
				EndLine:     diag.End.Line,
				EndColumn:   diag.End.Column,
				StartOffset: diag.Span.Start,
				EndOffset:   diag.Span.End,
			})
			output.Summary.TotalIssues++
			output.Summary.BySeverity[string(diag.Severity)]++
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}
		output.Summary.Messages += file.Messages
		output.Summary.Terms += file.Terms

		output.Files = append(output.Files, fileResult)
	}

	return output
}
