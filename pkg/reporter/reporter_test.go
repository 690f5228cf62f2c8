package reporter_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/reporter"
	"github.com/yaklabco/gofluent/pkg/runner"
)

// sampleResult checks three in-memory sources: one clean, one with a
// syntax error and a duplicate, and one FreeMarker template.
func sampleResult() *runner.Result {
	clean := runner.CheckSource("/work/en/clean.ftl", []byte("a = A\n-brand = B\n"), nil)
	broken := runner.CheckSource("/work/en/broken.ftl", []byte("dup = one\nbad = }\ndup = two\n"), nil)
	skipped := runner.CheckSource("/work/en/page.ftl", []byte("<#if x>${x}</#if>"), nil)
	unreadable := runner.FileOutcome{Path: "/work/en/gone.ftl", Error: errors.New("permission denied")}

	return &runner.Result{
		Files: []runner.FileOutcome{broken, clean, unreadable, skipped},
		Stats: runner.Stats{
			FilesDiscovered:  4,
			FilesProcessed:   2,
			FilesSkipped:     1,
			FilesErrored:     1,
			FilesWithIssues:  1,
			Entries:          4,
			Messages:         3,
			Terms:            1,
			DiagnosticsTotal: 2,
			DiagnosticsBySeverity: map[config.Severity]int{
				config.SeverityError:   1,
				config.SeverityWarning: 1,
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "sarif", input: "sarif", want: reporter.FormatSARIF},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}

	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	for _, format := range []reporter.Format{"", reporter.FormatText, reporter.FormatJSON, reporter.FormatSARIF, reporter.FormatSummary} {
		rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: format})
		require.NoError(t, err)
		assert.NotNil(t, rep)
	}

	_, err := reporter.New(reporter.Options{Format: "table"})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowContext: true,
		ShowSummary: true,
		WorkingDir:  "/work",
	})

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := buf.String()
	assert.Contains(t, out, "en/broken.ftl (2 issues)")
	assert.Contains(t, out, "en/broken.ftl:2:7  error")
	assert.Contains(t, out, "(unbalanced-closing-brace)")
	assert.Contains(t, out, "en/broken.ftl:3:1  warning")
	assert.Contains(t, out, `"dup" is already defined on line 1`)
	assert.Contains(t, out, "        bad = }\n              ^\n")
	assert.Contains(t, out, "en/gone.ftl: error: permission denied")
	assert.NotContains(t, out, "clean.ftl")
	assert.NotContains(t, out, "page.ftl")
	assert.True(t, strings.HasSuffix(out, "2 issues (1 error, 1 warning) in 1 file, 1 skipped\n"))
}

func TestTextReporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	n, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "No files to check.\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: "/work"})

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := buf.String()
	require.True(t, gjson.Valid(out))

	assert.Equal(t, "1.0.0", gjson.Get(out, "version").String())
	assert.Equal(t, int64(4), gjson.Get(out, "files.#").Int())

	broken := gjson.Get(out, `files.#(path=="en/broken.ftl")`)
	require.True(t, broken.Exists())
	assert.Equal(t, "fluent", broken.Get("language").String())
	assert.Equal(t, int64(2), broken.Get("messages").Int())
	assert.Equal(t, "unbalanced-closing-brace", broken.Get("diagnostics.0.kind").String())
	assert.Equal(t, int64(2), broken.Get("diagnostics.0.startLine").Int())
	assert.Equal(t, int64(7), broken.Get("diagnostics.0.startColumn").Int())
	assert.Equal(t, int64(16), broken.Get("diagnostics.0.startOffset").Int())
	assert.Equal(t, "duplicate-id", broken.Get("diagnostics.1.kind").String())
	assert.Equal(t, "warning", broken.Get("diagnostics.1.severity").String())

	assert.True(t, gjson.Get(out, `files.#(path=="en/page.ftl").skipped`).Bool())
	assert.Equal(t, "permission denied", gjson.Get(out, `files.#(path=="en/gone.ftl").error`).String())
	assert.Equal(t, int64(0), gjson.Get(out, `files.#(path=="en/clean.ftl").diagnostics.#`).Int())

	summary := gjson.Get(out, "summary")
	assert.Equal(t, int64(2), summary.Get("filesChecked").Int())
	assert.Equal(t, int64(1), summary.Get("filesSkipped").Int())
	assert.Equal(t, int64(1), summary.Get("filesErrored").Int())
	assert.Equal(t, int64(1), summary.Get("filesWithIssues").Int())
	assert.Equal(t, int64(3), summary.Get("messages").Int())
	assert.Equal(t, int64(1), summary.Get("terms").Int())
	assert.Equal(t, int64(1), summary.Get("bySeverity.error").Int())
	assert.Equal(t, int64(1), summary.Get("bySeverity.warning").Int())
}

func TestJSONReporter_CompactNil(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	n, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t,
		`{"version":"1.0.0","files":[],"summary":{"filesChecked":0,"filesSkipped":0,"filesWithIssues":0,"filesErrored":0,"messages":0,"terms":0,"totalIssues":0,"bySeverity":{}}}`+"\n",
		buf.String())
}

func TestSARIFReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewSARIFReporter(reporter.Options{Writer: &buf, WorkingDir: "/work", Version: "1.2.3"})

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := buf.String()
	require.True(t, gjson.Valid(out))

	assert.Equal(t, "2.1.0", gjson.Get(out, "version").String())
	driver := gjson.Get(out, "runs.0.tool.driver")
	assert.Equal(t, "gofluent", driver.Get("name").String())
	assert.Equal(t, "1.2.3", driver.Get("version").String())
	assert.Equal(t, []any{"unbalanced-closing-brace", "duplicate-id"}, driver.Get("rules.#.id").Value())

	results := gjson.Get(out, "runs.0.results")
	assert.Equal(t, int64(2), results.Get("#").Int())
	assert.Equal(t, "error", results.Get("0.level").String())
	assert.Equal(t, "warning", results.Get("1.level").String())
	assert.Equal(t, int64(1), results.Get("1.ruleIndex").Int())

	region := results.Get("1.locations.0.physicalLocation")
	assert.Equal(t, "en/broken.ftl", region.Get("artifactLocation.uri").String())
	assert.Equal(t, int64(3), region.Get("region.startLine").Int())
	assert.Equal(t, int64(3), region.Get("region.byteLength").Int())
}

func TestSummaryReporter(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatSummary, Color: "never", WorkingDir: "/work"})
	require.NoError(t, err)

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := buf.String()
	assert.Contains(t, out, "Kinds Summary")
	assert.Contains(t, out, "Files Summary")
	assert.Contains(t, out, "duplicate-id")
	assert.Contains(t, out, "en/broken.ftl")
	assert.Contains(t, out, "Total: 2 issues (1 errors, 1 warnings) in 1 file")
}

func TestSummaryReporter_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewSummaryReporter(reporter.Options{Writer: &buf, Color: "never"})

	_, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, "No issues found\n", buf.String())
}
