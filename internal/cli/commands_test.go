package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/yaklabco/gofluent/internal/cli"
	"github.com/yaklabco/gofluent/pkg/fsutil"
)

// execute runs the root command with args and an empty explicit config so
// the result does not depend on configuration found around the test.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("severity: error\n"), 0o644))

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgFile, "--color", "never"}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func writeFTL(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck_CleanTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFTL(t, dir, "en-US/main.ftl", "hello = Hello\n-brand = Fluent\n")
	writeFTL(t, dir, "templates/page.ftl", "<#if user>${user.name}</#if>\n")

	out, err := execute(t, "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found")
	assert.Contains(t, out, "1 skipped")
}

func TestCheck_PrintConfig(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "check", "--print-config", "--comments")
	require.NoError(t, err)
	assert.Contains(t, out, "severity: error")
	assert.Contains(t, out, "comments: true")
	assert.Contains(t, out, "- .ftl")
	assert.NotContains(t, out, "No issues found")
}

func TestCheck_SyntaxErrorFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFTL(t, dir, "main.ftl", "good = fine\nbad = }\n")

	out, err := execute(t, "check", "--no-context", path)
	require.ErrorIs(t, err, cli.ErrDiagnosticsFound)
	assert.Contains(t, out, ":2:7")
	assert.Contains(t, out, "unbalanced-closing-brace")
	assert.Contains(t, out, "1 error")
}

func TestCheck_WarningsFailOnlyWhenStrict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFTL(t, dir, "main.ftl", "a = one\na = two\n")

	out, err := execute(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "duplicate-id")

	_, err = execute(t, "check", "--strict", path)
	require.ErrorIs(t, err, cli.ErrDiagnosticsFound)
}

func TestCheck_JSONFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFTL(t, dir, "a.ftl", "a = A\n-t = T\n")
	writeFTL(t, dir, "b.ftl", "b = }\n")

	out, err := execute(t, "check", "--format", "json", dir)
	require.ErrorIs(t, err, cli.ErrDiagnosticsFound)
	require.True(t, gjson.Valid(out), out)

	assert.Equal(t, int64(2), gjson.Get(out, "summary.filesChecked").Int())
	assert.Equal(t, int64(1), gjson.Get(out, "summary.terms").Int())
	assert.Equal(t, int64(1), gjson.Get(out, "summary.bySeverity.error").Int())
	assert.Equal(t, "unbalanced-closing-brace", gjson.Get(out, "files.1.diagnostics.0.kind").String())
}

func TestCheck_IgnoreFlag(t *testing.T) {
	dir := t.TempDir()
	writeFTL(t, dir, "good.ftl", "a = A\n")
	writeFTL(t, dir, "broken/bad.ftl", "b = }\n")

	t.Chdir(dir)

	_, err := execute(t, "check", "--ignore", "broken/**")
	assert.NoError(t, err)
}

func TestCheck_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "check", "--format", "xml", t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, cli.ErrDiagnosticsFound)
	assert.ErrorIs(t, err, cli.ErrConfig)
}

func TestShow(t *testing.T) {
	t.Parallel()

	path := writeFTL(t, t.TempDir(), "main.ftl", `-brand = Fluent

# Shown on the start page.
welcome = Welcome to { -brand }, { $user }!
    .title = Welcome
`)

	out, err := execute(t, "show", path, "welcome")
	require.NoError(t, err)

	assert.Contains(t, out, "welcome  message, line 4")
	assert.Contains(t, out, "# Shown on the start page.")
	assert.Contains(t, out, "welcome = Welcome to { -brand }, { $user }!")
	assert.Contains(t, out, "Attributes: .title")
	assert.Contains(t, out, "Variables:  $user")
	assert.Contains(t, out, "References: -brand")
}

func TestShow_Term(t *testing.T) {
	t.Parallel()

	path := writeFTL(t, t.TempDir(), "brand.ftl", "-brand = Fluent\n")

	out, err := execute(t, "show", path, "--", "-brand")
	require.NoError(t, err)
	assert.Contains(t, out, "-brand  term, line 1")
}

func TestShow_UnknownIDSuggests(t *testing.T) {
	t.Parallel()

	path := writeFTL(t, t.TempDir(), "main.ftl", "welcome = Hi\nfarewell = Bye\n")

	_, err := execute(t, "show", path, "welcom")
	require.ErrorIs(t, err, cli.ErrUnknownID)
	assert.ErrorContains(t, err, "did you mean welcome?")

	_, err = execute(t, "show", path, "zzz")
	require.ErrorIs(t, err, cli.ErrUnknownID)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestShow_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "show", filepath.Join(t.TempDir(), "nope.ftl"), "x")
	require.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestDoc_MarkdownToStdout(t *testing.T) {
	t.Parallel()

	path := writeFTL(t, t.TempDir(), "main.ftl", "hello = Hello { $name }\n-brand = B\n")

	out, err := execute(t, "doc", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# main\n")
	assert.Contains(t, out, "1 messages, 1 terms.")
	assert.Contains(t, out, "## Messages")
}

func TestDoc_HTMLToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFTL(t, dir, "main.ftl", "hello = Hello\n")
	output := filepath.Join(dir, "catalog.html")

	out, err := execute(t, "doc", "--html", "--title", "Main strings", "-o", output, path)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<h1>Main strings</h1>")
	assert.Contains(t, string(content), "<table>")
}

func TestInit(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), ".gofluent.yml")

	_, err := execute(t, "init", "--output", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "duplicate_severity: warning")

	_, err = execute(t, "init", "--output", output)
	require.ErrorIs(t, err, fsutil.ErrExists)

	_, err = execute(t, "init", "--output", output, "--force")
	require.NoError(t, err)
}
