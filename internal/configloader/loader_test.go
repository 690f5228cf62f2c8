package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofluent/pkg/config"
)

func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	// Stop the upward search at the temp dir.
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.SeverityError, result.Config.Severity)
	assert.Equal(t, []string{".ftl"}, result.Config.Extensions)
	assert.True(t, result.Config.SkipVendorEnabled())
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gofluent.yml"), `
severity: warning
skip_vendor: false
ignore:
  - "build/**"
`)

	// Discovered from a nested directory.
	nested := filepath.Join(tmpDir, "locales", "en")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), isolatedOptions(nested))
	require.NoError(t, err)

	assert.Equal(t, config.SeverityWarning, result.Config.Severity)
	assert.False(t, result.Config.SkipVendorEnabled())
	assert.Equal(t, []string{"build/**"}, result.Config.Ignore)
	assert.Equal(t, []string{".ftl"}, result.Config.Extensions)
	require.Len(t, result.LoadedFrom, 1)
	assert.Equal(t, filepath.Join(tmpDir, ".gofluent.yml"), result.LoadedFrom[0])
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gofluent.yml"), "severity: warning\ncomments: true\n")
	explicit := filepath.Join(tmpDir, "ci.yml")
	writeFile(t, explicit, "severity: info\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.SeverityInfo, result.Config.Severity)
	assert.True(t, result.Config.CommentsEnabled())
	assert.Equal(t, explicit, result.Paths.Explicit)
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gofluent.yml"), "comments: true\n")

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{
		Format:   config.FormatJSON,
		Jobs:     3,
		Strict:   true,
		Comments: config.Bool(false),
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.True(t, result.Config.Strict)
	assert.False(t, result.Config.CommentsEnabled())
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"bad severity", "severity: fatal\n"},
		{"bad extension", "extensions: [ftl]\n"},
		{"unknown key", "flavor: gfm\n"},
		{"malformed yaml", "severity: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
			path := filepath.Join(tmpDir, ".gofluent.yml")
			writeFile(t, path, tt.content)

			_, err := Load(context.Background(), isolatedOptions(tmpDir))
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, path, verr.FilePath)
		})
	}
}

func TestLoad_InvalidCLIFormat(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{Format: "xml"}

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolatedOptions(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"GOFLUENT_SEVERITY":    "warning",
		"GOFLUENT_JOBS":        "2",
		"GOFLUENT_EXTENSIONS":  ".ftl, .fluent ,",
		"GOFLUENT_SKIP_VENDOR": "false",
		"GOFLUENT_FORMAT":      "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := config.NewConfig()
	require.NoError(t, loadFromLookup(cfg, lookup))

	assert.Equal(t, config.SeverityWarning, cfg.Severity)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, []string{".ftl", ".fluent"}, cfg.Extensions)
	assert.False(t, cfg.SkipVendorEnabled())
	assert.Equal(t, config.FormatText, cfg.Format)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	t.Parallel()

	for key, value := range map[string]string{
		"GOFLUENT_JOBS":     "many",
		"GOFLUENT_COMMENTS": "maybe",
	} {
		lookup := func(k string) (string, bool) {
			if k == key {
				return value, true
			}
			return "", false
		}
		err := loadFromLookup(config.NewConfig(), lookup)
		require.Error(t, err, key)
		assert.Contains(t, err.Error(), key)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	project := &config.Config{Ignore: []string{"a/**"}, SkipVendor: config.Bool(false)}
	cli := &config.Config{Jobs: 4}

	merged := MergeAll(base, project, cli)
	assert.Equal(t, []string{"a/**"}, merged.Ignore)
	assert.False(t, merged.SkipVendorEnabled())
	assert.Equal(t, 4, merged.Jobs)
	assert.Equal(t, config.SeverityError, merged.Severity)

	// Inputs are not modified.
	assert.True(t, base.SkipVendorEnabled())
	assert.Nil(t, MergeAll())
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	require.Len(t, vars, len(envMappings))
	for i := 1; i < len(vars); i++ {
		assert.Less(t, vars[i-1].Name, vars[i].Name)
	}
	assert.Equal(t, "GOFLUENT_COMMENTS", vars[0].Name)
}
