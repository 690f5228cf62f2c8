// Package runner checks many Fluent files concurrently.
package runner

import "github.com/yaklabco/gofluent/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// to match ExcludeGlobs. If empty, the process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions, with leading dot, that are
	// considered Fluent sources. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are patterns for files or directories to skip, relative
	// to WorkingDir. "**" matches any number of path segments.
	ExcludeGlobs []string

	// SkipVendor skips vendored directories such as vendor/ and node_modules/.
	SkipVendor bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration for this run. Nil means
	// config.NewConfig().
	Config *config.Config
}

// OptionsFromConfig builds Options for paths using the discovery settings
// of cfg.
func OptionsFromConfig(cfg *config.Config, workDir string, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		SkipVendor:   cfg.SkipVendorEnabled(),
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}
}

// DefaultExtensions returns the default set of Fluent file extensions.
func DefaultExtensions() []string {
	return []string{".ftl"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}
