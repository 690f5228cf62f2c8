// Package config defines the configuration types for gofluent.
// These are plain data structures; loading and merging live in
// internal/configloader.
package config

import "strings"

// Severity is the severity attached to a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank orders severities from least (info) to most (error) severe.
// Unknown severities rank below info.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	return s.Rank() > 0
}

// ParseSeverity normalizes a severity name.
func ParseSeverity(s string) (Severity, bool) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if sev == "warn" {
		sev = SeverityWarning
	}
	return sev, sev.IsValid()
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
	FormatSARIF   OutputFormat = "sarif"
)

// Config is the root configuration structure.
type Config struct {
	// Severity is reported for syntax errors.
	Severity Severity `yaml:"severity,omitempty"`

	// DuplicateSeverity is reported for a message or term identifier that
	// is defined more than once in the same file.
	DuplicateSeverity Severity `yaml:"duplicate_severity,omitempty"`

	// Extensions lists the file extensions treated as Fluent sources.
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty"`

	// SkipVendor skips vendored and third-party directories.
	SkipVendor *bool `yaml:"skip_vendor,omitempty"`

	// Comments parses comments and keeps them attached to entries.
	Comments *bool `yaml:"comments,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Strict makes warnings fail the check.
	Strict bool `yaml:"-"`
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		Severity:          SeverityError,
		DuplicateSeverity: SeverityWarning,
		Extensions:        []string{".ftl"},
		SkipVendor:        Bool(true),
		Comments:          Bool(false),
		Format:            FormatText,
		Jobs:              0, // 0 means use GOMAXPROCS
	}
}

// SkipVendorEnabled reports whether vendored paths are skipped.
// It defaults to true when unset.
func (c *Config) SkipVendorEnabled() bool {
	return c.SkipVendor == nil || *c.SkipVendor
}

// CommentsEnabled reports whether comments are parsed.
func (c *Config) CommentsEnabled() bool {
	return c.Comments != nil && *c.Comments
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
