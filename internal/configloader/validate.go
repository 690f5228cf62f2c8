package configloader

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/yaklabco/gofluent/pkg/config"
)

// ValidationError is a problem with one configuration field. FilePath is
// empty when the value did not come from a file.
type ValidationError struct {
	Field    string
	Value    any
	Message  string
	FilePath string
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.FilePath != "" {
		msg = e.FilePath + ": " + msg
	}
	return msg
}

// ValidationResult collects the findings of Validate. Warnings never stop
// loading.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether no errors were found.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Message: message})
}

var outputFormats = []config.OutputFormat{
	config.FormatText, config.FormatJSON, config.FormatSARIF, config.FormatSummary,
}

// Validate checks cfg field by field. A nil cfg is valid.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	severities := []struct {
		field string
		sev   config.Severity
	}{
		{"severity", cfg.Severity},
		{"duplicate_severity", cfg.DuplicateSeverity},
	}
	for _, s := range severities {
		if s.sev != "" && !s.sev.IsValid() {
			result.fail(s.field, s.sev, "invalid severity %q; must be one of: error, warning, info", s.sev)
		}
	}

	if cfg.Format != "" && !slices.Contains(outputFormats, cfg.Format) {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json, sarif, summary", cfg.Format)
	}

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	switch {
	case cfg.Extensions == nil:
	case len(cfg.Extensions) == 0:
		result.warn("extensions", "no extensions configured; only explicitly named files will be checked")
	default:
		for i, ext := range cfg.Extensions {
			if len(ext) < 2 || ext[0] != '.' {
				result.fail(fmt.Sprintf("extensions[%d]", i), ext, "invalid extension %q; must start with a dot", ext)
			}
		}
	}

	for i, pattern := range cfg.Ignore {
		// "**" is handled by the runner; path.Match only needs to accept the rest.
		if _, err := path.Match(strings.ReplaceAll(pattern, "**", "*"), ""); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	return result
}

// ValidateWithFile is Validate with filePath recorded on every finding.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for _, findings := range [][]ValidationError{result.Errors, result.Warnings} {
		for i := range findings {
			findings[i].FilePath = filePath
		}
	}
	return result
}
