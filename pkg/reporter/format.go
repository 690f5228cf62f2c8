package reporter

import (
	"fmt"
	"slices"
	"strings"
)

// Format names a reporter output. The empty Format selects text.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatSARIF   Format = "sarif"
	FormatSummary Format = "summary"
)

// Formats lists the known formats in the order they are documented.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatSARIF, FormatSummary}
}

// ParseFormat maps a --format value to a Format.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	if f := Format(name); f.IsValid() {
		return f, nil
	}

	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unknown format %q; valid formats: %s", name, strings.Join(names, ", "))
}

func (f Format) String() string { return string(f) }

// IsValid reports whether f is one of Formats.
func (f Format) IsValid() bool {
	return slices.Contains(Formats(), f)
}
