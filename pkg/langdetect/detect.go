// Package langdetect tells Fluent translation lists apart from other files
// that share the .ftl extension, most notably FreeMarker templates, and
// recognizes vendored paths. It uses go-enry for both.
package langdetect

import (
	"bytes"
	"path/filepath"
	"regexp"

	"github.com/go-enry/go-enry/v2"
)

// Language is the result of classifying a file.
type Language string

const (
	Fluent     Language = "fluent"
	FreeMarker Language = "freemarker"
	Unknown    Language = "unknown"
)

//nolint:gochecknoglobals // Compiled once.
var (
	fluentEntry          = regexp.MustCompile(`(?m)^-?[a-zA-Z][a-zA-Z0-9_-]*[ ]*=`)
	freemarkerDirectives = [][]byte{[]byte("<#"), []byte("</#"), []byte("<@")}

	// "${" is also plain Fluent text, so it only counts without entries.
	freemarkerInterpolation = []byte("${")
)

// Classify reports whether content, read from path, is a Fluent source.
//
// Directive markers settle the question first. Otherwise a line that looks
// like a message or term definition means Fluent, an interpolation without
// any such line means FreeMarker, and go-enry decides the remaining cases. Files without any entries (empty, blank or only
// comments) are treated as Fluent when their extension is .ftl.
func Classify(path string, content []byte) Language {
	for _, marker := range freemarkerDirectives {
		if bytes.Contains(content, marker) {
			return FreeMarker
		}
	}

	if fluentEntry.Match(content) {
		return Fluent
	}

	if bytes.Contains(content, freemarkerInterpolation) {
		return FreeMarker
	}

	switch enry.GetLanguage(filepath.Base(path), content) {
	case "Fluent":
		return Fluent
	case "FreeMarker":
		return FreeMarker
	}

	if filepath.Ext(path) == ".ftl" && onlyCommentsOrBlank(content) {
		return Fluent
	}

	return Unknown
}

// IsVendored reports whether path lies in a vendored or third-party
// directory such as vendor/ or node_modules/.
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

func onlyCommentsOrBlank(content []byte) bool {
	for line := range bytes.Lines(content) {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) > 0 && trimmed[0] != '#' {
			return false
		}
	}
	return true
}
