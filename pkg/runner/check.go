package runner

import (
	"fmt"
	"slices"

	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/ftl/ast"
	"github.com/yaklabco/gofluent/pkg/langdetect"
	"github.com/yaklabco/gofluent/pkg/resource"
)

// CheckSource parses content as a Fluent resource and returns its
// diagnostics. path is used for language detection and is copied into the
// outcome; nothing is read from disk.
func CheckSource(path string, content []byte, cfg *config.Config) FileOutcome {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	outcome := FileOutcome{
		Path:     path,
		Language: langdetect.Classify(path, content),
	}
	if outcome.Language == langdetect.FreeMarker {
		outcome.Skipped = true
		return outcome
	}

	var opts []resource.Option
	if cfg.CommentsEnabled() {
		opts = append(opts, resource.WithComments())
	}

	res, err := resource.New(string(content), opts...)
	outcome.Resource = res

	for _, perr := range resource.Diagnostics(err) {
		outcome.Diagnostics = append(outcome.Diagnostics,
			newDiagnostic(res, perr.Kind.String(), perr.Message(), severityOr(cfg.Severity, config.SeverityError), perr.Pos))
	}

	firstLine := make(map[string]int)
	for entry := range res.Entries() {
		var name ast.Span
		switch e := entry.(type) {
		case *ast.Message:
			outcome.Messages++
			name = e.ID.Name
		case *ast.Term:
			outcome.Terms++
			name = e.ID.Name
		default:
			continue
		}

		id := res.ID(entry)
		line := res.Position(name.Start).Line
		if first, seen := firstLine[id]; seen {
			msg := fmt.Sprintf("%q is already defined on line %d", id, first)
			outcome.Diagnostics = append(outcome.Diagnostics,
				newDiagnostic(res, KindDuplicateID, msg, severityOr(cfg.DuplicateSeverity, config.SeverityWarning), name))
			continue
		}
		firstLine[id] = line
	}

	slices.SortStableFunc(outcome.Diagnostics, func(a, b Diagnostic) int {
		return a.Span.Start - b.Span.Start
	})

	return outcome
}

func newDiagnostic(res *resource.Resource, kind, msg string, sev config.Severity, span ast.Span) Diagnostic {
	start := res.Position(span.Start)
	return Diagnostic{
		Kind:       kind,
		Message:    msg,
		Severity:   sev,
		Span:       span,
		Start:      start,
		End:        res.Position(span.End),
		SourceLine: res.Line(start.Line),
	}
}

func severityOr(sev, fallback config.Severity) config.Severity {
	if sev.IsValid() {
		return sev
	}
	return fallback
}
