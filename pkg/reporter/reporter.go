// Package reporter writes the results of a check run in several formats.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gofluent/pkg/runner"
)

// Reporter writes a check result. Report returns the number of diagnostics
// it wrote.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) (int, error)
}

var constructors = map[Format]func(Options) Reporter{
	FormatText:    func(o Options) Reporter { return NewTextReporter(o) },
	FormatJSON:    func(o Options) Reporter { return NewJSONReporter(o) },
	FormatSARIF:   func(o Options) Reporter { return NewSARIFReporter(o) },
	FormatSummary: func(o Options) Reporter { return NewSummaryReporter(o) },
}

// New returns the Reporter for opts.Format, writing to opts.Writer or, when
// that is nil, to stdout.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}

	newReporter, ok := constructors[opts.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
	return newReporter(opts), nil
}
