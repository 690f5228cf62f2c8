package resource

import "github.com/yaklabco/gofluent/pkg/ftl/parser"

type options struct {
	mode parser.Mode
}

func defaultOptions() options {
	return options{mode: parser.ModeRuntime}
}

// Option configures New.
type Option func(*options)

// WithComments keeps comments and unparsable regions in the tree. Comments
// directly above a message or term are attached to it; other comments and
// junk become entries of their own.
func WithComments() Option {
	return func(o *options) {
		o.mode = parser.ModeFull
	}
}
