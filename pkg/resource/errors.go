package resource

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gofluent/pkg/ftl/parser"
)

// ParseErrors is returned by New when the source contains syntax errors.
// It is never empty and is ordered by position.
type ParseErrors []*parser.Error

// Error implements error.
func (e ParseErrors) Error() string {
	switch len(e) {
	case 0:
		return "no syntax errors"
	case 1:
		return "syntax error: " + e[0].Message()
	default:
		return fmt.Sprintf("%d syntax errors, first: %s", len(e), e[0].Message())
	}
}

// Unwrap returns the individual syntax errors.
func (e ParseErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// Diagnostics returns the syntax errors carried by err, or nil if err does
// not wrap a ParseErrors.
func Diagnostics(err error) []*parser.Error {
	var perr ParseErrors
	if errors.As(err, &perr) {
		return perr
	}
	return nil
}
