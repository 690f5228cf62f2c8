package cli

import (
	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/runner"
)

// Exit codes for gofluent.
const (
	// ExitSuccess indicates successful execution with no failing issues.
	ExitSuccess = 0

	// ExitCheckErrors indicates the check found error-severity issues, or
	// files that could not be read.
	ExitCheckErrors = 1

	// ExitCheckWarnings indicates the check found warnings in strict mode.
	ExitCheckWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitCheckErrors
	}

	if strict && result.FailsAt(config.SeverityWarning) {
		return ExitCheckWarnings
	}

	return ExitSuccess
}
