// Package main is the entry point for the gofluent CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/yaklabco/gofluent/internal/cli"
	"github.com/yaklabco/gofluent/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// ErrDiagnosticsFound only selects the exit code; the issues were
		// already reported.
		if errors.Is(err, cli.ErrDiagnosticsFound) {
			return cli.ExitCheckErrors
		}

		logging.Default().Error("command failed", logging.FieldError, err)

		switch {
		case errors.Is(err, cli.ErrConfig):
			return cli.ExitConfigError
		case errors.Is(err, context.Canceled):
			return cli.ExitInternalError
		default:
			return cli.ExitInvalidUsage
		}
	}

	return cli.ExitSuccess
}
