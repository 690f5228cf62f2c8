package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofluent/internal/logging"
)

// fluentSyntax is the version of the Fluent syntax the parser implements.
const fluentSyntax = "1.0"

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the gofluent version, commit and build date, together with the
Fluent syntax version it parses and the Go toolchain and platform it was
built with.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			logging.NewWithWriter(cmd.OutOrStdout(), "info").Info("gofluent",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
				logging.FieldSyntax, fluentSyntax,
				logging.FieldGo, runtime.Version(),
				logging.FieldPlatform, runtime.GOOS+"/"+runtime.GOARCH,
			)
		},
	}
}
