package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gofluent/internal/configloader"
	"github.com/yaklabco/gofluent/internal/logging"
	"github.com/yaklabco/gofluent/internal/lsp"
)

func newLSPCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run the Fluent language server on stdio",
		Long: `Run a Language Server Protocol server on stdin and stdout.

The server publishes syntax and duplicate-identifier diagnostics for open
.ftl buffers and provides document symbols, hover, completion and
go-to-definition for message and term references. It is meant to be
started by an editor, not run by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.Default()

			if configloader.IsInteractive() {
				logger.Warn("the language server speaks JSON-RPC on stdin; it is normally started by an editor")
			}

			cfg, _, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			return lsp.New(cfg, info.Version, logger).RunStdio()
		},
	}

	return cmd
}
