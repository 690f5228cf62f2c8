// Package cli provides the Cobra command structure for gofluent.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofluent/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gofluent command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gofluent",
		Short: "Check, inspect and document Fluent localization files",
		Long: `gofluent parses Project Fluent (.ftl) localization files.

It reports syntax errors and duplicate identifiers across whole trees of
translations, prints individual messages, generates catalogs of the
messages a file defines, and serves diagnostics to editors through the
Language Server Protocol. FreeMarker templates that share the .ftl
extension are recognized and skipped.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand(info))
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newDocCommand())
	rootCmd.AddCommand(newLSPCommand(info))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
