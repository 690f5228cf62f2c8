package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofluent/internal/logging"
	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/fsutil"
)

// defaultConfigFile is the project configuration file created by init.
const defaultConfigFile = ".gofluent.yml"

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gofluent configuration file",
		Long: `Create a new .gofluent.yml configuration file in the current directory
with the default settings documented.

Examples:
  gofluent init                      Create .gofluent.yml
  gofluent init --output ci.yml      Write to a custom file path
  gofluent init --force              Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()

	if flags.force {
		if err := fsutil.WriteAtomic(ctx, flags.output, config.Template(), fsutil.DefaultFileMode); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	} else if err := fsutil.WriteNew(ctx, flags.output, config.Template(), fsutil.DefaultFileMode); err != nil {
		if errors.Is(err, fsutil.ErrExists) {
			return fmt.Errorf("%q already exists; use --force to overwrite: %w", flags.output, err)
		}
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'gofluent check' to check the Fluent files below this directory")

	return nil
}
