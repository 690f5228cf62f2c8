package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofluent/internal/configloader"
	"github.com/yaklabco/gofluent/internal/logging"
	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/reporter"
	"github.com/yaklabco/gofluent/pkg/runner"
)

// ErrDiagnosticsFound is returned when a check finds failing issues. It
// only signals the exit code; the issues have already been reported.
var ErrDiagnosticsFound = errors.New("diagnostics found")

type checkFlags struct {
	format      string
	ignore      []string
	comments    bool
	noContext   bool
	compact     bool
	profile     string
	profilePath string
	printConfig bool
}

func newCheckCommand(info BuildInfo) *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Fluent files for syntax errors",
		Long:  checkLongDescription + envHelp(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags, info)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Check Fluent files for syntax errors and duplicate identifiers.

By default, checks all .ftl files in the current directory and its
subdirectories. Hidden and vendored directories are skipped, as are .ftl
files that turn out to be FreeMarker templates.

Examples:
  gofluent check                     # Check current directory
  gofluent check locales/            # Check one directory
  gofluent check en-US/main.ftl      # Check a single file
  gofluent check --format json       # Machine-readable output for CI
  gofluent check --format sarif      # Code scanning upload
  gofluent check --strict            # Fail on warnings too
  gofluent check --profile cpu       # Write a CPU profile
  gofluent check --print-config      # Show the effective configuration`

// envHelp lists the environment overrides for the check help text.
func envHelp() string {
	var b strings.Builder
	b.WriteString("\n\nEnvironment:\n")
	for _, v := range configloader.ListEnvVars() {
		fmt.Fprintf(&b, "  %-28s %s\n", v.Name, v.Description)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags, info BuildInfo) error {
	logger := logging.Default()

	// Only flags the user actually set override lower-precedence sources.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("comments") {
		cfg.Comments = config.Bool(flags.comments)
	}

	finalCfg, workDir, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	if flags.printConfig {
		data, err := finalCfg.ToYAML()
		if err != nil {
			return fmt.Errorf("print config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	prof, err := startProfile(flags.profile, flags.profilePath)
	if err != nil {
		return err
	}
	defer prof.Stop()

	runOpts := runner.OptionsFromConfig(finalCfg, workDir, args)

	logger.Debug("starting check",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldComments, finalCfg.CommentsEnabled(),
		logging.FieldProfile, flags.profile,
	)

	start := time.Now()
	result, err := runner.New(logger).Run(cmd.Context(), runOpts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	logger.Debug("check finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
		logging.FieldDuration, time.Since(start),
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		Version:     info.Version,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(cmd.Context(), result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, finalCfg.Strict) != ExitSuccess {
		return ErrDiagnosticsFound
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&cfg.Strict, "strict", false, "treat warnings as failures for the exit code")
	cmd.Flags().BoolVar(&flags.comments, "comments", false, "keep comments when parsing")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify json and sarif output")
	cmd.Flags().BoolVar(&flags.printConfig, "print-config", false, "print the effective configuration as YAML and exit")

	// Profiling flags.
	cmd.Flags().StringVar(&flags.profile, "profile", "",
		"write a runtime profile: cpu, mem, allocs, block, mutex, goroutine, trace")
	cmd.Flags().StringVar(&flags.profilePath, "profile-path", "", "directory for profile output (default: a temp dir)")
}
