package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofluent/internal/logging"
	"github.com/yaklabco/gofluent/pkg/catalog"
	"github.com/yaklabco/gofluent/pkg/fsutil"
	"github.com/yaklabco/gofluent/pkg/resource"
)

type docFlags struct {
	html   bool
	output string
	title  string
}

func newDocCommand() *cobra.Command {
	flags := &docFlags{}

	cmd := &cobra.Command{
		Use:   "doc <file>",
		Short: "Generate a catalog of the messages in a Fluent file",
		Long: `Generate a Markdown or HTML catalog listing every message and term of a
Fluent file with its value, attributes, variables, references and comment.

Examples:
  gofluent doc en-US/main.ftl                    # Markdown to stdout
  gofluent doc en-US/main.ftl --html -o main.html
  gofluent doc en-US/main.ftl --title "Main strings"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoc(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.html, "html", false, "render HTML instead of Markdown")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&flags.title, "title", "", "catalog title (default: the file name)")

	return cmd
}

func runDoc(cmd *cobra.Command, path string, flags *docFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("doc: %w", err)
	}

	res, err := resource.New(string(content), resource.WithComments())
	if err != nil {
		logger.Warn("skipping entries with syntax errors",
			logging.FieldPath, path,
			logging.FieldDiagnosticsTotal, len(resource.Diagnostics(err)))
	}

	title := flags.title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	cat := catalog.Build(title, res)

	var buf bytes.Buffer
	if flags.html {
		err = cat.HTML(&buf)
	} else {
		err = cat.Markdown(&buf)
	}
	if err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}

	if flags.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	changed, err := fsutil.WriteAtomicIfChanged(ctx, flags.output, buf.Bytes(), 0)
	if err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	logger.Info("catalog written",
		logging.FieldOutput, flags.output,
		logging.FieldEntries, len(cat.Entries),
		"changed", changed)

	return nil
}
