package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gofluent/internal/logging"
	"github.com/yaklabco/gofluent/internal/ui/pretty"
	"github.com/yaklabco/gofluent/pkg/catalog"
	"github.com/yaklabco/gofluent/pkg/fsutil"
	"github.com/yaklabco/gofluent/pkg/resource"
)

// ErrUnknownID is returned by show when the file defines no such message
// or term.
var ErrUnknownID = errors.New("unknown identifier")

// maxSuggestions limits the "did you mean" list.
const maxSuggestions = 3

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file> <id>",
		Short: "Print a message or term from a Fluent file",
		Long: `Print the source of one message or term, followed by its attributes,
the variables it uses and the messages and terms it references.

Terms are named with their leading dash.

Examples:
  gofluent show en-US/main.ftl welcome
  gofluent show en-US/brand.ftl -- -brand-name`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], args[1])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, path, id string) error {
	content, _, err := fsutil.ReadFile(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	res, err := resource.New(string(content), resource.WithComments())
	if err != nil {
		// Broken entries elsewhere in the file do not hide the one asked for.
		logging.Default().Debug("file has syntax errors",
			logging.FieldPath, path,
			logging.FieldError, err)
	}

	entry, ok := res.Lookup(id)
	if !ok {
		return unknownIDError(id, res.IDs())
	}

	var details catalog.Entry
	for _, e := range catalog.Build("", res).Entries {
		if e.ID == id {
			details = e
			break
		}
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), cmd.OutOrStdout()))
	return writeEntry(cmd.OutOrStdout(), styles, res.Text(entry.EntrySpan()), details)
}

func writeEntry(w io.Writer, styles *pretty.Styles, source string, e catalog.Entry) error {
	kind := "message"
	if e.Term {
		kind = "term"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", styles.Identifier.Render(e.ID),
		styles.Dim.Render(fmt.Sprintf("%s, line %d", kind, e.Line)))

	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "#") {
			b.WriteString(styles.Comment.Render(line))
		} else {
			b.WriteString(styles.SourceLine.Render(line))
		}
		b.WriteByte('\n')
	}

	if len(e.Attributes) > 0 || len(e.Variables) > 0 || len(e.References) > 0 {
		b.WriteByte('\n')
	}
	writeList(&b, styles, "Attributes", prefixed(".", e.Attributes), styles.Attribute)
	writeList(&b, styles, "Variables", e.Variables, styles.Identifier)
	writeList(&b, styles, "References", e.References, styles.Identifier)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, styles *pretty.Styles, label string, items []string, style lipgloss.Style) {
	if len(items) == 0 {
		return
	}
	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = style.Render(item)
	}
	fmt.Fprintf(b, "%s %s\n", styles.Bold.Render(fmt.Sprintf("%-11s", label+":")), strings.Join(rendered, ", "))
}

func prefixed(prefix string, items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = prefix + item
	}
	return out
}

// unknownIDError reports id as missing, suggesting the closest known
// identifiers.
func unknownIDError(id string, known []string) error {
	matches := fuzzy.Find(id, known)
	if len(matches) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}

	seen := make(map[string]bool)
	var suggestions []string
	for _, m := range matches {
		if seen[m.Str] {
			continue
		}
		seen[m.Str] = true
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return fmt.Errorf("%w: %q (did you mean %s?)", ErrUnknownID, id, strings.Join(suggestions, ", "))
}
