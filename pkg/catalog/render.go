package catalog

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown writes the catalog as a GitHub-flavored Markdown document with
// one table for messages and one for terms.
func (c *Catalog) Markdown(w io.Writer) error {
	var buf bytes.Buffer

	title := c.Title
	if title == "" {
		title = "Catalog"
	}
	fmt.Fprintf(&buf, "# %s\n\n", escapeText(title))

	messages, terms := c.Messages(), c.Terms()
	fmt.Fprintf(&buf, "%d messages, %d terms.\n", len(messages), len(terms))

	writeTable(&buf, "Messages", messages)
	writeTable(&buf, "Terms", terms)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// HTML renders the Markdown form of the catalog to HTML.
func (c *Catalog) HTML(w io.Writer) error {
	var src bytes.Buffer
	if err := c.Markdown(&src); err != nil {
		return err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert(src.Bytes(), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func writeTable(buf *bytes.Buffer, heading string, entries []Entry) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(buf, "\n## %s\n\n", heading)
	buf.WriteString("| ID | Line | Value | Attributes | Variables | References | Comment |\n")
	buf.WriteString("|----|-----:|-------|------------|-----------|------------|---------|\n")

	for _, e := range entries {
		fmt.Fprintf(buf, "| %s | %d | %s | %s | %s | %s | %s |\n",
			code(e.ID),
			e.Line,
			escapeText(e.Value),
			codeList(e.Attributes, "."),
			codeList(e.Variables, ""),
			codeList(e.References, ""),
			escapeText(e.Comment),
		)
	}
}

func code(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "'") + "`"
}

func codeList(items []string, prefix string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = code(prefix + item)
	}
	return strings.Join(parts, " ")
}

//nolint:gochecknoglobals // Read-only replacer.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"<", "&lt;",
	">", "&gt;",
)

// escapeText makes s safe to place in a Markdown table cell.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
