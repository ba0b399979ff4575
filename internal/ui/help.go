package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpMarkdown lists the key bindings as a markdown table.
func helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Console keys\n\n")
	b.WriteString("Type at the end of the output to answer a prompt. Enter sends the line.\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, k := range keys.all() {
		h := k.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\nScripts: `input-N.txt` and `expected-output-N.txt` are looked up in the script directory and its `input/` and `output/` folders.\n")
	return b.String()
}

// renderHelp renders the help text for the given width.
func renderHelp(width int) string {
	md := helpMarkdown()
	// Subtract Glamour gutter from wrap width
	const glamourGutter = 2
	wrap := width - glamourGutter
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
