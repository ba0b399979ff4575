package ui

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/lipgloss"
)

// renderDiff shows how the program output differs from the expected output.
func renderDiff(expected, actual string) string {
	if expected == actual {
		return lipgloss.NewStyle().Foreground(Vitesse.Primary).Bold(true).
			Render("✓ output matches the expected output")
	}
	add := lipgloss.NewStyle().Foreground(Vitesse.Primary)
	del := lipgloss.NewStyle().Foreground(Vitesse.Red)
	hunk := lipgloss.NewStyle().Foreground(Vitesse.Blue)
	head := lipgloss.NewStyle().Foreground(Vitesse.Muted)

	d := udiff.Unified("expected output", "your output", expected, actual)
	lines := strings.Split(strings.TrimRight(d, "\n"), "\n")
	for i, ln := range lines {
		switch {
		case strings.HasPrefix(ln, "---"), strings.HasPrefix(ln, "+++"):
			lines[i] = head.Render(ln)
		case strings.HasPrefix(ln, "@@"):
			lines[i] = hunk.Render(ln)
		case strings.HasPrefix(ln, "+"):
			lines[i] = add.Render(ln)
		case strings.HasPrefix(ln, "-"):
			lines[i] = del.Render(ln)
		}
	}
	return strings.Join(lines, "\n")
}
