package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Design centralizes the TUI chrome palette and common styles. The console
// text itself uses the colors the program asked for (see colorFor).
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	// Core brand/semantic colors
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Magenta lipgloss.Color // #d9739f
	Red     lipgloss.Color // #cb7676

	// Text colors
	Text  lipgloss.Color // #dbd7caee
	Muted lipgloss.Color // #dedcd590

	// Surfaces
	Bg     lipgloss.Color // #222
	Border lipgloss.Color // #252525

	// Text on accent backgrounds (e.g., buttons/chips)
	OnAccent lipgloss.Color // #222

	// Status bar colors
	BarFG lipgloss.AdaptiveColor // light/dark
	BarBG lipgloss.AdaptiveColor // light/dark
}

// Vitesse defines the current global design theme for the TUI.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Red:     lipgloss.Color("#cb7676"),

	Text:  lipgloss.Color("#dbd7caee"),
	Muted: lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	Border: lipgloss.Color("#3a3a3a"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// namedColors maps the color names console programs use to terminal colors.
var namedColors = map[string]string{
	"black":      "#000000",
	"white":      "#ffffff",
	"red":        "#d70000",
	"green":      "#00a000",
	"blue":       "#0000d7",
	"yellow":     "#d7d700",
	"orange":     "#ff8700",
	"pink":       "#ffafaf",
	"magenta":    "#d700d7",
	"cyan":       "#00d7d7",
	"gray":       "#808080",
	"grey":       "#808080",
	"dark_gray":  "#444444",
	"light_gray": "#c0c0c0",
}

// colorFor resolves a color name or #rrggbb string. Unknown names yield
// the empty color, which leaves the terminal default.
func colorFor(name string) lipgloss.TerminalColor {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "_", "-", "_").Replace(n)
	if hex, ok := namedColors[n]; ok {
		return lipgloss.Color(hex)
	}
	if strings.HasPrefix(n, "#") && (len(n) == 7 || len(n) == 4) {
		return lipgloss.Color(n)
	}
	return lipgloss.NoColor{}
}

// ChipKeyStyle returns a style for the left-most highlighted chip in the status bar.
func ChipKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
}

// ChipStyle returns a style for colored nuggets (right/left segments).
func ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(bg).Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// OverlayStyle frames help, save and diff overlays.
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Vitesse.Primary).
		Padding(0, 1)
}
