package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"gconsole/internal/config"
	"gconsole/internal/console"
)

// Colors offered by the form; any other name or #rrggbb can be typed via
// `gconsole config set`.
var Colors = []string{"white", "black", "red", "green", "blue", "yellow", "magenta", "cyan", "gray"}

// Run launches an interactive form editing the console settings at path
// and saves them on submit.
func Run(path string) (config.Settings, error) {
	cur, err := config.Load(path)
	if err != nil {
		return cur, err
	}
	if cur.Font == "" {
		cur.Font = console.DefaultFont().String()
	}
	if cur.Background == "" {
		cur.Background = console.DefaultBackgroundColor
	}
	if cur.Foreground == "" {
		cur.Foreground = console.DefaultOutputColor
	}

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Defaults for future console windows\n" + path),
			huh.NewInput().
				Title("Font").
				Placeholder("Monospace-12").
				Value(&cur.Font).
				Validate(validateFont),
			huh.NewSelect[string]().
				Title("Background").
				Options(colorOptions(cur.Background)...).
				Value(&cur.Background),
			huh.NewSelect[string]().
				Title("Foreground").
				Options(colorOptions(cur.Foreground)...).
				Value(&cur.Foreground),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return cur, err // form canceled or failed
	}
	if err := config.Save(path, cur); err != nil {
		return cur, err
	}
	fmt.Printf("\n✓ saved %s\n\n", path)
	return cur, nil
}

func validateFont(s string) error {
	_, err := console.ParseFont(s)
	return err
}

// colorOptions lists Colors, keeping a custom current value selectable.
func colorOptions(current string) []huh.Option[string] {
	names := append([]string(nil), Colors...)
	found := false
	for _, n := range names {
		if strings.EqualFold(n, current) {
			found = true
			break
		}
	}
	if !found && current != "" {
		names = append([]string{current}, names...)
	}
	opts := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		opts = append(opts, huh.NewOption(n, n))
	}
	return opts
}
