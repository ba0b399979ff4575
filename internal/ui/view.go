package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	appver "gconsole/internal/version"
)

var errEmptyPath = errors.New("enter a file name")

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "starting console…"
	}

	var body string
	switch m.overlay {
	case overlayHelp, overlayDiff:
		body = OverlayStyle().Width(m.overlayWidth()).Height(maxInt(1, m.vp.Height-2)).Render(m.overlayVP.View())
	case overlaySave:
		body = OverlayStyle().Width(m.overlayWidth()).Render(m.saveForm.View())
		body = lipgloss.Place(m.width, m.vp.Height, lipgloss.Center, lipgloss.Center, body)
	default:
		body = lipgloss.NewStyle().
			Background(colorFor(m.view.Background)).
			Width(m.width).
			Height(m.vp.Height).
			Render(m.vp.View())
	}
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBarLine()))
}

// renderStatusBarLine builds the status bar: title, prompt state and font
// on the left, clickable actions and version on the right.
func (m model) renderStatusBarLine() string {
	title := m.view.Title
	if title == "" {
		title = "Console"
	}
	left := []string{ChipKeyStyle().Render(title)}
	switch {
	case m.hintText != "" && time.Now().Before(m.hintUntil):
		left = append(left, m.hintText)
	case m.view.Shutdown:
		left = append(left, "program finished")
	case m.view.PromptActive:
		left = append(left, "waiting for input")
	}
	left = append(left, m.view.Font.String())

	right := []string{
		zone.Mark("bar.clear", ChipStyle(Vitesse.Yellow).Render("clear")),
		zone.Mark("bar.save", ChipStyle(Vitesse.Blue).Render("save")),
		zone.Mark("bar.help", ChipStyle(Vitesse.Magenta).Render("help")),
		" v" + appver.AppVersion + " ",
	}
	return renderStatusBar(m.width, strings.Join(left, " "), strings.Join(right, ""))
}

// helper used locally for layout
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
