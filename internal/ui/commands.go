package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// hintExpiredMsg clears the transient status-bar hint.
type hintExpiredMsg struct{ until time.Time }

// Commands

// unhandledKeyCmd reports msg back to the model when the console did not
// consume it.
func unhandledKeyCmd(consumed <-chan bool, msg tea.KeyMsg) tea.Cmd {
	return func() tea.Msg {
		if <-consumed {
			return nil
		}
		return unhandledKeyMsg{key: msg}
	}
}

// hintExpireCmd fires once the hint shown until `until` should disappear.
func hintExpireCmd(until time.Time) tea.Cmd {
	return tea.Tick(time.Until(until), func(time.Time) tea.Msg {
		return hintExpiredMsg{until: until}
	})
}
