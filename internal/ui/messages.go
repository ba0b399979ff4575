package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gconsole/internal/console"
)

// Bubble Tea messages

// a fresh console snapshot
type viewMsg struct{ v console.View }

// host requests coming from the console
type helpMsg struct{}
type saveAsMsg struct{ suggested string }
type compareMsg struct{ expected, actual string }
type closeMsg struct{}

// a key the console did not consume
type unhandledKeyMsg struct{ key tea.KeyMsg }

// generic notifications
type noticeMsg string
