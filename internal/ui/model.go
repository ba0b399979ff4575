package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"gconsole/internal/console"
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayHelp
	overlaySave
	overlayDiff
)

// Model for TUI
type model struct {
	con    *console.Console
	bridge *Bridge

	// latest console snapshot
	view       console.View
	lastScroll uint64

	vp     viewport.Model
	width  int
	height int
	ready  bool

	// help / diff / save-as overlays
	overlay   overlayKind
	overlayVP viewport.Model
	saveForm  *huh.Form

	// transient status-bar hint
	hintText  string
	hintUntil time.Time

	quitting bool
}

// New returns the Bubble Tea model rendering c. Views and host requests
// arrive through b, which must be c's Host and registered with c.OnRender.
func New(c *console.Console, b *Bridge) tea.Model {
	m := model{
		con:       c,
		bridge:    b,
		hintText:  "F1 help · Ctrl+Q close · PgUp/PgDn scroll",
		hintUntil: time.Now().Add(6 * time.Second),
	}
	m.vp = viewport.New(0, 0)
	m.vp.MouseWheelEnabled = true
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.bridge.wait(), hintExpireCmd(m.hintUntil))
}
