package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	zone "github.com/lrstanley/bubblezone"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case viewMsg:
		m.view = msg.v
		m.refreshContent()
		return m, m.bridge.wait()
	case helpMsg:
		m.openOverlay(overlayHelp, renderHelp(m.overlayWidth()))
		return m, m.bridge.wait()
	case compareMsg:
		m.openOverlay(overlayDiff, renderDiff(msg.expected, msg.actual))
		return m, m.bridge.wait()
	case saveAsMsg:
		cmd := m.openSaveAs(msg.suggested)
		return m, tea.Batch(cmd, m.bridge.wait())
	case noticeMsg:
		m.hintText = string(msg)
		m.hintUntil = time.Now().Add(4 * time.Second)
		return m, tea.Batch(m.bridge.wait(), hintExpireCmd(m.hintUntil))
	case hintExpiredMsg:
		if msg.until.Equal(m.hintUntil) {
			m.hintText = ""
		}
		return m, nil
	case closeMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case unhandledKeyMsg:
		// keys the console left alone scroll the view
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg.key)
		return m, cmd
	}
	// huh fields need their own internal messages (cursor blink, etc.)
	if m.overlay == overlaySave && m.saveForm != nil {
		return m.updateSaveForm(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlaySave:
		if key.Matches(msg, keys.Dismiss) {
			m.closeOverlay()
			return m, nil
		}
		return m.updateSaveForm(msg)
	case overlayHelp, overlayDiff:
		if key.Matches(msg, keys.Dismiss, keys.Help) || msg.String() == "q" {
			m.closeOverlay()
			return m, nil
		}
		var cmd tea.Cmd
		m.overlayVP, cmd = m.overlayVP.Update(msg)
		return m, cmd
	}

	if msg.Paste {
		m.con.SendPaste(string(msg.Runes))
		return m, nil
	}
	if key.Matches(msg, keys.Scroll) {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	k, ok := translateKey(msg)
	if !ok {
		// several runes in one message: an IME commit or an unbracketed paste
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
			m.con.SendPaste(string(msg.Runes))
		}
		return m, nil
	}
	return m, unhandledKeyCmd(m.con.SendKey(k), msg)
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && m.overlay == overlayNone {
		switch {
		case zone.Get("bar.clear").InBounds(msg):
			m.con.ClearConsole()
			return m, nil
		case zone.Get("bar.save").InBounds(msg):
			m.con.Post(m.con.Save)
			return m, nil
		case zone.Get("bar.help").InBounds(msg):
			m.openOverlay(overlayHelp, renderHelp(m.overlayWidth()))
			return m, nil
		}
	}
	var cmd tea.Cmd
	if m.overlay == overlayHelp || m.overlay == overlayDiff {
		m.overlayVP, cmd = m.overlayVP.Update(msg)
		return m, cmd
	}
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *model) resize() {
	h := m.height - 1 // status bar
	if h < 1 {
		h = 1
	}
	m.vp.Width = m.width
	m.vp.Height = h
	m.overlayVP.Width = m.overlayWidth()
	m.overlayVP.Height = maxInt(1, h-2)
	m.ready = true
	m.refreshContent()
}

func (m *model) refreshContent() {
	if !m.ready {
		return
	}
	m.vp.SetContent(renderDisplay(m.view, m.vp.Width))
	if m.view.ScrollSeq != m.lastScroll {
		m.lastScroll = m.view.ScrollSeq
		m.vp.GotoBottom()
	}
}

func (m model) overlayWidth() int {
	// border + padding on both sides
	return maxInt(20, m.width-4)
}

func (m *model) openOverlay(kind overlayKind, content string) {
	m.overlay = kind
	m.overlayVP = viewport.New(m.overlayWidth(), maxInt(1, m.height-3))
	m.overlayVP.MouseWheelEnabled = true
	m.overlayVP.SetContent(content)
}

func (m *model) closeOverlay() {
	m.overlay = overlayNone
	m.saveForm = nil
}

func (m *model) openSaveAs(suggested string) tea.Cmd {
	m.overlay = overlaySave
	m.saveForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Save console text as").
				Placeholder("console.txt").
				Value(&suggested).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errEmptyPath
					}
					return nil
				}),
		),
	).WithWidth(maxInt(20, m.width-6)).WithShowHelp(false)
	return m.saveForm.Init()
}

func (m model) updateSaveForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, cmd := m.saveForm.Update(msg)
	if ff, ok := f.(*huh.Form); ok {
		m.saveForm = ff
	}
	switch m.saveForm.State {
	case huh.StateCompleted:
		path := strings.TrimSpace(m.saveForm.GetString("path"))
		m.closeOverlay()
		con, bridge := m.con, m.bridge
		con.Post(func() {
			if err := con.SaveAs(path); err != nil {
				bridge.Notify("save failed: " + err.Error())
				return
			}
			bridge.Notify("saved " + path)
		})
		return m, nil
	case huh.StateAborted:
		m.closeOverlay()
		return m, nil
	}
	return m, cmd
}
