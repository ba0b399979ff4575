package ui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"gconsole/internal/console"
)

// Bridge carries console state into the Bubble Tea program without ever
// blocking the console's display goroutine. Snapshots are coalesced: only
// the latest View is delivered. It also serves as the console's Host.
type Bridge struct {
	latest atomic.Pointer[console.View]
	kick   chan struct{}
	events chan tea.Msg
}

// NewBridge returns an idle bridge.
func NewBridge() *Bridge {
	return &Bridge{
		kick:   make(chan struct{}, 1),
		events: make(chan tea.Msg, 16),
	}
}

// Observe records v; register it with Console.OnRender.
func (b *Bridge) Observe(v console.View) {
	b.latest.Store(&v)
	select {
	case b.kick <- struct{}{}:
	default:
	}
}

// wait returns a command delivering the next view or host request.
func (b *Bridge) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case <-b.kick:
				if v := b.latest.Load(); v != nil {
					return viewMsg{v: *v}
				}
			case msg := <-b.events:
				return msg
			}
		}
	}
}

func (b *Bridge) send(msg tea.Msg) {
	select {
	case b.events <- msg:
	default:
		go func() { b.events <- msg }()
	}
}

// Close implements console.Host.
func (b *Bridge) Close() { b.send(closeMsg{}) }

// SaveAs implements console.Host.
func (b *Bridge) SaveAs(suggested string) { b.send(saveAsMsg{suggested: suggested}) }

// ShowHelp implements console.Host.
func (b *Bridge) ShowHelp() { b.send(helpMsg{}) }

// CompareOutput implements console.Host.
func (b *Bridge) CompareOutput(expected, actual string) {
	b.send(compareMsg{expected: expected, actual: actual})
}

// Notify shows a transient message in the status bar.
func (b *Bridge) Notify(text string) { b.send(noticeMsg(text)) }
