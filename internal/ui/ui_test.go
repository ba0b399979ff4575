package ui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	clog "github.com/charmbracelet/log"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"gconsole/internal/console"
	"gconsole/internal/display"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		in   tea.KeyMsg
		want console.Key
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, console.Rune('x')},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, console.Rune(' ')},
		{tea.KeyMsg{Type: tea.KeyEnter}, console.Key{Code: console.KeyEnter}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, console.Ctrl('c')},
		{tea.KeyMsg{Type: tea.KeyCtrlD}, console.Ctrl('d')},
		{tea.KeyMsg{Type: tea.KeyShiftLeft}, console.Key{Code: console.KeyLeft, Mod: console.ModShift}},
		{tea.KeyMsg{Type: tea.KeyF1}, console.Key{Code: console.KeyF1}},
		{tea.KeyMsg{Type: tea.KeyF12}, console.Key{Code: console.KeyF12}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true}, console.Key{Code: console.KeyRune, Rune: '3', Mod: console.ModMeta}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}, Alt: true}, console.Key{Code: console.KeyRune, Rune: 's', Mod: console.ModMeta | console.ModShift}},
	}
	for _, tc := range cases {
		got, ok := translateKey(tc.in)
		if !ok || got != tc.want {
			t.Fatalf("translateKey(%v) = %+v, %v; want %+v", tc.in, got, ok, tc.want)
		}
	}
	if _, ok := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}); ok {
		t.Fatalf("multi-rune message should not map to one key")
	}
}

func TestRenderDisplay_TabsAndCaret(t *testing.T) {
	v := console.View{Snapshot: display.Snapshot{
		Spans: []display.Span{
			{Text: "a\tb\n", Style: display.Style{Color: "black"}},
			{Text: "in", Style: display.Style{Color: "blue", Bold: true}},
		},
		Len:   6,
		Caret: 6,
	}}
	got := xansi.Strip(renderDisplay(v, 0))
	want := "a       b\nin "
	if got != want {
		t.Fatalf("renderDisplay = %q, want %q", got, want)
	}
	v.Shutdown = true
	if got := xansi.Strip(renderDisplay(v, 0)); got != "a       b\nin" {
		t.Fatalf("caret drawn after shutdown: %q", got)
	}
}

func TestRenderDisplay_Wraps(t *testing.T) {
	v := console.View{Snapshot: display.Snapshot{
		Spans: []display.Span{{Text: "abcdefgh"}},
		Len:   8,
		Caret: 0,
	}, Shutdown: true}
	got := xansi.Strip(renderDisplay(v, 4))
	if got != "abcd\nefgh" {
		t.Fatalf("wrapped = %q", got)
	}
}

func TestRenderDisplay_ControlCharacters(t *testing.T) {
	v := console.View{Snapshot: display.Snapshot{
		Spans: []display.Span{{Text: "a\x1b[2Jb\x07\x7f\u0085"}},
		Len:   9,
		Caret: 9,
	}, Shutdown: true}
	raw := renderDisplay(v, 0)
	for _, bad := range []string{"\x1b[2J", "\x07", "\x7f", "\u0085"} {
		if strings.Contains(raw, bad) {
			t.Fatalf("raw control %q reached the terminal: %q", bad, raw)
		}
	}
	if got := xansi.Strip(raw); got != "a^[[2Jb^G^?\uFFFD" {
		t.Fatalf("renderDisplay = %q", got)
	}
}

func TestRenderDiff(t *testing.T) {
	if got := xansi.Strip(renderDiff("a\n", "a\n")); !strings.Contains(got, "matches") {
		t.Fatalf("equal output: %q", got)
	}
	got := xansi.Strip(renderDiff("a\nb\n", "a\nc\n"))
	if !strings.Contains(got, "-b") || !strings.Contains(got, "+c") {
		t.Fatalf("diff = %q", got)
	}
}

func TestHelpMarkdown_ListsBindings(t *testing.T) {
	md := helpMarkdown()
	for _, want := range []string{"ctrl+c", "alt+s", "ctrl+d", "f1"} {
		if !strings.Contains(md, want) {
			t.Fatalf("help missing %q", want)
		}
	}
}

func TestColorFor(t *testing.T) {
	if colorFor("Light Gray") != colorFor("light_gray") {
		t.Fatalf("names not normalized")
	}
	if colorFor("nonsense") != (lipgloss.NoColor{}) {
		t.Fatalf("unknown color should fall back to the terminal default")
	}
	if colorFor("#112233") != lipgloss.Color("#112233") {
		t.Fatalf("hex colors should pass through")
	}
}

func TestModel_ViewAndOverlays(t *testing.T) {
	zone.NewGlobal()
	b := NewBridge()
	c := console.New(console.Options{Host: b, Logger: clog.New(io.Discard), Stdout: io.Discard, Clipboard: &console.MemoryClipboard{}})
	defer c.Stop()

	var m tea.Model = New(c, b)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	c.Print("hello", false)
	c.Flush()
	c.Do(func() { b.Observe(c.View()) })
	msg := b.wait()()
	if _, ok := msg.(viewMsg); !ok {
		t.Fatalf("expected viewMsg, got %T", msg)
	}
	m, _ = m.Update(msg)
	if !strings.Contains(xansi.Strip(m.View()), "hello") {
		t.Fatalf("view missing output: %q", xansi.Strip(m.View()))
	}

	m, _ = m.Update(compareMsg{expected: "x\n", actual: "y\n"})
	if m.(model).overlay != overlayDiff {
		t.Fatalf("diff overlay not open")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(model).overlay != overlayNone {
		t.Fatalf("esc did not close overlay")
	}

	m, _ = m.Update(closeMsg{})
	if !m.(model).quitting {
		t.Fatalf("close did not quit")
	}
}

func TestUnhandledKeyScrollsView(t *testing.T) {
	zone.NewGlobal()
	b := NewBridge()
	c := console.New(console.Options{Host: b, Logger: clog.New(io.Discard), Stdout: io.Discard, Clipboard: &console.MemoryClipboard{}})
	defer c.Stop()

	var m tea.Model = New(c, b)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	c.Print(strings.Repeat("line\n", 20), false)
	c.Flush()
	c.Do(func() { b.Observe(c.View()) })
	m, _ = m.Update(b.wait()())
	before := m.(model).vp.YOffset
	if before == 0 {
		t.Fatalf("view should follow the output to the bottom")
	}

	up := tea.KeyMsg{Type: tea.KeyUp}
	_, cmd := m.Update(up)
	if cmd == nil {
		t.Fatalf("no command for a forwarded key")
	}
	msg := cmd()
	if _, ok := msg.(unhandledKeyMsg); !ok {
		t.Fatalf("up outside the input: got %T", msg)
	}
	m, _ = m.Update(msg)
	if got := m.(model).vp.YOffset; got != before-1 {
		t.Fatalf("YOffset = %d, want %d", got, before-1)
	}

	if msg := unhandledKeyCmd(c.SendKey(console.Rune('x')), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})(); msg != nil {
		t.Fatalf("consumed key came back: %T", msg)
	}
}
