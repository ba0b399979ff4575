package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"gconsole/internal/console"
)

const tabWidth = 8

// runStyle is everything that can differ between two adjacent cells.
type runStyle struct {
	color string
	bold  bool
	sel   bool
	caret bool
}

// renderDisplay draws the console text with styles, selection and caret,
// hard-wrapped to width.
func renderDisplay(v console.View, width int) string {
	bg := colorFor(v.Background)
	showCaret := !v.Shutdown

	var sb strings.Builder
	var run []rune
	var cur runStyle
	flush := func() {
		if len(run) == 0 {
			return
		}
		st := lipgloss.NewStyle().Foreground(colorFor(cur.color)).Background(bg).Bold(cur.bold)
		if cur.sel || cur.caret {
			st = st.Reverse(true)
		}
		sb.WriteString(st.Render(string(run)))
		run = run[:0]
	}
	emit := func(r rune, rs runStyle) {
		if rs != cur {
			flush()
			cur = rs
		}
		run = append(run, r)
	}

	pos, col := 0, 0
	for _, sp := range v.Spans {
		for _, r := range sp.Text {
			rs := runStyle{
				color: sp.Style.Color,
				bold:  sp.Style.Bold,
				sel:   pos >= v.SelStart && pos < v.SelEnd,
				caret: showCaret && pos == v.Caret,
			}
			switch r {
			case '\n':
				if rs.caret {
					emit(' ', rs)
				}
				flush()
				sb.WriteByte('\n')
				col = 0
			case '\t':
				n := tabWidth - col%tabWidth
				for i := 0; i < n; i++ {
					emit(' ', rs)
					rs.caret = false
				}
				col += n
			default:
				if unicode.IsControl(r) {
					for _, v := range controlPicture(r) {
						emit(v, rs)
						rs.caret = false
						col++
					}
					break
				}
				emit(r, rs)
				col += runewidth.RuneWidth(r)
			}
			pos++
		}
	}
	if showCaret && v.Caret >= v.Len {
		emit(' ', runStyle{caret: true})
	}
	flush()

	out := sb.String()
	if width > 0 {
		out = xansi.Hardwrap(out, width, true)
	}
	return out
}

// controlPicture is how a control character is shown: ^X for C0 and DEL,
// U+FFFD otherwise. Raw control bytes never reach the terminal.
func controlPicture(r rune) []rune {
	switch {
	case r < 0x20:
		return []rune{'^', r + '@'}
	case r == 0x7f:
		return []rune{'^', '?'}
	}
	return []rune{'\uFFFD'}
}

// renderStatusBar draws a single-line status bar at the given width
// with left/right-aligned content.
func renderStatusBar(width int, left, right string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	rw := xansi.StringWidth(right)
	if rw > w {
		right = xansi.Truncate(right, w, "")
		rw = xansi.StringWidth(right)
	}
	maxL := w - rw - 1
	if maxL < 0 {
		maxL = 0
	}
	if xansi.StringWidth(left) > maxL {
		left = xansi.Truncate(left, maxL, "…")
	}
	pad := w - xansi.StringWidth(left) - rw
	if pad < 0 {
		pad = 0
	}
	return StatusBarBase().Render(left + strings.Repeat(" ", pad) + right)
}
