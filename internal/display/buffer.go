package display

import "strings"

// Style is the formatting of a run of text.
type Style struct {
	Color string
	Bold  bool
}

// Span is a run of text sharing one Style.
type Span struct {
	Text  string
	Style Style
}

// Region describes the live input run. Offsets are rune offsets into the
// buffer, half-open. Gen changes on every mutation of the region.
type Region struct {
	Start int
	End   int
	Gen   uint64
}

// Len returns the number of runes covered by the region.
func (r Region) Len() int { return r.End - r.Start }

// Contains reports whether pos lies within [Start, End].
func (r Region) Contains(pos int) bool { return r.Start <= pos && pos <= r.End }

type span struct {
	text  []rune
	style Style
}

// Buffer is the styled display model: an ordered list of spans plus a caret,
// a selection anchor and an optional input region. It is not safe for
// concurrent use; callers confine it to one goroutine.
type Buffer struct {
	spans  []span
	length int

	caret  int
	anchor int

	region      Region
	regionOpen  bool
	regionStyle Style
	gen         uint64

	scrollSeq uint64
	focusSeq  uint64
}

// New returns an empty buffer.
func New() *Buffer { return &Buffer{} }

// Len returns the buffer length in runes.
func (b *Buffer) Len() int { return b.length }

// Text returns the whole buffer as plain text.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for _, s := range b.spans {
		sb.WriteString(string(s.text))
	}
	return sb.String()
}

// Slice returns the plain text in [start, end), clamped to the buffer.
func (b *Buffer) Slice(start, end int) string {
	start, end = b.clamp(start), b.clamp(end)
	if end <= start {
		return ""
	}
	var sb strings.Builder
	pos := 0
	for _, s := range b.spans {
		n := len(s.text)
		lo, hi := start-pos, end-pos
		if hi <= 0 {
			break
		}
		if lo < n {
			if lo < 0 {
				lo = 0
			}
			if hi > n {
				hi = n
			}
			sb.WriteString(string(s.text[lo:hi]))
		}
		pos += n
	}
	return sb.String()
}

// Append adds output text at the end of the buffer. An empty input region
// sitting at the end stays at the end; a non-empty one keeps its offsets.
func (b *Buffer) Append(text string, st Style) {
	if text == "" {
		return
	}
	b.insert(b.length, []rune(text), st, false)
}

// Clear empties the buffer. A live input region keeps its text, re-seated at
// offset zero, so the staged input is never lost.
func (b *Buffer) Clear() {
	keep := ""
	if b.regionOpen {
		keep = b.Slice(b.region.Start, b.region.End)
	}
	b.spans = nil
	b.length = 0
	b.caret, b.anchor = 0, 0
	if !b.regionOpen {
		return
	}
	b.region.Start, b.region.End = 0, 0
	b.bump()
	if keep != "" {
		b.InsertInput(0, keep)
	}
}

// Recolor sets the foreground color of every span, the input run included.
func (b *Buffer) Recolor(color string) {
	for i := range b.spans {
		b.spans[i].style.Color = color
	}
	b.regionStyle.Color = color
	b.normalize()
}

// OpenRegion starts an empty input region at the end of the buffer. Text
// inserted into it uses st. It is a no-op while a region is already open.
func (b *Buffer) OpenRegion(st Style) {
	if b.regionOpen {
		return
	}
	b.regionOpen = true
	b.regionStyle = st
	b.region.Start, b.region.End = b.length, b.length
	b.bump()
}

// CloseRegion forgets the input region. The text stays in the buffer.
func (b *Buffer) CloseRegion() {
	if !b.regionOpen {
		return
	}
	b.regionOpen = false
	b.bump()
}

// Region returns the input region and whether one is open.
func (b *Buffer) Region() (Region, bool) {
	r := b.region
	r.Gen = b.gen
	return r, b.regionOpen
}

// InputText returns the text of the open region.
func (b *Buffer) InputText() string {
	if !b.regionOpen {
		return ""
	}
	return b.Slice(b.region.Start, b.region.End)
}

// InputLen returns the length of the open region, or 0.
func (b *Buffer) InputLen() int {
	if !b.regionOpen {
		return 0
	}
	return b.region.Len()
}

// InsertInput inserts text at offset (relative to the region start) using the
// region style. It reports false when no region is open or offset is out of
// range.
func (b *Buffer) InsertInput(offset int, text string) bool {
	if !b.regionOpen || offset < 0 || offset > b.region.Len() {
		return false
	}
	if text == "" {
		return true
	}
	b.insert(b.region.Start+offset, []rune(text), b.regionStyle, true)
	return true
}

// DeleteInput removes n runes at offset (relative to the region start).
func (b *Buffer) DeleteInput(offset, n int) bool {
	if !b.regionOpen || offset < 0 || n < 0 || offset+n > b.region.Len() {
		return false
	}
	if n == 0 {
		return true
	}
	start := b.region.Start + offset
	b.remove(start, start+n)
	b.region.End -= n
	b.bump()
	return true
}

// Caret returns the caret offset.
func (b *Buffer) Caret() int { return b.caret }

// SetCaret moves the caret. With keepAnchor the selection anchor stays put,
// extending the selection; otherwise the selection collapses.
func (b *Buffer) SetCaret(pos int, keepAnchor bool) {
	b.caret = b.clamp(pos)
	if !keepAnchor {
		b.anchor = b.caret
	}
}

// MoveCaretToEnd places the caret at the end and drops any selection.
func (b *Buffer) MoveCaretToEnd() { b.SetCaret(b.length, false) }

// Selection returns the ordered selection bounds. Both equal the caret when
// nothing is selected.
func (b *Buffer) Selection() (start, end int) {
	if b.anchor < b.caret {
		return b.anchor, b.caret
	}
	return b.caret, b.anchor
}

// HasSelection reports whether a non-empty selection exists.
func (b *Buffer) HasSelection() bool { return b.anchor != b.caret }

// SelectedText returns the selected text.
func (b *Buffer) SelectedText() string {
	s, e := b.Selection()
	return b.Slice(s, e)
}

// ClearSelection collapses the selection onto the caret.
func (b *Buffer) ClearSelection() { b.anchor = b.caret }

// SelectAll selects the whole buffer, caret at the end.
func (b *Buffer) SelectAll() {
	b.anchor = 0
	b.caret = b.length
}

// ScrollToBottom records a request for the view to follow the tail.
func (b *Buffer) ScrollToBottom() { b.scrollSeq++ }

// RequestFocus records a request for the view to take keyboard focus.
func (b *Buffer) RequestFocus() { b.focusSeq++ }

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > b.length {
		return b.length
	}
	return pos
}

func (b *Buffer) bump() { b.gen++ }

// locate returns the span index holding pos and the offset inside it.
// pos == Len() yields (len(spans), 0).
func (b *Buffer) locate(pos int) (int, int) {
	for i, s := range b.spans {
		if pos < len(s.text) {
			return i, pos
		}
		pos -= len(s.text)
	}
	return len(b.spans), 0
}

func (b *Buffer) insert(pos int, text []rune, st Style, inRegion bool) {
	pos = b.clamp(pos)
	idx, off := b.locate(pos)
	ns := span{text: append([]rune(nil), text...), style: st}
	switch {
	case off == 0:
		b.spans = append(b.spans[:idx], append([]span{ns}, b.spans[idx:]...)...)
	default:
		cur := b.spans[idx]
		left := span{text: append([]rune(nil), cur.text[:off]...), style: cur.style}
		right := span{text: append([]rune(nil), cur.text[off:]...), style: cur.style}
		tail := append([]span{left, ns, right}, b.spans[idx+1:]...)
		b.spans = append(b.spans[:idx], tail...)
	}
	n := len(text)
	b.length += n
	if b.caret >= pos {
		b.caret += n
	}
	if b.anchor >= pos {
		b.anchor += n
	}
	if b.regionOpen {
		switch {
		case inRegion:
			b.region.End += n
			b.bump()
		case pos <= b.region.Start:
			b.region.Start += n
			b.region.End += n
			b.bump()
		}
	}
	b.normalize()
}

func (b *Buffer) remove(start, end int) {
	start, end = b.clamp(start), b.clamp(end)
	if end <= start {
		return
	}
	out := b.spans[:0]
	pos := 0
	for _, s := range b.spans {
		n := len(s.text)
		lo, hi := start-pos, end-pos
		pos += n
		if hi <= 0 || lo >= n {
			out = append(out, s)
			continue
		}
		if lo < 0 {
			lo = 0
		}
		if hi > n {
			hi = n
		}
		s.text = append(append([]rune(nil), s.text[:lo]...), s.text[hi:]...)
		out = append(out, s)
	}
	b.spans = out
	n := end - start
	b.length -= n
	b.caret = shiftRemoved(b.caret, start, end)
	b.anchor = shiftRemoved(b.anchor, start, end)
	b.normalize()
}

func shiftRemoved(p, start, end int) int {
	switch {
	case p >= end:
		return p - (end - start)
	case p > start:
		return start
	}
	return p
}

// normalize drops empty spans and merges neighbours with equal style.
func (b *Buffer) normalize() {
	out := b.spans[:0]
	for _, s := range b.spans {
		if len(s.text) == 0 {
			continue
		}
		if k := len(out); k > 0 && out[k-1].style == s.style {
			out[k-1].text = append(out[k-1].text, s.text...)
			continue
		}
		out = append(out, s)
	}
	b.spans = out
}
