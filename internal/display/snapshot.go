package display

// Snapshot is an immutable copy of the buffer for renderers running on
// another goroutine.
type Snapshot struct {
	Spans      []Span
	Len        int
	Caret      int
	SelStart   int
	SelEnd     int
	Region     Region
	RegionOpen bool
	ScrollSeq  uint64
	FocusSeq   uint64
}

// Snapshot copies the current state.
func (b *Buffer) Snapshot() Snapshot {
	spans := make([]Span, len(b.spans))
	for i, s := range b.spans {
		spans[i] = Span{Text: string(s.text), Style: s.style}
	}
	ss, se := b.Selection()
	r, open := b.Region()
	return Snapshot{
		Spans:      spans,
		Len:        b.length,
		Caret:      b.caret,
		SelStart:   ss,
		SelEnd:     se,
		Region:     r,
		RegionOpen: open,
		ScrollSeq:  b.scrollSeq,
		FocusSeq:   b.focusSeq,
	}
}
