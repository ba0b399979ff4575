package console

// The editable region is tracked explicitly by the display buffer; the
// queries below read it and are only valid on the display goroutine.

// UserInputFragment returns the live input text and its offsets.
func (c *Console) UserInputFragment() (text string, start, end int, ok bool) {
	c.inMu.Lock()
	defer c.inMu.Unlock()
	r, open := c.buf.Region()
	if !open {
		return "", -1, -1, false
	}
	return c.buf.InputText(), r.Start, r.End, true
}

// UserInputStart returns where the live input begins, the end of the
// display when a prompt waits on an empty line, or -1 without a prompt.
func (c *Console) UserInputStart() int {
	c.inMu.Lock()
	defer c.inMu.Unlock()
	s, _ := c.inputBoundsLocked()
	return s
}

// UserInputEnd is the end counterpart of UserInputStart.
func (c *Console) UserInputEnd() int {
	c.inMu.Lock()
	defer c.inMu.Unlock()
	_, e := c.inputBoundsLocked()
	return e
}

// IsCursorInUserInputArea reports whether a prompt is active and the caret
// lies within the live input, boundaries included.
func (c *Console) IsCursorInUserInputArea() bool {
	c.inMu.Lock()
	defer c.inMu.Unlock()
	return c.caretInInputLocked()
}

// IsSelectionInUserInputArea reports whether the selection lies wholly
// within the live input.
func (c *Console) IsSelectionInUserInputArea() bool {
	c.inMu.Lock()
	defer c.inMu.Unlock()
	return c.selectionInInputLocked()
}

func (c *Console) inputBoundsLocked() (int, int) {
	if r, open := c.buf.Region(); open {
		return r.Start, r.End
	}
	if c.promptActive {
		n := c.buf.Len()
		return n, n
	}
	return -1, -1
}

func (c *Console) caretInInputLocked() bool {
	if !c.promptActive {
		return false
	}
	s, e := c.inputBoundsLocked()
	caret := c.buf.Caret()
	return s <= caret && caret <= e
}

func (c *Console) selectionInInputLocked() bool {
	s, e := c.inputBoundsLocked()
	if s < 0 || e < 0 {
		return false
	}
	ss, se := c.buf.Selection()
	return ss >= s && se <= e
}

// ensureRegionLocked opens an empty input region at the end of the display
// if none is open yet.
func (c *Console) ensureRegionLocked() {
	if _, open := c.buf.Region(); !open {
		c.buf.OpenRegion(inputStyle())
	}
}
