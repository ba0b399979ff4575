package console

import "unicode"

// Key handlers below run on the display goroutine. Each keeps the staging
// buffer (c.input) and the region text in the display buffer identical.

// processUserInputKey types r. Only printable characters reach the input;
// tabs and other control characters are dropped.
func (c *Console) processUserInputKey(r rune) {
	if c.shutdown.Load() || !unicode.IsPrint(r) {
		return
	}
	c.inMu.Lock()
	defer c.inMu.Unlock()
	c.typeLocked(r)
}

func (c *Console) typeLocked(r rune) {
	c.ensureRegionLocked()
	if c.buf.HasSelection() && c.selectionInInputLocked() {
		c.deleteSelectionLocked()
	}
	region, _ := c.buf.Region()
	offset := len(c.input)
	if !c.opts.DisableRichEditing && c.caretInInputLocked() {
		offset = c.buf.Caret() - region.Start
	}
	c.insertInputLocked(offset, r)
	c.buf.SetCaret(region.Start+offset+1, false)
	c.buf.ScrollToBottom()
}

func (c *Console) insertInputLocked(offset int, r rune) {
	if offset < 0 || offset > len(c.input) {
		offset = len(c.input)
	}
	c.input = append(c.input, 0)
	copy(c.input[offset+1:], c.input[offset:])
	c.input[offset] = r
	c.buf.InsertInput(offset, string(r))
}

func (c *Console) deleteInputLocked(offset, n int) {
	if offset < 0 || n <= 0 || offset+n > len(c.input) {
		return
	}
	c.input = append(c.input[:offset], c.input[offset+n:]...)
	c.buf.DeleteInput(offset, n)
}

func (c *Console) deleteSelectionLocked() {
	region, open := c.buf.Region()
	if !open {
		return
	}
	ss, se := c.buf.Selection()
	c.deleteInputLocked(ss-region.Start, se-ss)
	c.buf.SetCaret(ss, false)
}

// processBackspace removes one character before (back) or under the caret.
// With the caret outside the input it first jumps to the input end and
// removes the last character.
func (c *Console) processBackspace(back bool) {
	if c.shutdown.Load() {
		return
	}
	c.inMu.Lock()
	defer c.inMu.Unlock()
	if !c.promptActive || len(c.input) == 0 {
		return
	}
	if c.buf.HasSelection() && c.selectionInInputLocked() {
		c.deleteSelectionLocked()
		return
	}
	region, open := c.buf.Region()
	if !open {
		return
	}
	caret := c.buf.Caret()
	if !region.Contains(caret) {
		c.deleteInputLocked(len(c.input)-1, 1)
		c.buf.SetCaret(region.End-1, false)
		return
	}
	idx := caret - region.Start
	if back {
		idx--
	}
	if idx < 0 || idx >= len(c.input) {
		return
	}
	c.deleteInputLocked(idx, 1)
	c.buf.SetCaret(region.Start+idx, false)
}

// processEnter commits the staged line.
func (c *Console) processEnter() {
	if c.shutdown.Load() {
		return
	}
	c.inMu.Lock()
	defer c.inMu.Unlock()
	line := string(c.input)
	c.input = c.input[:0]

	c.outMu.Lock()
	c.log.WriteString(line + "\n")
	if _, open := c.buf.Region(); open {
		c.buf.InsertInput(c.buf.InputLen(), "\n")
		c.buf.CloseRegion()
	} else {
		c.buf.Append("\n", inputStyle())
	}
	c.buf.MoveCaretToEnd()
	c.buf.ScrollToBottom()
	c.outMu.Unlock()

	c.queueMu.Lock()
	c.lines = append(c.lines, line)
	c.history.add(line)
	c.queueCond.Broadcast()
	c.queueMu.Unlock()
}

// ProcessCommandHistory moves the history cursor by delta and replaces the
// live input with the recalled entry. Display goroutine only.
func (c *Console) ProcessCommandHistory(delta int) {
	if c.shutdown.Load() {
		return
	}
	c.inMu.Lock()
	defer c.inMu.Unlock()
	c.queueMu.Lock()
	entry := c.history.move(delta)
	c.queueMu.Unlock()
	c.setUserInputLocked(entry)
}

// setUserInputLocked replaces the live input by clearing it and typing text.
func (c *Console) setUserInputLocked(text string) {
	c.ensureRegionLocked()
	c.deleteInputLocked(0, len(c.input))
	c.buf.MoveCaretToEnd()
	region, _ := c.buf.Region()
	c.buf.SetCaret(region.End, false)
	for _, r := range text {
		c.typeLocked(r)
	}
}

// PasteText types text as if entered key by key: '\n' commits, '\r' is
// skipped. Display goroutine only.
func (c *Console) PasteText(text string) {
	for _, r := range text {
		if c.shutdown.Load() {
			return
		}
		switch r {
		case '\r':
		case '\n':
			c.processEnter()
		default:
			c.processUserInputKey(r)
		}
	}
}

// moveCaret moves the caret one step. While a prompt is active the caret
// cannot leave the live input; such attempts only drop the selection.
func (c *Console) moveCaret(delta int, extend bool) bool {
	c.inMu.Lock()
	defer c.inMu.Unlock()
	target := c.buf.Caret() + delta
	if c.caretInInputLocked() {
		s, e := c.inputBoundsLocked()
		if target < s || target > e {
			if !extend {
				c.buf.ClearSelection()
			}
			return true
		}
	}
	c.buf.SetCaret(target, extend)
	return true
}

func (c *Console) moveToInputEdge(end, extend bool) {
	c.inMu.Lock()
	defer c.inMu.Unlock()
	region, open := c.buf.Region()
	if !open {
		c.buf.MoveCaretToEnd()
		return
	}
	keep := extend && c.caretInInputLocked()
	if end {
		c.buf.SetCaret(region.End, keep)
	} else {
		c.buf.SetCaret(region.Start, keep)
	}
}

// processEOF signals end of input when nothing is staged.
func (c *Console) processEOF() {
	if c.shutdown.Load() {
		return
	}
	c.inMu.Lock()
	empty := len(c.input) == 0
	c.inMu.Unlock()
	if empty {
		c.SetEOF()
	}
}

// StagedInput returns the text typed since the last commit.
func (c *Console) StagedInput() string {
	c.inMu.Lock()
	defer c.inMu.Unlock()
	return string(c.input)
}
