package console

// history is the list of committed lines plus a recall cursor. The cursor
// ranges over [-1, len]; both ends mean "no entry".
type history struct {
	entries []string
	cursor  int
}

func newHistory() history { return history{cursor: 0} }

func (h *history) add(line string) {
	h.entries = append(h.entries, line)
	h.cursor = len(h.entries)
}

// move shifts the cursor by delta, clamps it, and returns the entry under
// it or "" at either boundary. Recalling past the oldest entry keeps the
// oldest entry.
func (h *history) move(delta int) string {
	h.cursor += delta
	if h.cursor < 0 && len(h.entries) > 0 {
		h.cursor = 0
	}
	if h.cursor < -1 {
		h.cursor = -1
	}
	if h.cursor > len(h.entries) {
		h.cursor = len(h.entries)
	}
	if h.cursor >= 0 && h.cursor < len(h.entries) {
		return h.entries[h.cursor]
	}
	return ""
}

// History returns a copy of every committed line, oldest first.
func (c *Console) History() []string {
	c.queueMu.Lock()
	defer c.queueMu.Unlock()
	return append([]string(nil), c.history.entries...)
}
