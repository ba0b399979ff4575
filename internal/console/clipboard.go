package console

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// MemoryClipboard keeps text in process. The zero value is empty.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (m *MemoryClipboard) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *MemoryClipboard) WriteAll(text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

// ClipboardCopy copies the selection. Display goroutine only.
func (c *Console) ClipboardCopy() {
	text := c.buf.SelectedText()
	if text == "" {
		return
	}
	if err := c.clip.WriteAll(text); err != nil {
		c.logger.Warn("clipboard write failed", "err", err)
	}
}

// ClipboardCut moves the selection to the clipboard. It does nothing unless
// a prompt is active and the selection lies wholly inside the live input.
// Display goroutine only.
func (c *Console) ClipboardCut() {
	if c.shutdown.Load() {
		return
	}
	c.inMu.Lock()
	defer c.inMu.Unlock()
	if !c.promptActive || !c.buf.HasSelection() || !c.selectionInInputLocked() {
		return
	}
	c.ClipboardCopy()
	c.deleteSelectionLocked()
}

// ClipboardPaste types the clipboard contents. Display goroutine only.
func (c *Console) ClipboardPaste() {
	if c.shutdown.Load() {
		return
	}
	text, err := c.clip.ReadAll()
	if err != nil {
		c.logger.Warn("clipboard read failed", "err", err)
		return
	}
	c.PasteText(text)
}

// SelectAll selects the whole display. Display goroutine only.
func (c *Console) SelectAll() {
	c.buf.SelectAll()
}
