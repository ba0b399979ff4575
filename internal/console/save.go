package console

import (
	"fmt"
	"os"
)

// Save writes the display text to the last used file. Without one the host
// is asked for a name. Display goroutine only.
func (c *Console) Save() {
	if c.lastSave == "" {
		c.host.SaveAs("")
		return
	}
	if err := c.SaveAs(c.lastSave); err != nil {
		c.logger.Warn("save failed", "path", c.lastSave, "err", err)
	}
}

// SaveAs writes the display text to path and remembers it for Save.
// Display goroutine only.
func (c *Console) SaveAs(path string) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(c.buf.Text()), 0o644); err != nil {
		return fmt.Errorf("save console: %w", err)
	}
	c.lastSave = path
	c.logger.Debug("console saved", "path", path)
	return nil
}

// LastSave returns the file used by the last successful SaveAs.
func (c *Console) LastSave() string { return c.lastSave }
