package console

import "gconsole/internal/display"

func inputStyle() display.Style {
	return display.Style{Color: UserInputColor, Bold: true}
}

// Font returns the current font.
func (c *Console) Font() Font {
	c.styleMu.RLock()
	defer c.styleMu.RUnlock()
	return c.font
}

// SetFont sets the font from a "Family-Size[-Weight]" string. Unparsable
// fonts are logged and ignored.
func (c *Console) SetFont(s string) {
	f, err := ParseFont(s)
	if err != nil {
		c.logger.Warn("ignoring font", "font", s, "err", err)
		return
	}
	c.setFont(f)
}

func (c *Console) setFont(f Font) {
	c.styleMu.Lock()
	c.font = f
	c.styleMu.Unlock()
	c.Refresh()
}

// Background returns the background color.
func (c *Console) Background() string {
	c.styleMu.RLock()
	defer c.styleMu.RUnlock()
	return c.background
}

// SetBackground sets the background color.
func (c *Console) SetBackground(color string) {
	if color == "" {
		return
	}
	c.styleMu.Lock()
	c.background = color
	c.styleMu.Unlock()
	c.Refresh()
}

// OutputColor returns the color of normal output.
func (c *Console) OutputColor() string {
	c.styleMu.RLock()
	defer c.styleMu.RUnlock()
	return c.outputColor
}

// SetOutputColor sets the output color and re-applies it to everything on
// screen. This also recolors a live input line.
func (c *Console) SetOutputColor(color string) {
	if color == "" {
		return
	}
	c.styleMu.Lock()
	c.outputColor = color
	c.styleMu.Unlock()
	c.loop.Post(func() {
		c.inMu.Lock()
		defer c.inMu.Unlock()
		c.outMu.Lock()
		defer c.outMu.Unlock()
		c.buf.Recolor(color)
		c.buf.MoveCaretToEnd()
	})
}

// ErrorColor returns the color of error output.
func (c *Console) ErrorColor() string {
	c.styleMu.RLock()
	defer c.styleMu.RUnlock()
	return c.errorColor
}

// SetErrorColor sets the color used for future error output.
func (c *Console) SetErrorColor(color string) {
	if color == "" {
		return
	}
	c.styleMu.Lock()
	c.errorColor = color
	c.styleMu.Unlock()
}
