package console

import (
	"strings"

	"gconsole/internal/display"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return lineEndings.Replace(s)
}

// Print appends text to the output log and the display. isErr selects the
// error color. Safe for concurrent use; it never waits for the display.
func (c *Console) Print(text string, isErr bool) {
	if c.shutdown.Load() {
		return
	}
	if c.echo.Load() {
		c.echoOutput(text, isErr)
	}
	text = normalizeNewlines(text)
	c.loop.Post(func() {
		st := display.Style{Color: c.OutputColor()}
		if isErr {
			st.Color = c.ErrorColor()
		}
		c.outMu.Lock()
		defer c.outMu.Unlock()
		c.log.WriteString(text)
		c.buf.Append(text, st)
		c.buf.MoveCaretToEnd()
		c.buf.ScrollToBottom()
	})
}

// Println is Print with a trailing newline.
func (c *Console) Println(text string, isErr bool) {
	c.Print(text+"\n", isErr)
}

// AllOutput returns everything printed or committed so far, including text
// no longer shown because the display was cleared.
func (c *Console) AllOutput() string {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	return c.log.String()
}

// ClearConsole clears the display, keeping the output log. When clearing is
// disabled a marker line is printed instead.
func (c *Console) ClearConsole() {
	if c.shutdown.Load() {
		return
	}
	if !c.clearEnabled.Load() {
		c.Println(clearedMarker, false)
		return
	}
	if c.echo.Load() {
		c.echoMu.Lock()
		c.stdout.WriteString(clearedMarker + "\n")
		c.stdout.Flush()
		c.echoMu.Unlock()
	}
	c.loop.Post(func() {
		c.inMu.Lock()
		defer c.inMu.Unlock()
		c.outMu.Lock()
		defer c.outMu.Unlock()
		c.buf.Clear()
	})
}

// echoOutput writes text to the real stream, flushing around newlines so
// stdout and stderr interleave in call order.
func (c *Console) echoOutput(text string, isErr bool) {
	c.echoMu.Lock()
	defer c.echoMu.Unlock()
	own, other := c.stdout, c.stderr
	if isErr {
		own, other = c.stderr, c.stdout
	}
	other.Flush()
	own.Flush()
	own.WriteString(text)
	if strings.Contains(text, "\n") {
		own.Flush()
		other.Flush()
	}
}

func (c *Console) echoLine(line string) {
	c.echoMu.Lock()
	defer c.echoMu.Unlock()
	c.stdout.WriteString(line + "\n")
	c.stdout.Flush()
}

func (c *Console) flushEcho() {
	c.echoMu.Lock()
	defer c.echoMu.Unlock()
	c.stdout.Flush()
	c.stderr.Flush()
}
