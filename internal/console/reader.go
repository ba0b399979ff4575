package console

import (
	"context"
	"io"
)

// ReadLine blocks until a line is available and returns it without the
// trailing newline. It returns "" on shutdown or end of input.
func (c *Console) ReadLine() string {
	line, _ := c.ReadLineContext(context.Background())
	return line
}

// ReadLineContext is ReadLine with cancellation. The error is ErrShutdown,
// io.EOF or ctx.Err() when no line was read.
func (c *Console) ReadLineContext(ctx context.Context) (string, error) {
	if c.shutdown.Load() {
		return "", ErrShutdown
	}
	c.beginPrompt()
	line, err := c.waitLine(ctx)
	c.endPrompt()
	if err != nil {
		return "", err
	}
	if c.echo.Load() {
		c.echoLine(line)
	}
	return line, nil
}

func (c *Console) beginPrompt() {
	c.inMu.Lock()
	c.promptActive = true
	c.inMu.Unlock()
	c.loop.Post(func() {
		c.buf.MoveCaretToEnd()
		c.buf.ScrollToBottom()
		c.buf.RequestFocus()
	})
}

func (c *Console) endPrompt() {
	c.inMu.Lock()
	c.promptActive = false
	c.inMu.Unlock()
	c.loop.Post(func() {
		c.inMu.Lock()
		defer c.inMu.Unlock()
		// an empty region left behind by the prompt is dropped; typed
		// ahead text keeps its region for the next prompt
		if len(c.input) == 0 {
			c.buf.CloseRegion()
		}
		c.buf.ScrollToBottom()
	})
}

// waitLine takes the next script line, else the next committed line.
// Shutdown and end of input are checked on every wake.
func (c *Console) waitLine(ctx context.Context) (string, error) {
	stop := context.AfterFunc(ctx, c.wakeReaders)
	defer stop()

	c.queueMu.Lock()
	defer c.queueMu.Unlock()
	for {
		if c.shutdown.Load() {
			return "", ErrShutdown
		}
		if c.eof.Load() {
			return "", io.EOF
		}
		if len(c.script) > 0 {
			line := c.script[0]
			c.script = c.script[1:]
			c.echoScriptLine(line)
			return line, nil
		}
		if len(c.lines) > 0 {
			line := c.lines[0]
			c.lines = c.lines[1:]
			return line, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		c.queueCond.Wait()
	}
}

// echoScriptLine shows a script line as if it had been typed and committed.
func (c *Console) echoScriptLine(line string) {
	c.loop.Post(func() {
		c.outMu.Lock()
		defer c.outMu.Unlock()
		c.log.WriteString(line + "\n")
		c.buf.Append(line+"\n", inputStyle())
		c.buf.MoveCaretToEnd()
		c.buf.ScrollToBottom()
	})
}

func (c *Console) wakeReaders() {
	c.queueMu.Lock()
	c.queueCond.Broadcast()
	c.queueMu.Unlock()
}

// SetEOF signals end of input. Waiting and future readers return io.EOF
// until ClearEOF.
func (c *Console) SetEOF() {
	c.eof.Store(true)
	c.wakeReaders()
}

// EOF reports whether end of input has been signalled.
func (c *Console) EOF() bool { return c.eof.Load() }

// ClearEOF re-enables reading after SetEOF.
func (c *Console) ClearEOF() { c.eof.Store(false) }
