package console

import (
	"context"
	"errors"
	"io"
	"sync"
	"unicode/utf8"
)

// StreamWriter adapts Print to io.Writer. Incomplete UTF-8 sequences and a
// trailing '\r' are held until the next Write or Flush so that multi-byte
// characters and "\r\n" pairs split across writes print correctly.
type StreamWriter struct {
	c     *Console
	isErr bool

	mu      sync.Mutex
	pending []byte
}

// Writer returns an io.Writer printing to the console, in the error color
// when isErr is set.
func (c *Console) Writer(isErr bool) *StreamWriter {
	return &StreamWriter{c: c, isErr: isErr}
}

// Write prints p. It never fails; output after shutdown is dropped.
func (w *StreamWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	buf := append(w.pending, p...)
	cut := len(buf)
	if cut > 0 && buf[cut-1] == '\r' {
		cut--
	}
	cut = completeUTF8(buf[:cut])
	if cut > 0 {
		w.c.Print(string(buf[:cut]), w.isErr)
	}
	w.pending = append([]byte(nil), buf[cut:]...)
	return len(p), nil
}

// Flush prints anything held back.
func (w *StreamWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) > 0 {
		w.c.Print(string(w.pending), w.isErr)
		w.pending = nil
	}
	return nil
}

// completeUTF8 returns the length of the longest prefix of b that does not
// end inside a multi-byte sequence.
func completeUTF8(b []byte) int {
	n := len(b)
	for i := 1; i < utf8.UTFMax && i <= n; i++ {
		r := b[n-i]
		if r < utf8.RuneSelf {
			return n
		}
		if utf8.RuneStart(r) {
			if !utf8.FullRune(b[n-i:]) {
				return n - i
			}
			return n
		}
	}
	return n
}

// StreamReader adapts ReadLine to io.Reader. Each line is delivered with a
// trailing '\n'.
type StreamReader struct {
	c   *Console
	ctx context.Context

	mu      sync.Mutex
	pending []byte
}

// Reader returns an io.Reader fed by ReadLine. It reports io.EOF once the
// console shuts down or end of input is signalled.
func (c *Console) Reader() *StreamReader {
	return c.ReaderContext(context.Background())
}

// ReaderContext is Reader bound to ctx.
func (c *Console) ReaderContext(ctx context.Context) *StreamReader {
	return &StreamReader{c: c, ctx: ctx}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(p) == 0 {
		return 0, nil
	}
	if len(r.pending) == 0 {
		line, err := r.c.ReadLineContext(r.ctx)
		if errors.Is(err, ErrShutdown) || errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		r.pending = []byte(line + "\n")
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}
