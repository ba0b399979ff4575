// Package console implements an interactive console: program output is
// appended to an immutable log and a styled display, while a live input line
// at the tail of the display is edited by key events and handed to a
// blocking line reader.
//
// Three kinds of goroutines touch a Console. Producers call Print from
// anywhere. Exactly one display goroutine (the Loop) mutates the display and
// runs key handling. Readers block in ReadLine until a line is committed.
package console

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	clog "github.com/charmbracelet/log"

	"gconsole/internal/display"
	"gconsole/internal/system"
)

// ErrShutdown is returned by ReadLineContext once the console has shut down.
var ErrShutdown = errors.New("console: shut down")

const (
	DefaultTitle           = "Console"
	DefaultBackgroundColor = "white"
	DefaultErrorColor      = "red"
	DefaultOutputColor     = "black"
	UserInputColor         = "blue"

	completedTitleSuffix = " [completed]"
	clearedMarker        = "==================== (console cleared) ===================="
)

// Host is the part of the surrounding application the console calls back
// into for things it cannot do itself.
type Host interface {
	// Close closes the window hosting the console.
	Close()
	// SaveAs asks the user for a file name and then calls SaveAs on the console.
	SaveAs(suggested string)
	// ShowHelp displays keyboard help.
	ShowHelp()
	// CompareOutput shows expected output next to what the program printed.
	CompareOutput(expected, actual string)
}

// NopHost ignores every request.
type NopHost struct{}

func (NopHost) Close()                       {}
func (NopHost) SaveAs(string)                {}
func (NopHost) ShowHelp()                    {}
func (NopHost) CompareOutput(string, string) {}

// Options configures a Console. The zero value is usable.
type Options struct {
	// Stdout and Stderr receive echoed I/O. Default os.Stdout / os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Clipboard defaults to the system clipboard.
	Clipboard Clipboard
	// Host defaults to NopHost.
	Host Host
	// Logger defaults to system.Logger.
	Logger *clog.Logger
	// Title is the window title. Default "Console".
	Title string
	// ScriptDir is searched (with its input/ and output/ children) for
	// numbered input scripts. Default ".".
	ScriptDir string
	// CompareDelay is the pause before a numbered script's expected output
	// is compared. Default DefaultCompareDelay.
	CompareDelay time.Duration
	// Echo mirrors console I/O to Stdout/Stderr.
	Echo bool
	// DisableClear makes ClearConsole print a marker instead of clearing.
	DisableClear bool
	// DisableRichEditing appends every typed character at the end of the
	// input line instead of at the caret.
	DisableRichEditing bool
}

// View is what a renderer needs to draw the console.
type View struct {
	display.Snapshot
	Title        string
	Font         Font
	Background   string
	PromptActive bool
	Shutdown     bool
}

// Console is an interactive console. Construct one with New.
type Console struct {
	opts   Options
	logger *clog.Logger
	host   Host
	clip   Clipboard
	loop   *Loop

	// output lock: Output Log and bulk display appends
	outMu sync.Mutex
	log   strings.Builder

	// input lock: staging buffer, prompt flag and in-place edits
	inMu         sync.Mutex
	input        []rune
	promptActive bool

	// queue lock: script queue, submitted lines, history
	queueMu   sync.Mutex
	queueCond *sync.Cond
	script    []string
	lines     []string
	history   history

	// display goroutine only
	buf      *display.Buffer
	lastSave string

	styleMu     sync.RWMutex
	font        Font
	background  string
	outputColor string
	errorColor  string
	title       string

	echoMu sync.Mutex
	stdout *bufio.Writer
	stderr *bufio.Writer

	shutdown     atomic.Bool
	eof          atomic.Bool
	echo         atomic.Bool
	clearEnabled atomic.Bool
	locked       atomic.Bool

	obsMu     sync.Mutex
	observers []func(View)
}

// New creates a console and starts its display goroutine. Call Stop when
// the console is no longer needed.
func New(opts Options) *Console {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	if opts.Host == nil {
		opts.Host = NopHost{}
	}
	if opts.Logger == nil {
		opts.Logger = system.Logger
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.ScriptDir == "" {
		opts.ScriptDir = "."
	}
	c := &Console{
		opts:        opts,
		logger:      opts.Logger.WithPrefix("console"),
		host:        opts.Host,
		clip:        opts.Clipboard,
		buf:         display.New(),
		history:     newHistory(),
		font:        DefaultFont(),
		background:  DefaultBackgroundColor,
		outputColor: DefaultOutputColor,
		errorColor:  DefaultErrorColor,
		title:       opts.Title,
		stdout:      bufio.NewWriter(opts.Stdout),
		stderr:      bufio.NewWriter(opts.Stderr),
	}
	c.queueCond = sync.NewCond(&c.queueMu)
	c.echo.Store(opts.Echo)
	c.clearEnabled.Store(!opts.DisableClear)
	c.loop = NewLoop(c.notify)
	return c
}

// Stop ends the display goroutine. Pending display work is drained first.
func (c *Console) Stop() { c.loop.Stop() }

// Post runs fn on the display goroutine without waiting.
func (c *Console) Post(fn func()) { c.loop.Post(fn) }

// Do runs fn on the display goroutine and waits for it to finish.
func (c *Console) Do(fn func()) { c.loop.Do(fn) }

// Flush waits until all display work posted so far has run.
func (c *Console) Flush() { c.loop.Flush() }

// OnRender registers fn to receive a View after each batch of display work.
// fn runs on the display goroutine.
func (c *Console) OnRender(fn func(View)) {
	c.obsMu.Lock()
	c.observers = append(c.observers, fn)
	c.obsMu.Unlock()
	c.loop.Post(func() {})
}

// Refresh asks observers to redraw.
func (c *Console) Refresh() { c.loop.Post(func() {}) }

// View snapshots the console. Display goroutine only.
func (c *Console) View() View {
	c.inMu.Lock()
	prompt := c.promptActive
	c.inMu.Unlock()
	c.styleMu.RLock()
	defer c.styleMu.RUnlock()
	return View{
		Snapshot:     c.buf.Snapshot(),
		Title:        c.title,
		Font:         c.font,
		Background:   c.background,
		PromptActive: prompt,
		Shutdown:     c.shutdown.Load(),
	}
}

func (c *Console) notify() {
	c.obsMu.Lock()
	obs := append([]func(View){}, c.observers...)
	c.obsMu.Unlock()
	if len(obs) == 0 {
		return
	}
	v := c.View()
	for _, fn := range obs {
		fn(v)
	}
}

// Title returns the window title.
func (c *Console) Title() string {
	c.styleMu.RLock()
	defer c.styleMu.RUnlock()
	return c.title
}

// IsShutdown reports whether Shutdown has been called.
func (c *Console) IsShutdown() bool { return c.shutdown.Load() }

// PromptActive reports whether a reader is waiting for a line.
func (c *Console) PromptActive() bool {
	c.inMu.Lock()
	defer c.inMu.Unlock()
	return c.promptActive
}

// Echo reports whether I/O is mirrored to the real streams.
func (c *Console) Echo() bool { return c.echo.Load() }

// ClearEnabled reports whether ClearConsole really clears.
func (c *Console) ClearEnabled() bool { return c.clearEnabled.Load() }

// Locked reports whether behavior toggles are frozen.
func (c *Console) Locked() bool { return c.locked.Load() }

func (c *Console) frozen() bool { return c.locked.Load() || c.shutdown.Load() }

// SetEcho toggles echo. No-op once locked or shut down.
func (c *Console) SetEcho(v bool) {
	if c.frozen() {
		return
	}
	c.echo.Store(v)
}

// SetClearEnabled toggles clearing. No-op once locked or shut down.
func (c *Console) SetClearEnabled(v bool) {
	if c.frozen() {
		return
	}
	c.clearEnabled.Store(v)
}

// SetLocked freezes the behavior toggles. No-op once locked or shut down.
func (c *Console) SetLocked(v bool) {
	if c.frozen() {
		return
	}
	c.locked.Store(v)
}

// Shutdown permanently disables input and output. Blocked readers return
// an empty line.
func (c *Console) Shutdown() {
	c.flushEcho()
	if c.shutdown.Swap(true) {
		return
	}
	c.styleMu.Lock()
	if !strings.Contains(c.title, completedTitleSuffix) {
		c.title += completedTitleSuffix
	}
	c.styleMu.Unlock()
	c.wakeReaders()
	c.loop.Post(func() {})
	c.logger.Debug("console shut down")
}

// Close shuts the console down and asks the host to close its window.
func (c *Console) Close() {
	c.Shutdown()
	c.host.Close()
}
