package console

// KeyCode identifies a key independently of any GUI toolkit.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyEscape
	KeyClear
	KeyHelp
	KeyModifier // shift, ctrl, alt, caps lock and friends pressed alone
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta // command key
)

// Has reports whether all of m2 are held.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// Key is one key press.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifiers
}

// Rune returns a plain character key.
func Rune(r rune) Key { return Key{Code: KeyRune, Rune: r} }

// Ctrl returns Ctrl plus a character.
func Ctrl(r rune) Key { return Key{Code: KeyRune, Rune: r, Mod: ModCtrl} }

func (k Key) ctrlOrCmd() bool { return k.Mod&(ModCtrl|ModMeta) != 0 }

func (k Key) shift() bool { return k.Mod.Has(ModShift) }

func (k Key) isFunctionKey() bool { return k.Code >= KeyF1 && k.Code <= KeyF12 }

// SendKey posts k to the display goroutine. The returned channel receives
// HandleKey's result once the key has been handled; false means the host
// should apply its own handling.
func (c *Console) SendKey(k Key) <-chan bool {
	done := make(chan bool, 1)
	c.loop.Post(func() { done <- c.HandleKey(k) })
	return done
}

// SendPaste posts text to be typed as if pasted.
func (c *Console) SendPaste(text string) {
	c.loop.Post(func() { c.PasteText(text) })
}

// HandleKey dispatches one key press and reports whether it was consumed.
// Unconsumed keys (page up/down, lone modifiers, unhandled arrows) are left
// to the host's default handling. Display goroutine only.
func (c *Console) HandleKey(k Key) bool {
	if k.ctrlOrCmd() {
		if c.handleShortcut(k) {
			return true
		}
	}
	if c.shutdown.Load() {
		return false
	}
	if k.ctrlOrCmd() || k.Mod.Has(ModAlt) {
		return false
	}

	switch k.Code {
	case KeyPageUp, KeyPageDown, KeyModifier, KeyTab, KeyClear:
		return false
	case KeyBackspace:
		c.processBackspace(true)
		return true
	case KeyDelete:
		if k.shift() {
			c.ClipboardCut()
		} else {
			c.processBackspace(false)
		}
		return true
	case KeyInsert:
		if k.shift() {
			c.ClipboardPaste()
		}
		return true
	case KeyHome, KeyEnd:
		c.moveToInputEdge(k.Code == KeyEnd, k.shift())
		return true
	case KeyLeft:
		return c.moveCaret(-1, k.shift())
	case KeyRight:
		return c.moveCaret(1, k.shift())
	case KeyUp, KeyDown:
		if !c.IsCursorInUserInputArea() {
			return false
		}
		if k.Code == KeyUp {
			c.ProcessCommandHistory(-1)
		} else {
			c.ProcessCommandHistory(1)
		}
		return true
	case KeyF1:
		c.host.ShowHelp()
		return true
	case KeyHelp:
		return true
	case KeyEscape:
		return false
	case KeyEnter:
		c.processEnter()
		return true
	case KeyRune:
		c.processUserInputKey(k.Rune)
		return true
	}
	if k.isFunctionKey() {
		return true
	}
	return false
}

// handleShortcut runs Ctrl/Cmd combinations. Copy works even after
// shutdown; everything that edits checks the latch itself.
func (c *Console) handleShortcut(k Key) bool {
	if k.Code == KeyInsert {
		c.ClipboardCopy()
		return true
	}
	if k.Code != KeyRune {
		return false
	}
	switch r := lower(k.Rune); {
	case r == '+' || r == '=':
		c.setFont(c.Font().WithSize(1))
	case r == '-':
		c.setFont(c.Font().WithSize(-1))
	case r == '0':
		c.setFont(DefaultFont())
	case r >= '1' && r <= '9':
		c.LoadNumberedScript(int(r - '0'))
	case r == 'c':
		c.ClipboardCopy()
	case r == 'd':
		c.processEOF()
	case r == 'l':
		c.ClearConsole()
	case r == 'q' || r == 'w':
		c.Close()
	case r == 's':
		if k.shift() || k.Rune == 'S' {
			c.host.SaveAs(c.lastSave)
		} else {
			c.Save()
		}
	case r == 'v':
		c.ClipboardPaste()
	case r == 'x':
		c.ClipboardCut()
	case r == 'a':
		c.SelectAll()
	default:
		return false
	}
	return true
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
