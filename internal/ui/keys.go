package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gconsole/internal/console"
)

// keyMap documents the console shortcuts as the terminal delivers them.
// The console itself decides what each key does; these bindings drive the
// help overlay and the few keys the UI keeps for itself.
type keyMap struct {
	Copy      key.Binding
	Paste     key.Binding
	Cut       key.Binding
	SelectAll key.Binding
	Clear     key.Binding
	Save      key.Binding
	SaveAs    key.Binding
	EOF       key.Binding
	Quit      key.Binding
	FontUp    key.Binding
	FontDown  key.Binding
	FontReset key.Binding
	Script    key.Binding
	History   key.Binding
	Scroll    key.Binding
	Help      key.Binding
	Dismiss   key.Binding
}

var keys = keyMap{
	Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy selection")),
	Paste:     key.NewBinding(key.WithKeys("ctrl+v", "shift+insert"), key.WithHelp("ctrl+v", "paste as typed input")),
	Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut selection inside the input line")),
	SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
	Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear console")),
	Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save console text")),
	SaveAs:    key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "save as…")),
	EOF:       key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "end of input (empty line only)")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+q", "ctrl+w"), key.WithHelp("ctrl+q", "close console")),
	FontUp:    key.NewBinding(key.WithKeys("alt+=", "alt++"), key.WithHelp("alt+=", "font larger")),
	FontDown:  key.NewBinding(key.WithKeys("alt+-"), key.WithHelp("alt+-", "font smaller")),
	FontReset: key.NewBinding(key.WithKeys("alt+0"), key.WithHelp("alt+0", "reset font")),
	Script:    key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"), key.WithHelp("alt+1…9", "load input-N script and compare output")),
	History:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "recall previous input")),
	Scroll:    key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "this help")),
	Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close overlay")),
}

func (k keyMap) all() []key.Binding {
	return []key.Binding{
		k.Copy, k.Paste, k.Cut, k.SelectAll, k.Clear, k.Save, k.SaveAs, k.EOF, k.Quit,
		k.FontUp, k.FontDown, k.FontReset, k.Script, k.History, k.Scroll, k.Help, k.Dismiss,
	}
}

// translateKey maps a terminal key to the console key model. Terminals
// cannot report Ctrl with digits or punctuation, so Alt stands in for the
// Cmd modifier there; alt+s is save-as.
func translateKey(msg tea.KeyMsg) (console.Key, bool) {
	var mod console.Modifiers
	if msg.Alt {
		mod |= console.ModMeta
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return console.Key{}, false
		}
		r := msg.Runes[0]
		if msg.Alt && (r == 's' || r == 'S') {
			mod |= console.ModShift
		}
		return console.Key{Code: console.KeyRune, Rune: r, Mod: mod}, true
	case tea.KeySpace:
		return console.Key{Code: console.KeyRune, Rune: ' ', Mod: mod}, true
	case tea.KeyEnter:
		return console.Key{Code: console.KeyEnter, Mod: mod}, true
	case tea.KeyTab:
		return console.Key{Code: console.KeyTab, Mod: mod}, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return console.Key{Code: console.KeyBackspace, Mod: mod}, true
	case tea.KeyDelete:
		return console.Key{Code: console.KeyDelete, Mod: mod}, true
	case tea.KeyInsert:
		return console.Key{Code: console.KeyInsert, Mod: mod}, true
	case tea.KeyEsc:
		return console.Key{Code: console.KeyEscape, Mod: mod}, true
	case tea.KeyUp:
		return console.Key{Code: console.KeyUp, Mod: mod}, true
	case tea.KeyDown:
		return console.Key{Code: console.KeyDown, Mod: mod}, true
	case tea.KeyLeft:
		return console.Key{Code: console.KeyLeft, Mod: mod}, true
	case tea.KeyRight:
		return console.Key{Code: console.KeyRight, Mod: mod}, true
	case tea.KeyShiftLeft:
		return console.Key{Code: console.KeyLeft, Mod: mod | console.ModShift}, true
	case tea.KeyShiftRight:
		return console.Key{Code: console.KeyRight, Mod: mod | console.ModShift}, true
	case tea.KeyHome:
		return console.Key{Code: console.KeyHome, Mod: mod}, true
	case tea.KeyEnd:
		return console.Key{Code: console.KeyEnd, Mod: mod}, true
	case tea.KeyShiftHome:
		return console.Key{Code: console.KeyHome, Mod: mod | console.ModShift}, true
	case tea.KeyShiftEnd:
		return console.Key{Code: console.KeyEnd, Mod: mod | console.ModShift}, true
	case tea.KeyPgUp:
		return console.Key{Code: console.KeyPageUp, Mod: mod}, true
	case tea.KeyPgDown:
		return console.Key{Code: console.KeyPageDown, Mod: mod}, true
	}
	if code, ok := functionKeys[msg.Type]; ok {
		return console.Key{Code: code, Mod: mod}, true
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return console.Key{Code: console.KeyRune, Rune: r, Mod: mod | console.ModCtrl}, true
	}
	return console.Key{}, false
}

var functionKeys = map[tea.KeyType]console.KeyCode{
	tea.KeyF1: console.KeyF1, tea.KeyF2: console.KeyF2, tea.KeyF3: console.KeyF3,
	tea.KeyF4: console.KeyF4, tea.KeyF5: console.KeyF5, tea.KeyF6: console.KeyF6,
	tea.KeyF7: console.KeyF7, tea.KeyF8: console.KeyF8, tea.KeyF9: console.KeyF9,
	tea.KeyF10: console.KeyF10, tea.KeyF11: console.KeyF11, tea.KeyF12: console.KeyF12,
}
