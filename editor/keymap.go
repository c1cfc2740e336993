package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings the editor reacts to. Anything that does
// not match a binding and carries printable runes is inserted as text.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Backspace key.Binding
	Delete    key.Binding
	Enter     key.Binding
	Tab       key.Binding

	Undo    key.Binding
	Redo    key.Binding
	CutLine key.Binding
	Paste   key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "move left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "move right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "move up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move down")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		Undo:    key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		CutLine: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "cut line")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}
