package keypad

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keypad key bindings: grid navigation plus direct
// typing that bypasses the grid and goes straight to the router.
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	Press                 key.Binding

	Digits    key.Binding
	Separator key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Sign      key.Binding

	NextField, PrevField key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "press key")),

		Digits:    key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digit")),
		Separator: key.NewBinding(key.WithKeys(".", ","), key.WithHelp("./,", "decimal separator")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Sign:      key.NewBinding(key.WithKeys("-", "+"), key.WithHelp("-", "toggle sign")),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	}
}

func (km KeyMap) empty() bool { return len(km.Press.Keys()) == 0 }
