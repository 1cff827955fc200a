package keypad

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jkxr/tenkey/field"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.pasteText(string(msg.Runes))
		return m, nil
	}

	lay := m.layout()
	m.row, m.col = lay.clamp(m.row, m.col)

	km := m.cfg.KeyMap
	r := m.cfg.Router

	switch {
	case key.Matches(msg, km.NextField):
		r.Next()
	case key.Matches(msg, km.PrevField):
		r.Prev()

	case key.Matches(msg, km.Up):
		m.row, m.col = lay.moveUp(m.row, m.col)
	case key.Matches(msg, km.Down):
		m.row, m.col = lay.moveDown(m.row, m.col)
	case key.Matches(msg, km.Left):
		m.row, m.col = lay.moveLeft(m.row, m.col)
	case key.Matches(msg, km.Right):
		m.row, m.col = lay.moveRight(m.row, m.col)

	case key.Matches(msg, km.Press):
		// The text layout needs the space bar for typing, so enter alone
		// presses the selected key there.
		if msg.Type == tea.KeySpace && m.activeKind() == field.Text {
			r.SendText(" ")
		} else {
			m.press(lay.keyAt(m.row, m.col))
		}

	case key.Matches(msg, km.Backspace):
		r.SendBackspace()
	case key.Matches(msg, km.Clear):
		r.SendClear()

	default:
		m.updateTyping(msg)
	}

	return m, nil
}

// updateTyping relays physical typing past the grid: characters for text
// fields, digit, sign, and separator keys for numeric ones.
func (m Model) updateTyping(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	r := m.cfg.Router

	if m.activeKind() == field.Text {
		if msg.Type == tea.KeySpace {
			r.SendText(" ")
			return
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			r.SendText(string(msg.Runes))
		}
		return
	}

	switch {
	case key.Matches(msg, km.Digits):
		if d, ok := digitFor(msg); ok {
			r.SendDigit(d)
		}
	case key.Matches(msg, km.Sign):
		r.SendToggleSign()
	case key.Matches(msg, km.Separator):
		r.SendSeparator()
	}
}

// pasteText replays pasted text as routed operations. Numeric fields take
// digits and separators in order with a leading minus applied last, so
// "-12.5" lands as typed.
func (m Model) pasteText(s string) {
	r := m.cfg.Router

	if m.activeKind() == field.Text {
		r.SendText(s)
		return
	}

	sep := "."
	if t := r.Active(); t != nil {
		sep = t.DecimalSeparator()
	}

	negative := strings.HasPrefix(strings.TrimSpace(s), "-")
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			r.SendDigit(int(c - '0'))
		case string(c) == sep, c == '.', c == ',':
			r.SendSeparator()
		}
	}
	if negative {
		r.SendToggleSign()
	}
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	row, col, ok := m.keyAtScreen(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.row, m.col = row, col
	m.press(m.layout().keyAt(row, col))
	return m, nil
}

func digitFor(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}
