package numinput

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jkxr/tenkey/field"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if key.Type == tea.KeyRunes && key.Paste && len(key.Runes) > 0 {
		m.paste(string(key.Runes))
		return m, nil
	}

	switch key.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.st.Backspace()
	case tea.KeyCtrlU:
		m.st.Clear()
	case tea.KeySpace:
		if m.st.Kind() == field.Text {
			m.st.AppendText(" ")
		}
	case tea.KeyRunes:
		if !key.Alt {
			for _, c := range key.Runes {
				m.typeRune(c)
			}
		}
	}
	return m, nil
}

// typeRune maps one typed character onto a state operation. Characters
// a field cannot take fall through as no-ops.
func (m Model) typeRune(c rune) {
	if m.st.Kind() == field.Text {
		m.st.AppendText(string(c))
		return
	}
	switch {
	case c >= '0' && c <= '9':
		m.st.AppendDigit(int(c - '0'))
	case c == '-' || c == '+':
		m.st.ToggleSign()
	case string(c) == m.st.DecimalSeparator(), c == '.', c == ',':
		m.st.InsertSeparator()
	}
}

// paste replays pasted text as keystrokes with a leading minus applied
// last, so negative amounts land as typed.
func (m Model) paste(s string) {
	if m.st.Kind() == field.Text {
		m.st.AppendText(s)
		return
	}
	negative := strings.HasPrefix(strings.TrimSpace(s), "-")
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			m.st.AppendDigit(int(c - '0'))
		case string(c) == m.st.DecimalSeparator(), c == '.', c == ',':
			m.st.InsertSeparator()
		}
	}
	if negative {
		m.st.ToggleSign()
	}
}
