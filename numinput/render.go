package numinput

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// View renders the field box: the raw text or a dimmed placeholder, a
// trailing block cursor when focused, padding out to the configured
// width, and the focused or blurred frame.
func (m Model) View() string {
	st := m.cfg.Style
	raw := m.st.Raw()

	var b strings.Builder
	used := 0
	switch {
	case raw == "" && !m.focused && m.cfg.Placeholder != "":
		b.WriteString(st.Placeholder.Render(m.cfg.Placeholder))
		used = runewidth.StringWidth(m.cfg.Placeholder)
	case raw != "":
		ts := st.Text
		if !m.st.Value().OK {
			ts = st.Incomplete
		}
		b.WriteString(ts.Render(raw))
		used = runewidth.StringWidth(raw)
	}
	if m.focused {
		b.WriteString(st.Cursor.Render(" "))
		used++
	}
	if pad := m.cfg.Width - used; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	frame := st.Frame
	if m.focused {
		frame = st.FocusedFrame
	}
	return frame.Render(b.String())
}
