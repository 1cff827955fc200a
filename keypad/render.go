package keypad

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jkxr/tenkey/field"
)

// View renders the grid for the bound field's layout. Keys the bound
// field cannot use are drawn with the disabled style; with no bound
// field the whole pad is disabled.
func (m Model) View() string {
	lay := m.layout()
	st := m.cfg.Style
	target := m.cfg.Router.Active()
	row, col := lay.clamp(m.row, m.col)

	lines := make([]string, 0, len(lay.Rows))
	for ri, keys := range lay.Rows {
		var b strings.Builder
		for ci, k := range keys {
			if ci > 0 {
				b.WriteByte(' ')
			}
			label := padLabel(k.Label, lay.keyWidth(k))
			switch {
			case m.focused && ri == row && ci == col:
				b.WriteString(st.Selected.Render(label))
			case keyDisabled(k, target):
				b.WriteString(st.Disabled.Render(label))
			default:
				b.WriteString(st.Key.Render(label))
			}
		}
		lines = append(lines, b.String())
	}
	return st.Frame.Render(strings.Join(lines, "\n"))
}

// padLabel centers label in a cell of the given width. Labels wider than
// the cell are truncated.
func padLabel(label string, width int) string {
	w := runewidth.StringWidth(label)
	if w > width {
		return runewidth.Truncate(label, width, "")
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", right)
}

// keyDisabled reports whether k cannot produce an effective edit on the
// bound target. Disabled keys still dispatch when pressed, the field
// declines them on its own; this only picks the style.
func keyDisabled(k Key, t field.Target) bool {
	if t == nil {
		return true
	}
	switch k.Op {
	case OpSeparator:
		return !t.AllowsDecimal()
	case OpSign:
		return !t.AllowsNegative()
	}
	return false
}
