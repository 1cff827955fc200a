package keypad

// keyAtScreen maps terminal-absolute coordinates to a grid key.
//
// Coordinates are in terminal cells. The keypad cannot know where the
// host composed it, so hosts that draw it away from the origin must call
// SetPosition first; the frame border and padding are accounted for
// here. Rows are one cell tall, keys are separated by one-cell gaps.
func (m Model) keyAtScreen(x, y int) (row, col int, ok bool) {
	lay := m.layout()
	frame := m.cfg.Style.Frame

	x -= m.originX + frame.GetBorderLeftSize() + frame.GetPaddingLeft()
	y -= m.originY + frame.GetBorderTopSize() + frame.GetPaddingTop()
	if x < 0 || y < 0 || y >= len(lay.Rows) {
		return 0, 0, false
	}

	cellX := 0
	for ci, k := range lay.Rows[y] {
		w := lay.keyWidth(k)
		if x < cellX+w {
			return y, ci, true
		}
		// One-cell gap between keys is dead space.
		cellX += w + 1
		if x < cellX {
			return 0, 0, false
		}
	}
	return 0, 0, false
}
