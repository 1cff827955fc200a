package keypad

import (
	"strconv"

	"github.com/jkxr/tenkey/field"
)

// Op is the routed operation a key press produces.
type Op uint8

const (
	OpNone Op = iota
	OpDigit
	OpSeparator
	OpBackspace
	OpClear
	OpSign
	OpText
)

// Key is one keypad cell. Wide keys span multiple cells, swallowing the
// gaps between them.
type Key struct {
	Label string
	Op    Op
	Digit int    // OpDigit payload
	Text  string // OpText payload
	Wide  int    // cell-span factor, 0 and 1 mean a single cell
}

// Layout is a keypad grid. Rows may be ragged; navigation clamps the
// column when moving between rows of different lengths.
type Layout struct {
	Rows      [][]Key
	CellWidth int
}

func digitKey(d int) Key { return Key{Label: strconv.Itoa(d), Op: OpDigit, Digit: d} }

func charKey(s string) Key { return Key{Label: s, Op: OpText, Text: s} }

func wide(k Key, span int) Key {
	k.Wide = span
	return k
}

var (
	backspaceKey = Key{Label: "⌫", Op: OpBackspace}
	clearKey     = Key{Label: "C", Op: OpClear}
	signKey      = Key{Label: "±", Op: OpSign}
)

// NumericLayout is the integer pad: digits, backspace, clear, and sign.
func NumericLayout() Layout {
	return Layout{
		CellWidth: 5,
		Rows: [][]Key{
			{digitKey(7), digitKey(8), digitKey(9), backspaceKey},
			{digitKey(4), digitKey(5), digitKey(6), clearKey},
			{digitKey(1), digitKey(2), digitKey(3), signKey},
			{wide(digitKey(0), 4)},
		},
	}
}

// DecimalLayout is the numeric pad plus a separator key carrying the
// field's configured separator as its label.
func DecimalLayout(sep string) Layout {
	if sep == "" {
		sep = "."
	}
	return Layout{
		CellWidth: 5,
		Rows: [][]Key{
			{digitKey(7), digitKey(8), digitKey(9), backspaceKey},
			{digitKey(4), digitKey(5), digitKey(6), clearKey},
			{digitKey(1), digitKey(2), digitKey(3), signKey},
			{wide(digitKey(0), 3), Key{Label: sep, Op: OpSeparator}},
		},
	}
}

// TextLayout is a minimal character keyboard: digits, three letter rows,
// space, backspace, and clear.
func TextLayout() Layout {
	row := func(chars string) []Key {
		keys := make([]Key, 0, len(chars))
		for _, c := range chars {
			keys = append(keys, charKey(string(c)))
		}
		return keys
	}

	digits := make([]Key, 0, 10)
	for _, d := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0} {
		digits = append(digits, digitKey(d))
	}

	return Layout{
		CellWidth: 5,
		Rows: [][]Key{
			digits,
			row("qwertyuiop"),
			row("asdfghjkl"),
			append(row("zxcvbnm"), backspaceKey),
			{wide(Key{Label: "space", Op: OpText, Text: " "}, 5), clearKey},
		},
	}
}

// LayoutFor returns the keypad layout for a field kind.
func LayoutFor(kind field.Kind, sep string) Layout {
	switch kind {
	case field.Decimal:
		return DecimalLayout(sep)
	case field.Text:
		return TextLayout()
	default:
		return NumericLayout()
	}
}

// keyAt returns the key at (row, col), clamped into the grid. The zero
// Key (OpNone) comes back for an empty layout.
func (l Layout) keyAt(row, col int) Key {
	if len(l.Rows) == 0 {
		return Key{}
	}
	row, col = l.clamp(row, col)
	return l.Rows[row][col]
}

func (l Layout) clamp(row, col int) (int, int) {
	if len(l.Rows) == 0 {
		return 0, 0
	}
	if row < 0 {
		row = 0
	}
	if row >= len(l.Rows) {
		row = len(l.Rows) - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= len(l.Rows[row]) {
		col = len(l.Rows[row]) - 1
	}
	return row, col
}

func (l Layout) moveUp(row, col int) (int, int) {
	row--
	if row < 0 {
		row = len(l.Rows) - 1
	}
	if col >= len(l.Rows[row]) {
		col = len(l.Rows[row]) - 1
	}
	return row, col
}

func (l Layout) moveDown(row, col int) (int, int) {
	row++
	if row >= len(l.Rows) {
		row = 0
	}
	if col >= len(l.Rows[row]) {
		col = len(l.Rows[row]) - 1
	}
	return row, col
}

func (l Layout) moveLeft(row, col int) (int, int) {
	col--
	if col < 0 {
		col = len(l.Rows[row]) - 1
	}
	return row, col
}

func (l Layout) moveRight(row, col int) (int, int) {
	col++
	if col >= len(l.Rows[row]) {
		col = 0
	}
	return row, col
}

// keyWidth is the rendered cell width of k, gaps included for wide keys.
func (l Layout) keyWidth(k Key) int {
	span := k.Wide
	if span < 1 {
		span = 1
	}
	return span*l.CellWidth + (span - 1)
}
