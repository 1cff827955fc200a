package keypad

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jkxr/tenkey/field"
)

// Model is a Bubble Tea component rendering an on-screen keypad for the
// router's bound field.
//
// The grid follows the bound field's kind and separator. A grid cursor
// navigates the keys; presses, direct typing, and mouse clicks all
// dispatch through the router, so an idle router makes every press a
// no-op.
type Model struct {
	cfg Config

	focused  bool
	row, col int

	originX, originY int
}

func New(cfg Config) Model {
	if cfg.Router == nil {
		cfg.Router = field.NewRouter()
	}
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	return Model{cfg: cfg, focused: true}
}

// Router returns the router presses dispatch through.
func (m Model) Router() *field.Router { return m.cfg.Router }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetPosition records the keypad's top-left corner in terminal cells so
// absolute mouse coordinates can be mapped onto the grid.
func (m Model) SetPosition(x, y int) Model {
	m.originX, m.originY = x, y
	return m
}

// Cursor returns the grid cursor, clamped into the current layout.
func (m Model) Cursor() (row, col int) {
	return m.layout().clamp(m.row, m.col)
}

// layout follows the bound field; rebinding can shrink the grid, so the
// cursor is clamped wherever the layout is consulted.
func (m Model) layout() Layout {
	if t := m.cfg.Router.Active(); t != nil {
		return LayoutFor(t.Kind(), t.DecimalSeparator())
	}
	return LayoutFor(m.cfg.FallbackKind, ".")
}

func (m Model) activeKind() field.Kind {
	if t := m.cfg.Router.Active(); t != nil {
		return t.Kind()
	}
	return m.cfg.FallbackKind
}

// press dispatches one key through the router.
func (m Model) press(k Key) {
	r := m.cfg.Router
	switch k.Op {
	case OpDigit:
		r.SendDigit(k.Digit)
	case OpSeparator:
		r.SendSeparator()
	case OpBackspace:
		r.SendBackspace()
	case OpClear:
		r.SendClear()
	case OpSign:
		r.SendToggleSign()
	case OpText:
		r.SendText(k.Text)
	}
}
