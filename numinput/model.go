package numinput

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jkxr/tenkey/field"
)

// Model is a Bubble Tea component rendering one field as an input box.
//
// The model owns its field state; hosts reach it through Field to read
// values or register it with a router. Models start blurred, so a form
// can hold several of them and focus one at a time.
type Model struct {
	cfg Config
	st  *field.State

	focused bool
}

func New(cfg Config) Model {
	m := Model{
		cfg: cfg,
		st:  field.New(cfg.Field),
	}
	if cfg.OnChange != nil {
		m.st.OnChange(cfg.OnChange)
	}
	return m
}

// Field returns the model's field state for router registration and
// value reads.
func (m Model) Field() *field.State { return m.st }

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
