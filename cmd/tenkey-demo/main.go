package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jkxr/tenkey"
	"github.com/jkxr/tenkey/field"
	"github.com/jkxr/tenkey/keypad"
	"github.com/jkxr/tenkey/numinput"
)

type eventLog struct {
	lines []string
}

func (l *eventLog) add(label string, ev field.Event) {
	line := fmt.Sprintf("v%-3d %-7s %q", ev.Version, label, ev.Raw)
	if ev.Value.OK {
		switch ev.Value.Kind {
		case field.Integer:
			line += fmt.Sprintf(" = %d", ev.Value.Int)
		case field.Decimal:
			line += fmt.Sprintf(" = %g", ev.Value.Float)
		case field.Text:
			line += fmt.Sprintf(" = %q", ev.Value.Text)
		}
	} else {
		line += " (no value)"
	}
	l.lines = append(l.lines, line)
}

type model struct {
	inputs []numinput.Model
	labels []string
	router *field.Router
	pad    keypad.Model
	log    *eventLog
	events viewport.Model
}

func newModel() model {
	log := &eventLog{}

	mk := func(label string, opts field.Options, placeholder string, width int) numinput.Model {
		return numinput.New(numinput.Config{
			Field:       opts,
			Placeholder: placeholder,
			Width:       width,
			Style:       numinput.DefaultStyle(),
			OnChange:    func(ev field.Event) { log.add(label, ev) },
		})
	}

	inputs := []numinput.Model{
		mk("amount", field.Options{Kind: field.Decimal}, "0.00", 12),
		mk("count", field.Options{Kind: field.Integer}, "0", 12),
		mk("note", field.Options{Kind: field.Text}, "note", 16),
	}
	labels := []string{"amount", "count", "note"}

	router := field.NewRouter()
	for i := range inputs {
		router.Register(inputs[i].Field())
	}
	router.SetActive(inputs[0].Field())

	pad := keypad.New(keypad.Config{
		Router: router,
		Style:  keypad.DefaultStyle(),
	})
	// Title, blank line, and the framed field rows sit above the keypad.
	pad = pad.SetPosition(0, 2+len(inputs)*3)

	events := viewport.New(46, 8)
	events.SetContent("change events appear here")

	m := model{inputs: inputs, labels: labels, router: router, pad: pad, log: log, events: events}
	return m.syncFocus()
}

func (m model) syncFocus() model {
	active := m.router.Active()
	for i := range m.inputs {
		if active == m.inputs[i].Field() {
			m.inputs[i] = m.inputs[i].Focus()
		} else {
			m.inputs[i] = m.inputs[i].Blur()
		}
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The event log takes whatever width the keypad leaves over.
		w := msg.Width - lipgloss.Width(m.pad.View()) - 1
		if w < 20 {
			w = 20
		}
		m.events.Width = w
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	before := len(m.log.lines)
	var padCmd tea.Cmd
	m.pad, padCmd = m.pad.Update(msg)
	if len(m.log.lines) != before {
		m.events.SetContent(strings.Join(m.log.lines, "\n"))
		m.events.GotoBottom()
	}

	var vpCmd tea.Cmd
	m.events, vpCmd = m.events.Update(msg)
	return m.syncFocus(), tea.Batch(padCmd, vpCmd)
}

func (m model) View() string {
	rows := make([]string, 0, len(m.inputs))
	for i := range m.inputs {
		label := fmt.Sprintf("%-7s", m.labels[i])
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, label, m.inputs[i].View()))
	}

	bottom := lipgloss.JoinHorizontal(lipgloss.Top, m.pad.View(), " ", m.events.View())

	return strings.Join([]string{
		fmt.Sprintf("tenkey %s: numeric input fields with an on-screen keypad", tenkey.Version()),
		"",
		strings.Join(rows, "\n"),
		bottom,
		"tab cycles fields | arrows + enter press keys | click works too | ctrl+q quits",
	}, "\n")
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
