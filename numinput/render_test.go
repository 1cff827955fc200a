package numinput

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jkxr/tenkey/field"
)

func TestView_IncompleteRawUsesIncompleteStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Text:       r.NewStyle(),
		Incomplete: r.NewStyle().Foreground(lipgloss.Color("178")),
	}

	m := New(Config{Field: field.Options{Kind: field.Decimal, Raw: "12."}, Style: st})
	if got, want := m.View(), st.Incomplete.Render("12."); got != want {
		t.Fatalf("incomplete raw:\n got: %q\nwant: %q", got, want)
	}

	m = New(Config{Field: field.Options{Kind: field.Decimal, Raw: "12.5"}, Style: st})
	if got, want := m.View(), st.Text.Render("12.5"); got != want {
		t.Fatalf("complete raw:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_PlaceholderAndCursor(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Placeholder: r.NewStyle().Faint(true),
		Cursor:      r.NewStyle().Reverse(true),
	}
	m := New(Config{Placeholder: "0.00", Style: st, Field: field.Options{Kind: field.Decimal}})

	if got, want := m.View(), st.Placeholder.Render("0.00"); got != want {
		t.Fatalf("blurred empty box:\n got: %q\nwant: %q", got, want)
	}

	m = m.Focus()
	if got, want := m.View(), st.Cursor.Render(" "); got != want {
		t.Fatalf("focused empty box:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_PadsToWidth(t *testing.T) {
	m := New(Config{Width: 8, Field: field.Options{Kind: field.Integer, Raw: "42"}})

	if got, want := m.View(), "42      "; got != want {
		t.Fatalf("padded box: got %q, want %q", got, want)
	}
}

func TestView_FocusSwitchesFrame(t *testing.T) {
	st := Style{
		Frame:        lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		FocusedFrame: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()),
	}
	m := New(Config{Field: field.Options{Kind: field.Integer, Raw: "1"}, Style: st})

	if got := m.View(); !strings.Contains(got, "┌") {
		t.Fatalf("blurred frame: got %q", got)
	}
	m = m.Focus()
	if got := m.View(); !strings.Contains(got, "╔") {
		t.Fatalf("focused frame: got %q", got)
	}
}
