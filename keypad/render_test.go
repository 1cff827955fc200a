package keypad

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jkxr/tenkey/field"
)

func TestView_NumericGridGeometry(t *testing.T) {
	r := field.NewRouter()
	s := field.New(field.Options{Kind: field.Integer})
	r.Register(s)
	r.SetActive(s)
	m := New(Config{Router: r}) // zero styles keep the output plain
	m = m.Blur()

	lines := strings.Split(m.View(), "\n")
	want := []string{
		"  7     8     9     ⌫  ",
		"  4     5     6     C  ",
		"  1     2     3     ±  ",
		strings.Repeat(" ", 11) + "0" + strings.Repeat(" ", 11),
	}
	if len(lines) != len(want) {
		t.Fatalf("line count: got %d, want %d", len(lines), len(want))
	}
	for i, line := range lines {
		if line != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, line, want[i])
		}
	}
}

func TestView_TextLayoutForTextField(t *testing.T) {
	r := field.NewRouter()
	s := field.New(field.Options{Kind: field.Text})
	r.Register(s)
	r.SetActive(s)
	m := New(Config{Router: r}).Blur()

	lines := strings.Split(m.View(), "\n")
	if got, want := len(lines), 5; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
	if !strings.Contains(lines[1], "q") || !strings.Contains(lines[1], "p") {
		t.Fatalf("letter row: got %q", lines[1])
	}
	if !strings.Contains(lines[4], "space") {
		t.Fatalf("space row: got %q", lines[4])
	}
}

func TestView_SelectedCellOnlyWhileFocused(t *testing.T) {
	r := field.NewRouter()
	s := field.New(field.Options{Kind: field.Integer})
	r.Register(s)
	r.SetActive(s)

	// Horizontal padding makes the selected cell observable without
	// depending on the terminal color profile.
	st := Style{Selected: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)}
	m := New(Config{Router: r, Style: st})

	lines := strings.Split(m.View(), "\n")
	want := "   7   " + " " + "  8  " + " " + "  9  " + " " + "  ⌫  "
	if got := lines[0]; got != want {
		t.Fatalf("focused row: got %q, want %q", got, want)
	}

	m = m.Blur()
	lines = strings.Split(m.View(), "\n")
	want = "  7     8     9     ⌫  "
	if got := lines[0]; got != want {
		t.Fatalf("blurred row: got %q, want %q", got, want)
	}
}

func TestView_IdleRouterRendersAllKeysDisabled(t *testing.T) {
	st := Style{Disabled: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)}
	m := New(Config{Style: st}).Blur()

	lines := strings.Split(m.View(), "\n")
	want := "   7   " + " " + "   8   " + " " + "   9   " + " " + "   ⌫   "
	if got := lines[0]; got != want {
		t.Fatalf("disabled row: got %q, want %q", got, want)
	}
}

func TestKeyDisabled_TracksTargetCapabilities(t *testing.T) {
	noMinus := field.New(field.Options{Kind: field.Integer, Negative: field.CapOff})
	dec := field.New(field.Options{Kind: field.Decimal})

	tests := []struct {
		name   string
		key    Key
		target field.Target
		want   bool
	}{
		{"nil target disables everything", digitKey(5), nil, true},
		{"sign without negative capability", signKey, noMinus, true},
		{"sign on a decimal field", signKey, dec, false},
		{"separator on an integer field", Key{Label: ".", Op: OpSeparator}, noMinus, true},
		{"separator on a decimal field", Key{Label: ".", Op: OpSeparator}, dec, false},
		{"digits are never disabled", digitKey(5), noMinus, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyDisabled(tc.key, tc.target); got != tc.want {
				t.Fatalf("keyDisabled: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPadLabel_CentersAndTruncates(t *testing.T) {
	tests := []struct {
		label string
		width int
		want  string
	}{
		{"5", 5, "  5  "},
		{"space", 5, "space"},
		{"overflowing", 5, "overf"},
		{"na", 5, " na  "},
	}
	for _, tc := range tests {
		if got := padLabel(tc.label, tc.width); got != tc.want {
			t.Fatalf("padLabel(%q, %d): got %q, want %q", tc.label, tc.width, got, tc.want)
		}
	}
}
