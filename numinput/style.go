package numinput

import "github.com/charmbracelet/lipgloss"

// Style controls the input box rendering. Incomplete applies to raw text
// that does not parse to a value yet, "-" or a trailing separator.
type Style struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style

	Text        lipgloss.Style
	Incomplete  lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
}

func DefaultStyle() Style {
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Style{
		Frame:        frame.BorderForeground(lipgloss.Color("240")),
		FocusedFrame: frame.BorderForeground(lipgloss.Color("250")),
		Text:         lipgloss.NewStyle(),
		Incomplete:   lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:       lipgloss.NewStyle().Reverse(true),
	}
}
