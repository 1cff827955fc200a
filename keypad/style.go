package keypad

import "github.com/charmbracelet/lipgloss"

// Style controls the keypad's rendering.
type Style struct {
	Frame    lipgloss.Style
	Key      lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Reverse(true).Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
