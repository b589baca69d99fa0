package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a rounded panel whose border follows focus.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// CardStyle returns the style of a selectable card. Active cards get the
// accent border, focused ones the cursor background.
func CardStyle(width int, focused, active bool) lipgloss.Style {
	t := T()
	s := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	if active {
		s = s.BorderForeground(t.Primary)
	}
	if focused {
		s = s.BorderForeground(t.BorderFocus).Background(t.BgCursor)
	}
	return s
}
