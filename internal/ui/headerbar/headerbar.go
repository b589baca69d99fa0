// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/bulle/internal/ui/styles"
)

// Height is the fixed height of the header bar (title line + tabs).
const Height = 2

// Tab is one section tab.
type Tab struct {
	Name string
	// Mark wraps the rendered tab, typically to register a mouse zone.
	Mark func(string) string
}

// Render returns the header bar for the given width: the app title on the
// first line and centered tabs on the second.
func Render(title string, tabs []Tab, active, width int) string {
	if width < 20 {
		return "\n"
	}
	t := styles.T()
	separator := lipgloss.NewStyle().Foreground(t.FgSubtle).Render(" │ ")
	keyStyle := lipgloss.NewStyle().Foreground(t.FgSubtle)
	nameStyle := lipgloss.NewStyle().Foreground(t.FgMuted)
	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true)

	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		name := nameStyle.Render(tab.Name)
		if i == active {
			name = activeStyle.Render(tab.Name)
		}
		part := keyStyle.Render(strconv.Itoa(i+1)) + " " + name
		if tab.Mark != nil {
			part = tab.Mark(part)
		}
		parts = append(parts, part)
	}

	return center(styles.Heading(title), width) + "\n" + center(strings.Join(parts, separator), width)
}

func center(content string, width int) string {
	w := lipgloss.Width(content)
	if w >= width {
		return content
	}
	return strings.Repeat(" ", (width-w)/2) + content
}
