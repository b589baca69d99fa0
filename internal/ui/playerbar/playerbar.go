package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/bulle/internal/ui/render"
	"github.com/llehouerou/bulle/internal/ui/styles"
)

// Height is the bar height: top border, content, bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Title        string // active sound, empty when nothing plays
	Volume       int
	Paused       bool // the active sound is paused
	GlobalPaused bool
	Visual       string // running animation title
	Timer        string // remaining time, empty when the timer is idle
	TimerPaused  bool
}

// Playing reports whether a sound is active.
func (s State) Playing() bool {
	return s.Title != ""
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	t := styles.T()
	innerWidth := max(width-4, 0)

	var left string
	switch {
	case !s.Playing():
		left = t.S().Muted.Render("Nothing playing. Pick a sound to begin.")
	default:
		status := t.S().Playing.Render(playSymbol)
		if s.Paused || s.GlobalPaused {
			status = t.S().Warning.Render(pauseSymbol)
		}
		left = status + " " + t.S().Title.Render(s.Title) + "  " + RenderVolume(s.Volume, 10)
	}

	var extras []string
	if s.Visual != "" {
		extras = append(extras, "✨ "+s.Visual)
	}
	if s.Timer != "" {
		timer := "⏱ " + s.Timer
		if s.TimerPaused {
			timer += " (paused)"
		}
		extras = append(extras, timer)
	}
	right := t.S().Muted.Render(strings.Join(extras, " · "))

	leftWidth := max(innerWidth-lipgloss.Width(right)-1, 0)
	if lipgloss.Width(left) > leftWidth {
		left = ansi.Truncate(left, leftWidth, "…")
	}
	content := render.Row(left, right, innerWidth)

	return lipgloss.NewStyle().
		Width(innerWidth + 2).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Render(content)
}

// RenderVolume renders a block bar followed by the percentage.
func RenderVolume(level, width int) string {
	filled, empty := render.Bar(level, width)
	t := styles.T()
	return lipgloss.NewStyle().Foreground(t.Secondary).Render(filled) +
		t.S().Subtle.Render(empty) +
		t.S().Muted.Render(fmt.Sprintf(" %3d%%", level))
}
