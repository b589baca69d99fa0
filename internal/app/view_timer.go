// internal/app/view_timer.go
package app

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/bulle/internal/timer"
	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/render"
	"github.com/llehouerou/bulle/internal/ui/styles"
)

func (m *Model) renderTimer() string {
	t := styles.T()
	now := m.now()
	minutes := m.timer.Minutes()
	custom := minutes > 0 && !slices.Contains(m.presets, minutes)

	chips := make([]string, 0, m.timerChoices())
	for i, p := range m.presets {
		selected := p == minutes
		chip := styles.CardStyle(ui.ChipWidth-2, i == m.timerCursor.Pos(), selected).
			Render(strconv.Itoa(p) + " min")
		chips = append(chips, m.mark(zoneID(zonePreset, i), chip))
	}
	customLabel := "Custom…"
	if custom {
		customLabel = "Custom: " + strconv.Itoa(minutes)
	}
	chip := styles.CardStyle(ui.ChipWidth-2, m.timerCursor.Pos() == len(m.presets), custom).
		Render(render.Truncate(customLabel, ui.ChipWidth-4))
	chips = append(chips, m.mark(zoneID(zonePreset, len(m.presets)), chip))

	clock := styles.Heading(m.timer.Format(now))
	status := t.S().Muted.Render(timerStatus(m.timer.State(), minutes))
	bar := m.progress.ViewAs(m.timer.Progress(now))

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.mark(zoneStart, timerButton("▶ Start", m.timer.State() != timer.Running && minutes > 0)),
		" ",
		m.mark(zonePause, timerButton("⏸ Pause", m.timer.State() != timer.Idle)),
		" ",
		m.mark(zoneStop, timerButton("■ Stop", m.timer.State() != timer.Idle)),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, "", clock, status, "", bar, "", buttons)
	return " " + styles.Heading("Break timer") + "\n" +
		grid(chips, m.chipCols()) + "\n" +
		lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, body)
}

func timerStatus(s timer.State, minutes int) string {
	switch {
	case minutes == 0:
		return "Choose a duration"
	case s == timer.Running:
		return "Enjoy your break"
	case s == timer.Paused:
		return "Paused"
	}
	return "Ready: " + strconv.Itoa(minutes) + " min"
}

func timerButton(label string, enabled bool) string {
	t := styles.T()
	s := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.FgSubtle)
	if enabled {
		s = s.BorderForeground(t.Primary).Foreground(t.FgBase)
	}
	return s.Render(label)
}
