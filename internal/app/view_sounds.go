// internal/app/view_sounds.go
package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/bulle/internal/sound"
	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/layout"
	"github.com/llehouerou/bulle/internal/ui/render"
	"github.com/llehouerou/bulle/internal/ui/styles"
)

func (m *Model) renderSounds() string {
	t := styles.T()
	st := m.mixer.State()
	header := " " + styles.Heading("Sounds") + t.S().Muted.Render(" · "+audioSummary(st))
	if len(m.sounds) == 0 {
		return header + "\n\n " + t.S().Muted.Render("No sounds found.")
	}

	cols := m.soundCols()
	visible := layout.VisibleRows(layout.BodyHeight(m.Height)-1, ui.SoundCardHeight)
	first := layout.FirstRow(m.soundCursor.Pos(), cols, visible)
	start := first * cols
	end := min((first+visible)*cols, len(m.sounds))

	cells := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cells = append(cells, m.renderSoundCard(i, m.sounds[i], st.GlobalPaused))
	}
	return header + "\n" + grid(cells, cols)
}

func (m *Model) renderSoundCard(i int, e sound.Entry, globalPaused bool) string {
	t := styles.T()
	inner := ui.SoundCardWidth - 4
	active := m.mixer.IsActive(e.Key)

	icon := ""
	title := t.S().Base.Render(render.Truncate(e.Title, inner-2))
	if active {
		title = t.S().Playing.Render(render.Truncate(e.Title, inner-2))
		icon = t.S().Playing.Render("▶")
		if globalPaused || m.mixer.IsPaused(e.Key) {
			icon = t.S().Warning.Render("⏸")
		}
	}

	level := m.mixer.Volume(e.Key)
	filled, empty := render.Bar(level, inner-5)
	bar := lipgloss.NewStyle().Foreground(t.Secondary).Render(filled) + t.S().Subtle.Render(empty)
	volume := m.mark(zoneID(zoneVolume, i), bar) + t.S().Muted.Render(fmt.Sprintf(" %3d%%", level))

	content := render.Row(title, icon, inner) + "\n" +
		t.S().Subtle.Render(e.Group.String()) + "\n" +
		volume
	card := styles.CardStyle(ui.SoundCardWidth-2, i == m.soundCursor.Pos(), active).Render(content)
	return m.mark(zoneID(zoneSound, i), card)
}
