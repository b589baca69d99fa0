// internal/app/view_profiles.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/bulle/internal/profiles"
	"github.com/llehouerou/bulle/internal/ui/render"
	"github.com/llehouerou/bulle/internal/ui/styles"
	"github.com/llehouerou/bulle/internal/visuals"
)

func (m *Model) renderProfiles() string {
	t := styles.T()
	lines := []string{" " + styles.Heading("Profiles")}
	if len(m.profileList) == 0 {
		lines = append(lines, "", " "+t.S().Muted.Render("No profiles yet. Press n to save the current setup."))
		return strings.Join(lines, "\n")
	}

	height := m.profileListHeight()
	start, end := m.profileCursor.VisibleRange(len(m.profileList), height)
	width := max(m.Width-2, 10)
	for i := start; i < end; i++ {
		p := m.profileList[i]
		name := render.Truncate(p.Name, width/3)
		detail := render.Truncate(m.profileSummary(p), max(width-lipgloss.Width(name)-3, 0))
		row := render.Row(t.S().Title.Render(name), t.S().Muted.Render(detail), width)
		if i == m.profileCursor.Pos() {
			row = t.S().Cursor.Render(row)
		}
		lines = append(lines, " "+m.mark(zoneID(zoneProfile, i), row))
	}
	lines = append(lines, " "+t.S().Subtle.Render("e export · i import · "+m.exportPath))
	return strings.Join(lines, "\n")
}

// profileSummary lists what a profile restores.
func (m *Model) profileSummary(p profiles.Profile) string {
	var parts []string
	for _, key := range p.Sounds {
		parts = append(parts, fmt.Sprintf("%s %d%%", m.soundTitle(key), p.Volumes[key]))
	}
	if p.Visual != "" {
		parts = append(parts, visuals.Kind(p.Visual).Title())
	}
	if p.TimerMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", p.TimerMinutes))
	}
	if len(parts) == 0 {
		parts = append(parts, "silence")
	}
	if !p.CreatedAt.IsZero() {
		parts = append(parts, humanize.Time(p.CreatedAt))
	}
	return strings.Join(parts, " · ")
}
