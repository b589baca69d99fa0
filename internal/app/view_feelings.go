// internal/app/view_feelings.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/bulle/internal/feelings"
	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/render"
	"github.com/llehouerou/bulle/internal/ui/styles"
)

func (m *Model) renderFeelings() string {
	t := styles.T()
	st := m.flow.State()

	lines := []string{" " + styles.Heading(feelingPrompt(st.Step()))}
	if crumbs := m.breadcrumb(st); crumbs != "" {
		lines = append(lines, " "+t.S().Muted.Render(crumbs))
	}

	cards := m.feelingCards()
	inner := ui.FeelingCardWidth - 4
	cells := make([]string, len(cards))
	for i, c := range cards {
		head := c.Icon + " " + t.S().Title.Render(render.Truncate(c.Title, inner-3))
		desc := t.S().Muted.Render(render.Wrap(c.Description, inner))
		card := styles.CardStyle(ui.FeelingCardWidth-2, i == m.feelCursor.Pos(), false).
			Height(3).
			Render(head + "\n" + desc)
		cells[i] = m.mark(zoneID(zoneFeeling, i), card)
	}
	lines = append(lines, grid(cells, m.feelingCols()))

	if key := m.flow.SuggestedSound(); key != "" && st.Step() == feelings.StepActivities {
		lines = append(lines, " "+t.S().Subtle.Render("m: play "+m.soundTitle(key)+" · b: back · r: start over"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func feelingPrompt(s feelings.Step) string {
	switch s {
	case feelings.StepEmotions:
		return "How do you feel right now?"
	case feelings.StepIntensity:
		return "How strong is it?"
	case feelings.StepNeeds:
		return "What do you need?"
	case feelings.StepActivities:
		return "Here are some ideas"
	}
	return ""
}

func (m *Model) breadcrumb(st feelings.State) string {
	var parts []string
	if info, ok := st.Emotion.Info(); ok {
		parts = append(parts, info.Icon+" "+info.Title)
	}
	if st.Intensity > 0 {
		if levels := st.Emotion.Intensities(); st.Intensity <= len(levels) {
			parts = append(parts, levels[st.Intensity-1].Title)
		}
	}
	if need, ok := m.flow.Need(); ok {
		parts = append(parts, need.Title)
	}
	return strings.Join(parts, " › ")
}
