// internal/app/view_visuals.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/render"
	"github.com/llehouerou/bulle/internal/ui/styles"
	"github.com/llehouerou/bulle/internal/visuals"
)

func (m *Model) renderVisuals() string {
	t := styles.T()
	current, running := m.visuals.Current()

	chips := make([]string, len(visuals.Kinds))
	for i, k := range visuals.Kinds {
		active := running && k == current
		label := render.Truncate(k.Title(), ui.ChipWidth-4)
		if active {
			label = t.S().Playing.Render(label)
		}
		chip := styles.CardStyle(ui.ChipWidth-2, i == m.visualCursor.Pos(), active).Render(label)
		chips[i] = m.mark(zoneID(zoneVisual, i), chip)
	}

	var canvas, caption string
	if running {
		fr := m.visuals.Frame()
		canvas = renderFrame(fr)
		caption = fr.Label
		if caption == "" {
			caption = current.Title()
		}
	} else {
		w, h := m.visuals.Size()
		canvas = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			t.S().Muted.Render("Pick an animation and press enter"))
	}
	return grid(chips, m.chipCols()) + "\n" + canvas + "\n " + t.S().Muted.Render(caption)
}

// renderFrame draws the frame, fading each cell toward the background by
// its alpha. Runs of equal color share one escape sequence.
func renderFrame(fr visuals.Frame) string {
	bg, err := colorful.Hex(string(styles.T().BgBase))
	if err != nil {
		bg = colorful.Color{}
	}

	var b strings.Builder
	for y := range fr.Height {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for x := range fr.Width {
			c := fr.At(x, y)
			r, hex := ' ', ""
			if c.Rune != 0 {
				r = c.Rune
				hex = bg.BlendRgb(c.Color, clamp01(c.Alpha)).Clamped().Hex()
			}
			if hex != runColor && r != ' ' {
				flush()
				runColor = hex
			}
			run.WriteRune(r)
		}
		flush()
	}
	return b.String()
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
