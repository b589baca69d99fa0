package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Heading renders text in bold, shading each grapheme along the active
// theme's gradient. Spaces are left unstyled.
func Heading(text string) string {
	t := T()
	return shade(text, t.GradientFrom, t.GradientTo)
}

func shade(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	start, end := hexColor(from), hexColor(to)
	last := float64(len(clusters) - 1)

	var b strings.Builder
	for i, c := range clusters {
		if strings.TrimSpace(c) == "" {
			b.WriteString(c)
			continue
		}
		// HCL keeps the perceived brightness even across the run.
		col := start.BlendHcl(end, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(col.Hex())).Render(c))
	}
	return b.String()
}

// hexColor parses a "#rrggbb" theme colour; ANSI indexes fall back to grey.
func hexColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return col
}
