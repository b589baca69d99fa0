// Package helpbindings provides a scrollable help popup rendered from the
// key bindings as markdown.
package helpbindings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/popup"
	"github.com/llehouerou/bulle/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const intro = "Bulle is a calm corner in your terminal. Pick **one** sound at a " +
	"time, watch a gentle animation, set a break timer, or let the feelings " +
	"guide suggest something soothing. Profiles remember a setup you like."

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	contexts     []keymap.Context
	scrollOffset int

	// rendered markdown, keyed by width and theme
	lines       []string
	renderedFor string
}

// New creates a new help model.
func New() Model {
	return Model{}
}

// SetContexts sets which binding contexts to display, in display order.
func (m *Model) SetContexts(contexts []keymap.Context) {
	m.contexts = contexts
	m.scrollOffset = 0
	m.renderedFor = ""
}

// Markdown builds the help document for the given contexts.
func Markdown(contexts []keymap.Context) string {
	var sb strings.Builder
	sb.WriteString("# Help\n\n")
	sb.WriteString(intro)
	sb.WriteString("\n")

	for _, ctx := range contexts {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n## %s\n\n", ctx.Label())
		for _, b := range bindings {
			keys := make([]string, len(b.Keys))
			for i, k := range b.Keys {
				keys[i] = "`" + keymap.KeyLabel(k) + "`"
			}
			fmt.Fprintf(&sb, "- %s  %s\n", strings.Join(keys, " "), b.Description)
		}
	}
	return sb.String()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = m.maxScroll()
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.rendered()
	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))

	footer := "?/esc close"
	if len(lines) > m.visibleHeight() {
		footer = fmt.Sprintf("j/k scroll · ?/esc close · %d/%d", end, len(lines))
	}

	return strings.Join(lines[start:end], "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(styles.T().FgSubtle).Render(footer)
}

func (m *Model) rendered() []string {
	t := styles.T()
	key := fmt.Sprintf("%d/%s", m.Width(), t.Name)
	if m.renderedFor == key {
		return m.lines
	}

	doc := Markdown(m.contexts)
	out, err := renderMarkdown(doc, string(t.Name), max(m.Width()-8, 20))
	if err != nil {
		out = doc
	}
	m.lines = strings.Split(strings.Trim(out, "\n"), "\n")
	m.renderedFor = key
	return m.lines
}

func renderMarkdown(doc, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(doc)
}

func (m *Model) visibleHeight() int {
	// Leave room for popup chrome (footer, borders, padding)
	return max(m.Height()-8, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.rendered())-m.visibleHeight(), 0)
}
