// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/popup"
	"github.com/llehouerou/bulle/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
	yes     bool // focused button
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup. The "No" button starts focused.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
	m.yes = false
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return m, m.finish(true)
	case "esc", "n", "N", "q":
		return m, m.finish(false)
	case "enter":
		return m, m.finish(m.yes)
	case "left", "right", "h", "l", "tab":
		m.yes = !m.yes
	}
	return m, nil
}

func (m *Model) finish(confirmed bool) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: confirmed, Context: ctx})
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(m.title)
	message := t.S().Base.Render(wordwrap.String(m.message, max(m.Width()/2, 20)))

	button := func(label string, focused bool) string {
		s := lipgloss.NewStyle().Padding(0, 2).Foreground(t.FgMuted)
		if focused {
			s = s.Background(t.BgCursor).Foreground(t.Primary).Bold(true)
		}
		return s.Render(label)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, button("Yes", m.yes), "  ", button("No", !m.yes))
	hint := t.S().Subtle.Render("y: yes · n/esc: no · ←/→: choose")

	return title + "\n\n" + message + "\n\n" + buttons + "\n\n" + hint
}
