// Package textinput provides a single-line input popup component.
package textinput

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/popup"
	"github.com/llehouerou/bulle/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Options tune the input.
type Options struct {
	Placeholder string
	CharLimit   int  // 0 = 64
	Numeric     bool // accept digits only
}

// Model is a text input popup.
type Model struct {
	ui.Base
	title   string
	input   textinput.Model
	numeric bool
	context any // passed through to Result action
}

// New creates a new text input model.
func New() Model {
	return Model{input: textinput.New()}
}

// Start initializes the input with a title and optional initial text.
func (m *Model) Start(title, initialText string, context any, width, height int) {
	m.StartWithOptions(title, initialText, Options{}, context, width, height)
}

// StartWithOptions is Start with placeholder, length and digit filtering.
func (m *Model) StartWithOptions(title, initialText string, opts Options, context any, width, height int) {
	t := styles.T()

	m.title = title
	m.context = context
	m.numeric = opts.Numeric
	m.SetSize(width, height)

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = opts.Placeholder
	m.input.CharLimit = opts.CharLimit
	if m.input.CharLimit == 0 {
		m.input.CharLimit = 64
	}
	m.input.PromptStyle = lipgloss.NewStyle().Foreground(t.Primary)
	m.input.TextStyle = t.S().Base
	m.input.PlaceholderStyle = t.S().Subtle
	m.input.Width = max(width/2, 20)
	m.input.SetValue(initialText)
	m.input.Focus()
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.numeric = false
	m.input.Reset()
	m.input.Blur()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true, Context: ctx})
			}
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Text: text, Context: ctx})
			}
		case tea.KeySpace:
			if m.numeric {
				return m, nil
			}
		case tea.KeyRunes:
			if !m.accepts(keyMsg.Runes) {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) accepts(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			return false
		}
		if m.numeric && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(m.title)
	hint := t.S().Subtle.Render("Enter: confirm, Esc: cancel")

	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
