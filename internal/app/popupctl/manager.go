// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/ui/confirm"
	"github.com/llehouerou/bulle/internal/ui/helpbindings"
	"github.com/llehouerou/bulle/internal/ui/popup"
	"github.com/llehouerou/bulle/internal/ui/textinput"
)

// Manager manages the modal popups.
type Manager struct {
	popups    map[Type]popup.Popup
	sizes     map[Type]popup.SizeConfig
	inputMode InputMode
	width     int
	height    int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Help: popup.SizeLarge,
			// All others default to SizeAuto
		},
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.contentSize(p.sizes[t]))
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	if t == None {
		return false
	}
	return p.popups[t] != nil
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(p.sizes[t]))
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	if t == TextInput {
		p.inputMode = InputNone
	}
	delete(p.popups, t)
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// contentSize calculates popup content dimensions based on size config.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		// border and padding
		return p.width*size.WidthPct/100 - 6, p.height*size.HeightPct/100 - 4
	}
	return p.width, p.height
}

// ShowHelp displays the help popup for the given contexts.
func (p *Manager) ShowHelp(contexts []keymap.Context) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm displays a confirmation dialog.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowTextInput displays a text input popup.
func (p *Manager) ShowTextInput(mode InputMode, title, value string, opts textinput.Options, context any) tea.Cmd {
	p.inputMode = mode
	ti := textinput.New()
	ti.StartWithOptions(title, value, opts, context, p.width, p.height)
	return p.Show(TextInput, &ti)
}

// InputMode returns the current input mode.
func (p *Manager) InputMode() InputMode {
	return p.inputMode
}

// HandleMsg routes a message to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed it.
func (p *Manager) HandleMsg(msg tea.Msg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	if active == None {
		return false, nil
	}
	updated, cmd := p.popups[active].Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		rendered := popup.RenderBordered(pop.View(), p.width, p.height, p.sizes[t])
		base = popup.Compose(base, rendered, p.width)
	}
	return base
}
