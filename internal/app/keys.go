// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bulle/internal/errmsg"
	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/log"
	"github.com/llehouerou/bulle/internal/state"
	"github.com/llehouerou/bulle/internal/ui/styles"
)

// handleKey resolves a key in the active section, falling back to the
// global bindings.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	a := m.keys.Resolve(m.Section.Context(), msg.String())
	if a == "" {
		return nil
	}
	if cmd, handled := m.handleGlobal(a); handled {
		return cmd
	}
	return m.handleSection(a)
}

func (m *Model) handleSection(a keymap.Action) tea.Cmd {
	switch m.Section {
	case SectionSounds:
		return m.handleSoundsAction(a)
	case SectionVisuals:
		return m.handleVisualsAction(a)
	case SectionTimer:
		return m.handleTimerAction(a)
	case SectionFeelings:
		return m.handleFeelingsAction(a)
	case SectionProfiles:
		return m.handleProfilesAction(a)
	}
	return nil
}

func (m *Model) handleGlobal(a keymap.Action) (tea.Cmd, bool) {
	switch a {
	case keymap.ActionQuit:
		m.Quitting = true
		m.store.SaveUI(state.UIState{Section: m.Section.String()})
		return tea.Quit, true
	case keymap.ActionNextSection:
		return m.setSection(m.Section.next(1)), true
	case keymap.ActionPrevSection:
		return m.setSection(m.Section.next(-1)), true
	case keymap.ActionSection1, keymap.ActionSection2, keymap.ActionSection3,
		keymap.ActionSection4, keymap.ActionSection5:
		return m.setSection(sectionForAction(a)), true
	case keymap.ActionHelp:
		return m.popups.ShowHelp(m.helpContexts()), true
	case keymap.ActionTheme:
		m.toggleTheme()
		return nil, true
	case keymap.ActionPauseAll:
		m.togglePauseAll()
		return nil, true
	case keymap.ActionStopAll:
		m.mixer.StopAll()
		m.notices.Info("All sounds stopped")
		return nil, true
	}
	return nil, false
}

func sectionForAction(a keymap.Action) Section {
	switch a {
	case keymap.ActionSection2:
		return SectionVisuals
	case keymap.ActionSection3:
		return SectionTimer
	case keymap.ActionSection4:
		return SectionFeelings
	case keymap.ActionSection5:
		return SectionProfiles
	}
	return SectionSounds
}

// helpContexts puts the active section first, then the global keys.
func (m *Model) helpContexts() []keymap.Context {
	return []keymap.Context{m.Section.Context(), keymap.Global}
}

func (m *Model) setSection(s Section) tea.Cmd {
	m.Fullscreen = false
	if s == m.Section {
		m.layout()
		return nil
	}
	m.Section = s
	m.store.SaveUI(state.UIState{Section: s.String()})
	m.notices.Mascot(sectionMessage(s))
	if s == SectionProfiles {
		m.refreshProfiles()
	}
	m.layout()
	return nil
}

func (m *Model) toggleTheme() {
	name := styles.Toggle()
	m.progress = newProgress()
	m.layout()
	if err := m.store.SaveTheme(string(name)); err != nil {
		log.ErrorErr(log.CatDB, "save theme", err)
		m.notices.Error(errmsg.Format(errmsg.OpThemeSave, err))
	}
	m.notices.Mascot(themeMessage(name == styles.Dark))
}

func (m *Model) togglePauseAll() {
	if m.mixer.State().IsEmpty() && !m.mixer.GlobalPaused() {
		m.notices.Info("Nothing is playing")
		return
	}
	if m.mixer.TogglePauseAll() {
		m.notices.Mascot(msgPaused)
	} else {
		m.notices.Mascot(msgResumed)
	}
}
