// internal/app/handlers_visuals.go
package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/layout"
	"github.com/llehouerou/bulle/internal/visuals"
)

func (m *Model) chipCols() int {
	return layout.GridColumns(m.Width, ui.ChipWidth)
}

func (m *Model) handleVisualsAction(a keymap.Action) tea.Cmd {
	n := len(visuals.Kinds)
	switch a {
	case keymap.ActionLeft:
		m.visualCursor.MoveGrid(-1, 0, m.chipCols(), n)
	case keymap.ActionRight:
		m.visualCursor.MoveGrid(1, 0, m.chipCols(), n)
	case keymap.ActionUp:
		m.visualCursor.MoveGrid(0, -1, m.chipCols(), n)
	case keymap.ActionDown:
		m.visualCursor.MoveGrid(0, 1, m.chipCols(), n)
	case keymap.ActionSelect:
		return m.toggleVisual(visuals.Kinds[m.visualCursor.Pos()])
	case keymap.ActionNextVisual:
		m.focusVisual(m.visuals.Next())
		return m.scheduleFrame()
	case keymap.ActionPrevVisual:
		m.focusVisual(m.visuals.Previous())
		return m.scheduleFrame()
	case keymap.ActionFullscreen:
		m.setFullscreen(!m.Fullscreen)
	case keymap.ActionExitFullscreen:
		m.setFullscreen(false)
	}
	return nil
}

func (m *Model) toggleVisual(k visuals.Kind) tea.Cmd {
	if m.visuals.Toggle(k) {
		m.notices.Mascot(k.Title() + " ✨")
		return m.scheduleFrame()
	}
	m.Fullscreen = false
	m.layout()
	return nil
}

func (m *Model) focusVisual(k visuals.Kind) {
	if i := slices.Index(visuals.Kinds, k); i >= 0 {
		m.visualCursor.Jump(i, len(visuals.Kinds), 0)
	}
}

func (m *Model) setFullscreen(on bool) {
	if on {
		if _, ok := m.visuals.Current(); !ok {
			m.notices.Info("Start an animation first")
			return
		}
	}
	m.Fullscreen = on
	m.layout()
}
