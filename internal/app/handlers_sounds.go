// internal/app/handlers_sounds.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/layout"
)

const (
	volumeStep     = 10
	volumeFineStep = 1
)

func (m *Model) soundCols() int {
	return layout.GridColumns(m.Width, ui.SoundCardWidth)
}

func (m *Model) focusedSound() (string, bool) {
	pos := m.soundCursor.Pos()
	if pos < 0 || pos >= len(m.sounds) {
		return "", false
	}
	return m.sounds[pos].Key, true
}

func (m *Model) handleSoundsAction(a keymap.Action) tea.Cmd {
	n := len(m.sounds)
	switch a {
	case keymap.ActionLeft:
		m.soundCursor.MoveGrid(-1, 0, m.soundCols(), n)
	case keymap.ActionRight:
		m.soundCursor.MoveGrid(1, 0, m.soundCols(), n)
	case keymap.ActionUp:
		m.soundCursor.MoveGrid(0, -1, m.soundCols(), n)
	case keymap.ActionDown:
		m.soundCursor.MoveGrid(0, 1, m.soundCols(), n)
	case keymap.ActionSelect:
		if key, ok := m.focusedSound(); ok {
			return ToggleSoundCmd(m.ctx, m.mixer, key)
		}
	case keymap.ActionVolumeUp:
		m.nudgeVolume(volumeStep)
	case keymap.ActionVolumeDown:
		m.nudgeVolume(-volumeStep)
	case keymap.ActionVolumeUpFine:
		m.nudgeVolume(volumeFineStep)
	case keymap.ActionVolumeDownFine:
		m.nudgeVolume(-volumeFineStep)
	}
	return nil
}

func (m *Model) nudgeVolume(delta int) {
	key, ok := m.focusedSound()
	if !ok {
		return
	}
	m.setVolume(key, m.mixer.Volume(key)+delta)
}

// setVolume errors are reported through the mixer error events.
func (m *Model) setVolume(key string, level int) {
	_ = m.mixer.SetVolume(key, min(max(level, 0), 100))
}
