// internal/app/mouse.go
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/visuals"
)

// Zone ids. Indexed zones append ":<index>".
const (
	zoneTab     = "tab"
	zoneSound   = "sound"
	zoneVolume  = "vol"
	zoneVisual  = "visual"
	zonePreset  = "preset"
	zoneFeeling = "feeling"
	zoneProfile = "profile"
	zoneStart   = "timer-start"
	zonePause   = "timer-pause"
	zoneStop    = "timer-stop"
)

func zoneID(prefix string, i int) string {
	return fmt.Sprintf("%s:%d", prefix, i)
}

func (m *Model) zoneAt(id string, msg tea.MouseMsg) (*zone.ZoneInfo, bool) {
	if m.zones == nil {
		return nil, false
	}
	z := m.zones.Get(id)
	if z == nil || !z.InBounds(msg) {
		return nil, false
	}
	return z, true
}

// hitIndex returns the first indexed zone under the mouse.
func (m *Model) hitIndex(prefix string, n int, msg tea.MouseMsg) (int, bool) {
	for i := range n {
		if _, ok := m.zoneAt(zoneID(prefix, i), msg); ok {
			return i, true
		}
	}
	return 0, false
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.handleSection(keymap.ActionUp)
		case tea.MouseButtonWheelDown:
			return m.handleSection(keymap.ActionDown)
		}
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if !m.Fullscreen {
		if i, ok := m.hitIndex(zoneTab, len(Sections), msg); ok {
			return m.setSection(Sections[i])
		}
	}

	switch m.Section {
	case SectionSounds:
		return m.clickSounds(msg)
	case SectionVisuals:
		if i, ok := m.hitIndex(zoneVisual, len(visuals.Kinds), msg); ok {
			m.visualCursor.Jump(i, len(visuals.Kinds), 0)
			return m.toggleVisual(visuals.Kinds[i])
		}
	case SectionTimer:
		return m.clickTimer(msg)
	case SectionFeelings:
		if i, ok := m.hitIndex(zoneFeeling, len(m.feelingCards()), msg); ok {
			m.feelCursor.Jump(i, len(m.feelingCards()), 0)
			return m.selectFeeling(i)
		}
	case SectionProfiles:
		if i, ok := m.hitIndex(zoneProfile, len(m.profileList), msg); ok {
			m.profileCursor.Jump(i, len(m.profileList), m.profileListHeight())
			return m.handleProfilesAction(keymap.ActionSelect)
		}
	}
	return nil
}

func (m *Model) clickSounds(msg tea.MouseMsg) tea.Cmd {
	n := len(m.sounds)
	// The volume bar sits inside the card, so it is checked first.
	for i := range n {
		z, ok := m.zoneAt(zoneID(zoneVolume, i), msg)
		if !ok {
			continue
		}
		m.soundCursor.Jump(i, n, 0)
		x, _ := z.Pos(msg)
		width := z.EndX - z.StartX
		level := 100
		if width > 0 {
			level = (x*100 + width/2) / width
		}
		m.setVolume(m.sounds[i].Key, level)
		return nil
	}
	if i, ok := m.hitIndex(zoneSound, n, msg); ok {
		m.soundCursor.Jump(i, n, 0)
		return ToggleSoundCmd(m.ctx, m.mixer, m.sounds[i].Key)
	}
	return nil
}

func (m *Model) clickTimer(msg tea.MouseMsg) tea.Cmd {
	if i, ok := m.hitIndex(zonePreset, m.timerChoices(), msg); ok {
		m.timerCursor.Jump(i, m.timerChoices(), 0)
		return m.selectTimerChoice(i)
	}
	switch {
	case m.inZone(zoneStart, msg):
		m.startTimer()
	case m.inZone(zonePause, msg):
		m.pauseTimer()
	case m.inZone(zoneStop, msg):
		m.stopTimer()
	}
	return nil
}

func (m *Model) inZone(id string, msg tea.MouseMsg) bool {
	_, ok := m.zoneAt(id, msg)
	return ok
}
