// internal/app/update.go
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bulle/internal/app/popupctl"
	"github.com/llehouerou/bulle/internal/errmsg"
	"github.com/llehouerou/bulle/internal/log"
	"github.com/llehouerou/bulle/internal/mixer"
	"github.com/llehouerou/bulle/internal/sound"
	"github.com/llehouerou/bulle/internal/stderr"
	"github.com/llehouerou/bulle/internal/ui/action"
	"github.com/llehouerou/bulle/internal/ui/confirm"
	"github.com/llehouerou/bulle/internal/ui/helpbindings"
	"github.com/llehouerou/bulle/internal/ui/textinput"
)

// Update handles every message of the program.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.popups.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.popups.HandleMsg(msg); handled {
			return m, cmd
		}
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.popups.ActivePopup() != popupctl.None {
			return m, nil
		}
		cmd := m.handleMouse(msg)
		return m, cmd

	case action.Msg:
		cmd := m.handleAction(msg)
		return m, cmd

	case ClockTickMsg:
		cmd := m.handleClock(time.Time(msg))
		return m, tea.Batch(ClockTickCmd(), cmd)

	case FrameMsg:
		m.frameScheduled = false
		cmd := m.handleFrame(time.Time(msg))
		return m, cmd

	case MixerStateMsg:
		return m, WatchMixer(m.mixerSub)

	case MixerVolumeMsg:
		return m, WatchMixer(m.mixerSub)

	case MixerErrorMsg:
		m.handleMixerError(mixer.ErrorEvent(msg))
		return m, WatchMixer(m.mixerSub)

	case StderrMsg:
		if stderr.IsNoise(msg.Line) {
			log.Debug(log.CatAudio, "stderr", "line", msg.Line)
		} else {
			log.Warn(log.CatAudio, "stderr", "line", msg.Line)
			m.notices.Error(msg.Line)
		}
		return m, WatchStderr()

	case SoundAddedMsg:
		m.addSound(msg.Entry)
		return m, WatchSounds(m.soundCh)

	case SoundToggledMsg:
		// Start failures are reported through MixerErrorMsg.
		if msg.Err != nil {
			log.Debug(log.CatMixer, "toggle", "key", msg.Key, "err", msg.Err)
		}
		return m, nil

	case ProfileLoadedMsg:
		cmd := m.handleProfileLoaded(msg)
		return m, cmd

	case ProfilesIOMsg:
		m.handleProfilesIO(msg)
		return m, nil

	case ErrorMsg:
		m.notices.Error(errmsg.FormatWith(msg.Op, msg.Context, msg.Err))
		return m, nil
	}

	// Cursor blink and other popup internals.
	if handled, cmd := m.popups.HandleMsg(msg); handled {
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.popups.Hide(popupctl.Help)
	case confirm.Result:
		m.popups.Hide(popupctl.Confirm)
		if a.Confirmed {
			return m.handleConfirmed(a.Context)
		}
	case textinput.Result:
		mode := m.popups.InputMode()
		m.popups.Hide(popupctl.TextInput)
		if a.Canceled {
			return nil
		}
		return m.handleInput(mode, a.Text)
	}
	return nil
}

func (m *Model) handleInput(mode popupctl.InputMode, text string) tea.Cmd {
	switch mode {
	case popupctl.InputProfileName:
		return m.saveProfile(text)
	case popupctl.InputTimerMinutes:
		return m.setCustomMinutes(text)
	case popupctl.InputNone:
	}
	return nil
}

func (m *Model) handleConfirmed(ctx any) tea.Cmd {
	if del, ok := ctx.(deleteProfile); ok {
		return m.deleteProfile(del)
	}
	return nil
}

func (m *Model) handleClock(now time.Time) tea.Cmd {
	if !m.timer.Tick(now) {
		return nil
	}
	return m.timerFinished()
}

func (m *Model) handleFrame(now time.Time) tea.Cmd {
	if _, ok := m.visuals.Current(); !ok {
		return nil
	}
	dt := frameInterval(m.cfg.GetVisualFPS())
	if !m.lastFrame.IsZero() {
		dt = min(now.Sub(m.lastFrame), 4*dt)
	}
	m.lastFrame = now
	m.visuals.Step(dt)
	return m.scheduleFrame()
}

// scheduleFrame requests the next animation frame unless one is pending.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.frameScheduled {
		return nil
	}
	if _, ok := m.visuals.Current(); !ok {
		m.lastFrame = time.Time{}
		return nil
	}
	m.frameScheduled = true
	return FrameCmd(m.cfg.GetVisualFPS())
}

func (m *Model) handleMixerError(e mixer.ErrorEvent) {
	log.ErrorErr(log.CatMixer, e.Operation, e.Err, "key", e.Key)
	if errors.Is(e.Err, context.Canceled) {
		return
	}
	op := errmsg.OpSoundStart
	switch e.Operation {
	case "unlock":
		op = errmsg.OpAudioUnlock
	case "save volume":
		op = errmsg.OpVolumeSave
	}
	m.notices.Error(errmsg.FormatWith(op, m.soundTitle(e.Key), e.Err))
}

func (m *Model) addSound(e sound.Entry) {
	if slices.ContainsFunc(m.sounds, func(s sound.Entry) bool { return s.Key == e.Key }) {
		return
	}
	m.sounds = append(m.sounds, e)
	if m.newHandle != nil {
		m.mixer.Register(m.newHandle(e))
	}
	log.Info(log.CatAudio, "sound added", "key", e.Key, "path", e.Path)
	m.notices.Info(fmt.Sprintf("New sound: %s", e.Title))
}

func (m *Model) soundTitle(key string) string {
	for _, e := range m.sounds {
		if e.Key == key {
			return e.Title
		}
	}
	return key
}
