// internal/app/handlers_timer.go
package app

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bulle/internal/app/popupctl"
	"github.com/llehouerou/bulle/internal/errmsg"
	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/notify"
	"github.com/llehouerou/bulle/internal/sound"
	"github.com/llehouerou/bulle/internal/timer"
	"github.com/llehouerou/bulle/internal/ui/textinput"
)

// timerChoices is the number of chips: every preset plus "Custom".
func (m *Model) timerChoices() int {
	return len(m.presets) + 1
}

func (m *Model) handleTimerAction(a keymap.Action) tea.Cmd {
	n := m.timerChoices()
	switch a {
	case keymap.ActionLeft, keymap.ActionUp:
		m.timerCursor.Move(-1, n, 0)
	case keymap.ActionRight, keymap.ActionDown:
		m.timerCursor.Move(1, n, 0)
	case keymap.ActionSelect:
		return m.selectTimerChoice(m.timerCursor.Pos())
	case keymap.ActionTimerStart:
		m.startTimer()
	case keymap.ActionTimerPause:
		m.pauseTimer()
	case keymap.ActionTimerStop:
		m.stopTimer()
	case keymap.ActionTimerCustom:
		return m.askCustomMinutes()
	}
	return nil
}

func (m *Model) selectTimerChoice(i int) tea.Cmd {
	if i >= len(m.presets) {
		return m.askCustomMinutes()
	}
	if err := m.timer.SetMinutes(m.presets[i]); err != nil {
		m.notices.Error(errmsg.Format(errmsg.OpTimerStart, err))
	}
	return nil
}

func (m *Model) askCustomMinutes() tea.Cmd {
	value := ""
	if mins := m.timer.Minutes(); mins > 0 {
		value = strconv.Itoa(mins)
	}
	return m.popups.ShowTextInput(popupctl.InputTimerMinutes, "Custom duration (minutes)", value,
		textinput.Options{Placeholder: "1-" + strconv.Itoa(timer.MaxMinutes), CharLimit: 3, Numeric: true}, nil)
}

func (m *Model) setCustomMinutes(text string) tea.Cmd {
	mins, err := strconv.Atoi(strings.TrimSpace(text))
	if err == nil {
		err = m.timer.SetMinutes(mins)
	}
	if err != nil {
		m.notices.Error(errmsg.FormatWith(errmsg.OpTimerStart, text, err))
		return nil
	}
	m.timerCursor.Jump(len(m.presets), m.timerChoices(), 0)
	return nil
}

func (m *Model) startTimer() {
	if m.timer.State() == timer.Running {
		return
	}
	resuming := m.timer.State() == timer.Paused
	if err := m.timer.Start(m.now()); err != nil {
		if errors.Is(err, timer.ErrNoDuration) {
			m.notices.Info("Pick a duration first")
			return
		}
		m.notices.Error(errmsg.Format(errmsg.OpTimerStart, err))
		return
	}
	if resuming {
		m.notices.Mascot(msgTimerResumed)
		return
	}
	m.notices.Mascot(msgTimerStarted)
}

func (m *Model) pauseTimer() {
	switch m.timer.State() {
	case timer.Running:
		m.timer.Pause(m.now())
		m.notices.Mascot(msgTimerPaused)
	case timer.Paused:
		m.timer.Pause(m.now())
		m.notices.Mascot(msgTimerResumed)
	case timer.Idle:
	}
}

func (m *Model) stopTimer() {
	if m.timer.State() == timer.Idle {
		return
	}
	m.timer.Stop()
	m.notices.Mascot(msgTimerStopped)
}

// timerFinished ends the break: sounds and animation stop, the gong
// plays and a desktop notification is sent.
func (m *Model) timerFinished() tea.Cmd {
	m.mixer.StopAll()
	m.visuals.Stop()
	m.Fullscreen = false
	m.layout()
	m.notices.Mascot(msgTimesUp)

	cmds := []tea.Cmd{FeedbackCmd(m.ctx, m.feedback, sound.KeyGong)}
	if m.cfg.NotificationsEnabled() {
		cmds = append(cmds, NotifyCmd(m.notifier, notify.TimerDone(m.timer.Minutes())))
	}
	return tea.Batch(cmds...)
}
