// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/mixer"
	"github.com/llehouerou/bulle/internal/notice"
	"github.com/llehouerou/bulle/internal/timer"
	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/headerbar"
	"github.com/llehouerou/bulle/internal/ui/layout"
	"github.com/llehouerou/bulle/internal/ui/playerbar"
	"github.com/llehouerou/bulle/internal/ui/render"
	"github.com/llehouerou/bulle/internal/ui/styles"
	"github.com/llehouerou/bulle/internal/visuals"
)

const appTitle = "🫧 bulle"

// View renders the whole screen.
func (m Model) View() string {
	if m.Quitting || m.Width == 0 || m.Height == 0 {
		return ""
	}

	var view string
	if m.Fullscreen {
		view = m.renderFullscreen()
	} else {
		tabs := make([]headerbar.Tab, len(Sections))
		for i, s := range Sections {
			id := zoneID(zoneTab, i)
			tabs[i] = headerbar.Tab{Name: s.Title(), Mark: func(v string) string { return m.mark(id, v) }}
		}
		parts := []string{
			headerbar.Render(appTitle, tabs, int(m.Section), m.Width),
			fitHeight(m.renderSection(), layout.BodyHeight(m.Height)),
			playerbar.Render(m.playerState(), m.Width),
			m.renderNotice(),
			m.renderHints(),
		}
		view = strings.Join(parts, "\n")
	}

	view = m.popups.RenderOverlay(view)
	if m.zones != nil {
		view = m.zones.Scan(view)
	}
	return view
}

func (m *Model) renderSection() string {
	switch m.Section {
	case SectionSounds:
		return m.renderSounds()
	case SectionVisuals:
		return m.renderVisuals()
	case SectionTimer:
		return m.renderTimer()
	case SectionFeelings:
		return m.renderFeelings()
	case SectionProfiles:
		return m.renderProfiles()
	}
	return ""
}

// layout resizes the pieces that depend on the window size.
func (m *Model) layout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	w, h := layout.CanvasSize(m.Width, m.Height, m.visualsChrome(), m.Fullscreen)
	m.visuals.Resize(w, h)
	m.progress.Width = min(max(m.Width-10, ui.MinProgressBarWidth), ui.MaxProgressBarWidth)
}

func (m *Model) playerState() playerbar.State {
	st := m.mixer.State()
	var s playerbar.State
	if key, ok := m.mixer.Current(); ok {
		s.Title = m.soundTitle(key)
		s.Volume = m.mixer.Volume(key)
		s.Paused = m.mixer.IsPaused(key)
	}
	s.GlobalPaused = st.GlobalPaused
	if k, ok := m.visuals.Current(); ok {
		s.Visual = k.Title()
	}
	if m.timer.State() != timer.Idle {
		s.Timer = m.timer.Format(m.now())
		s.TimerPaused = m.timer.State() == timer.Paused
	}
	return s
}

// renderNotice shows the newest notice.
func (m *Model) renderNotice() string {
	n, ok := m.notices.Latest()
	if !ok {
		return ""
	}
	t := styles.T()
	text := render.Truncate(n.Text, max(m.Width-4, 0))
	switch n.Level {
	case notice.LevelMascot:
		return " " + lipgloss.NewStyle().Foreground(t.Primary).Render("🫧 "+text)
	case notice.LevelError:
		return " " + t.S().Error.Render("✗ "+text)
	case notice.LevelSuccess:
		return " " + t.S().Success.Render("✓ "+text)
	case notice.LevelInfo:
	}
	return " " + t.S().Muted.Render(text)
}

func (m *Model) renderHints() string {
	hints := []keymap.Action{keymap.ActionSelect}
	switch m.Section {
	case SectionSounds:
		hints = append(hints, keymap.ActionVolumeUp, keymap.ActionVolumeDown)
	case SectionVisuals:
		hints = append(hints, keymap.ActionFullscreen, keymap.ActionNextVisual)
	case SectionTimer:
		hints = append(hints, keymap.ActionTimerStart, keymap.ActionTimerPause, keymap.ActionTimerStop)
	case SectionFeelings:
		hints = append(hints, keymap.ActionBack, keymap.ActionPlaySuggested)
	case SectionProfiles:
		hints = append(hints, keymap.ActionProfileSave, keymap.ActionProfileDelete)
	}
	hints = append(hints, keymap.ActionPauseAll, keymap.ActionTheme, keymap.ActionHelp, keymap.ActionQuit)

	parts := make([]string, 0, len(hints))
	for _, a := range hints {
		keys := m.keys.KeysFor(a)
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keymap.KeyLabel(keys[0])+" "+hintLabel(a))
	}
	return " " + styles.T().S().Subtle.Render(render.Truncate(strings.Join(parts, " · "), max(m.Width-2, 0)))
}

func hintLabel(a keymap.Action) string {
	switch a {
	case keymap.ActionSelect:
		return "select"
	case keymap.ActionVolumeUp:
		return "louder"
	case keymap.ActionVolumeDown:
		return "softer"
	case keymap.ActionFullscreen:
		return "fullscreen"
	case keymap.ActionNextVisual:
		return "next"
	case keymap.ActionTimerStart:
		return "start"
	case keymap.ActionTimerPause:
		return "pause"
	case keymap.ActionTimerStop:
		return "stop"
	case keymap.ActionBack:
		return "back"
	case keymap.ActionPlaySuggested:
		return "play suggestion"
	case keymap.ActionProfileSave:
		return "save"
	case keymap.ActionProfileDelete:
		return "delete"
	case keymap.ActionPauseAll:
		return "pause all"
	case keymap.ActionTheme:
		return "theme"
	case keymap.ActionHelp:
		return "help"
	case keymap.ActionQuit:
		return "quit"
	}
	return string(a)
}

func (m *Model) renderFullscreen() string {
	fr := m.visuals.Frame()
	status := fr.Label
	if k, ok := m.visuals.Current(); ok && status == "" {
		status = k.Title()
	}
	status = render.Row(" "+status, "esc leave fullscreen ", m.Width)
	return renderFrame(fr) + "\n" + styles.T().S().Muted.Render(status)
}

// fitHeight pads or cuts s to exactly h lines.
func fitHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// grid lays out rendered cells row by row.
func grid(cells []string, cols int) string {
	if len(cells) == 0 {
		return ""
	}
	rows := make([]string, 0, layout.GridRows(len(cells), cols))
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// visualsChrome is the number of rows around the animation canvas.
func (m *Model) visualsChrome() int {
	rows := layout.GridRows(len(visuals.Kinds), m.chipCols())
	return rows*ui.ChipHeight + 1
}

// audioSummary describes the mixer state in a few words.
func audioSummary(st mixer.AudioState) string {
	switch {
	case st.IsEmpty():
		return "silence"
	case st.GlobalPaused:
		return "paused"
	}
	return "playing"
}
