// internal/app/handlers_feelings.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bulle/internal/feelings"
	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/sound"
	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/layout"
)

// feelingCards returns the cards of the current step.
func (m *Model) feelingCards() []feelings.Card {
	st := m.flow.State()
	switch st.Step() {
	case feelings.StepEmotions:
		cards := make([]feelings.Card, 0, len(feelings.Emotions))
		for _, e := range feelings.Emotions {
			if c, ok := e.Info(); ok {
				cards = append(cards, c)
			}
		}
		return cards
	case feelings.StepIntensity:
		return st.Emotion.Intensities()
	case feelings.StepNeeds:
		return st.Emotion.Needs()
	case feelings.StepActivities:
		return m.flow.Activities()
	}
	return nil
}

func (m *Model) feelingCols() int {
	return layout.GridColumns(m.Width, ui.FeelingCardWidth)
}

func (m *Model) handleFeelingsAction(a keymap.Action) tea.Cmd {
	n := len(m.feelingCards())
	switch a {
	case keymap.ActionLeft:
		m.feelCursor.MoveGrid(-1, 0, m.feelingCols(), n)
	case keymap.ActionRight:
		m.feelCursor.MoveGrid(1, 0, m.feelingCols(), n)
	case keymap.ActionUp:
		m.feelCursor.MoveGrid(0, -1, m.feelingCols(), n)
	case keymap.ActionDown:
		m.feelCursor.MoveGrid(0, 1, m.feelingCols(), n)
	case keymap.ActionSelect:
		return m.selectFeeling(m.feelCursor.Pos())
	case keymap.ActionBack:
		m.flow.Back()
		m.feelCursor.Reset()
	case keymap.ActionRestart:
		m.flow.Reset()
		m.feelCursor.Reset()
	case keymap.ActionPlaySuggested:
		return m.playSuggested()
	}
	return nil
}

func (m *Model) selectFeeling(i int) tea.Cmd {
	st := m.flow.State()
	cards := m.feelingCards()
	if i < 0 || i >= len(cards) {
		return nil
	}
	var err error
	switch st.Step() {
	case feelings.StepEmotions:
		err = m.flow.SelectEmotion(feelings.Emotions[i])
	case feelings.StepIntensity:
		err = m.flow.SelectIntensity(i + 1)
	case feelings.StepNeeds:
		err = m.flow.SelectNeed(cards[i].ID)
	case feelings.StepActivities:
		m.notices.Mascot("Good idea: " + cards[i].Title + " " + cards[i].Icon)
		return FeedbackCmd(m.ctx, m.feedback, sound.KeyBubble)
	}
	if err != nil {
		m.notices.Error(err.Error())
		return nil
	}
	m.feelCursor.Reset()
	return FeedbackCmd(m.ctx, m.feedback, sound.KeyBubble)
}

func (m *Model) playSuggested() tea.Cmd {
	key := m.flow.SuggestedSound()
	if key == "" {
		m.notices.Info("Choose how you feel first")
		return nil
	}
	m.notices.Mascot("Playing " + m.soundTitle(key) + " 🎵")
	return ActivateSoundCmd(m.ctx, m.mixer, key)
}
