// Package feelings guides the user from an emotion to suitable activities.
//
// The flow has four steps: pick an emotion, rate its intensity, choose a
// need, then read the suggested activities.
package feelings

import (
	"errors"
	"fmt"
)

// MaxIntensity is the strongest intensity level. Levels start at 1.
const MaxIntensity = 5

var (
	ErrUnknownEmotion = errors.New("unknown emotion")
	ErrNoEmotion      = errors.New("no emotion selected")
	ErrNoIntensity    = errors.New("no intensity selected")
	ErrUnknownNeed    = errors.New("need does not belong to emotion")
)

// Step is the screen the flow is on.
type Step int

const (
	StepEmotions Step = iota
	StepIntensity
	StepNeeds
	StepActivities
)

func (s Step) String() string {
	switch s {
	case StepEmotions:
		return "emotions"
	case StepIntensity:
		return "intensity"
	case StepNeeds:
		return "needs"
	case StepActivities:
		return "activities"
	default:
		return "unknown"
	}
}

// State is the current selection. Zero values mean "not selected".
type State struct {
	Emotion   Emotion
	Intensity int
	Need      string
}

// Step derives the screen to show from the selection.
func (s State) Step() Step {
	switch {
	case s.Emotion == "":
		return StepEmotions
	case s.Intensity == 0:
		return StepIntensity
	case s.Need == "":
		return StepNeeds
	default:
		return StepActivities
	}
}

// Flow holds the selection and notifies observers on every change.
// It is driven from the UI loop and is not safe for concurrent use.
type Flow struct {
	state     State
	observers []func(State)
}

// NewFlow returns a flow on the emotions step.
func NewFlow() *Flow {
	return &Flow{}
}

// OnChange registers fn to be called with the new state after each change.
func (f *Flow) OnChange(fn func(State)) {
	if fn != nil {
		f.observers = append(f.observers, fn)
	}
}

// State returns the current selection.
func (f *Flow) State() State {
	return f.state
}

// Step returns the current step.
func (f *Flow) Step() Step {
	return f.state.Step()
}

// SelectEmotion picks e and clears intensity and need.
func (f *Flow) SelectEmotion(e Emotion) error {
	if !e.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEmotion, e)
	}
	f.set(State{Emotion: e})
	return nil
}

// SelectIntensity picks a level in 1..MaxIntensity and clears the need.
func (f *Flow) SelectIntensity(level int) error {
	if f.state.Emotion == "" {
		return ErrNoEmotion
	}
	if level < 1 || level > MaxIntensity {
		return fmt.Errorf("intensity %d out of range 1-%d", level, MaxIntensity)
	}
	f.set(State{Emotion: f.state.Emotion, Intensity: level})
	return nil
}

// SelectNeed picks one of the needs offered for the selected emotion.
func (f *Flow) SelectNeed(id string) error {
	if f.state.Emotion == "" {
		return ErrNoEmotion
	}
	if f.state.Intensity == 0 {
		return ErrNoIntensity
	}
	for _, n := range f.state.Emotion.Needs() {
		if n.ID == id {
			s := f.state
			s.Need = id
			f.set(s)
			return nil
		}
	}
	return fmt.Errorf("%w: %q for %s", ErrUnknownNeed, id, f.state.Emotion)
}

// Back returns to the previous step, clearing the selection made on it.
// On the emotions step it does nothing.
func (f *Flow) Back() {
	s := f.state
	switch s.Step() {
	case StepEmotions:
		return
	case StepIntensity:
		s = State{}
	case StepNeeds:
		s.Intensity = 0
	case StepActivities:
		s.Need = ""
	}
	f.set(s)
}

// Reset clears the selection.
func (f *Flow) Reset() {
	f.set(State{})
}

// Activities returns the activities for the selected emotion once a need
// has been chosen.
func (f *Flow) Activities() []Card {
	if f.Step() != StepActivities {
		return nil
	}
	return f.state.Emotion.Activities()
}

// Need returns the card of the selected need.
func (f *Flow) Need() (Card, bool) {
	for _, n := range f.state.Emotion.Needs() {
		if n.ID == f.state.Need {
			return n, true
		}
	}
	return Card{}, false
}

// SuggestedSound returns the sound offered for the selected emotion, or ""
// before one is picked.
func (f *Flow) SuggestedSound() string {
	return f.state.Emotion.SuggestedSound()
}

func (f *Flow) set(s State) {
	f.state = s
	for _, fn := range f.observers {
		fn(s)
	}
}
