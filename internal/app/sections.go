// internal/app/sections.go
package app

import "github.com/llehouerou/bulle/internal/keymap"

// Section is one screen of the app.
type Section int

const (
	SectionSounds Section = iota
	SectionVisuals
	SectionTimer
	SectionFeelings
	SectionProfiles
)

// Sections lists sections in tab order.
var Sections = []Section{SectionSounds, SectionVisuals, SectionTimer, SectionFeelings, SectionProfiles}

func (s Section) String() string {
	switch s {
	case SectionSounds:
		return "sounds"
	case SectionVisuals:
		return "visuals"
	case SectionTimer:
		return "timer"
	case SectionFeelings:
		return "feelings"
	case SectionProfiles:
		return "profiles"
	}
	return "unknown"
}

// Title is the tab label.
func (s Section) Title() string {
	switch s {
	case SectionSounds:
		return "Sounds"
	case SectionVisuals:
		return "Visuals"
	case SectionTimer:
		return "Timer"
	case SectionFeelings:
		return "Feelings"
	case SectionProfiles:
		return "Profiles"
	}
	return "?"
}

// Context returns the key binding context active in s.
func (s Section) Context() keymap.Context {
	switch s {
	case SectionSounds:
		return keymap.Sounds
	case SectionVisuals:
		return keymap.Visuals
	case SectionTimer:
		return keymap.Timer
	case SectionFeelings:
		return keymap.Feelings
	case SectionProfiles:
		return keymap.Profiles
	}
	return keymap.Global
}

// ParseSection maps a stored section name back to a Section.
func ParseSection(name string) (Section, bool) {
	for _, s := range Sections {
		if s.String() == name {
			return s, true
		}
	}
	return SectionSounds, false
}

func (s Section) next(dir int) Section {
	n := len(Sections)
	return Sections[((int(s)+dir)%n+n)%n]
}
