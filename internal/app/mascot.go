// internal/app/mascot.go
package app

import "fmt"

const (
	msgWelcome      = "Welcome to your sensory bubble! 🫧"
	msgTimesUp      = "Time's up! Your sensory break is over."
	msgTimerStarted = "Timer started! Enjoy your break."
	msgTimerPaused  = "Timer paused."
	msgTimerResumed = "Timer resumed."
	msgTimerStopped = "Timer stopped."
	msgPaused       = "All sounds paused 🔇"
	msgResumed      = "Sounds resumed! 🎵"
	msgNameProfile  = "Give your profile a name!"
)

func sectionMessage(s Section) string {
	switch s {
	case SectionSounds:
		return "Pick a sound that soothes you 🎵"
	case SectionVisuals:
		return "Watch these calming visuals ✨"
	case SectionTimer:
		return "Take a well-deserved break ⏰"
	case SectionFeelings:
		return "How are you feeling today? 😊"
	case SectionProfiles:
		return "Save your personal bubble 💾"
	}
	return "Explore your bubble! 🌟"
}

func themeMessage(dark bool) string {
	if dark {
		return "Night mode on! 🌙"
	}
	return "Day mode on! ☀️"
}

func profileMessage(verb, name string) string {
	return fmt.Sprintf("Profile %q %s!", name, verb)
}
