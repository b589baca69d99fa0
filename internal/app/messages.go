// Package app implements the terminal user interface: a bubbletea model
// wiring the mixer, animations, timer, feelings guide and profiles.
package app

import (
	"time"

	"github.com/llehouerou/bulle/internal/errmsg"
	"github.com/llehouerou/bulle/internal/mixer"
	"github.com/llehouerou/bulle/internal/profiles"
	"github.com/llehouerou/bulle/internal/sound"
)

// ClockTickMsg fires every second. It drives the timer and notice expiry.
type ClockTickMsg time.Time

// FrameMsg advances the running animation.
type FrameMsg time.Time

// MixerStateMsg reports a change of the active or paused sounds.
type MixerStateMsg mixer.StateChange

// MixerVolumeMsg reports a volume change.
type MixerVolumeMsg mixer.VolumeChange

// MixerErrorMsg reports a sound that failed to start or save.
type MixerErrorMsg mixer.ErrorEvent

// StderrMsg carries a line written to stderr by audio libraries.
type StderrMsg struct {
	Line string
}

// SoundAddedMsg reports an audio file dropped into the sounds directory.
type SoundAddedMsg struct {
	Entry sound.Entry
}

// SoundToggledMsg is the result of toggling or activating a sound.
type SoundToggledMsg struct {
	Key     string
	Handled bool
	Err     error
}

// ProfileLoadedMsg is the result of loading a profile.
type ProfileLoadedMsg struct {
	Profile profiles.Profile
	Err     error
}

// ProfilesIOMsg is the result of exporting or importing profiles.
type ProfilesIOMsg struct {
	Op    errmsg.Op
	Path  string
	Count int
	Err   error
}

// ErrorMsg is a failure to show as a notice.
type ErrorMsg struct {
	Op      errmsg.Op
	Context string
	Err     error
}
