package mixer

// StateChange is emitted when the set of active or paused sounds changes.
type StateChange struct {
	Previous AudioState
	Current  AudioState
}

// VolumeChange is emitted when a sound's volume is set.
type VolumeChange struct {
	Key   string
	Level int
}

// ErrorEvent is emitted when a sound fails to start or a volume cannot be
// saved. The app turns these into notices.
type ErrorEvent struct {
	Operation string // "activate", "unlock", "save volume"
	Key       string
	Err       error
}
