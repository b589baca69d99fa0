package sound

// Status represents the state machine of a sound handle.
//
// The state machine has three states with the following valid transitions:
//
//	┌──────────┐      start      ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲                            │ │
//	     │ stop                 pause │ │ stop
//	     │                            ▼ │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Paused  │
//	                  stop       └──────────┘
//	                                  │
//	                           resume │
//	                                  ▼
//	                               Playing
//
// Valid transitions:
//   - Stopped → Playing (via Start)
//   - Playing → Paused  (via Pause)
//   - Playing → Stopped (via Stop, or a one-shot sound reaching its end)
//   - Paused  → Playing (via Resume)
//   - Paused  → Stopped (via Stop)
//
// Invalid/No-op transitions (handled gracefully):
//   - Stopped → Paused  (ignored)
//   - Stopped → Stopped (ignored)
//   - Paused  → Paused  (ignored)
//   - Playing → Playing (Start restarts from the beginning)
type Status int

const (
	Stopped Status = iota
	Playing
	Paused
)

// String returns the status name for debugging.
func (s Status) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if the sound is Playing or Paused.
func (s Status) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the status allows pausing.
func (s Status) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the status allows resuming.
func (s Status) CanResume() bool {
	return s == Paused
}
