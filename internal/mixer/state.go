package mixer

import "slices"

// AudioState is a snapshot of what is playing.
//
// Active holds at most one key: activating a sound deactivates the others.
// Paused is a subset of Active. GlobalPaused is set by PauseAll and cleared
// when anything resumes or a new sound is activated.
type AudioState struct {
	Active       []string
	Paused       []string
	GlobalPaused bool
}

// IsEmpty reports whether nothing is active.
func (s AudioState) IsEmpty() bool {
	return len(s.Active) == 0
}

// Equal reports whether two states hold the same keys and flag.
func (s AudioState) Equal(o AudioState) bool {
	return s.GlobalPaused == o.GlobalPaused &&
		slices.Equal(s.Active, o.Active) &&
		slices.Equal(s.Paused, o.Paused)
}

// Snapshot is what a profile captures from the mixer.
type Snapshot struct {
	Sounds  []string
	Volumes map[string]int
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
