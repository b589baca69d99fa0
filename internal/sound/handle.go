package sound

import "math"

// Kind tells how a handle produces audio.
type Kind int

const (
	KindFile Kind = iota
	KindNoise
	KindMelody
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindNoise:
		return "noise"
	case KindMelody:
		return "melody"
	default:
		return "unknown"
	}
}

// Handle is a playable sound identified by its key.
type Handle interface {
	Key() string
	Title() string
	Kind() Kind
	Loop() bool

	// Start plays from the beginning. The engine must be unlocked.
	Start() error
	Stop() error
	Pause()
	Resume()

	// SetGain sets the linear gain (0.0 to 1.0). It applies live when the
	// handle is playing and is kept for the next Start otherwise.
	SetGain(gain float64)
	Gain() float64

	Status() Status
}

// GainFromPercent converts a 0-100 volume to a linear gain.
func GainFromPercent(level int) float64 {
	return clampGain(float64(level) / 100)
}

func clampGain(g float64) float64 {
	return max(0, min(1, g))
}

// gainToVolume converts a 0.0-1.0 gain to beep's Volume value.
// beep uses a logarithmic scale where Volume is in "decibels" with base 2.
// Volume = 0 means no change, -1 = half volume, -2 = quarter, etc.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (and silent)
func gainToVolume(gain float64) (volume float64, silent bool) {
	if gain <= 0 {
		return -10, true
	}
	if gain >= 1 {
		return 0, false
	}
	return math.Log2(gain), false
}
