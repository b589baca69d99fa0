package sound

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// Waveform is the oscillator shape of a melody voice.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
)

// Envelope is an ADSR envelope. Sustain is a level, the rest are durations.
type Envelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64
	Release time.Duration
}

// Order is how a melody walks its notes.
type Order int

const (
	// Up plays the notes in order and starts over.
	Up Order = iota
	// UpDown plays the notes forward then backward without repeating the ends.
	UpDown
)

// Melody describes a looping note pattern.
type Melody struct {
	Waveform Waveform
	Envelope Envelope
	Notes    []string
	Order    Order
	// Interval between note onsets; each note is held for the same time.
	Interval time.Duration
	Gain     float64
}

// Built-in melodies.
var (
	Piano = Melody{
		Waveform: Sine,
		Envelope: Envelope{Attack: 500 * time.Millisecond, Decay: 300 * time.Millisecond, Sustain: 0.8, Release: 2 * time.Second},
		Notes:    []string{"C4", "E4", "G4", "C5", "G4", "E4"},
		Order:    Up,
		Interval: 2 * time.Second,
		Gain:     0.25,
	}
	Lofi = Melody{
		Waveform: Triangle,
		Envelope: Envelope{Attack: 800 * time.Millisecond, Decay: 500 * time.Millisecond, Sustain: 0.6, Release: 3 * time.Second},
		Notes:    []string{"A3", "C4", "E4", "A4", "E4", "C4"},
		Order:    UpDown,
		Interval: time.Second,
		Gain:     0.2,
	}
)

var semitones = map[byte]int{'C': -9, 'D': -7, 'E': -5, 'F': -4, 'G': -2, 'A': 0, 'B': 2}

// NoteFrequency returns the frequency in Hz of a note such as "A4", "C#5"
// or "Bb3", in equal temperament with A4 = 440 Hz.
func NoteFrequency(note string) (float64, error) {
	if len(note) < 2 {
		return 0, fmt.Errorf("invalid note %q", note)
	}
	st, ok := semitones[note[0]]
	if !ok {
		return 0, fmt.Errorf("invalid note %q", note)
	}
	rest := note[1:]
	switch rest[0] {
	case '#':
		st++
		rest = rest[1:]
	case 'b':
		st--
		rest = rest[1:]
	}
	if len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
		return 0, fmt.Errorf("invalid note %q", note)
	}
	octave := int(rest[0] - '0')
	st += (octave - 4) * 12
	return 440 * math.Pow(2, float64(st)/12), nil
}

// Sequence returns the note indices of one full cycle of the order.
func (o Order) Sequence(n int) []int {
	if n <= 0 {
		return nil
	}
	seq := make([]int, 0, 2*n)
	for i := range n {
		seq = append(seq, i)
	}
	if o == UpDown {
		for i := n - 2; i > 0; i-- {
			seq = append(seq, i)
		}
	}
	return seq
}

// Source returns a Source rendering the melody forever.
func (m Melody) Source() Source {
	return SourceFunc(func(sr beep.SampleRate) (beep.Streamer, io.Closer, error) {
		s, err := newMelodyStreamer(m, sr)
		return s, nil, err
	})
}

type voice struct {
	freq  float64
	start int // sample index of note onset
}

type melodyStreamer struct {
	m       Melody
	sr      float64
	freqs   []float64
	seq     []int
	step    int
	pos     int
	next    int
	every   int
	hold    int
	release int
	voices  []voice
}

func newMelodyStreamer(m Melody, sr beep.SampleRate) (*melodyStreamer, error) {
	if m.Interval <= 0 {
		return nil, fmt.Errorf("melody interval must be positive")
	}
	freqs := make([]float64, len(m.Notes))
	for i, n := range m.Notes {
		f, err := NoteFrequency(n)
		if err != nil {
			return nil, err
		}
		freqs[i] = f
	}
	seq := m.Order.Sequence(len(freqs))
	if len(seq) == 0 {
		return nil, fmt.Errorf("melody has no notes")
	}
	every := sr.N(m.Interval)
	return &melodyStreamer{
		m:       m,
		sr:      float64(sr),
		freqs:   freqs,
		seq:     seq,
		every:   every,
		hold:    every,
		release: sr.N(m.Envelope.Release),
	}, nil
}

func (s *melodyStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos == s.next {
			s.voices = append(s.voices, voice{freq: s.freqs[s.seq[s.step]], start: s.pos})
			s.step = (s.step + 1) % len(s.seq)
			s.next += s.every
		}

		var v float64
		alive := s.voices[:0]
		for _, vc := range s.voices {
			age := s.pos - vc.start
			if age >= s.hold+s.release {
				continue
			}
			alive = append(alive, vc)
			t := float64(age) / s.sr
			v += s.oscillate(vc.freq*t) * s.envelope(age)
		}
		s.voices = alive

		samples[i] = stereo(v * s.m.Gain)
		s.pos++
	}
	return len(samples), true
}

func (s *melodyStreamer) Err() error { return nil }

// oscillate returns the waveform value at the given phase in cycles.
func (s *melodyStreamer) oscillate(phase float64) float64 {
	switch s.m.Waveform {
	case Triangle:
		_, frac := math.Modf(phase)
		return 1 - 4*math.Abs(frac-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope returns the ADSR level age samples after note onset.
func (s *melodyStreamer) envelope(age int) float64 {
	env := s.m.Envelope
	attack := env.Attack.Seconds() * s.sr
	decay := env.Decay.Seconds() * s.sr

	level := func(a float64) float64 {
		switch {
		case a < attack:
			return a / attack
		case a < attack+decay:
			return 1 - (1-env.Sustain)*(a-attack)/decay
		default:
			return env.Sustain
		}
	}

	a := float64(age)
	if age < s.hold {
		return level(a)
	}
	if s.release == 0 {
		return 0
	}
	start := level(float64(s.hold))
	return start * (1 - float64(age-s.hold)/float64(s.release))
}
