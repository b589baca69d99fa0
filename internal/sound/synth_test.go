package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
)

func render(t *testing.T, src Source, n int) [][2]float64 {
	t.Helper()
	s, _, err := src.Open(beep.SampleRate(8000))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	buf := make([][2]float64, n)
	got, ok := s.Stream(buf)
	if !ok || got != n {
		t.Fatalf("Stream = %d, %v; want %d, true", got, ok, n)
	}
	return buf
}

func meanStep(samples [][2]float64) float64 {
	var sum float64
	for i := 1; i < len(samples); i++ {
		sum += math.Abs(samples[i][0] - samples[i-1][0])
	}
	return sum / float64(len(samples)-1)
}

func TestNoise_BoundedAndDeterministic(t *testing.T) {
	for _, color := range []NoiseColor{White, Pink, Brown} {
		t.Run(color.String(), func(t *testing.T) {
			a := render(t, NoiseSource(color, 42), 4096)
			b := render(t, NoiseSource(color, 42), 4096)

			var energy float64
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("sample %d differs between runs with the same seed", i)
				}
				if math.Abs(a[i][0]) > 1 || a[i][0] != a[i][1] {
					t.Fatalf("sample %d out of range or not mono: %v", i, a[i])
				}
				energy += a[i][0] * a[i][0]
			}
			if energy == 0 {
				t.Error("noise is silent")
			}
		})
	}
}

func TestNoise_ColorsGetSmoother(t *testing.T) {
	white := meanStep(render(t, NoiseSource(White, 7), 8192))
	pink := meanStep(render(t, NoiseSource(Pink, 7), 8192))
	brown := meanStep(render(t, NoiseSource(Brown, 7), 8192))

	if !(white > pink && pink > brown) {
		t.Errorf("mean step white=%v pink=%v brown=%v, want decreasing", white, pink, brown)
	}
}

func TestNoteFrequency(t *testing.T) {
	tests := []struct {
		note string
		want float64
	}{
		{"A4", 440},
		{"A3", 220},
		{"C4", 261.63},
		{"E4", 329.63},
		{"G4", 392.00},
		{"C5", 523.25},
		{"C#4", 277.18},
		{"Bb3", 233.08},
	}
	for _, tt := range tests {
		got, err := NoteFrequency(tt.note)
		if err != nil {
			t.Errorf("NoteFrequency(%q) error: %v", tt.note, err)
			continue
		}
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("NoteFrequency(%q) = %.2f, want %.2f", tt.note, got, tt.want)
		}
	}

	for _, bad := range []string{"", "H4", "C", "C44", "Cx4"} {
		if _, err := NoteFrequency(bad); err == nil {
			t.Errorf("NoteFrequency(%q) should fail", bad)
		}
	}
}

func TestOrder_Sequence(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		n     int
		want  []int
	}{
		{"up", Up, 6, []int{0, 1, 2, 3, 4, 5}},
		{"upDown", UpDown, 6, []int{0, 1, 2, 3, 4, 5, 4, 3, 2, 1}},
		{"upDown single", UpDown, 1, []int{0}},
		{"empty", Up, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.order.Sequence(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Sequence = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Sequence = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMelody_Envelope(t *testing.T) {
	m := Melody{
		Waveform: Sine,
		Envelope: Envelope{Attack: 100 * time.Millisecond, Decay: 100 * time.Millisecond, Sustain: 0.5, Release: 200 * time.Millisecond},
		Notes:    []string{"A4"},
		Interval: 500 * time.Millisecond,
		Gain:     1,
	}
	s, err := newMelodyStreamer(m, beep.SampleRate(1000))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		age  int
		want float64
	}{
		{0, 0},
		{50, 0.5},   // half way through attack
		{100, 1},    // peak
		{150, 0.75}, // half way through decay
		{300, 0.5},  // sustain
		{600, 0.25}, // half way through release
		{700, 0},
	}
	for _, tt := range tests {
		if got := s.envelope(tt.age); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("envelope(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestMelody_BuiltinsProduceBoundedSound(t *testing.T) {
	for name, m := range map[string]Melody{"piano": Piano, "lofi": Lofi} {
		t.Run(name, func(t *testing.T) {
			buf := render(t, m.Source(), 8000*3)
			var peak float64
			for _, smp := range buf {
				peak = max(peak, math.Abs(smp[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, want in (0, 1]", peak)
			}
		})
	}
}

func TestMelody_Invalid(t *testing.T) {
	if _, err := newMelodyStreamer(Melody{Notes: []string{"A4"}}, 8000); err == nil {
		t.Error("zero interval should fail")
	}
	if _, err := newMelodyStreamer(Melody{Notes: []string{"Z9"}, Interval: time.Second}, 8000); err == nil {
		t.Error("invalid note should fail")
	}
	if _, err := newMelodyStreamer(Melody{Interval: time.Second}, 8000); err == nil {
		t.Error("no notes should fail")
	}
}
