package visuals

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestField(w, h int) *Field {
	f := New(rand.New(rand.NewPCG(1, 2)))
	f.Resize(w, h)
	return f
}

func TestToggle_Exclusive(t *testing.T) {
	f := newTestField(40, 12)

	require.True(t, f.Toggle(Bubbles))
	k, ok := f.Current()
	assert.True(t, ok)
	assert.Equal(t, Bubbles, k)

	require.True(t, f.Toggle(Stars))
	k, _ = f.Current()
	assert.Equal(t, Stars, k, "toggling another kind replaces the current one")

	assert.False(t, f.Toggle(Stars))
	_, ok = f.Current()
	assert.False(t, ok, "toggling the current kind stops it")
	assert.Zero(t, f.Frame().Filled())
}

func TestStart_UnknownKindIgnored(t *testing.T) {
	f := newTestField(40, 12)
	f.Start(Rain)

	assert.False(t, f.Start(Kind("lava")))
	k, ok := f.Current()
	assert.True(t, ok)
	assert.Equal(t, Rain, k)
}

func TestNextPrevious(t *testing.T) {
	f := newTestField(40, 12)

	assert.Equal(t, Kinds[0], f.Next())
	assert.Equal(t, Kinds[1], f.Next())
	assert.Equal(t, Kinds[0], f.Previous())
	assert.Equal(t, Kinds[len(Kinds)-1], f.Previous())

	f.Stop()
	assert.Equal(t, Kinds[len(Kinds)-1], f.Previous())
}

func TestBubbles_RiseAndWrap(t *testing.T) {
	f := newTestField(30, 10)
	f.Start(Bubbles)

	before := make([]float64, len(f.particles))
	for i, p := range f.particles {
		before[i] = p.y
	}
	f.Step(100 * time.Millisecond)
	for i, p := range f.particles {
		assert.Less(t, p.y, before[i], "bubble %d should rise", i)
	}

	for range 200 {
		f.Step(100 * time.Millisecond)
	}
	for _, p := range f.particles {
		assert.GreaterOrEqual(t, p.y+p.size, 0.0, "bubbles wrap back to the bottom")
		assert.LessOrEqual(t, p.y, float64(f.h)+p.size)
	}
}

func TestStars_AlphaBounded(t *testing.T) {
	f := newTestField(30, 10)
	f.Start(Stars)

	for range 500 {
		f.Step(50 * time.Millisecond)
		for _, p := range f.particles {
			require.GreaterOrEqual(t, p.alpha, 0.1)
			require.LessOrEqual(t, p.alpha, 1.0)
		}
	}
}

func TestFireflies_StayInside(t *testing.T) {
	f := newTestField(20, 8)
	f.Start(Fireflies)

	for range 1000 {
		f.Step(50 * time.Millisecond)
		for _, p := range f.particles {
			require.GreaterOrEqual(t, p.x, 0.0)
			require.Less(t, p.x, float64(f.w))
			require.GreaterOrEqual(t, p.y, 0.0)
			require.Less(t, p.y, float64(f.h))
			require.GreaterOrEqual(t, p.alpha, 0.2)
			require.LessOrEqual(t, p.alpha, 1.0)
		}
	}
}

func TestRainAndSnow_Reset(t *testing.T) {
	for _, k := range []Kind{Rain, Snow} {
		t.Run(string(k), func(t *testing.T) {
			f := newTestField(20, 8)
			f.Start(k)
			for range 300 {
				f.Step(100 * time.Millisecond)
				for _, p := range f.particles {
					require.LessOrEqual(t, p.y, float64(f.h))
					require.GreaterOrEqual(t, p.x, 0.0)
					require.Less(t, p.x, float64(f.w))
				}
			}
		})
	}
}

func TestColors_HueAdvances(t *testing.T) {
	f := newTestField(20, 8)
	f.Start(Colors)
	start := f.particles[0].hue

	f.Step(500 * time.Millisecond)
	got := f.particles[0].hue
	delta := got - start
	if delta < 0 {
		delta += 360
	}
	assert.InDelta(t, 30, delta, 0.001, "hue moves 60 degrees per second")
}

func TestBreathPhase(t *testing.T) {
	tests := []struct {
		at    time.Duration
		phase string
		level float64
	}{
		{0, "inhale", 0},
		{2 * time.Second, "inhale", 0.5},
		{4 * time.Second, "exhale", 1},
		{6 * time.Second, "exhale", 0.5},
		{8 * time.Second, "inhale", 0},
	}

	for _, tt := range tests {
		t.Run(tt.at.String(), func(t *testing.T) {
			phase, level := breathAt(tt.at)
			assert.Equal(t, tt.phase, phase)
			assert.InDelta(t, tt.level, level, 1e-9)
		})
	}
}

func TestBreathing_FrameLabel(t *testing.T) {
	f := newTestField(40, 14)
	f.Start(Breathing)

	fr := f.Frame()
	assert.Equal(t, "Inhale slowly...", fr.Label)

	f.Step(5 * time.Second)
	fr = f.Frame()
	assert.Equal(t, "Exhale gently...", fr.Label)
	assert.Positive(t, fr.Filled())
}

func TestMandala_Rotates(t *testing.T) {
	f := newTestField(40, 14)
	f.Start(Mandala)

	assert.Empty(t, f.particles)
	first := f.Frame()
	assert.Positive(t, first.Filled())

	f.Step(time.Second)
	assert.InDelta(t, 1.2, f.angle, 1e-9)
	assert.NotEqual(t, first.Cells, f.Frame().Cells)
}

func TestFrame_Dimensions(t *testing.T) {
	f := newTestField(25, 7)
	for _, k := range Kinds {
		f.Start(k)
		f.Step(200 * time.Millisecond)
		fr := f.Frame()
		assert.Equal(t, 25, fr.Width, k)
		assert.Equal(t, 7, fr.Height, k)
		assert.Len(t, fr.Cells, 25*7, k)
	}
}

func TestResize_Reseeds(t *testing.T) {
	f := newTestField(4, 3)
	f.Start(Bubbles)
	small := len(f.particles)

	f.Resize(80, 24)
	assert.Greater(t, len(f.particles), small)
	assert.LessOrEqual(t, len(f.particles), maxParticles)
	w, h := f.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	f.Resize(0, -1)
	w, h = f.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestFrame_AtOutOfRange(t *testing.T) {
	fr := newFrame(3, 2)
	assert.Equal(t, Cell{}, fr.At(-1, 0))
	assert.Equal(t, Cell{}, fr.At(3, 0))

	fr.set(1.5, 1.2, 'x', hsl(0, 0, 1), 0.4)
	fr.set(1.1, 1.9, 'y', hsl(0, 0, 1), 0.2)
	assert.Equal(t, 'x', fr.At(1, 1).Rune, "dimmer cell does not overwrite")
}

func TestKindTitles(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.Valid())
		assert.NotEqual(t, string(k), k.Title())
	}
	assert.False(t, Kind("nope").Valid())
}
