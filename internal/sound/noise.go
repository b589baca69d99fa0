package sound

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/gopxl/beep/v2"
)

// NoiseColor selects the spectrum of a noise generator.
type NoiseColor int

const (
	White NoiseColor = iota
	Pink
	Brown
)

func (c NoiseColor) String() string {
	switch c {
	case White:
		return "white"
	case Pink:
		return "pink"
	case Brown:
		return "brown"
	default:
		return fmt.Sprintf("NoiseColor(%d)", int(c))
	}
}

const noiseAmplitude = 0.5

// NoiseSource generates endless noise of the given color.
// seed makes the output reproducible; 0 picks a random seed per start.
func NoiseSource(color NoiseColor, seed uint64) Source {
	return SourceFunc(func(_ beep.SampleRate) (beep.Streamer, io.Closer, error) {
		s := seed
		if s == 0 {
			s = rand.Uint64()
		}
		return newNoise(color, rand.New(rand.NewPCG(s, s>>1|1))), nil, nil
	})
}

func newNoise(color NoiseColor, rng *rand.Rand) beep.Streamer {
	white := func() float64 { return rng.Float64()*2 - 1 }

	switch color {
	case Pink:
		// Paul Kellet's refined pink filter
		var b0, b1, b2, b3, b4, b5, b6 float64
		return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				w := white()
				b0 = 0.99886*b0 + w*0.0555179
				b1 = 0.99332*b1 + w*0.0750759
				b2 = 0.96900*b2 + w*0.1538520
				b3 = 0.86650*b3 + w*0.3104856
				b4 = 0.55000*b4 + w*0.5329522
				b5 = -0.7616*b5 - w*0.0168980
				v := (b0 + b1 + b2 + b3 + b4 + b5 + b6 + w*0.5362) * 0.11
				b6 = w * 0.115926
				samples[i] = stereo(v * noiseAmplitude)
			}
			return len(samples), true
		})
	case Brown:
		var last float64
		return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				last = (last + 0.02*white()) / 1.02
				samples[i] = stereo(last * 3.5 * noiseAmplitude)
			}
			return len(samples), true
		})
	default:
		return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				samples[i] = stereo(white() * noiseAmplitude)
			}
			return len(samples), true
		})
	}
}

func stereo(v float64) [2]float64 {
	v = max(-1, min(1, v))
	return [2]float64{v, v}
}
