package visuals

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	maxParticles = 50
	// The original animations were tuned per frame at 60 frames per second.
	framesPerSecond = 60.0
	breathPeriod    = 8 * time.Second
)

type particle struct {
	x, y   float64
	vx, vy float64 // cells per second
	size   float64
	alpha  float64
	rate   float64 // twinkle, glow or pulse rate
	hue    float64
}

// Field runs one animation at a time on a w×h grid.
type Field struct {
	rng *rand.Rand

	w, h      int
	kind      Kind
	active    bool
	particles []particle
	elapsed   time.Duration
	angle     float64
}

// New creates a stopped field. rng drives every random choice.
func New(rng *rand.Rand) *Field {
	return &Field{rng: rng, w: 40, h: 12}
}

// Current returns the running animation.
func (f *Field) Current() (Kind, bool) {
	return f.kind, f.active
}

// Toggle stops the current animation and starts k, unless k was the
// current one, in which case everything stops. It reports whether k runs.
func (f *Field) Toggle(k Kind) bool {
	if f.active && f.kind == k {
		f.Stop()
		return false
	}
	return f.Start(k)
}

// Start runs k, replacing any current animation. Unknown kinds are ignored.
func (f *Field) Start(k Kind) bool {
	if !k.Valid() {
		return false
	}
	f.Stop()
	f.kind = k
	f.active = true
	f.seed()
	return true
}

// Stop clears the field.
func (f *Field) Stop() {
	f.active = false
	f.kind = ""
	f.particles = nil
	f.elapsed = 0
	f.angle = 0
}

// Next starts the animation after the current one, wrapping around.
func (f *Field) Next() Kind { return f.cycle(1) }

// Previous starts the animation before the current one.
func (f *Field) Previous() Kind { return f.cycle(-1) }

func (f *Field) cycle(dir int) Kind {
	idx := -1
	for i, k := range Kinds {
		if f.active && k == f.kind {
			idx = i
		}
	}
	var next int
	switch {
	case idx < 0 && dir > 0:
		next = 0
	case idx < 0:
		next = len(Kinds) - 1
	default:
		next = (idx + dir + len(Kinds)) % len(Kinds)
	}
	f.Start(Kinds[next])
	return Kinds[next]
}

// Size returns the grid size.
func (f *Field) Size() (int, int) { return f.w, f.h }

// Resize changes the grid and re-seeds the running animation.
func (f *Field) Resize(w, h int) {
	w, h = max(1, w), max(1, h)
	if w == f.w && h == f.h {
		return
	}
	f.w, f.h = w, h
	if f.active {
		f.seed()
	}
}

func (f *Field) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

func (f *Field) seed() {
	f.particles = f.particles[:0]
	n := min(maxParticles, max(1, f.w*f.h/6))
	W, H := float64(f.w), float64(f.h)

	for range n {
		var p particle
		switch f.kind {
		case Bubbles, Breathing:
			p = particle{
				x: f.between(0, W), y: H + f.between(0, H/2),
				vy:    -f.between(1, 3),
				size:  f.between(1, 3),
				alpha: f.between(0.3, 0.8),
				hue:   f.between(180, 240),
			}
		case Stars:
			p = particle{
				x: f.between(0, W), y: f.between(0, H),
				size:  f.between(1, 4),
				alpha: f.between(0.2, 1),
				rate:  f.between(0.01, 0.03),
				hue:   f.between(40, 100),
			}
		case Rain:
			p = particle{
				x: f.between(0, W), y: f.between(-H, 0),
				vy:    f.between(20, 40),
				size:  f.between(1, 3),
				alpha: f.between(0.4, 1),
				hue:   200,
			}
		case Snow:
			p = particle{
				x: f.between(0, W), y: f.between(-H, 0),
				vy:    f.between(1, 3),
				vx:    f.between(-1, 1),
				size:  f.between(1, 3),
				alpha: f.between(0.2, 1),
			}
		case Fireflies:
			p = particle{
				x: f.between(0, W), y: f.between(0, H),
				vx:    f.between(-2, 2),
				vy:    f.between(-1, 1),
				size:  f.between(1, 3),
				alpha: f.between(0.2, 1),
				rate:  f.between(0.01, 0.03),
				hue:   f.between(50, 110),
			}
		case Colors:
			p = particle{
				x: f.between(0, W), y: f.between(0, H),
				vx:    f.between(-2, 2),
				vy:    f.between(-1, 1),
				size:  f.between(1, 3),
				alpha: f.between(0.3, 1),
				rate:  f.between(0.01, 0.03),
				hue:   f.between(0, 360),
			}
		case Mandala:
			return
		}
		f.particles = append(f.particles, p)
	}
}

// Step advances the animation by dt.
func (f *Field) Step(dt time.Duration) {
	if !f.active || dt <= 0 {
		return
	}
	f.elapsed += dt
	s := dt.Seconds()
	frames := s * framesPerSecond
	W, H := float64(f.w), float64(f.h)

	if f.kind == Mandala {
		f.angle += 0.02 * frames
		return
	}

	for i := range f.particles {
		p := &f.particles[i]
		switch f.kind {
		case Bubbles, Breathing:
			p.y += p.vy * s
			if p.y+p.size < 0 {
				p.y = H + p.size
				p.x = f.between(0, W)
			}
		case Stars:
			p.alpha = clamp(p.alpha+p.rate*frames*f.sign(), 0.1, 1)
		case Rain:
			p.y += p.vy * s
			if p.y > H {
				p.y = -p.size
				p.x = f.between(0, W)
			}
		case Snow:
			p.y += p.vy * s
			p.x += p.vx * s
			if p.y > H {
				p.y = -1
				p.x = f.between(0, W)
			}
			if p.x >= W {
				p.x = 0
			} else if p.x < 0 {
				p.x = W - 0.001
			}
		case Fireflies:
			f.bounce(p, s)
			p.alpha = clamp(p.alpha+p.rate*frames*f.sign(), 0.2, 1)
		case Colors:
			f.bounce(p, s)
			p.hue = math.Mod(p.hue+frames, 360)
			p.alpha = clamp(p.alpha+math.Sin(f.elapsed.Seconds()*p.rate*1000)*0.01*frames, 0.1, 1)
		}
	}
}

// bounce moves p and reverses its direction at the edges, keeping it inside.
func (f *Field) bounce(p *particle, s float64) {
	W, H := float64(f.w), float64(f.h)
	p.x += p.vx * s
	p.y += p.vy * s
	if p.x <= 0 || p.x >= W-0.001 {
		p.vx = -p.vx
		p.x = clamp(p.x, 0, W-0.001)
	}
	if p.y <= 0 || p.y >= H-0.001 {
		p.vy = -p.vy
		p.y = clamp(p.y, 0, H-0.001)
	}
}

func (f *Field) sign() float64 {
	if f.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// BreathPhase returns "inhale" or "exhale" and the eased expansion in
// [0, 1] for the 4 s in / 4 s out cycle.
func (f *Field) BreathPhase() (string, float64) {
	return breathAt(f.elapsed)
}

func breathAt(elapsed time.Duration) (string, float64) {
	pos := float64(elapsed%breathPeriod) / float64(breathPeriod)
	phase := "inhale"
	cycle := pos * 2
	if pos >= 0.5 {
		phase = "exhale"
		cycle = 1 - (pos-0.5)*2
	}
	return phase, 0.5 - 0.5*math.Cos(cycle*math.Pi)
}

// Frame renders the current state.
func (f *Field) Frame() Frame {
	fr := newFrame(f.w, f.h)
	if !f.active {
		return fr
	}

	switch f.kind {
	case Mandala:
		f.drawMandala(fr)
		return fr
	case Breathing:
		for _, p := range f.particles {
			fr.set(p.x, p.y, bubbleRune(p.size), hsl(p.hue, 0.7, 0.7), p.alpha*0.4)
		}
		fr.Label = f.drawBreath(fr)
		return fr
	}

	for _, p := range f.particles {
		switch f.kind {
		case Bubbles:
			fr.set(p.x, p.y, bubbleRune(p.size), hsl(p.hue, 0.7, 0.7), p.alpha)
		case Stars:
			fr.set(p.x, p.y, starRune(p.size), hsl(p.hue, 0.8, 0.8), p.alpha)
		case Rain:
			for dy := 0.0; dy < p.size; dy++ {
				fr.set(p.x, p.y+dy, '│', hsl(200, 0.7, 0.7), p.alpha)
			}
		case Snow:
			fr.set(p.x, p.y, snowRune(p.size), hsl(0, 0, 1), p.alpha)
		case Fireflies:
			fr.set(p.x, p.y, '•', hsl(p.hue, 0.8, 0.7), p.alpha)
		case Colors:
			fr.set(p.x, p.y, '●', hsl(p.hue, 0.7, 0.6), p.alpha)
		}
	}
	return fr
}

// Terminal cells are about twice as tall as wide.
const cellAspect = 2.0

func (f *Field) drawMandala(fr Frame) {
	cx, cy := float64(f.w)/2, float64(f.h)/2
	radius := min(float64(f.w)/cellAspect, float64(f.h)) / 2

	for layer := range 3 {
		r := radius * (0.3 + float64(layer)*0.3)
		points := 8 + layer*4
		hue := math.Mod(f.angle*50+float64(layer)*60, 360)
		for i := range points {
			a := float64(i)/float64(points)*2*math.Pi + f.angle*float64(layer+1)
			fr.set(cx+math.Cos(a)*r*cellAspect, cy+math.Sin(a)*r, '◆', hsl(hue, 0.7, 0.6), 0.6)
		}
	}
	for i := range 12 {
		a := float64(i)/12*2*math.Pi + f.angle
		hue := math.Mod(f.angle*100+float64(i)*30, 360)
		fr.set(cx+math.Cos(a)*radius*0.8*cellAspect, cy+math.Sin(a)*radius*0.8, '✦', hsl(hue, 0.8, 0.7), 0.8)
	}
}

// drawBreath draws the breathing ring and returns its caption.
func (f *Field) drawBreath(fr Frame) string {
	phase, level := f.BreathPhase()
	cx, cy := float64(f.w)/2, float64(f.h)/2
	maxR := max(1, min(float64(f.w)/cellAspect, float64(f.h))/2-0.5)
	r := maxR * (0.25 + 0.75*level)

	col := hsl(140, 0.6, 0.8)
	label := "Inhale slowly..."
	if phase == "exhale" {
		col = hsl(270, 0.6, 0.85)
		label = "Exhale gently..."
	}

	steps := max(12, int(2*math.Pi*r*cellAspect))
	for i := range steps {
		a := float64(i) / float64(steps) * 2 * math.Pi
		fr.set(cx+math.Cos(a)*r*cellAspect, cy+math.Sin(a)*r, '○', col, 0.9)
	}
	fr.set(cx, cy, '●', hsl(0, 0, 1), 0.5+0.4*level)
	return label
}

func bubbleRune(size float64) rune {
	switch {
	case size >= 2.5:
		return 'O'
	case size >= 1.7:
		return 'o'
	default:
		return '°'
	}
}

func starRune(size float64) rune {
	switch {
	case size >= 3:
		return '✦'
	case size >= 2:
		return '*'
	default:
		return '·'
	}
}

func snowRune(size float64) rune {
	if size >= 2 {
		return '❄'
	}
	return '•'
}

func hsl(h, s, l float64) colorful.Color {
	return colorful.Hsl(h, s, l)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
