package sound

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// Source builds a fresh streamer at the given sample rate for each start.
// The returned closer, if any, is closed when the sound stops.
type Source interface {
	Open(sr beep.SampleRate) (beep.Streamer, io.Closer, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(sr beep.SampleRate) (beep.Streamer, io.Closer, error)

func (f SourceFunc) Open(sr beep.SampleRate) (beep.Streamer, io.Closer, error) { return f(sr) }

// gate ends its stream once closed, which makes the output drop it.
// closed is only written under the output lock.
type gate struct {
	beep.Streamer
	closed bool
}

func (g *gate) Stream(samples [][2]float64) (int, bool) {
	if g.closed {
		return 0, false
	}
	return g.Streamer.Stream(samples)
}

// streamHandle plays a Source through the engine:
// source -> ctrl (pause) -> volume (gain) -> gate (stop).
type streamHandle struct {
	key    string
	title  string
	kind   Kind
	loop   bool
	engine *Engine
	source Source

	mu     sync.Mutex
	status Status
	gain   float64
	gen    uint64
	gate   *gate
	ctrl   *beep.Ctrl
	volume *effects.Volume
	closer io.Closer
}

// NewHandle creates a handle playing src. Looping is the source's concern;
// loop is reported for display and for one-shot completion.
func NewHandle(engine *Engine, key, title string, kind Kind, loop bool, src Source) Handle {
	return &streamHandle{
		key:    key,
		title:  title,
		kind:   kind,
		loop:   loop,
		engine: engine,
		source: src,
		gain:   GainFromPercent(50),
	}
}

func (h *streamHandle) Key() string   { return h.key }
func (h *streamHandle) Title() string { return h.title }
func (h *streamHandle) Kind() Kind    { return h.kind }
func (h *streamHandle) Loop() bool    { return h.loop }

func (h *streamHandle) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

func (h *streamHandle) Gain() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.gain
}

func (h *streamHandle) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.engine.Unlocked() {
		return ErrNotUnlocked
	}
	h.stopLocked()

	s, closer, err := h.source.Open(h.engine.SampleRate())
	if err != nil {
		return err
	}

	vol, silent := gainToVolume(h.gain)
	h.ctrl = &beep.Ctrl{Streamer: s}
	h.volume = &effects.Volume{Streamer: h.ctrl, Base: 2, Volume: vol, Silent: silent}
	h.gate = &gate{Streamer: h.volume}
	h.closer = closer
	h.gen++
	gen := h.gen

	// Runs on the output goroutine with its lock held
	done := beep.Callback(func() { go h.finished(gen) })

	if err := h.engine.play(beep.Seq(h.gate, done)); err != nil {
		h.releaseLocked()
		return err
	}
	h.status = Playing
	return nil
}

// finished marks a one-shot sound stopped when it reaches its end.
func (h *streamHandle) finished(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.gen || h.status == Stopped {
		return
	}
	h.releaseLocked()
	h.status = Stopped
}

func (h *streamHandle) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopLocked()
}

func (h *streamHandle) stopLocked() error {
	if h.status == Stopped && h.gate == nil {
		return nil
	}
	if g := h.gate; g != nil {
		h.engine.locked(func() { g.closed = true })
	}
	err := h.releaseLocked()
	h.status = Stopped
	return err
}

func (h *streamHandle) releaseLocked() error {
	var err error
	if h.closer != nil {
		err = h.closer.Close()
	}
	h.gen++
	h.gate = nil
	h.ctrl = nil
	h.volume = nil
	h.closer = nil
	return err
}

func (h *streamHandle) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.status.CanPause() || h.ctrl == nil {
		return
	}
	ctrl := h.ctrl
	h.engine.locked(func() { ctrl.Paused = true })
	h.status = Paused
}

func (h *streamHandle) Resume() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.status.CanResume() || h.ctrl == nil {
		return
	}
	ctrl := h.ctrl
	h.engine.locked(func() { ctrl.Paused = false })
	h.status = Playing
}

func (h *streamHandle) SetGain(gain float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gain = clampGain(gain)
	if h.volume == nil {
		return
	}
	v := h.volume
	vol, silent := gainToVolume(h.gain)
	h.engine.locked(func() {
		v.Volume = vol
		v.Silent = silent
	})
}

// closers closes several resources, keeping the first error. Resources
// already closed by an earlier one (a decoder closing its file) are fine.
type closers []io.Closer

func (c closers) Close() error {
	var first error
	for _, cl := range c {
		if cl == nil {
			continue
		}
		if err := cl.Close(); err != nil && !errors.Is(err, os.ErrClosed) && first == nil {
			first = err
		}
	}
	return first
}
