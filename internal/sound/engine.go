package sound

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/llehouerou/bulle/internal/log"
)

// ErrNotUnlocked is returned when playback is attempted before Unlock.
var ErrNotUnlocked = errors.New("audio output not started")

// EngineConfig holds output settings.
type EngineConfig struct {
	SampleRate int
	Buffer     time.Duration
}

// Engine owns the audio output. The output is opened lazily by Unlock, on
// the first user action that needs sound.
type Engine struct {
	out    Output
	sr     beep.SampleRate
	buffer time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	unlocked bool
	attempt  *unlockAttempt
	closed   bool
}

type unlockAttempt struct {
	done chan struct{}
	err  error
}

func NewEngine(out Output, cfg EngineConfig) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 100 * time.Millisecond
	}
	return &Engine{
		out:    out,
		sr:     beep.SampleRate(cfg.SampleRate),
		buffer: cfg.Buffer,
		logger: log.For(log.CatAudio),
	}
}

// SampleRate returns the output sample rate.
func (e *Engine) SampleRate() beep.SampleRate { return e.sr }

// Unlocked reports whether the output is ready for playback.
func (e *Engine) Unlocked() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unlocked
}

// Unlock initialises the output once. Concurrent callers wait for the same
// attempt. A failed attempt is retried by the next call. If ctx is done
// before the output is ready, ctx.Err() is returned and the attempt keeps
// running in the background.
func (e *Engine) Unlock(ctx context.Context) error {
	e.mu.Lock()
	if e.unlocked {
		e.mu.Unlock()
		return nil
	}
	if e.closed {
		e.mu.Unlock()
		return ErrNotUnlocked
	}
	a := e.attempt
	if a == nil {
		a = &unlockAttempt{done: make(chan struct{})}
		e.attempt = a
		go e.initOutput(a)
	}
	e.mu.Unlock()

	select {
	case <-a.done:
		return a.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) initOutput(a *unlockAttempt) {
	err := e.out.Init(e.sr, e.sr.N(e.buffer))

	e.mu.Lock()
	if err == nil {
		e.unlocked = true
		e.logger.Info("audio output started", "sample_rate", int(e.sr), "buffer", e.buffer)
	} else {
		e.logger.Error("audio output failed", "err", err)
	}
	a.err = err
	e.attempt = nil
	e.mu.Unlock()

	close(a.done)
}

// Close releases the output. Handles must be stopped first.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	if e.unlocked {
		e.out.Close()
		e.unlocked = false
	}
}

// locked runs fn while holding the output lock, so fn can safely touch
// streamers being played.
func (e *Engine) locked(fn func()) {
	e.out.Lock()
	defer e.out.Unlock()
	fn()
}

func (e *Engine) play(s beep.Streamer) error {
	if !e.Unlocked() {
		return ErrNotUnlocked
	}
	e.out.Play(s)
	return nil
}
