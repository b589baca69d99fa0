// Package timer implements the sensory break countdown.
//
// The timer never reads the clock itself: every call takes the current time,
// so the app drives it from its tick loop and tests drive it directly.
//
// State transitions:
//
//	Idle ──Start──► Running ──Pause──► Paused
//	  ▲               │  ▲               │
//	  │               │  └────Pause──────┘
//	  └──Stop/done────┴──────Stop────────┘
package timer

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoDuration is returned by Start when no duration has been set.
var ErrNoDuration = errors.New("no timer duration set")

// MaxMinutes bounds SetMinutes.
const MaxMinutes = 180

// State is the timer state.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Timer counts down in whole seconds.
type Timer struct {
	state     State
	total     time.Duration
	remaining time.Duration // frozen value while idle or paused
	deadline  time.Time     // valid while running
}

// New returns an idle timer with no duration.
func New() *Timer {
	return &Timer{}
}

// SetMinutes sets the duration. A running or paused timer is stopped first.
// Values outside 1..MaxMinutes are rejected.
func (t *Timer) SetMinutes(m int) error {
	if m <= 0 || m > MaxMinutes {
		return fmt.Errorf("timer minutes %d out of range 1-%d", m, MaxMinutes)
	}
	t.Stop()
	t.total = time.Duration(m) * time.Minute
	t.remaining = t.total
	return nil
}

// Minutes returns the configured duration in minutes.
func (t *Timer) Minutes() int {
	return int(t.total / time.Minute)
}

// Total returns the configured duration.
func (t *Timer) Total() time.Duration {
	return t.total
}

// State returns the current state.
func (t *Timer) State() State {
	return t.state
}

// Start runs the timer from its remaining time. Starting a paused timer
// resumes it; starting a running timer does nothing.
func (t *Timer) Start(now time.Time) error {
	switch t.state {
	case Running:
		return nil
	case Idle:
		if t.remaining <= 0 {
			if t.total <= 0 {
				return ErrNoDuration
			}
			t.remaining = t.total
		}
	}
	t.state = Running
	t.deadline = now.Add(t.remaining)
	return nil
}

// Pause toggles between running and paused. It does nothing while idle.
func (t *Timer) Pause(now time.Time) {
	switch t.state {
	case Running:
		t.remaining = t.left(now)
		t.state = Paused
	case Paused:
		t.state = Running
		t.deadline = now.Add(t.remaining)
	}
}

// Stop returns to idle with the full duration remaining.
func (t *Timer) Stop() {
	t.state = Idle
	t.remaining = t.total
	t.deadline = time.Time{}
}

// Tick reports true exactly once, when a running timer reaches zero.
// The timer is then stopped and ready to run again.
func (t *Timer) Tick(now time.Time) bool {
	if t.state != Running || t.left(now) > 0 {
		return false
	}
	t.Stop()
	return true
}

// Remaining returns the time left, rounded up to the second while running.
func (t *Timer) Remaining(now time.Time) time.Duration {
	left := t.left(now)
	return left.Truncate(time.Second) + ceilSecond(left)
}

func (t *Timer) left(now time.Time) time.Duration {
	if t.state != Running {
		return t.remaining
	}
	return max(0, t.deadline.Sub(now))
}

func ceilSecond(d time.Duration) time.Duration {
	if d%time.Second == 0 {
		return 0
	}
	return time.Second
}

// Progress returns the elapsed fraction in [0, 1].
func (t *Timer) Progress(now time.Time) float64 {
	if t.total <= 0 {
		return 0
	}
	p := float64(t.total-t.Remaining(now)) / float64(t.total)
	return max(0, min(1, p))
}

// Format renders the remaining time as MM:SS.
func (t *Timer) Format(now time.Time) string {
	return Format(t.Remaining(now))
}

// Format renders d as MM:SS. Minutes may exceed 59.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Snapshot is the persisted form of a timer.
type Snapshot struct {
	Total     time.Duration
	Remaining time.Duration
}

// Snapshot captures total and remaining time.
func (t *Timer) Snapshot(now time.Time) Snapshot {
	return Snapshot{Total: t.total, Remaining: t.Remaining(now)}
}

// Restore loads s into an idle timer. A remaining time larger than the
// total is clamped.
func (t *Timer) Restore(s Snapshot) {
	t.state = Idle
	t.deadline = time.Time{}
	t.total = max(0, s.Total)
	t.remaining = max(0, min(s.Remaining, t.total))
}
