package timer

import (
	"errors"
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestStart_NoDuration(t *testing.T) {
	tm := New()
	if err := tm.Start(t0); !errors.Is(err, ErrNoDuration) {
		t.Fatalf("Start() error = %v, want ErrNoDuration", err)
	}
	if tm.State() != Idle {
		t.Errorf("State() = %v, want idle", tm.State())
	}
}

func TestSetMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		wantErr bool
	}{
		{"one minute", 1, false},
		{"max", MaxMinutes, false},
		{"zero", 0, true},
		{"negative", -3, true},
		{"too long", MaxMinutes + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New()
			err := tm.SetMinutes(tt.minutes)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetMinutes(%d) error = %v, wantErr %v", tt.minutes, err, tt.wantErr)
			}
			if !tt.wantErr && tm.Remaining(t0) != time.Duration(tt.minutes)*time.Minute {
				t.Errorf("Remaining() = %v", tm.Remaining(t0))
			}
		})
	}
}

func TestSetMinutes_StopsRunningTimer(t *testing.T) {
	tm := New()
	_ = tm.SetMinutes(5)
	_ = tm.Start(t0)

	_ = tm.SetMinutes(10)
	if tm.State() != Idle {
		t.Errorf("State() = %v, want idle", tm.State())
	}
	if got := tm.Format(t0.Add(time.Minute)); got != "10:00" {
		t.Errorf("Format() = %q, want 10:00", got)
	}
}

func TestCountdown(t *testing.T) {
	tm := New()
	_ = tm.SetMinutes(1)
	if err := tm.Start(t0); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if got := tm.Format(t0.Add(1500 * time.Millisecond)); got != "00:59" {
		t.Errorf("Format(+1.5s) = %q, want 00:59", got)
	}
	if got := tm.Progress(t0.Add(30 * time.Second)); got != 0.5 {
		t.Errorf("Progress(+30s) = %v, want 0.5", got)
	}
	if tm.Tick(t0.Add(59 * time.Second)) {
		t.Error("Tick() reported completion early")
	}
	if !tm.Tick(t0.Add(60 * time.Second)) {
		t.Fatal("Tick() did not report completion")
	}
	if tm.Tick(t0.Add(61 * time.Second)) {
		t.Error("Tick() reported completion twice")
	}
	if tm.State() != Idle {
		t.Errorf("State() = %v, want idle after completion", tm.State())
	}
	if got := tm.Format(t0.Add(time.Hour)); got != "01:00" {
		t.Errorf("Format() after completion = %q, want the full duration", got)
	}
}

func TestPause_Toggles(t *testing.T) {
	tm := New()
	_ = tm.SetMinutes(1)
	_ = tm.Start(t0)

	tm.Pause(t0.Add(10 * time.Second))
	if tm.State() != Paused {
		t.Fatalf("State() = %v, want paused", tm.State())
	}
	// Time passes while paused without consuming the countdown.
	if got := tm.Remaining(t0.Add(5 * time.Minute)); got != 50*time.Second {
		t.Errorf("Remaining() while paused = %v, want 50s", got)
	}
	if tm.Tick(t0.Add(5 * time.Minute)) {
		t.Error("Tick() completed a paused timer")
	}

	tm.Pause(t0.Add(5 * time.Minute))
	if tm.State() != Running {
		t.Fatalf("State() = %v, want running", tm.State())
	}
	if !tm.Tick(t0.Add(5*time.Minute + 50*time.Second)) {
		t.Error("Tick() should complete 50s after resuming")
	}
}

func TestPause_IdleNoop(t *testing.T) {
	tm := New()
	_ = tm.SetMinutes(2)
	tm.Pause(t0)
	if tm.State() != Idle {
		t.Errorf("State() = %v, want idle", tm.State())
	}
}

func TestStart_ResumesPaused(t *testing.T) {
	tm := New()
	_ = tm.SetMinutes(1)
	_ = tm.Start(t0)
	tm.Pause(t0.Add(20 * time.Second))

	_ = tm.Start(t0.Add(time.Minute))
	if got := tm.Remaining(t0.Add(time.Minute)); got != 40*time.Second {
		t.Errorf("Remaining() = %v, want 40s", got)
	}
}

func TestStop_ResetsToTotal(t *testing.T) {
	tm := New()
	_ = tm.SetMinutes(3)
	_ = tm.Start(t0)

	tm.Stop()
	if tm.State() != Idle {
		t.Errorf("State() = %v, want idle", tm.State())
	}
	if got := tm.Remaining(t0.Add(time.Minute)); got != 3*time.Minute {
		t.Errorf("Remaining() = %v, want 3m", got)
	}
	if got := tm.Progress(t0); got != 0 {
		t.Errorf("Progress() = %v, want 0", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{59 * time.Second, "00:59"},
		{5 * time.Minute, "05:00"},
		{125 * time.Minute, "125:00"},
	}
	for _, tt := range tests {
		if got := Format(tt.d); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	tm := New()
	_ = tm.SetMinutes(10)
	_ = tm.Start(t0)
	snap := tm.Snapshot(t0.Add(2 * time.Minute))

	other := New()
	other.Restore(snap)
	if other.State() != Idle {
		t.Errorf("State() = %v, want idle", other.State())
	}
	if other.Minutes() != 10 {
		t.Errorf("Minutes() = %d, want 10", other.Minutes())
	}
	if got := other.Remaining(t0); got != 8*time.Minute {
		t.Errorf("Remaining() = %v, want 8m", got)
	}

	other.Restore(Snapshot{Total: time.Minute, Remaining: time.Hour})
	if got := other.Remaining(t0); got != time.Minute {
		t.Errorf("Remaining() = %v, want clamped to 1m", got)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Running: "running", Paused: "paused", State(9): "unknown"} {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
