//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := Default()

	tests := []struct {
		name     string
		ctx      Context
		key      string
		expected Action
	}{
		{"global quit from sounds", Sounds, "q", ActionQuit},
		{"ctrl+c anywhere", Profiles, "ctrl+c", ActionQuit},
		{"space pauses everything", Visuals, " ", ActionPauseAll},
		{"volume up", Sounds, "+", ActionVolumeUp},
		{"volume up alias", Sounds, "=", ActionVolumeUp},
		{"fine volume", Sounds, "shift+left", ActionVolumeDownFine},
		{"volume keys scoped to sounds", Timer, "+", ""},
		{"r starts timer", Timer, "r", ActionTimerStart},
		{"r restarts feelings", Feelings, "r", ActionRestart},
		{"r unbound in sounds", Sounds, "r", ""},
		{"backspace in feelings", Feelings, "backspace", ActionBack},
		{"esc leaves fullscreen", Visuals, "esc", ActionExitFullscreen},
		{"enter falls back to global", "unknown", "enter", ActionSelect},
		{"unbound key", Global, "F12", ""},
		{"empty key", Global, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.ctx, tt.key); got != tt.expected {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.ctx, tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_ContextOverridesGlobal(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionStopAll, []string{"x"}, "Stop all", Global},
		{ActionTimerStop, []string{"x"}, "Stop timer", Timer},
	})

	if got := r.Resolve(Timer, "x"); got != ActionTimerStop {
		t.Errorf("Resolve(timer, x) = %q, want %q", got, ActionTimerStop)
	}
	if got := r.Resolve(Sounds, "x"); got != ActionStopAll {
		t.Errorf("Resolve(sounds, x) = %q, want %q", got, ActionStopAll)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", Global},
		{ActionSelect, []string{"enter"}, "Select", Global},
		{ActionSelect, []string{"enter"}, "Play", Sounds},
	})

	if got := r.KeysFor(ActionQuit); !slices.Equal(got, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v", got)
	}
	if got := r.KeysFor(ActionSelect); !slices.Equal(got, []string{"enter"}) {
		t.Errorf("KeysFor(select) = %v, want deduplicated", got)
	}
	if got := r.KeysFor("nothing"); len(got) != 0 {
		t.Errorf("KeysFor(unbound) = %v, want empty", got)
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("dedupe = %v", got)
	}
	if got := dedupe(nil); len(got) != 0 {
		t.Errorf("dedupe(nil) = %v", got)
	}
}
