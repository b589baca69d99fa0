package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"truecolor", "\x1b[38;2;167;139;250mbulle\x1b[0m", "bulle"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  Time's\n  up!\t now "); got != "Time's up! now" {
		t.Errorf("NormalizeWhitespace = %q", got)
	}
}

func TestContainsLine(t *testing.T) {
	out := "Sounds\nOcean  ▶\nRain"
	if !ContainsLine(out, "Ocean") {
		t.Error("expected Ocean line")
	}
	if ContainsLine(out, "Ocean\nRain") {
		t.Error("substring spanning lines should not match")
	}
}

func TestAssertContains(t *testing.T) {
	if msg := AssertContains("\x1b[1mBreathe\x1b[0m", "Breathe"); msg != "" {
		t.Errorf("unexpected failure: %s", msg)
	}
	if msg := AssertContains("Breathe", "Rain"); msg == "" {
		t.Error("expected failure message")
	}
}

func TestAssertNotContains(t *testing.T) {
	if msg := AssertNotContains("Breathe", "Rain"); msg != "" {
		t.Errorf("unexpected failure: %s", msg)
	}
	if msg := AssertNotContains("\x1b[1mRain\x1b[0m", "Rain"); msg == "" {
		t.Error("expected failure message")
	}
}
