package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "Ocean waves", "Ocean waves"},
		{"control chars removed", "Rain\x00\x07 drops", "Rain drops"},
		{"newline removed", "Fire\ncamp", "Firecamp"},
		{"tab kept", "a\tb", "a\tb"},
		{"invalid utf8 dropped", "for\xffest", "forest"},
		{"nbsp becomes space", "Bird\u00a0song", "Bird song"},
		{"accents kept", "Forêt", "Forêt"},
		{"delete char removed", "x\x7fy", "xy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad_ExactWidth(t *testing.T) {
	for _, s := range []string{"", "rain", "a very long sound title", "海の音"} {
		if w := runewidth.StringWidth(TruncateAndPad(s, 10)); w != 10 {
			t.Errorf("TruncateAndPad(%q, 10) width = %d", s, w)
		}
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("Take three slow breaths with me", 12)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 12 {
			t.Errorf("line %q exceeds 12 columns", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "Take three slow breaths with me" {
		t.Errorf("Wrap lost words: %q", got)
	}
}

func TestRow(t *testing.T) {
	if got := Row("Ocean", "50%", 12); got != "Ocean    50%" {
		t.Errorf("Row = %q", got)
	}
	if got := Row("Ocean", "50%", 4); got != "Ocean 50%" {
		t.Errorf("Row overflow = %q, want single space gap", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		percent, width int
		filled         int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{100, 10, 10},
		{150, 10, 10},
		{-5, 10, 0},
		{33, 6, 2},
	}
	for _, tt := range tests {
		f, e := Bar(tt.percent, tt.width)
		if n := runewidth.StringWidth(f); n != tt.filled {
			t.Errorf("Bar(%d, %d) filled = %d, want %d", tt.percent, tt.width, n, tt.filled)
		}
		if runewidth.StringWidth(f)+runewidth.StringWidth(e) != tt.width {
			t.Errorf("Bar(%d, %d) total width wrong", tt.percent, tt.width)
		}
	}
}
