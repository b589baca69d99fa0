package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCompose_OverlaysNonBlankCells(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	overlay := "\n   XYZ    \n"

	got := strings.Split(Compose(base, overlay, 10), "\n")

	if got[0] != "aaaaaaaaaa" {
		t.Errorf("line 0 = %q, blank overlay lines keep the base", got[0])
	}
	if got[1] != "bbbXYZbbbb" {
		t.Errorf("line 1 = %q, want bbbXYZbbbb", got[1])
	}
	if got[2] != "cccccccccc" {
		t.Errorf("line 2 = %q", got[2])
	}
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose("ab", "     Q", 8)
	if ansi.StringWidth(got) != 8 {
		t.Errorf("width = %d, want 8 (%q)", ansi.StringWidth(got), got)
	}
	if !strings.Contains(got, "Q") {
		t.Errorf("overlay missing: %q", got)
	}
}

func TestRenderBordered_FitsScreen(t *testing.T) {
	out := RenderBordered("hello\nworld", 40, 12, SizeAuto)
	lines := strings.Split(out, "\n")

	if len(lines) != 12 {
		t.Errorf("height = %d, want 12", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w > 40 {
			t.Errorf("line %d width %d exceeds screen", i, w)
		}
	}
	if !strings.Contains(ansi.Strip(out), "hello") {
		t.Error("content missing")
	}
}

func TestCalculateDimensions(t *testing.T) {
	w, h := calculateDimensions("x", 100, 50, SizeLarge)
	if w != 70 || h != 40 {
		t.Errorf("large = %dx%d, want 70x40", w, h)
	}

	w, _ = calculateDimensions(strings.Repeat("x", 200), 100, 50, SizeAuto)
	if w != 60 {
		t.Errorf("auto width = %d, want MaxWidth 60", w)
	}

	w, h = calculateDimensions("x", 6, 6, SizeAuto)
	if w < 8 || h < 5 {
		t.Errorf("tiny screen = %dx%d, want minimums", w, h)
	}
}
