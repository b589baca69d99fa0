package app

import (
	"testing"

	"github.com/llehouerou/bulle/internal/keymap"
)

func TestSection_RoundTrip(t *testing.T) {
	for _, s := range Sections {
		got, ok := ParseSection(s.String())
		if !ok || got != s {
			t.Errorf("ParseSection(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseSection("library"); ok {
		t.Error("unknown section accepted")
	}
}

func TestSection_Next(t *testing.T) {
	tests := []struct {
		from Section
		dir  int
		want Section
	}{
		{SectionSounds, 1, SectionVisuals},
		{SectionProfiles, 1, SectionSounds},
		{SectionSounds, -1, SectionProfiles},
		{SectionTimer, -1, SectionVisuals},
	}
	for _, tt := range tests {
		if got := tt.from.next(tt.dir); got != tt.want {
			t.Errorf("%v.next(%d) = %v, want %v", tt.from, tt.dir, got, tt.want)
		}
	}
}

func TestSection_Context(t *testing.T) {
	want := map[Section]keymap.Context{
		SectionSounds:   keymap.Sounds,
		SectionVisuals:  keymap.Visuals,
		SectionTimer:    keymap.Timer,
		SectionFeelings: keymap.Feelings,
		SectionProfiles: keymap.Profiles,
	}
	for s, ctx := range want {
		if got := s.Context(); got != ctx {
			t.Errorf("%v.Context() = %v, want %v", s, got, ctx)
		}
	}
}
