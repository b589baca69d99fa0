package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/bulle/internal/log"
	"github.com/llehouerou/bulle/internal/mixer"
	"github.com/llehouerou/bulle/internal/sound"
	"github.com/llehouerou/bulle/internal/state"
	"github.com/llehouerou/bulle/internal/timer"
	"github.com/llehouerou/bulle/internal/visuals"
)

type fixture struct {
	svc    *Service
	mixer  *mixer.Controller
	sounds map[string]*sound.Mock
	field  *visuals.Field
	timer  *timer.Timer
	store  *state.Mock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := state.NewMock()
	mx := mixer.New(mixer.Options{Store: store, Logger: log.Discard()})
	t.Cleanup(func() { _ = mx.Close() })

	sounds := map[string]*sound.Mock{}
	for _, k := range []string{"ocean", "rain", "piano"} {
		sounds[k] = sound.NewMock(k)
		mx.Register(sounds[k])
	}
	field := visuals.New(rand.New(rand.NewPCG(7, 7)))
	tm := timer.New()

	return &fixture{
		svc:    NewService(store, mx, field, tm, log.Discard()),
		mixer:  mx,
		sounds: sounds,
		field:  field,
		timer:  tm,
		store:  store,
	}
}

func TestSave_CapturesState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.mixer.SetVolume("ocean", 80))
	require.NoError(t, f.mixer.Activate(ctx, "ocean"))
	f.field.Start(visuals.Stars)
	require.NoError(t, f.timer.SetMinutes(15))

	p, err := f.svc.Save("  Evening  ", "sounds")
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "Evening", p.Name)
	assert.Equal(t, []string{"ocean"}, p.Sounds)
	assert.Equal(t, 80, p.Volumes["ocean"])
	assert.Equal(t, mixer.DefaultVolume, p.Volumes["rain"])
	assert.Equal(t, "stars", p.Visual)
	assert.Equal(t, 15, p.TimerMinutes)
	assert.Equal(t, "sounds", p.Section)

	stored, err := f.store.GetProfile(p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Evening", stored.Name)
}

func TestSave_EmptyName(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Save("   ", "")
	assert.ErrorIs(t, err, ErrEmptyName)

	list, err := f.svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSave_SameNameOverwrites(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.timer.SetMinutes(5))
	first, err := f.svc.Save("focus", "")
	require.NoError(t, err)

	require.NoError(t, f.timer.SetMinutes(20))
	second, err := f.svc.Save("focus", "")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	list, err := f.svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 20, list[0].TimerMinutes)
}

func TestLoad_RestoresEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.store.SaveProfile(state.Profile{
		Name:         "night",
		Sounds:       []string{"rain"},
		Volumes:      map[string]int{"rain": 30, "ocean": 90, "gone": 10},
		Visual:       "snow",
		TimerMinutes: 10,
	})
	require.NoError(t, err)

	require.NoError(t, f.mixer.Activate(ctx, "piano"))
	f.field.Start(visuals.Bubbles)

	p, err := f.svc.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "night", p.Name)

	assert.Equal(t, sound.Stopped, f.sounds["piano"].Status())
	assert.Equal(t, sound.Playing, f.sounds["rain"].Status())
	assert.Equal(t, 30, f.mixer.Volume("rain"))
	assert.Equal(t, 90, f.mixer.Volume("ocean"))

	k, ok := f.field.Current()
	assert.True(t, ok)
	assert.Equal(t, visuals.Snow, k)
	assert.Equal(t, 10, f.timer.Minutes())
}

func TestLoad_EmptyProfileStopsEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, err := f.store.SaveProfile(state.Profile{Name: "silence"})
	require.NoError(t, err)

	require.NoError(t, f.mixer.Activate(ctx, "ocean"))
	f.field.Start(visuals.Rain)

	_, err = f.svc.Load(ctx, id)
	require.NoError(t, err)
	assert.True(t, f.mixer.State().IsEmpty())
	_, ok := f.field.Current()
	assert.False(t, ok)
}

func TestLoad_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Load(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_UnknownVisualIgnored(t *testing.T) {
	f := newFixture(t)
	id, err := f.store.SaveProfile(state.Profile{Name: "odd", Visual: "lava", Sounds: []string{"ocean"}})
	require.NoError(t, err)

	_, err = f.svc.Load(context.Background(), id)
	require.NoError(t, err)
	_, ok := f.field.Current()
	assert.False(t, ok)
	assert.True(t, f.mixer.IsActive("ocean"))
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	p, err := f.svc.Save("temp", "")
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(p.ID))
	require.NoError(t, f.svc.Delete(p.ID), "deleting twice is not an error")
	list, err := f.svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExportImport(t *testing.T) {
	src := newFixture(t)
	_, err := src.svc.Save("one", "")
	require.NoError(t, err)
	require.NoError(t, src.timer.SetMinutes(7))
	_, err = src.svc.Save("two", "timer")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, src.svc.Export(&buf))

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Len(t, raw, 2)

	dst := newFixture(t)
	_, err = dst.svc.Save("two", "")
	require.NoError(t, err)

	n, err := dst.svc.Import(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := dst.svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 2, "imported name replaces the existing profile")
	byName := map[string]Profile{}
	for _, p := range list {
		byName[p.Name] = p
	}
	assert.Equal(t, 7, byName["two"].TimerMinutes)
	assert.Equal(t, "timer", byName["two"].Section)
}

func TestExport_EmptyIsArray(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	require.NoError(t, f.svc.Export(&buf))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestImport_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "profiles!"},
		{"object instead of array", `{"name":"x"}`},
		{"missing name", `[{"name":"ok"},{"name":"  "}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.Import(context.Background(), strings.NewReader(tt.input))
			require.Error(t, err)
			list, _ := f.svc.List()
			assert.Empty(t, list)
		})
	}
}

func TestDecode_DropsIDs(t *testing.T) {
	list, err := Decode(strings.NewReader(`[{"id": 99, "name": "a", "sounds": ["ocean"]}]`))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Zero(t, list[0].ID)
	assert.Equal(t, []string{"ocean"}, list[0].Sounds)
}
