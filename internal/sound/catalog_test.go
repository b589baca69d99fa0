package sound

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0o600))
	return path
}

func TestCatalog_BuiltinsAndExtras(t *testing.T) {
	dir := t.TempDir()
	oceanPath := touch(t, dir, "ocean.mp3")
	touch(t, dir, "deep_forest-night.wav")
	touch(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.mp3"), 0o755))

	c, err := NewCatalog(dir)
	require.NoError(t, err)

	ocean, ok := c.Lookup("ocean")
	require.True(t, ok)
	assert.Equal(t, oceanPath, ocean.Path)
	assert.Equal(t, "Ocean waves", ocean.Title)
	assert.True(t, ocean.Loop)

	rain, ok := c.Lookup("rain")
	require.True(t, ok)
	assert.Empty(t, rain.Path, "missing file leaves path empty")

	extra, ok := c.Lookup("deep_forest-night")
	require.True(t, ok)
	assert.Equal(t, "Deep Forest Night", extra.Title)
	assert.Equal(t, KindFile, extra.Kind)

	_, ok = c.Lookup("notes")
	assert.False(t, ok)
	_, ok = c.Lookup("sub")
	assert.False(t, ok)

	pink, ok := c.Lookup("pink-noise")
	require.True(t, ok)
	assert.Equal(t, KindNoise, pink.Kind)
	assert.Equal(t, GroupNoise, pink.Group)

	bubble, ok := c.Lookup(KeyBubble)
	require.True(t, ok)
	assert.False(t, bubble.Loop, "bubble is one-shot")

	for _, e := range c.Playable() {
		assert.NotEqual(t, GroupFeedback, e.Group, "feedback sound %s listed as card", e.Key)
	}
	assert.Len(t, c.Playable(), len(c.Entries())-2)
}

func TestCatalog_MissingDir(t *testing.T) {
	c, err := NewCatalog(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.NotEmpty(t, c.Entries())
}

func TestCatalog_HandlesUseCurrentPath(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCatalog(dir)
	require.NoError(t, err)
	e, _ := newTestEngine(t)

	h, ok := c.Handle(e, "storm")
	require.True(t, ok)
	assert.ErrorIs(t, h.Start(), ErrFileMissing)

	// The file shows up later: the same handle now finds it (and fails
	// to decode the fake content, which is not ErrFileMissing)
	c.add(touch(t, dir, "storm.ogg"))
	err = h.Start()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrFileMissing), "got %v", err)

	_, ok = c.Handle(e, "unknown")
	assert.False(t, ok)

	handles := c.Handles(e)
	assert.Len(t, handles, len(c.Playable()))
}

func TestCatalog_Watch(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCatalog(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := c.Watch(ctx)
	require.NoError(t, err)

	touch(t, dir, "readme.md")
	touch(t, dir, "thunder.flac")

	select {
	case e := <-events:
		assert.Equal(t, "thunder", e.Key)
		assert.Equal(t, "Thunder", e.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("no entry for new sound file")
	}

	_, ok := c.Lookup("thunder")
	assert.True(t, ok)

	cancel()
	for range events { //nolint:revive // drain until closed
	}
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := FileSource("", true).Open(44100)
	assert.ErrorIs(t, err, ErrFileMissing)

	_, _, err = FileSource(filepath.Join(dir, "gone.mp3"), true).Open(44100)
	assert.ErrorIs(t, err, ErrFileMissing)

	_, _, err = FileSource(touch(t, dir, "x.aiff"), true).Open(44100)
	assert.ErrorContains(t, err, "unsupported format")

	_, _, err = FileSource(touch(t, dir, "broken.wav"), true).Open(44100)
	assert.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("a.MP3"))
	assert.True(t, IsSupported("/x/y.flac"))
	assert.True(t, IsSupported("rain.wav"))
	assert.True(t, IsSupported("rain.ogg"))
	assert.False(t, IsSupported("rain.m4a"))
	assert.False(t, IsSupported("rain"))
}

func TestSkipID3v2(t *testing.T) {
	tag := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 5}
	data := append(append(tag, 1, 2, 3, 4, 5), []byte("fLaC")...)

	r := bytes.NewReader(data)
	require.NoError(t, skipID3v2(r))
	rest, _ := io.ReadAll(r)
	assert.Equal(t, "fLaC", string(rest))

	r = bytes.NewReader([]byte("fLaC and more"))
	require.NoError(t, skipID3v2(r))
	rest, _ = io.ReadAll(r)
	assert.Equal(t, "fLaC and more", string(rest))

	r = bytes.NewReader([]byte("ab"))
	require.NoError(t, skipID3v2(r))
}
