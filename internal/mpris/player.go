package mpris

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/bulle/internal/mixer"
	"github.com/llehouerou/bulle/internal/sound"
)

// Controller is the part of the mixer exposed to media keys.
// *mixer.Controller implements it.
type Controller interface {
	Activate(ctx context.Context, key string) error
	Next(ctx context.Context) (string, error)
	Previous(ctx context.Context) (string, error)
	PauseAll()
	ResumeAll()
	TogglePauseAll() bool
	StopAll()
	Current() (string, bool)
	IsPaused(key string) bool
	Handle(key string) (sound.Handle, bool)
	Volume(key string) int
	SetVolume(key string, level int) error
	Keys() []string
}

var _ Controller = (*mixer.Controller)(nil)

// callTimeout bounds audio unlocks triggered from D-Bus.
const callTimeout = 5 * time.Second

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Bulle", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. Tracks are
// sounds: next and previous cycle through them, one at a time.
type playerAdapter struct {
	mixer Controller
}

func (p *playerAdapter) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), callTimeout)
}

func (p *playerAdapter) Next() error {
	ctx, cancel := p.ctx()
	defer cancel()
	_, err := p.mixer.Next(ctx)
	return err
}

func (p *playerAdapter) Previous() error {
	ctx, cancel := p.ctx()
	defer cancel()
	_, err := p.mixer.Previous(ctx)
	return err
}

func (p *playerAdapter) Pause() error {
	p.mixer.PauseAll()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	if _, ok := p.mixer.Current(); !ok {
		return p.Next()
	}
	p.mixer.TogglePauseAll()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.mixer.StopAll()
	return nil
}

func (p *playerAdapter) Play() error {
	if _, ok := p.mixer.Current(); !ok {
		return p.Next()
	}
	p.mixer.ResumeAll()
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Ambient sounds loop forever
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	key, ok := p.mixer.Current()
	switch {
	case !ok:
		return types.PlaybackStatusStopped, nil
	case p.mixer.IsPaused(key):
		return types.PlaybackStatusPaused, nil
	default:
		return types.PlaybackStatusPlaying, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	key, ok := p.mixer.Current()
	if !ok {
		return types.Metadata{}, nil
	}
	title := key
	if h, ok := p.mixer.Handle(key); ok && h.Title() != "" {
		title = h.Title()
	}
	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(key)),
		Title:   title,
		Artist:  []string{"Bulle"},
	}, nil
}

// Volume reports the current sound's volume on the 0-1 MPRIS scale.
func (p *playerAdapter) Volume() (float64, error) {
	key, ok := p.mixer.Current()
	if !ok {
		return 0, nil
	}
	return float64(p.mixer.Volume(key)) / 100, nil
}

// SetVolume sets the current sound's volume. Values are clamped to 0-1.
func (p *playerAdapter) SetVolume(v float64) error {
	key, ok := p.mixer.Current()
	if !ok {
		return nil
	}
	level := int(math.Round(max(0, min(1, v)) * 100))
	return p.mixer.SetVolume(key, level)
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return len(p.mixer.Keys()) > 1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return len(p.mixer.Keys()) > 1, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return len(p.mixer.Keys()) > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(key string) string {
	h := fnv.New64a()
	h.Write([]byte(key))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Sound/%x", h.Sum64())
}
