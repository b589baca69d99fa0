// internal/app/commands.go
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bulle/internal/errmsg"
	"github.com/llehouerou/bulle/internal/log"
	"github.com/llehouerou/bulle/internal/mixer"
	"github.com/llehouerou/bulle/internal/notify"
	"github.com/llehouerou/bulle/internal/profiles"
	"github.com/llehouerou/bulle/internal/sound"
	"github.com/llehouerou/bulle/internal/stderr"
)

// ClockTickCmd fires a ClockTickMsg after one second.
func ClockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

// FrameCmd fires a FrameMsg after one animation frame at fps.
func FrameCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 20
	}
	return time.Second / time.Duration(fps)
}

// WatchMixer waits for the next mixer event.
func WatchMixer(sub *mixer.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return MixerStateMsg(e)
		case e := <-sub.VolumeChanged:
			return MixerVolumeMsg(e)
		case e := <-sub.Error:
			return MixerErrorMsg(e)
		case <-sub.Done:
			return nil
		}
	}
}

// WatchStderr waits for the next line captured from stderr.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}

// WatchSounds waits for the next sound file added to the sounds directory.
func WatchSounds(ch <-chan sound.Entry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return SoundAddedMsg{Entry: e}
	}
}

// ToggleSoundCmd toggles a sound off the UI goroutine since starting may
// wait for the audio device.
func ToggleSoundCmd(ctx context.Context, mx *mixer.Controller, key string) tea.Cmd {
	return func() tea.Msg {
		handled, err := mx.Toggle(ctx, key)
		return SoundToggledMsg{Key: key, Handled: handled, Err: err}
	}
}

// ActivateSoundCmd starts a sound, leaving it on when already playing.
func ActivateSoundCmd(ctx context.Context, mx *mixer.Controller, key string) tea.Cmd {
	return func() tea.Msg {
		err := mx.Activate(ctx, key)
		return SoundToggledMsg{Key: key, Handled: true, Err: err}
	}
}

// FeedbackCmd plays a feedback sound.
func FeedbackCmd(ctx context.Context, fb FeedbackPlayer, key string) tea.Cmd {
	if fb == nil {
		return nil
	}
	return func() tea.Msg {
		if err := fb.Play(ctx, key); err != nil {
			log.Debug(log.CatAudio, "feedback sound", "key", key, "err", err)
		}
		return nil
	}
}

// NotifyCmd sends a desktop notification.
func NotifyCmd(n notify.Notifier, notif notify.Notification) tea.Cmd {
	return func() tea.Msg {
		if _, err := n.Notify(notif); err != nil {
			return ErrorMsg{Op: errmsg.OpNotify, Err: err}
		}
		return nil
	}
}

// LoadProfileCmd loads and applies a profile.
func LoadProfileCmd(ctx context.Context, svc *profiles.Service, id int64) tea.Cmd {
	return func() tea.Msg {
		p, err := svc.Load(ctx, id)
		return ProfileLoadedMsg{Profile: p, Err: err}
	}
}

// ExportProfilesCmd writes every profile to path as JSON.
func ExportProfilesCmd(svc *profiles.Service, path string) tea.Cmd {
	return func() tea.Msg {
		msg := ProfilesIOMsg{Op: errmsg.OpProfileExport, Path: path}
		list, err := svc.List()
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Count = len(list)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			msg.Err = err
			return msg
		}
		f, err := os.Create(path)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Err = errors.Join(svc.Export(f), f.Close())
		return msg
	}
}

// ImportProfilesCmd reads profiles exported to path.
func ImportProfilesCmd(ctx context.Context, svc *profiles.Service, path string) tea.Cmd {
	return func() tea.Msg {
		msg := ProfilesIOMsg{Op: errmsg.OpProfileImport, Path: path}
		f, err := os.Open(path)
		if err != nil {
			msg.Err = err
			return msg
		}
		defer f.Close()
		msg.Count, msg.Err = svc.Import(ctx, f)
		return msg
	}
}
