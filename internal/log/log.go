// Package log provides categorized structured logging to a file.
//
// The terminal belongs to the TUI, so nothing is ever written to stdout or
// stderr: records go to $XDG_STATE_HOME/bulle/bulle.log. Until Init is called
// every record is discarded, which keeps tests quiet.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// Category tags a record with the subsystem that emitted it.
type Category string

const (
	CatApp      Category = "app"
	CatAudio    Category = "audio"
	CatMixer    Category = "mixer"
	CatVisuals  Category = "visuals"
	CatTimer    Category = "timer"
	CatProfiles Category = "profiles"
	CatDB       Category = "db"
	CatConfig   Category = "config"
	CatDBus     Category = "dbus"
)

var (
	mu     sync.RWMutex
	root   = slog.New(slog.NewTextHandler(io.Discard, nil))
	closer io.Closer
)

// Init opens the log file and routes all categories to it.
func Init(level string) error {
	path, err := xdg.StateFile(filepath.Join("bulle", "bulle.log"))
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	root = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: ParseLevel(level)}))
	closer = f
	return nil
}

// SetOutput routes records to w. Intended for tests and tools.
func SetOutput(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	root = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	root = slog.New(slog.NewTextHandler(io.Discard, nil))
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// For returns a logger bound to a category, for injection into components.
func For(cat Category) *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With("cat", string(cat))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Debug(cat Category, msg string, args ...any) { For(cat).Debug(msg, args...) }

func Info(cat Category, msg string, args ...any) { For(cat).Info(msg, args...) }

func Warn(cat Category, msg string, args ...any) { For(cat).Warn(msg, args...) }

func Error(cat Category, msg string, args ...any) { For(cat).Error(msg, args...) }

// ErrorErr logs msg at error level with err attached.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	For(cat).Error(msg, append([]any{"err", err}, args...)...)
}
