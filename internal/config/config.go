package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultVolume         = 50
	DefaultToggleDebounce = 300 * time.Millisecond
	DefaultVisualFPS      = 20
	DefaultSampleRate     = 44100
	DefaultAudioBuffer    = 100 * time.Millisecond
)

type Config struct {
	SoundsDir      string        `koanf:"sounds_dir"      env:"BULLE_SOUNDS_DIR"`      // directory holding the nature/melody sound files
	Theme          string        `koanf:"theme"           env:"BULLE_THEME"`           // "auto", "light" or "dark"
	DefaultVolume  int           `koanf:"default_volume"`                              // percent used for sounds without a saved volume
	ToggleDebounce time.Duration `koanf:"toggle_debounce" env:"BULLE_TOGGLE_DEBOUNCE"` // ignore repeated sound toggles inside this window
	TimerPresets   []int         `koanf:"timer_presets"`                               // minutes offered on the timer screen
	VisualFPS      int           `koanf:"visual_fps"`
	FeedbackSounds *bool         `koanf:"feedback_sounds"` // bubble/gong feedback (default: true)
	Notifications  *bool         `koanf:"notifications"`   // desktop notification when the timer ends (default: true)
	MediaKeys      *bool         `koanf:"media_keys"`      // MPRIS integration (default: true)
	LogLevel       string        `koanf:"log_level"       env:"BULLE_LOG_LEVEL"`

	Audio AudioConfig `koanf:"audio"`
}

// AudioConfig holds speaker settings.
type AudioConfig struct {
	SampleRate int           `koanf:"sample_rate"`
	Buffer     time.Duration `koanf:"buffer"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Theme: "auto",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Environment wins over files
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.SoundsDir = expandPath(cfg.SoundsDir)
	if cfg.SoundsDir == "" {
		cfg.SoundsDir = defaultSoundsDir()
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/bulle/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "bulle", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func defaultSoundsDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "bulle", "sounds")
	}
	return "sounds"
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetDefaultVolume returns the default volume clamped to 0-100.
func (c *Config) GetDefaultVolume() int {
	if c.DefaultVolume <= 0 || c.DefaultVolume > 100 {
		return DefaultVolume
	}
	return c.DefaultVolume
}

// GetToggleDebounce returns the toggle debounce window. Negative values disable it.
func (c *Config) GetToggleDebounce() time.Duration {
	if c.ToggleDebounce < 0 {
		return 0
	}
	if c.ToggleDebounce == 0 {
		return DefaultToggleDebounce
	}
	return c.ToggleDebounce
}

// GetTimerPresets returns the timer presets, dropping non-positive entries.
func (c *Config) GetTimerPresets() []int {
	var presets []int
	for _, m := range c.TimerPresets {
		if m > 0 && m <= 180 {
			presets = append(presets, m)
		}
	}
	if len(presets) == 0 {
		return []int{5, 10, 15, 20}
	}
	return presets
}

// GetVisualFPS returns the animation frame rate (1-60, default: 20).
func (c *Config) GetVisualFPS() int {
	if c.VisualFPS <= 0 || c.VisualFPS > 60 {
		return DefaultVisualFPS
	}
	return c.VisualFPS
}

// GetAudioConfig returns the audio configuration with defaults applied.
func (c *Config) GetAudioConfig() AudioConfig {
	cfg := c.Audio
	if cfg.SampleRate < 8000 || cfg.SampleRate > 192000 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Buffer <= 0 || cfg.Buffer > time.Second {
		cfg.Buffer = DefaultAudioBuffer
	}
	return cfg
}

// FeedbackSoundsEnabled reports whether UI feedback sounds are on (default: true).
func (c *Config) FeedbackSoundsEnabled() bool {
	return c.FeedbackSounds == nil || *c.FeedbackSounds
}

// NotificationsEnabled reports whether desktop notifications are on (default: true).
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// MediaKeysEnabled reports whether the MPRIS adapter should run (default: true).
func (c *Config) MediaKeysEnabled() bool {
	return c.MediaKeys == nil || *c.MediaKeys
}
