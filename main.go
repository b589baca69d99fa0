package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/bulle/internal/app"
	"github.com/llehouerou/bulle/internal/config"
	"github.com/llehouerou/bulle/internal/errmsg"
	"github.com/llehouerou/bulle/internal/log"
	"github.com/llehouerou/bulle/internal/mixer"
	"github.com/llehouerou/bulle/internal/mpris"
	"github.com/llehouerou/bulle/internal/notify"
	"github.com/llehouerou/bulle/internal/profiles"
	"github.com/llehouerou/bulle/internal/sound"
	"github.com/llehouerou/bulle/internal/state"
	"github.com/llehouerou/bulle/internal/stderr"
	"github.com/llehouerou/bulle/internal/timer"
	"github.com/llehouerou/bulle/internal/ui/styles"
	"github.com/llehouerou/bulle/internal/visuals"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := log.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init log: %w", err)
	}
	defer log.Close()

	if err := stderr.Start(); err != nil {
		log.Warn(log.CatApp, "stderr capture disabled", "err", err)
	}
	defer stderr.Stop()

	store, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer store.Close()

	saved, err := store.GetTheme()
	if err != nil {
		log.Warn(log.CatDB, "load theme", "err", err)
	}
	if saved == "" {
		saved = cfg.Theme
	}
	styles.Set(styles.Resolve(styles.ParseName(saved), nil))

	audio := cfg.GetAudioConfig()
	engine := sound.NewEngine(sound.Speaker(), sound.EngineConfig{
		SampleRate: audio.SampleRate,
		Buffer:     audio.Buffer,
	})
	defer engine.Close()

	catalog, err := sound.NewCatalog(cfg.SoundsDir)
	if err != nil {
		return fmt.Errorf("load sounds: %w", err)
	}

	mx := mixer.New(mixer.Options{
		Unlocker:       engine,
		Store:          store,
		DefaultVolume:  cfg.GetDefaultVolume(),
		ToggleDebounce: cfg.GetToggleDebounce(),
		Logger:         log.For(log.CatMixer),
	})
	mx.Register(catalog.Handles(engine)...)
	defer mx.Close()

	field := visuals.New(rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x62756c6c65)))
	tm := timer.New()

	notifier := notify.Disabled()
	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			log.Warn(log.CatDBus, "desktop notifications unavailable", "err", err)
		} else {
			notifier = n
		}
	}

	if cfg.MediaKeysEnabled() {
		if adapter, err := mpris.New(mx); err != nil {
			log.Warn(log.CatDBus, "media keys unavailable", "err", err)
		} else {
			defer adapter.Close()
		}
	}

	zones := zone.New()
	m := app.New(app.Deps{
		Config:     cfg,
		State:      store,
		Library:    catalog,
		Mixer:      mx,
		Feedback:   sound.NewFeedback(engine, catalog, cfg.FeedbackSoundsEnabled()),
		Visuals:    field,
		Timer:      tm,
		Profiles:   profiles.NewService(store, mx, field, tm, log.For(log.CatProfiles)),
		Notifier:   notifier,
		Zones:      zones,
		NewHandle:  func(e sound.Entry) sound.Handle { return sound.NewHandleFor(engine, e) },
		ExportPath: filepath.Join(xdg.DataHome, "bulle", "profiles.json"),
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
