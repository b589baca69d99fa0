// internal/app/app.go
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/bulle/internal/app/popupctl"
	"github.com/llehouerou/bulle/internal/config"
	"github.com/llehouerou/bulle/internal/feelings"
	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/log"
	"github.com/llehouerou/bulle/internal/mixer"
	"github.com/llehouerou/bulle/internal/notice"
	"github.com/llehouerou/bulle/internal/notify"
	"github.com/llehouerou/bulle/internal/profiles"
	"github.com/llehouerou/bulle/internal/sound"
	"github.com/llehouerou/bulle/internal/state"
	"github.com/llehouerou/bulle/internal/timer"
	"github.com/llehouerou/bulle/internal/ui"
	"github.com/llehouerou/bulle/internal/ui/cursor"
	"github.com/llehouerou/bulle/internal/ui/styles"
	"github.com/llehouerou/bulle/internal/visuals"
)

// SoundLibrary lists the playable sounds and reports files added later.
type SoundLibrary interface {
	Playable() []sound.Entry
	Watch(ctx context.Context) (<-chan sound.Entry, error)
}

// FeedbackPlayer plays the short bubble and gong sounds.
type FeedbackPlayer interface {
	Play(ctx context.Context, key string) error
}

// Deps are the services the model drives. Config, State, Mixer, Visuals,
// Timer and Profiles are required.
type Deps struct {
	Config   *config.Config
	State    state.Interface
	Library  SoundLibrary
	Mixer    *mixer.Controller
	Feedback FeedbackPlayer
	Visuals  *visuals.Field
	Timer    *timer.Timer
	Profiles *profiles.Service
	Notifier notify.Notifier
	Zones    *zone.Manager

	// NewHandle builds the playable handle of a sound discovered at runtime.
	NewHandle func(sound.Entry) sound.Handle
	// ExportPath is where profiles are exported to and imported from.
	ExportPath string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the root bubbletea model.
type Model struct {
	Width      int
	Height     int
	Section    Section
	Fullscreen bool
	Quitting   bool

	cfg        *config.Config
	store      state.Interface
	library    SoundLibrary
	newHandle  func(sound.Entry) sound.Handle
	mixer      *mixer.Controller
	feedback   FeedbackPlayer
	visuals    *visuals.Field
	timer      *timer.Timer
	profiles   *profiles.Service
	notifier   notify.Notifier
	zones      *zone.Manager
	now        func() time.Time
	exportPath string

	ctx    context.Context
	cancel context.CancelFunc

	keys     *keymap.Resolver
	popups   *popupctl.Manager
	notices  *notice.Board
	progress progress.Model
	flow     *feelings.Flow

	sounds      []sound.Entry
	soundCh     <-chan sound.Entry
	mixerSub    *mixer.Subscription
	profileList []profiles.Profile
	presets     []int

	soundCursor   cursor.Cursor
	visualCursor  cursor.Cursor
	timerCursor   cursor.Cursor
	feelCursor    cursor.Cursor
	profileCursor cursor.Cursor

	frameScheduled bool
	lastFrame      time.Time
}

// New builds the model and restores the last visited section.
func New(d Deps) Model {
	ctx, cancel := context.WithCancel(context.Background())
	now := d.Now
	if now == nil {
		now = time.Now
	}
	notifier := d.Notifier
	if notifier == nil {
		notifier = notify.Disabled()
	}

	m := Model{
		cfg:           d.Config,
		store:         d.State,
		library:       d.Library,
		newHandle:     d.NewHandle,
		mixer:         d.Mixer,
		feedback:      d.Feedback,
		visuals:       d.Visuals,
		timer:         d.Timer,
		profiles:      d.Profiles,
		notifier:      notifier,
		zones:         d.Zones,
		now:           now,
		exportPath:    d.ExportPath,
		ctx:           ctx,
		cancel:        cancel,
		keys:          keymap.Default(),
		popups:        popupctl.New(),
		notices:       notice.New(),
		flow:          feelings.NewFlow(),
		presets:       d.Config.GetTimerPresets(),
		soundCursor:   cursor.New(ui.ScrollMargin),
		visualCursor:  cursor.New(ui.ScrollMargin),
		timerCursor:   cursor.New(ui.ScrollMargin),
		feelCursor:    cursor.New(ui.ScrollMargin),
		profileCursor: cursor.New(ui.ScrollMargin),
	}
	m.progress = newProgress()

	if m.library != nil {
		m.sounds = m.library.Playable()
		ch, err := m.library.Watch(ctx)
		if err != nil {
			log.Warn(log.CatApp, "sound directory not watched", "err", err)
		}
		m.soundCh = ch
	}
	m.mixerSub = m.mixer.Subscribe()

	if saved, err := m.store.GetUI(); err != nil {
		log.Warn(log.CatApp, "restore ui state", "err", err)
	} else if saved != nil {
		if s, ok := ParseSection(saved.Section); ok {
			m.Section = s
		}
	}

	m.notices.Mascot(msgWelcome)
	m.refreshProfiles()
	return m
}

func newProgress() progress.Model {
	t := styles.T()
	return progress.New(
		progress.WithGradient(string(t.GradientFrom), string(t.GradientTo)),
		progress.WithoutPercentage(),
		progress.WithWidth(ui.MaxProgressBarWidth),
	)
}

// Init starts the clock and the event watchers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ClockTickCmd(),
		WatchMixer(m.mixerSub),
		WatchStderr(),
		WatchSounds(m.soundCh),
	)
}

// Close stops the sound directory watcher. Mixer subscriptions end when
// the mixer is closed.
func (m Model) Close() {
	m.cancel()
}

// Notices exposes the notice board, mostly for tests.
func (m Model) Notices() *notice.Board {
	return m.notices
}

func (m *Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

func (m *Model) refreshProfiles() {
	list, err := m.profiles.List()
	if err != nil {
		log.ErrorErr(log.CatProfiles, "list profiles", err)
		return
	}
	m.profileList = list
	m.profileCursor.ClampToBounds(len(list))
}
