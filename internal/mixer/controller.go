// Package mixer enforces exclusive playback: at most one sound is active at
// a time, it can be paused without losing its selection, and volumes are
// kept per sound whether it plays or not.
package mixer

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/llehouerou/bulle/internal/log"
	"github.com/llehouerou/bulle/internal/sound"
)

// DefaultVolume is the volume of a sound that was never set.
const DefaultVolume = 50

// Unlocker readies the audio output. *sound.Engine implements it.
type Unlocker interface {
	Unlock(ctx context.Context) error
}

// VolumeStore persists per-sound volumes. state.Interface implements it.
type VolumeStore interface {
	GetVolume(soundKey string) (int, bool, error)
	SaveVolume(soundKey string, level int) error
}

// Options configures a Controller.
type Options struct {
	Unlocker       Unlocker
	Store          VolumeStore
	DefaultVolume  int
	ToggleDebounce time.Duration
	Logger         *slog.Logger
}

// Controller owns the sound handles and the AudioState. All methods are
// safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	handles map[string]sound.Handle
	order   []string
	active  map[string]bool
	paused  map[string]bool
	volumes map[string]int

	globalPaused bool
	toggling     bool

	unlocker      Unlocker
	store         VolumeStore
	defaultVolume int
	debounce      time.Duration
	logger        *slog.Logger

	subs   []*Subscription
	subsMu sync.RWMutex
	closed bool
}

func New(opts Options) *Controller {
	if opts.DefaultVolume <= 0 || opts.DefaultVolume > 100 {
		opts.DefaultVolume = DefaultVolume
	}
	if opts.Logger == nil {
		opts.Logger = log.For(log.CatMixer)
	}
	return &Controller{
		handles:       make(map[string]sound.Handle),
		active:        make(map[string]bool),
		paused:        make(map[string]bool),
		volumes:       make(map[string]int),
		unlocker:      opts.Unlocker,
		store:         opts.Store,
		defaultVolume: opts.DefaultVolume,
		debounce:      max(0, opts.ToggleDebounce),
		logger:        opts.Logger,
	}
}

// Register adds handles. A handle whose key is already registered replaces
// the previous one only if that one is not active.
func (c *Controller) Register(handles ...sound.Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range handles {
		key := h.Key()
		if _, exists := c.handles[key]; exists {
			if c.active[key] {
				continue
			}
		} else {
			c.order = append(c.order, key)
		}
		c.handles[key] = h
		h.SetGain(sound.GainFromPercent(c.volumeLocked(key)))
	}
}

// Keys returns the registered keys in registration order.
func (c *Controller) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.order)
}

// Handle returns the handle registered for key.
func (c *Controller) Handle(key string) (sound.Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h, ok := c.handles[key]
	return h, ok
}

// Activate makes key the only active sound and starts it. The audio output
// is unlocked first. Activating the active sound resumes it if paused and
// is a no-op otherwise.
func (c *Controller) Activate(ctx context.Context, key string) error {
	if _, ok := c.Handle(key); !ok {
		c.logger.Warn("activate unknown sound", "key", key)
		return nil
	}

	if c.unlocker != nil {
		if err := c.unlocker.Unlock(ctx); err != nil {
			c.logger.Error("audio unlock failed", "key", key, "err", err)
			c.emitError(ErrorEvent{Operation: "unlock", Key: key, Err: err})
			return fmt.Errorf("unlock audio: %w", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.handles[key]
	if !ok {
		return nil
	}
	prev := c.stateLocked()

	if c.active[key] {
		if c.paused[key] {
			h.Resume()
			delete(c.paused, key)
			c.globalPaused = false
			c.emitStateLocked(prev)
		}
		return nil
	}

	for other := range c.active {
		c.stopLocked(other)
	}
	c.globalPaused = false

	// Volume applies before the first sample plays
	h.SetGain(sound.GainFromPercent(c.volumeLocked(key)))
	if err := h.Start(); err != nil {
		c.logger.Error("sound start failed", "key", key, "err", err)
		c.emitError(ErrorEvent{Operation: "activate", Key: key, Err: err})
		c.emitStateLocked(prev)
		return fmt.Errorf("start %s: %w", key, err)
	}

	c.active[key] = true
	delete(c.paused, key)
	c.logger.Debug("sound activated", "key", key)
	c.emitStateLocked(prev)
	return nil
}

// Deactivate stops key. Deactivating an inactive or unknown key is a no-op.
func (c *Controller) Deactivate(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.handles[key]; !ok {
		c.logger.Warn("deactivate unknown sound", "key", key)
		return nil
	}
	if !c.active[key] {
		return nil
	}
	prev := c.stateLocked()
	c.stopLocked(key)
	if len(c.active) == 0 {
		c.globalPaused = false
	}
	c.emitStateLocked(prev)
	return nil
}

// stopLocked stops a handle and forgets it as active. Stop errors are
// logged: the sound is gone from the state either way.
func (c *Controller) stopLocked(key string) {
	if err := c.handles[key].Stop(); err != nil {
		c.logger.Warn("sound stop failed", "key", key, "err", err)
	}
	delete(c.active, key)
	delete(c.paused, key)
}

// Pause suspends key's output while keeping it active. Only valid for an
// active, playing key.
func (c *Controller) Pause(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.handles[key]
	if !ok {
		c.logger.Warn("pause unknown sound", "key", key)
		return
	}
	if !c.active[key] || c.paused[key] {
		return
	}
	prev := c.stateLocked()
	h.Pause()
	c.paused[key] = true
	c.emitStateLocked(prev)
}

// Resume restarts output of a paused key.
func (c *Controller) Resume(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.handles[key]
	if !ok {
		c.logger.Warn("resume unknown sound", "key", key)
		return
	}
	if !c.paused[key] {
		return
	}
	prev := c.stateLocked()
	h.Resume()
	delete(c.paused, key)
	c.globalPaused = false
	c.emitStateLocked(prev)
}

// SetVolume sets and persists key's volume (clamped to 0-100). It applies
// live when key is active and on its next activation otherwise.
func (c *Controller) SetVolume(key string, level int) error {
	level = max(0, min(100, level))

	c.mu.Lock()
	h, ok := c.handles[key]
	if !ok {
		c.mu.Unlock()
		c.logger.Warn("set volume of unknown sound", "key", key)
		return nil
	}
	c.volumes[key] = level
	h.SetGain(sound.GainFromPercent(level))
	c.mu.Unlock()

	c.emitVolume(VolumeChange{Key: key, Level: level})

	if c.store == nil {
		return nil
	}
	if err := c.store.SaveVolume(key, level); err != nil {
		c.logger.Error("save volume failed", "key", key, "err", err)
		c.emitError(ErrorEvent{Operation: "save volume", Key: key, Err: err})
		return fmt.Errorf("save volume of %s: %w", key, err)
	}
	return nil
}

// Volume returns key's volume: the last set value, the persisted one, or
// the default.
func (c *Controller) Volume(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volumeLocked(key)
}

func (c *Controller) volumeLocked(key string) int {
	if v, ok := c.volumes[key]; ok {
		return v
	}
	v := c.defaultVolume
	if c.store != nil {
		saved, ok, err := c.store.GetVolume(key)
		if err != nil {
			// Not cached, so the next read retries the store.
			c.logger.Warn("load volume failed", "key", key, "err", err)
			return v
		}
		if ok {
			v = saved
		}
	}
	c.volumes[key] = v
	return v
}

// Volumes returns the volume of every registered sound.
func (c *Controller) Volumes() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.order))
	for _, k := range c.order {
		out[k] = c.volumeLocked(k)
	}
	return out
}

// Toggle deactivates key if active and activates it otherwise. Calls made
// while a previous toggle is in flight, or within the debounce window after
// it, are ignored and report false.
func (c *Controller) Toggle(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	if c.toggling {
		c.mu.Unlock()
		c.logger.Debug("toggle ignored, in progress", "key", key)
		return false, nil
	}
	c.toggling = true
	active := c.active[key]
	c.mu.Unlock()

	defer c.releaseToggle()

	if active {
		return true, c.Deactivate(key)
	}
	return true, c.Activate(ctx, key)
}

func (c *Controller) releaseToggle() {
	release := func() {
		c.mu.Lock()
		c.toggling = false
		c.mu.Unlock()
	}
	if c.debounce == 0 {
		release()
		return
	}
	time.AfterFunc(c.debounce, release)
}

// StopAll stops every sound and resets the state to empty.
func (c *Controller) StopAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.stateLocked()
	for key := range c.active {
		c.stopLocked(key)
	}
	clear(c.paused)
	c.globalPaused = false
	c.emitStateLocked(prev)
}

// PauseAll pauses every active sound. It does nothing when nothing plays.
func (c *Controller) PauseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.active) == 0 {
		return
	}
	prev := c.stateLocked()
	for key := range c.active {
		if !c.paused[key] {
			c.handles[key].Pause()
			c.paused[key] = true
		}
	}
	c.globalPaused = true
	c.emitStateLocked(prev)
}

// ResumeAll resumes every paused sound.
func (c *Controller) ResumeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.stateLocked()
	for key := range c.paused {
		c.handles[key].Resume()
	}
	clear(c.paused)
	c.globalPaused = false
	c.emitStateLocked(prev)
}

// TogglePauseAll pauses everything, or resumes if globally paused. It
// returns the new global paused flag.
func (c *Controller) TogglePauseAll() bool {
	c.mu.Lock()
	paused := c.globalPaused
	c.mu.Unlock()

	if paused {
		c.ResumeAll()
	} else {
		c.PauseAll()
	}
	return c.GlobalPaused()
}

// GlobalPaused reports whether PauseAll is in effect.
func (c *Controller) GlobalPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.globalPaused
}

// State returns a copy of the current AudioState.
func (c *Controller) State() AudioState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() AudioState {
	return AudioState{
		Active:       sortedKeys(c.active),
		Paused:       sortedKeys(c.paused),
		GlobalPaused: c.globalPaused,
	}
}

func (c *Controller) IsActive(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active[key]
}

func (c *Controller) IsPaused(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused[key]
}

// Current returns the active key, if any.
func (c *Controller) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.active {
		return key, true
	}
	return "", false
}

// Snapshot captures the active sounds and all volumes.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	vols := make(map[string]int, len(c.order))
	for _, k := range c.order {
		vols[k] = c.volumeLocked(k)
	}
	return Snapshot{Sounds: sortedKeys(c.active), Volumes: vols}
}

// Restore stops everything, applies the saved volumes and activates the
// first known saved sound. Unknown keys are skipped.
func (c *Controller) Restore(ctx context.Context, snap Snapshot) error {
	c.StopAll()

	keys := make([]string, 0, len(snap.Volumes))
	for k := range snap.Volumes {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var firstErr error
	for _, k := range keys {
		if _, ok := c.Handle(k); !ok {
			continue
		}
		if err := c.SetVolume(k, snap.Volumes[k]); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, k := range snap.Sounds {
		if _, ok := c.Handle(k); !ok {
			c.logger.Warn("restore unknown sound", "key", k)
			continue
		}
		if err := c.Activate(ctx, k); err != nil {
			return err
		}
		break
	}
	return firstErr
}

// Next activates the sound after the current one, in registration order.
// With nothing active it starts the first sound.
func (c *Controller) Next(ctx context.Context) (string, error) {
	return c.cycle(ctx, 1)
}

// Previous activates the sound before the current one.
func (c *Controller) Previous(ctx context.Context) (string, error) {
	return c.cycle(ctx, -1)
}

func (c *Controller) cycle(ctx context.Context, dir int) (string, error) {
	c.mu.Lock()
	if len(c.order) == 0 {
		c.mu.Unlock()
		return "", nil
	}
	idx := -1
	for i, k := range c.order {
		if c.active[k] {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && dir > 0:
		next = 0
	case idx < 0:
		next = len(c.order) - 1
	default:
		next = (idx + dir + len(c.order)) % len(c.order)
	}
	key := c.order[next]
	c.mu.Unlock()

	return key, c.Activate(ctx, key)
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.closed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Close stops all sounds and ends subscriptions.
func (c *Controller) Close() error {
	c.StopAll()

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	return nil
}

func (c *Controller) emitStateLocked(prev AudioState) {
	cur := c.stateLocked()
	if cur.Equal(prev) {
		return
	}
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendState(StateChange{Previous: prev, Current: cur})
	}
}

func (c *Controller) emitVolume(e VolumeChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendVolume(e)
	}
}

func (c *Controller) emitError(e ErrorEvent) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}
