// Package profiles saves and restores complete sensory setups: the playing
// sound and its volumes, the running animation and the timer duration.
package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/llehouerou/bulle/internal/log"
	"github.com/llehouerou/bulle/internal/mixer"
	"github.com/llehouerou/bulle/internal/state"
	"github.com/llehouerou/bulle/internal/visuals"
)

var (
	// ErrNotFound is returned when a profile id does not exist.
	ErrNotFound = errors.New("profile not found")
	// ErrEmptyName is returned when saving without a name.
	ErrEmptyName = state.ErrEmptyProfileName
)

// Profile is a saved setup.
type Profile = state.Profile

// Store persists profiles.
type Store interface {
	ListProfiles() ([]state.Profile, error)
	GetProfile(id int64) (*state.Profile, error)
	GetProfileByName(name string) (*state.Profile, error)
	SaveProfile(p state.Profile) (int64, error)
	DeleteProfile(id int64) error
	ImportProfiles(ctx context.Context, profiles []state.Profile) (int, error)
}

// Mixer is the part of the playback controller a profile touches.
type Mixer interface {
	Snapshot() mixer.Snapshot
	Restore(ctx context.Context, snap mixer.Snapshot) error
	StopAll()
}

// Visuals is the part of the animation field a profile touches.
type Visuals interface {
	Current() (visuals.Kind, bool)
	Start(k visuals.Kind) bool
	Stop()
}

// Timer is the part of the countdown a profile touches.
type Timer interface {
	Minutes() int
	SetMinutes(m int) error
}

// Service captures and applies profiles.
type Service struct {
	store   Store
	mixer   Mixer
	visuals Visuals
	timer   Timer
	logger  *slog.Logger
}

// NewService wires a service. visuals and timer may be nil.
func NewService(store Store, mx Mixer, vis Visuals, tm Timer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = log.Discard()
	}
	return &Service{store: store, mixer: mx, visuals: vis, timer: tm, logger: logger}
}

// Capture builds a profile from the current state without saving it.
func (s *Service) Capture(name, section string) Profile {
	snap := s.mixer.Snapshot()
	p := Profile{
		Name:    strings.TrimSpace(name),
		Sounds:  snap.Sounds,
		Volumes: snap.Volumes,
		Section: section,
	}
	if s.visuals != nil {
		if k, ok := s.visuals.Current(); ok {
			p.Visual = string(k)
		}
	}
	if s.timer != nil {
		p.TimerMinutes = s.timer.Minutes()
	}
	return p
}

// Save stores the current state under name. A profile with the same name is
// overwritten.
func (s *Service) Save(name, section string) (Profile, error) {
	p := s.Capture(name, section)
	if p.Name == "" {
		return Profile{}, ErrEmptyName
	}
	id, err := s.store.SaveProfile(p)
	if err != nil {
		return Profile{}, fmt.Errorf("save profile %q: %w", p.Name, err)
	}
	p.ID = id
	s.logger.Info("profile saved", "name", p.Name, "id", id, "sounds", p.Sounds, "visual", p.Visual)
	return p, nil
}

// Load applies profile id: everything stops, volumes are restored, the saved
// sound starts, then the saved animation and timer duration are set.
func (s *Service) Load(ctx context.Context, id int64) (Profile, error) {
	p, err := s.store.GetProfile(id)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile %d: %w", id, err)
	}
	if p == nil {
		return Profile{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return *p, s.Apply(ctx, *p)
}

// Apply restores p without reading the store.
func (s *Service) Apply(ctx context.Context, p Profile) error {
	s.mixer.StopAll()
	if s.visuals != nil {
		s.visuals.Stop()
	}

	var errs []error
	if err := s.mixer.Restore(ctx, mixer.Snapshot{Sounds: p.Sounds, Volumes: p.Volumes}); err != nil {
		errs = append(errs, fmt.Errorf("restore sounds: %w", err))
	}
	if s.visuals != nil && p.Visual != "" {
		if !s.visuals.Start(visuals.Kind(p.Visual)) {
			s.logger.Warn("profile visual unknown", "name", p.Name, "visual", p.Visual)
		}
	}
	if s.timer != nil && p.TimerMinutes > 0 {
		if err := s.timer.SetMinutes(p.TimerMinutes); err != nil {
			errs = append(errs, fmt.Errorf("restore timer: %w", err))
		}
	}

	s.logger.Info("profile loaded", "name", p.Name, "id", p.ID)
	return errors.Join(errs...)
}

// Delete removes profile id.
func (s *Service) Delete(id int64) error {
	if err := s.store.DeleteProfile(id); err != nil {
		return fmt.Errorf("delete profile %d: %w", id, err)
	}
	s.logger.Info("profile deleted", "id", id)
	return nil
}

// List returns every profile, newest first.
func (s *Service) List() ([]Profile, error) {
	return s.store.ListProfiles()
}

// Export writes every profile as an indented JSON array.
func (s *Service) Export(w io.Writer) error {
	list, err := s.store.ListProfiles()
	if err != nil {
		return err
	}
	return Encode(w, list)
}

// Encode writes profiles as an indented JSON array.
func Encode(w io.Writer, list []Profile) error {
	if list == nil {
		list = []Profile{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// Decode reads a JSON array of profiles. IDs are dropped so imported
// profiles never collide with stored ones.
func Decode(r io.Reader) ([]Profile, error) {
	var list []Profile
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	for i := range list {
		list[i].ID = 0
		if strings.TrimSpace(list[i].Name) == "" {
			return nil, fmt.Errorf("profile %d: %w", i+1, ErrEmptyName)
		}
	}
	return list, nil
}

// Import reads a JSON array and stores every profile in one transaction.
// Profiles with an existing name replace it.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	list, err := Decode(r)
	if err != nil {
		return 0, err
	}
	n, err := s.store.ImportProfiles(ctx, list)
	if err != nil {
		return 0, err
	}
	s.logger.Info("profiles imported", "count", n)
	return n, nil
}
