package state

import (
	"cmp"
	"context"
	"database/sql"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	mu       sync.Mutex
	kv       map[string]string
	ui       *UIState
	profiles []Profile
	nextID   int64
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{kv: make(map[string]string), nextID: 1}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.kv[key]
	return v, ok, nil
}

func (m *Mock) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

func (m *Mock) GetVolume(soundKey string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.kv[VolumeKey(soundKey)]
	if !ok {
		return 0, false, nil
	}
	level, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, nil //nolint:nilerr // mirrors Manager
	}
	return level, true, nil
}

func (m *Mock) SaveVolume(soundKey string, level int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[VolumeKey(soundKey)] = strconv.Itoa(clampPercent(level))
	return nil
}

func (m *Mock) Volumes() (map[string]int, error) {
	m.mu.Lock()
	keys := make([]string, 0)
	for k := range m.kv {
		if strings.HasPrefix(k, volumeKeyPrefix) {
			keys = append(keys, strings.TrimPrefix(k, volumeKeyPrefix))
		}
	}
	m.mu.Unlock()

	out := make(map[string]int, len(keys))
	for _, k := range keys {
		out[k], _, _ = m.GetVolume(k)
	}
	return out, nil
}

func (m *Mock) GetTheme() (string, error) {
	v, _, _ := m.Get(themeKey)
	return v, nil
}

func (m *Mock) SaveTheme(theme string) error {
	return m.Set(themeKey, theme)
}

func (m *Mock) SaveUI(ui UIState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ui = &ui
}

func (m *Mock) GetUI() (*UIState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ui, nil
}

func (m *Mock) ListProfiles() ([]Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.profiles)
	slices.SortStableFunc(out, func(a, b Profile) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (m *Mock) GetProfile(id int64) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *Mock) GetProfileByName(name string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.Name == strings.TrimSpace(name) {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *Mock) SaveProfile(p Profile) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked(p)
}

func (m *Mock) saveLocked(p Profile) (int64, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return 0, ErrEmptyProfileName
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	for i, existing := range m.profiles {
		if existing.Name == p.Name {
			p.ID = existing.ID
			m.profiles[i] = p
			return p.ID, nil
		}
	}
	p.ID = m.nextID
	m.nextID++
	m.profiles = append(m.profiles, p)
	return p.ID, nil
}

func (m *Mock) DeleteProfile(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = slices.DeleteFunc(m.profiles, func(p Profile) bool { return p.ID == id })
	return nil
}

func (m *Mock) ImportProfiles(_ context.Context, profiles []Profile) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range profiles {
		if strings.TrimSpace(p.Name) == "" {
			return 0, ErrEmptyProfileName
		}
	}
	for _, p := range profiles {
		_, _ = m.saveLocked(p)
	}
	return len(profiles), nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
