package state

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	volumeKeyPrefix = "volume_"
	themeKey        = "theme"
	uiSectionKey    = "ui_section"
	uiFocusKey      = "ui_focus"
)

// UIState is where the user left the interface.
type UIState struct {
	Section string
	Focus   string
}

// VolumeKey returns the kv key holding the volume of a sound.
func VolumeKey(soundKey string) string {
	return volumeKeyPrefix + soundKey
}

func (m *Manager) Get(key string) (string, bool, error) {
	return getValue(m.db, key)
}

func (m *Manager) Set(key, value string) error {
	return setValue(m.db, key, value)
}

// GetVolume returns the saved volume percent for a sound.
// ok is false when nothing was saved yet.
func (m *Manager) GetVolume(soundKey string) (int, bool, error) {
	raw, ok, err := getValue(m.db, VolumeKey(soundKey))
	if err != nil || !ok {
		return 0, false, err
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		// Corrupt value: behave as if nothing was saved
		return 0, false, nil //nolint:nilerr // unparsable volume is treated as unset
	}
	return clampPercent(level), true, nil
}

// SaveVolume persists the volume percent for a sound immediately.
func (m *Manager) SaveVolume(soundKey string, level int) error {
	return setValue(m.db, VolumeKey(soundKey), strconv.Itoa(clampPercent(level)))
}

// Volumes returns every saved sound volume keyed by sound key.
func (m *Manager) Volumes() (map[string]int, error) {
	rows, err := m.db.Query(`SELECT key, value FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key`,
		len(volumeKeyPrefix), volumeKeyPrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	volumes := make(map[string]int)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		level, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		volumes[strings.TrimPrefix(key, volumeKeyPrefix)] = clampPercent(level)
	}
	return volumes, rows.Err()
}

// GetTheme returns the saved theme ("light" or "dark"), or "" if unset.
func (m *Manager) GetTheme() (string, error) {
	theme, ok, err := getValue(m.db, themeKey)
	if err != nil || !ok {
		return "", err
	}
	switch theme {
	case "light", "dark":
		return theme, nil
	default:
		return "", nil
	}
}

// SaveTheme persists the theme.
func (m *Manager) SaveTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return errors.New("theme must be light or dark")
	}
	return setValue(m.db, themeKey, theme)
}

func getUI(db *sql.DB) (*UIState, error) {
	section, ok, err := getValue(db, uiSectionKey)
	if err != nil || !ok {
		return nil, err
	}
	focus, _, err := getValue(db, uiFocusKey)
	if err != nil {
		return nil, err
	}
	return &UIState{Section: section, Focus: focus}, nil
}

func saveUI(db *sql.DB, ui UIState) error {
	if err := setValue(db, uiSectionKey, ui.Section); err != nil {
		return err
	}
	return setValue(db, uiFocusKey, ui.Focus)
}

func getValue(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func setValue(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}

func clampPercent(level int) int {
	return max(0, min(100, level))
}
