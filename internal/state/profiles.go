package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/bulle/internal/db"
)

// ErrEmptyProfileName is returned when saving a profile without a name.
var ErrEmptyProfileName = errors.New("profile name is empty")

// Profile is a saved sensory setup.
type Profile struct {
	ID           int64          `json:"id,omitempty"   yaml:"id,omitempty"`
	Name         string         `json:"name"           yaml:"name"`
	Sounds       []string       `json:"sounds"         yaml:"sounds"`
	Volumes      map[string]int `json:"volumes"        yaml:"volumes"`
	Visual       string         `json:"visual,omitempty"  yaml:"visual,omitempty"`
	TimerMinutes int            `json:"timerMinutes"   yaml:"timerMinutes"`
	Section      string         `json:"section,omitempty" yaml:"section,omitempty"`
	CreatedAt    time.Time      `json:"createdDate"    yaml:"createdDate"`
}

const profileColumns = `id, name, sounds, volumes, visual, timer_minutes, section, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var (
		p       Profile
		sounds  string
		volumes string
		visual  sql.NullString
		section sql.NullString
		created int64
	)
	if err := row.Scan(&p.ID, &p.Name, &sounds, &volumes, &visual, &p.TimerMinutes, &section, &created); err != nil {
		return Profile{}, err
	}
	if err := db.ScanJSONColumn(sounds, &p.Sounds); err != nil {
		return Profile{}, fmt.Errorf("profile %q sounds: %w", p.Name, err)
	}
	if err := db.ScanJSONColumn(volumes, &p.Volumes); err != nil {
		return Profile{}, fmt.Errorf("profile %q volumes: %w", p.Name, err)
	}
	p.Visual = db.NullStringValue(visual)
	p.Section = db.NullStringValue(section)
	p.CreatedAt = time.Unix(created, 0)
	return p, nil
}

// ListProfiles returns all profiles, newest first.
func (m *Manager) ListProfiles() ([]Profile, error) {
	rows, err := m.db.Query(`SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// GetProfile returns the profile with id, or nil if it does not exist.
func (m *Manager) GetProfile(id int64) (*Profile, error) {
	p, err := scanProfile(m.db.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfileByName returns the profile named name, or nil.
func (m *Manager) GetProfileByName(name string) (*Profile, error) {
	p, err := scanProfile(m.db.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE name = ?`, strings.TrimSpace(name)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile inserts p, or overwrites the profile with the same name.
// The stored ID is returned.
func (m *Manager) SaveProfile(p Profile) (int64, error) {
	return saveProfile(m.db, p)
}

type execQuerier interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

func saveProfile(q execQuerier, p Profile) (int64, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return 0, ErrEmptyProfileName
	}
	if p.Sounds == nil {
		p.Sounds = []string{}
	}
	if p.Volumes == nil {
		p.Volumes = map[string]int{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	sounds, err := db.JSONColumn(p.Sounds)
	if err != nil {
		return 0, err
	}
	volumes, err := db.JSONColumn(p.Volumes)
	if err != nil {
		return 0, err
	}

	_, err = q.Exec(`
		INSERT INTO profiles (name, sounds, volumes, visual, timer_minutes, section, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			sounds = excluded.sounds,
			volumes = excluded.volumes,
			visual = excluded.visual,
			timer_minutes = excluded.timer_minutes,
			section = excluded.section,
			created_at = excluded.created_at
	`, p.Name, sounds, volumes, db.NullString(p.Visual), max(0, p.TimerMinutes),
		db.NullString(p.Section), p.CreatedAt.Unix())
	if err != nil {
		return 0, err
	}

	// LastInsertId is unreliable for the upsert path
	var id int64
	if err := q.QueryRow(`SELECT id FROM profiles WHERE name = ?`, p.Name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteProfile removes a profile. Deleting a missing profile is not an error.
func (m *Manager) DeleteProfile(id int64) error {
	_, err := m.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	return err
}

// ImportProfiles saves every profile in one transaction. Either all are
// stored or none are. Returns the number of profiles written.
func (m *Manager) ImportProfiles(ctx context.Context, profiles []Profile) (int, error) {
	n := 0
	err := db.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		for i, p := range profiles {
			if _, err := saveProfile(tx, p); err != nil {
				return fmt.Errorf("profile %d (%q): %w", i+1, p.Name, err)
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
