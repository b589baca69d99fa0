// internal/state/interface.go
package state

import (
	"context"
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB

	// Key-value preferences
	Get(key string) (string, bool, error)
	Set(key, value string) error

	// Per-sound volumes, stored as volume_<soundKey> -> percent
	GetVolume(soundKey string) (int, bool, error)
	SaveVolume(soundKey string, level int) error
	Volumes() (map[string]int, error)

	GetTheme() (string, error)
	SaveTheme(theme string) error

	SaveUI(ui UIState)
	GetUI() (*UIState, error)

	ListProfiles() ([]Profile, error)
	GetProfile(id int64) (*Profile, error)
	GetProfileByName(name string) (*Profile, error)
	SaveProfile(p Profile) (int64, error)
	DeleteProfile(id int64) error
	ImportProfiles(ctx context.Context, profiles []Profile) (int, error)

	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
