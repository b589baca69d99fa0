package state

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func setupTestManager(t *testing.T) *Manager {
	t.Helper()
	m := &Manager{db: setupTestDB(t)}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := initSchema(db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}

	var version int
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("query version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestKV_GetSet(t *testing.T) {
	m := setupTestManager(t)

	if _, ok, err := m.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok:%v err:%v, want not found", ok, err)
	}

	if err := m.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := m.Set("k", "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	v, ok, err := m.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Errorf("Get(k) = %q, %v, %v; want v2, true, nil", v, ok, err)
	}
}

func TestVolumes(t *testing.T) {
	m := setupTestManager(t)

	if _, ok, err := m.GetVolume("ocean"); err != nil || ok {
		t.Fatalf("GetVolume before save = ok:%v err:%v", ok, err)
	}

	tests := []struct {
		key   string
		level int
		want  int
	}{
		{"ocean", 35, 35},
		{"rain", 150, 100},
		{"fire", -3, 0},
	}
	for _, tt := range tests {
		if err := m.SaveVolume(tt.key, tt.level); err != nil {
			t.Fatalf("SaveVolume(%s): %v", tt.key, err)
		}
		got, ok, err := m.GetVolume(tt.key)
		if err != nil || !ok || got != tt.want {
			t.Errorf("GetVolume(%s) = %d, %v, %v; want %d", tt.key, got, ok, err, tt.want)
		}
	}

	// Unrelated keys are not volumes
	if err := m.Set("theme", "dark"); err != nil {
		t.Fatal(err)
	}

	all, err := m.Volumes()
	if err != nil {
		t.Fatalf("Volumes: %v", err)
	}
	if len(all) != 3 || all["ocean"] != 35 || all["rain"] != 100 || all["fire"] != 0 {
		t.Errorf("Volumes() = %v", all)
	}
}

func TestGetVolume_CorruptValue(t *testing.T) {
	m := setupTestManager(t)

	if err := m.Set(VolumeKey("wind"), "loud"); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := m.GetVolume("wind"); err != nil || ok {
		t.Errorf("corrupt volume should read as unset, got ok=%v err=%v", ok, err)
	}
}

func TestVolumes_OnlyVolumePrefix(t *testing.T) {
	m := setupTestManager(t)

	if err := m.SaveVolume("rain", 40); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"volumes", "volumeX1", "volumes_backup"} {
		if err := m.Set(key, "77"); err != nil {
			t.Fatal(err)
		}
	}

	got, err := m.Volumes()
	if err != nil {
		t.Fatalf("Volumes: %v", err)
	}
	if len(got) != 1 || got["rain"] != 40 {
		t.Errorf("Volumes = %v, want map[rain:40]", got)
	}
}

func TestTheme(t *testing.T) {
	m := setupTestManager(t)

	if theme, err := m.GetTheme(); err != nil || theme != "" {
		t.Fatalf("GetTheme on empty db = %q, %v", theme, err)
	}
	if err := m.SaveTheme("light"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	if theme, _ := m.GetTheme(); theme != "light" {
		t.Errorf("GetTheme = %q, want light", theme)
	}
	if err := m.SaveTheme("purple"); err == nil {
		t.Error("SaveTheme(purple) should fail")
	}

	// A foreign value in the kv table reads as unset
	if err := m.Set(themeKey, "sepia"); err != nil {
		t.Fatal(err)
	}
	if theme, _ := m.GetTheme(); theme != "" {
		t.Errorf("GetTheme with invalid stored value = %q, want empty", theme)
	}
}

func TestUIState_FlushedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bulle.db")

	m, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	m.SaveUI(UIState{Section: "timer", Focus: "preset-2"})
	m.SaveUI(UIState{Section: "visuals", Focus: "stars"})
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	m, err = OpenPath(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer m.Close()

	ui, err := m.GetUI()
	if err != nil {
		t.Fatalf("GetUI: %v", err)
	}
	if ui == nil || ui.Section != "visuals" || ui.Focus != "stars" {
		t.Errorf("GetUI = %+v, want visuals/stars", ui)
	}
}

func TestUIState_Debounced(t *testing.T) {
	m := setupTestManager(t)

	m.SaveUI(UIState{Section: "sounds"})
	if ui, _ := m.GetUI(); ui != nil {
		t.Errorf("UI state written before debounce elapsed: %+v", ui)
	}

	deadline := time.Now().Add(5 * saveDebounce)
	for time.Now().Before(deadline) {
		if ui, _ := m.GetUI(); ui != nil {
			if ui.Section != "sounds" {
				t.Errorf("Section = %q, want sounds", ui.Section)
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("UI state was never written")
}

func TestProfiles_SaveOverwritesByName(t *testing.T) {
	m := setupTestManager(t)

	id1, err := m.SaveProfile(Profile{
		Name:         "Evening",
		Sounds:       []string{"rain"},
		Volumes:      map[string]int{"rain": 40},
		Visual:       "stars",
		TimerMinutes: 10,
	})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	id2, err := m.SaveProfile(Profile{Name: "  Evening ", Sounds: []string{"ocean"}})
	if err != nil {
		t.Fatalf("SaveProfile overwrite: %v", err)
	}
	if id1 != id2 {
		t.Errorf("overwrite changed id: %d -> %d", id1, id2)
	}

	p, err := m.GetProfile(id1)
	if err != nil || p == nil {
		t.Fatalf("GetProfile = %v, %v", p, err)
	}
	if len(p.Sounds) != 1 || p.Sounds[0] != "ocean" {
		t.Errorf("Sounds = %v, want [ocean]", p.Sounds)
	}
	if p.Visual != "" || p.TimerMinutes != 0 {
		t.Errorf("overwrite should replace all fields, got %+v", p)
	}

	list, _ := m.ListProfiles()
	if len(list) != 1 {
		t.Errorf("len(ListProfiles) = %d, want 1", len(list))
	}
}

func TestProfiles_EmptyName(t *testing.T) {
	m := setupTestManager(t)

	if _, err := m.SaveProfile(Profile{Name: "   "}); !errors.Is(err, ErrEmptyProfileName) {
		t.Errorf("err = %v, want ErrEmptyProfileName", err)
	}
}

func TestProfiles_ListNewestFirst(t *testing.T) {
	m := setupTestManager(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"a", "b", "c"} {
		if _, err := m.SaveProfile(Profile{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatal(err)
		}
	}

	list, err := m.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles: %v", err)
	}
	var names []string
	for _, p := range list {
		names = append(names, p.Name)
	}
	if len(names) != 3 || names[0] != "c" || names[2] != "a" {
		t.Errorf("order = %v, want [c b a]", names)
	}
}

func TestProfiles_GetMissingAndDelete(t *testing.T) {
	m := setupTestManager(t)

	if p, err := m.GetProfile(42); err != nil || p != nil {
		t.Errorf("GetProfile(42) = %v, %v; want nil, nil", p, err)
	}

	id, _ := m.SaveProfile(Profile{Name: "Focus"})
	if p, _ := m.GetProfileByName("Focus"); p == nil || p.ID != id {
		t.Errorf("GetProfileByName = %+v", p)
	}
	if err := m.DeleteProfile(id); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if p, _ := m.GetProfile(id); p != nil {
		t.Error("profile still present after delete")
	}
	if err := m.DeleteProfile(id); err != nil {
		t.Errorf("deleting twice should not fail: %v", err)
	}
}

func TestImportProfiles_AllOrNothing(t *testing.T) {
	m := setupTestManager(t)

	_, err := m.ImportProfiles(context.Background(), []Profile{
		{Name: "ok"},
		{Name: ""},
	})
	if !errors.Is(err, ErrEmptyProfileName) {
		t.Fatalf("err = %v, want ErrEmptyProfileName", err)
	}
	if list, _ := m.ListProfiles(); len(list) != 0 {
		t.Errorf("partial import persisted %d profiles", len(list))
	}

	n, err := m.ImportProfiles(context.Background(), []Profile{
		{Name: "one", Sounds: []string{"forest"}},
		{Name: "two", Volumes: map[string]int{"wind": 20}},
	})
	if err != nil || n != 2 {
		t.Fatalf("ImportProfiles = %d, %v", n, err)
	}
	p, _ := m.GetProfileByName("two")
	if p == nil || p.Volumes["wind"] != 20 {
		t.Errorf("imported profile = %+v", p)
	}
}

func TestMock_ProfilesBehaveLikeManager(t *testing.T) {
	m := NewMock()

	id, err := m.SaveProfile(Profile{Name: "x", Sounds: []string{"cat"}})
	if err != nil {
		t.Fatal(err)
	}
	id2, _ := m.SaveProfile(Profile{Name: "x"})
	if id != id2 {
		t.Errorf("mock overwrite changed id %d -> %d", id, id2)
	}
	if _, err := m.SaveProfile(Profile{}); !errors.Is(err, ErrEmptyProfileName) {
		t.Errorf("mock empty name err = %v", err)
	}
	_ = m.SaveVolume("cat", 120)
	if v, ok, _ := m.GetVolume("cat"); !ok || v != 100 {
		t.Errorf("mock GetVolume = %d, %v", v, ok)
	}
}
