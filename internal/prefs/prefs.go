// Package prefs persists editor preferences in a local SQLite key/value store.
// Only the light/dark editor mode is stored; themes are exported, never saved.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	_ "modernc.org/sqlite"
)

// KeyTheme is the preference key holding the editor mode.
const KeyTheme = "theme"

// Editor modes.
const (
	Light = "light"
	Dark  = "dark"
)

// ErrInvalidMode is returned by SetTheme for values other than light or dark.
var ErrInvalidMode = errors.New("invalid editor mode")

// Store reads and writes preferences. A Store opened with an empty path keeps
// values in memory only.
type Store struct {
	db     *sql.DB
	mem    map[string]string
	detect func() bool
}

// DefaultPath returns the database location in the user's config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(configDir, "rtheme", "prefs.db"), nil
}

// Open opens (creating if needed) the preference database at path.
func Open(path string) (*Store, error) {
	s := &Store{mem: map[string]string{}, detect: termenv.HasDarkBackground}
	if path == "" {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create prefs directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open prefs database: %w", err)
	}
	s.db = db
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	return err
}

// Get returns the stored value for key. ok is false when the key is unset.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	if s.db == nil {
		value, ok = s.mem[key]
		return value, ok, nil
	}
	err = s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read pref %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	if s.db == nil {
		s.mem[key] = value
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write pref %q: %w", key, err)
	}
	return nil
}

// Theme returns the stored editor mode. When none is stored the terminal
// background decides.
func (s *Store) Theme() (string, error) {
	v, ok, err := s.Get(KeyTheme)
	if err != nil {
		return "", err
	}
	if ok && (v == Light || v == Dark) {
		return v, nil
	}
	if s.detect != nil && !s.detect() {
		return Light, nil
	}
	return Dark, nil
}

// SetTheme stores the editor mode.
func (s *Store) SetTheme(mode string) error {
	if mode != Light && mode != Dark {
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return s.Set(KeyTheme, mode)
}

// Toggle returns the opposite mode.
func Toggle(mode string) string {
	if mode == Light {
		return Dark
	}
	return Light
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
