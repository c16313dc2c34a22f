// Package store persists user settings in a SQLite database kept next to
// the binary. Summaries themselves are never persisted; only the
// configuration the summarization pipeline consumes.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dtnitsch/page-digest/models"
)

const DefaultDBName = "page-digest.db"

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	api_key TEXT NOT NULL DEFAULT '',
	model TEXT NOT NULL DEFAULT '',
	summary_length TEXT NOT NULL DEFAULT '',
	summary_language TEXT NOT NULL DEFAULT '',
	theme TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the settings database next to the binary.
func Open() (*Store, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	return OpenAt(filepath.Join(filepath.Dir(execPath), DefaultDBName))
}

// OpenAt opens or creates the settings database at an explicit path.
func OpenAt(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize settings schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Load returns the persisted settings with defaults filled in for any unset
// field. A store that has never been written yields the defaults.
func (s *Store) Load(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	err := s.db.QueryRowContext(ctx,
		`SELECT api_key, model, summary_length, summary_language, theme FROM settings WHERE id = 1`,
	).Scan(&settings.APIKey, &settings.Model, &settings.SummaryLength, &settings.SummaryLanguage, &settings.Theme)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings.WithDefaults(), nil
}

// Save replaces the persisted settings as a whole.
func (s *Store) Save(ctx context.Context, settings models.Settings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (id, api_key, model, summary_length, summary_language, theme, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			api_key = excluded.api_key,
			model = excluded.model,
			summary_length = excluded.summary_length,
			summary_language = excluded.summary_language,
			theme = excluded.theme,
			updated_at = CURRENT_TIMESTAMP`,
		settings.APIKey, settings.Model, string(settings.SummaryLength), settings.SummaryLanguage, settings.Theme,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
