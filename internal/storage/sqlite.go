// Package storage persists generated suggestion runs in a local SQLite
// database so past runs can be reviewed.
package storage

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// schema creates the run history tables.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	game TEXT NOT NULL,
	source_path TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS run_rows (
	run_id TEXT NOT NULL REFERENCES runs(id),
	position INTEGER NOT NULL,
	strategy TEXT NOT NULL,
	numbers TEXT NOT NULL,
	duplicate INTEGER NOT NULL DEFAULT 0,
	skipped INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (run_id, position)
);
`

// Config holds storage settings.
type Config struct {
	// Path is the SQLite database file. Empty disables run history.
	Path string `yaml:"path" mapstructure:"path"`
}

// Validate checks the storage configuration.
func (c *Config) Validate() error {
	if c.Path == "" {
		return errors.New("path must be specified")
	}
	return nil
}

// Open opens (creating when needed) the run history database and applies the
// schema.
func Open(cfg *Config) (*sqlx.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}
