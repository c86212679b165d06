package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inkwell/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// stateNamespace is the fixed key the app state is stored under.
const stateNamespace = "inkwell/state"

// schemaVersion is the version written into every saved envelope.
const schemaVersion = 1

// persistedState is the durable subset of store state. Writing samples,
// the active session, and the current-story pointer are deliberately
// excluded and always start empty.
type persistedState struct {
	SchemaVersion int                    `json:"schema_version"`
	Stories       []model.Story          `json:"stories"`
	User          *model.User            `json:"user"`
	Analytics     model.WritingAnalytics `json:"analytics"`
	Preferences   model.Preferences      `json:"preferences"`
}

// Persister is the durable local storage behind the store. Load returns nil
// when no usable state exists; callers fall back to defaults.
type Persister interface {
	Load() (*persistedState, error)
	Save(st persistedState) error
	Clear() error
	Close() error
}

// SQLite persists the app state as a single namespaced row.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the SQLite database and applies migrations.
func OpenSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	p := &SQLite{db: db}
	if err := p.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return p, nil
}

// Close closes the underlying database.
func (p *SQLite) Close() error {
	return p.db.Close()
}

func (p *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS app_state (
			ns TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := p.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the namespaced state row. A missing row, an unknown newer
// schema version, or an undecodable payload all yield (nil, nil): startup
// falls back to defaults rather than failing.
func (p *SQLite) Load() (*persistedState, error) {
	var version int
	var payload string
	err := p.db.QueryRow(
		`SELECT schema_version, payload FROM app_state WHERE ns = ?`,
		stateNamespace,
	).Scan(&version, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if version > schemaVersion {
		return nil, nil
	}
	st, err := migrateState(version, []byte(payload))
	if err != nil {
		return nil, nil
	}
	return st, nil
}

// Save serializes the state subset and upserts the namespaced row.
func (p *SQLite) Save(st persistedState) error {
	st.SchemaVersion = schemaVersion
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	_, err = p.db.Exec(
		`INSERT INTO app_state (ns, schema_version, payload, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(ns) DO UPDATE SET
			schema_version = excluded.schema_version,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		stateNamespace,
		schemaVersion,
		string(payload),
		time.Now().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// Clear removes the namespaced state row.
func (p *SQLite) Clear() error {
	if _, err := p.db.Exec(`DELETE FROM app_state WHERE ns = ?`, stateNamespace); err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	return nil
}

// migrateState decodes a payload written at the given schema version into
// the current shape. Version 1 is current; older versions get migration
// cases here as the schema evolves.
func migrateState(version int, payload []byte) (*persistedState, error) {
	switch version {
	case schemaVersion:
		var st persistedState
		if err := json.Unmarshal(payload, &st); err != nil {
			return nil, err
		}
		return &st, nil
	default:
		return nil, fmt.Errorf("unknown schema version %d", version)
	}
}
