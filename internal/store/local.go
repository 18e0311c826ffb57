package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Local is the file-backed Store. Each collection key maps to one row
// holding the JSON blob, mirroring a browser's local storage layout.
type Local struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// OpenLocal opens (or creates) the store file at the given path.
func OpenLocal(path string) (*Local, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	s := &Local{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Local) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS collections (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create collections table: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Local) Close() error {
	return s.db.Close()
}

// Path returns the store file location.
func (s *Local) Path() string {
	return s.dbPath
}

// Load implements Store.
func (s *Local) Load(key string, v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var blob string
	err := s.db.QueryRow("SELECT value FROM collections WHERE key = ?", key).Scan(&blob)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read collection %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(blob), v); err != nil {
		return fmt.Errorf("failed to decode collection %q: %w", key, err)
	}
	return nil
}

// Save implements Store.
func (s *Local) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		"INSERT INTO collections (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) "+
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (s *Local) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM collections WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete collection %q: %w", key, err)
	}
	return nil
}

// Keys implements Store.
func (s *Local) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT key FROM collections ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// SaveRaw stores a pre-encoded blob under key without validating it.
// Used to seed fixtures and reproduce corrupt-storage conditions.
func (s *Local) SaveRaw(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO collections (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) "+
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		key, string(blob),
	)
	return err
}
