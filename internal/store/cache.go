// Package store provides a SQLite-backed cache for parsed dataset files.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kidcost/internal/model"
	"kidcost/internal/refdata"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache caches parsed dataset rows keyed by source file.
type Cache struct {
	db *sql.DB
}

// DefaultPath returns the cache database location under the user cache dir.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "kidcost", "datasets.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "kidcost", "datasets.db")
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// TrackedFile returns the recorded mtime and size for a dataset file.
func (c *Cache) TrackedFile(path string) (mtimeNs, sizeBytes int64, ok bool, err error) {
	row := c.db.QueryRow("SELECT mtime_ns, size_bytes FROM file_tracker WHERE file_path = ?", path)
	err = row.Scan(&mtimeNs, &sizeBytes)
	if err == sql.ErrNoRows {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}
	return mtimeNs, sizeBytes, true, nil
}

// LoadRows reads the cached rows for a dataset file.
func (c *Cache) LoadRows(path string) (map[string]refdata.AgeCosts, error) {
	rows, err := c.db.Query(
		"SELECT state, infant, toddler, preschool FROM dataset_rows WHERE file_path = ?", path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]refdata.AgeCosts)
	for rows.Next() {
		var state string
		var ac refdata.AgeCosts
		if err := rows.Scan(&state, &ac.Infant, &ac.Toddler, &ac.Preschool); err != nil {
			return nil, err
		}
		result[state] = ac
	}
	return result, rows.Err()
}

// SaveRows stores parsed rows and the file tracking info in one
// transaction, replacing any previous rows for the file.
func (c *Cache) SaveRows(path string, care model.CareType, rows map[string]refdata.AgeCosts, mtimeNs, sizeBytes int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM dataset_rows WHERE file_path = ?", path); err != nil {
		return err
	}

	for state, ac := range rows {
		_, err := tx.Exec(`INSERT INTO dataset_rows
			(file_path, care_type, state, infant, toddler, preschool)
			VALUES (?, ?, ?, ?, ?, ?)`,
			path, string(care), state, ac.Infant, ac.Toddler, ac.Preschool,
		)
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes, parsed_at)
		VALUES (?, ?, ?, ?)`, path, mtimeNs, sizeBytes, now)
	if err != nil {
		return err
	}

	return tx.Commit()
}
