// Package db opens the SQLite catalog store.
//
// The store has one writer, `sf import`, which opens it with Open and
// replaces the catalog. Everything else reads the catalog once through
// OpenReadOnly, which never migrates and rejects writes.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNoCatalog is returned by OpenReadOnly when no catalog has been imported
// at the path yet.
var ErrNoCatalog = errors.New("no catalog imported")

// busyTimeoutMS lets readers wait out an import that holds the write lock.
const busyTimeoutMS = 5000

// DefaultPath returns the default database path: ~/.stay-finder/stays.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".stay-finder", "stays.db"), nil
}

// Open opens (or creates) the catalog store for writing and brings its
// schema up to date.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
	}

	d, err := sql.Open("sqlite3", dsn(path, url.Values{
		"mode":          {"rwc"},
		"_journal_mode": {"WAL"},
		"_foreign_keys": {"on"},
	}))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrate(d); err != nil {
		return nil, closeOnErr(d, fmt.Errorf("running migrations: %w", err))
	}

	return d, nil
}

// OpenReadOnly opens an existing catalog store without migrating it.
// Any write through the returned handle fails. It returns ErrNoCatalog when
// the file is missing or has never been migrated.
func OpenReadOnly(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrNoCatalog, path)
	}

	d, err := sql.Open("sqlite3", dsn(path, url.Values{
		"mode":        {"ro"},
		"_query_only": {"on"},
	}))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ok, err := hasTable(d, "stays")
	if err != nil {
		return nil, closeOnErr(d, fmt.Errorf("checking schema: %w", err))
	}
	if !ok {
		return nil, closeOnErr(d, fmt.Errorf("%w at %s", ErrNoCatalog, path))
	}

	return d, nil
}

// dsn builds a go-sqlite3 URI filename. Connection settings go in the DSN
// so every pooled connection gets them, not just the first.
func dsn(path string, params url.Values) string {
	params.Set("_busy_timeout", fmt.Sprint(busyTimeoutMS))
	return "file:" + path + "?" + params.Encode()
}

func hasTable(d *sql.DB, name string) (bool, error) {
	var n int
	err := d.QueryRow(
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func closeOnErr(d *sql.DB, err error) error {
	if closeErr := d.Close(); closeErr != nil {
		return fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
	}
	return err
}
