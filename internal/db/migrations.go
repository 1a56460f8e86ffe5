package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
// Every statement must be safe to re-run against an up-to-date schema.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS stays (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		position   INTEGER NOT NULL UNIQUE CHECK (position >= 0),
		city       TEXT    NOT NULL,
		country    TEXT    NOT NULL,
		title      TEXT    NOT NULL,
		photo      TEXT    NOT NULL DEFAULT '',
		type       TEXT    NOT NULL DEFAULT '',
		beds       INTEGER CHECK (beds IS NULL OR beds >= 0),
		max_guests INTEGER NOT NULL CHECK (max_guests >= 0),
		rating     REAL    NOT NULL DEFAULT 0 CHECK (rating >= 0 AND rating <= 5),
		super_host INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stays_location ON stays (city, country)`,
	`CREATE TABLE IF NOT EXISTS catalog_imports (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		source        TEXT    NOT NULL,
		listing_count INTEGER NOT NULL CHECK (listing_count >= 0),
		imported_at   DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
