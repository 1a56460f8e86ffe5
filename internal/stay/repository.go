package stay

import (
	"database/sql"
	"fmt"
	"time"
)

// Repository stores the catalog in SQLite, preserving catalog order.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a stay repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertSQL = `INSERT INTO stays
	(position, city, country, title, photo, type, beds, max_guests, rating, super_host)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectColumns = `city, country, title, photo, type, beds, max_guests, rating, super_host`

// Import describes one catalog replacement.
type Import struct {
	ID           int64     `json:"id"`
	Source       string    `json:"source"`
	ListingCount int       `json:"listing_count"`
	ImportedAt   time.Time `json:"imported_at"`
}

// Replace swaps the stored catalog for the given one in a single transaction
// and records where it came from.
func (r *Repository) Replace(catalog []Listing, source string) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			err = fmt.Errorf("%w (also failed to roll back: %v)", err, rbErr)
		}
	}()

	if _, err = tx.Exec("DELETE FROM stays"); err != nil {
		return fmt.Errorf("clearing stays: %w", err)
	}

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing statement: %w", cerr)
		}
	}()

	for i, l := range catalog {
		if _, err = stmt.Exec(i,
			l.City, l.Country, l.Title, l.Photo, l.Type,
			l.Beds, l.MaxGuests, l.Rating, l.SuperHost,
		); err != nil {
			return fmt.Errorf("inserting listing %d: %w", i, err)
		}
	}

	if _, err = tx.Exec(
		"INSERT INTO catalog_imports (source, listing_count) VALUES (?, ?)",
		source, len(catalog),
	); err != nil {
		return fmt.Errorf("recording import: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}

// List returns the whole catalog in its original order.
func (r *Repository) List() (listings []Listing, err error) {
	query := fmt.Sprintf("SELECT %s FROM stays ORDER BY position", selectColumns)
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing stays: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	listings = []Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stay: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stays: %w", err)
	}

	return listings, nil
}

// LastImport returns the most recent catalog import, or nil if none.
func (r *Repository) LastImport() (*Import, error) {
	var imp Import
	err := r.db.QueryRow(
		"SELECT id, source, listing_count, imported_at FROM catalog_imports ORDER BY id DESC LIMIT 1",
	).Scan(&imp.ID, &imp.Source, &imp.ListingCount, &imp.ImportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying last import: %w", err)
	}
	return &imp, nil
}

// scanListing scans a listing from a database row.
func scanListing(row interface{ Scan(...interface{}) error }) (Listing, error) {
	var l Listing
	var beds sql.NullInt64

	if err := row.Scan(
		&l.City, &l.Country, &l.Title, &l.Photo, &l.Type,
		&beds, &l.MaxGuests, &l.Rating, &l.SuperHost,
	); err != nil {
		return Listing{}, err
	}

	if beds.Valid {
		b := int(beds.Int64)
		l.Beds = &b
	}

	return l, nil
}
