package locale

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Entry kinds as stored in the name_entries and lookup_entries tables.
const (
	kindFirstName   = "first_name"
	kindTitle       = "title"
	kindLastName    = "last_name"
	kindEyeColor    = "eye_color"
	kindStreetName  = "street_name"
	kindStreetType  = "street_type"
	kindPhoneFormat = "phone_format"
	kindEmailDomain = "email_domain"
)

// PostgresStore loads bundles from the migrated locale schema.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to databaseURL and verifies the connection.
func OpenPostgres(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("locale: failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("locale: failed to ping database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStore wraps an existing database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Locales lists the available locales ordered by code.
func (s *PostgresStore) Locales() ([]Info, error) {
	rows, err := s.db.Query(`
		SELECT locale_code, locale_name FROM locales ORDER BY locale_code
	`)
	if err != nil {
		return nil, fmt.Errorf("locale: failed to list locales: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.Code, &info.Name); err != nil {
			return nil, fmt.Errorf("locale: failed to scan locale: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locale: error iterating locales: %w", err)
	}
	return infos, nil
}

// Bundle loads and validates the complete dataset for a locale code.
func (s *PostgresStore) Bundle(code string) (*Bundle, error) {
	var name string
	err := s.db.QueryRow(`
		SELECT locale_name FROM locales WHERE locale_code = $1
	`, code).Scan(&name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("locale: failed to look up %s: %w", code, err)
	}

	b := &Bundle{Code: code, Name: name}

	if b.FirstNames, err = s.genderedEntries(code, kindFirstName); err != nil {
		return nil, err
	}
	if b.Titles, err = s.genderedEntries(code, kindTitle); err != nil {
		return nil, err
	}
	if b.LastNames, err = s.plainEntries(code, kindLastName); err != nil {
		return nil, err
	}
	if b.EyeColors, err = s.plainEntries(code, kindEyeColor); err != nil {
		return nil, err
	}
	if b.StreetNames, err = s.plainEntries(code, kindStreetName); err != nil {
		return nil, err
	}
	if b.StreetTypes, err = s.plainEntries(code, kindStreetType); err != nil {
		return nil, err
	}
	if b.PhoneFormats, err = s.plainEntries(code, kindPhoneFormat); err != nil {
		return nil, err
	}
	if b.EmailDomains, err = s.plainEntries(code, kindEmailDomain); err != nil {
		return nil, err
	}
	if b.Cities, err = s.cities(code); err != nil {
		return nil, err
	}

	if err := Validate(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *PostgresStore) genderedEntries(code, kind string) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, text, gender, frequency
		FROM name_entries
		WHERE locale_code = $1 AND kind = $2
		ORDER BY id ASC
	`, code, kind)
	if err != nil {
		return nil, fmt.Errorf("locale: failed to query %s %s: %w", code, kind, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Text, &e.Gender, &e.Frequency); err != nil {
			return nil, fmt.Errorf("locale: failed to scan %s %s: %w", code, kind, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locale: error iterating %s %s: %w", code, kind, err)
	}
	return entries, nil
}

func (s *PostgresStore) plainEntries(code, kind string) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, text, frequency
		FROM lookup_entries
		WHERE locale_code = $1 AND kind = $2
		ORDER BY id ASC
	`, code, kind)
	if err != nil {
		return nil, fmt.Errorf("locale: failed to query %s %s: %w", code, kind, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Text, &e.Frequency); err != nil {
			return nil, fmt.Errorf("locale: failed to scan %s %s: %w", code, kind, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locale: error iterating %s %s: %w", code, kind, err)
	}
	return entries, nil
}

func (s *PostgresStore) cities(code string) ([]City, error) {
	rows, err := s.db.Query(`
		SELECT id, name, region, postal_pattern, frequency
		FROM cities
		WHERE locale_code = $1
		ORDER BY id ASC
	`, code)
	if err != nil {
		return nil, fmt.Errorf("locale: failed to query %s cities: %w", code, err)
	}
	defer rows.Close()

	var cities []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.Region, &c.PostalPattern, &c.Frequency); err != nil {
			return nil, fmt.Errorf("locale: failed to scan %s city: %w", code, err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locale: error iterating %s cities: %w", code, err)
	}
	return cities, nil
}

// Ping verifies the database connection.
func (s *PostgresStore) Ping() error { return s.db.Ping() }

// Close closes the database handle.
func (s *PostgresStore) Close() error { return s.db.Close() }
