package history

import (
	"database/sql"
	_ "embed"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Entry represents a single executed search
type Entry struct {
	ID          int
	Query       string
	FilterCount int
	ResultCount int
	ExecutedAt  time.Time
}

// Store manages search history persistence
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the history database at path
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Add records an executed search
func (s *Store) Add(entry Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO search_history (query, filter_count, result_count)
		VALUES (?, ?, ?)`,
		entry.Query,
		entry.FilterCount,
		entry.ResultCount,
	)
	return err
}

// GetRecent retrieves the most recent history entries
func (s *Store) GetRecent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, query, filter_count, result_count, executed_at
		FROM search_history
		ORDER BY executed_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

// Search searches history by query text
func (s *Store) Search(text string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, query, filter_count, result_count, executed_at
		FROM search_history
		WHERE query LIKE ?
		ORDER BY executed_at DESC, id DESC
		LIMIT ?`, "%"+text+"%", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

// Prune deletes everything beyond the newest max entries
func (s *Store) Prune(max int) error {
	_, err := s.db.Exec(`
		DELETE FROM search_history
		WHERE id NOT IN (
			SELECT id FROM search_history
			ORDER BY executed_at DESC, id DESC
			LIMIT ?
		)`, max)
	return err
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var executedAt string

		if err := rows.Scan(&e.ID, &e.Query, &e.FilterCount, &e.ResultCount, &executedAt); err != nil {
			return nil, err
		}
		e.ExecutedAt, _ = time.Parse("2006-01-02 15:04:05", executedAt)

		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
