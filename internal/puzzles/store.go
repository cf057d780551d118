// Package puzzles provides the SQLite-backed catalog of generated
// puzzles served by the API.
package puzzles

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gfroidcourt/sudoku/internal/core"
)

// ErrNotFound is returned when no puzzle exists under the requested id.
var ErrNotFound = errors.New("puzzle not found")

// Store handles SQLite database operations for the puzzle catalog.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema
// exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		size INTEGER NOT NULL,
		rows TEXT NOT NULL,
		unique_solution INTEGER NOT NULL DEFAULT 0,
		seed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_size ON puzzles(size);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a puzzle record.
func (s *Store) Save(p core.Puzzle) error {
	_, err := s.db.Exec(
		`INSERT INTO puzzles (id, size, rows, unique_solution, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Size, strings.Join(p.Rows, "\n"), boolToInt(p.Unique), p.Seed,
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save puzzle %s: %w", p.ID, err)
	}
	return nil
}

// Get returns the puzzle stored under id, or ErrNotFound.
func (s *Store) Get(id string) (*core.Puzzle, error) {
	row := s.db.QueryRow(
		`SELECT id, size, rows, unique_solution, seed, created_at
		 FROM puzzles WHERE id = ?`, id,
	)

	var p core.Puzzle
	var rows string
	var uniq int
	var createdAt string
	if err := row.Scan(&p.ID, &p.Size, &rows, &uniq, &p.Seed, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get puzzle %s: %w", id, err)
	}

	p.Rows = strings.Split(rows, "\n")
	p.Unique = uniq != 0
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}
	return &p, nil
}

// Count returns the number of stored puzzles.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM puzzles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count puzzles: %w", err)
	}
	return count, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
