// Package index tracks fetched boards in a small SQLite database: where a
// board came from, where its grid text lives on disk, and whether it has
// been solved yet. The fetcher dedupes against it and the solver works
// through its backlog.
package index

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite connection with thread-safe operations.
type DB struct {
	conn *sql.DB
	mu   sync.Mutex
}

// Board is one fetched board record.
type Board struct {
	ID        string
	SourceURL string
	GridPath  string
	FetchedAt time.Time
	IsSolved  bool
}

// New opens (or creates) the index database at dbPath.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,          -- content hash of the grid text
		source_url TEXT,              -- page the grid was scraped from
		grid_path TEXT,               -- on-disk grid file
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		is_solved BOOLEAN DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_boards_is_solved ON boards(is_solved);
	`

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.conn.Close()
}

// BoardExists reports whether a board id is already indexed.
func (db *DB) BoardExists(id string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var exists int
	err := db.conn.QueryRow("SELECT 1 FROM boards WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertBoard records a fetched board. Re-inserting a known id is a no-op.
func (db *DB) InsertBoard(b Board) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO boards (id, source_url, grid_path) VALUES (?, ?, ?)",
		b.ID, b.SourceURL, b.GridPath,
	)
	if err != nil {
		return fmt.Errorf("failed to insert board: %w", err)
	}
	return nil
}

// MarkSolved flags a board as solved.
func (db *DB) MarkSolved(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.Exec("UPDATE boards SET is_solved = 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to mark solved: %w", err)
	}
	return nil
}

// UnsolvedBoards returns up to limit boards that have not been solved yet.
func (db *DB) UnsolvedBoards(limit int) ([]Board, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(
		"SELECT id, source_url, grid_path, fetched_at, is_solved FROM boards WHERE is_solved = 0 LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Board
	for rows.Next() {
		var b Board
		if err := rows.Scan(&b.ID, &b.SourceURL, &b.GridPath, &b.FetchedAt, &b.IsSolved); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// KnownIDs returns the set of indexed board ids.
func (db *DB) KnownIDs() (map[string]bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query("SELECT id FROM boards")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}
