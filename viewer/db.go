package main

import (
	"database/sql"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DBCache maintains a cached DuckDB connection over the run parquet files,
// refreshed periodically so new batches show up without a restart.
type DBCache struct {
	roots       []string
	refreshRate time.Duration

	mu          sync.RWMutex
	db          *sql.DB
	lastRefresh time.Time
}

// NewDBCache creates a DBCache over the given data roots.
func NewDBCache(roots []string, refreshRate time.Duration) *DBCache {
	return &DBCache{
		roots:       roots,
		refreshRate: refreshRate,
	}
}

// Get returns the cached DB connection, refreshing if it is stale.
func (c *DBCache) Get() (*sql.DB, error) {
	c.mu.RLock()
	if c.db != nil && time.Since(c.lastRefresh) < c.refreshRate {
		db := c.db
		c.mu.RUnlock()
		return db, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the write lock.
	if c.db != nil && time.Since(c.lastRefresh) < c.refreshRate {
		return c.db, nil
	}
	return c.refreshLocked()
}

func (c *DBCache) refreshLocked() (*sql.DB, error) {
	start := time.Now()

	newDB, err := openDuckDBWithGlobs(c.roots)
	if err != nil {
		return nil, err
	}
	if c.db != nil {
		_ = c.db.Close()
	}
	c.db = newDB
	c.lastRefresh = time.Now()

	log.Printf("DBCache refreshed in %v", time.Since(start))
	return c.db, nil
}

// Close closes the cached connection.
func (c *DBCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		err := c.db.Close()
		c.db = nil
		return err
	}
	return nil
}

// openDuckDBWithGlobs opens an in-memory DuckDB with a `runs` view over the
// parquet globs under the roots. Glob patterns let DuckDB pick up new batch
// files without re-enumerating the directories here.
func openDuckDBWithGlobs(roots []string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, err
	}
	_, _ = db.Exec("PRAGMA threads=4")

	globs := make([]string, 0, len(roots))
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		glob := filepath.Join(root, "*.parquet")
		globs = append(globs, "'"+escapeSQLString(glob)+"'")
	}

	if len(globs) == 0 {
		if err := createEmptyRunsView(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}

	// union_by_name tolerates schema drift between old and new batches; the
	// in-flight files live under tmp/ and never match the glob.
	query := `CREATE OR REPLACE VIEW runs AS
		SELECT * FROM read_parquet([` + strings.Join(globs, ", ") + `], union_by_name=true)`
	if _, err := db.Exec(query); err != nil {
		// Most likely there are no parquet files yet.
		if err2 := createEmptyRunsView(db); err2 != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

func createEmptyRunsView(db *sql.DB) error {
	_, err := db.Exec(`CREATE OR REPLACE VIEW runs AS
		SELECT * FROM (
			SELECT
				NULL::VARCHAR AS run_id,
				NULL::VARCHAR AS board_id,
				NULL::VARCHAR AS source,
				NULL::INTEGER AS width,
				NULL::INTEGER AS height,
				NULL::INTEGER AS sheep,
				NULL::INTEGER AS blocked,
				NULL::INTEGER AS static_reach,
				NULL::INTEGER AS drift_reach,
				NULL::UBIGINT AS outcomes,
				NULL::INTEGER AS static_dist,
				NULL::INTEGER AS drift_dist,
				NULL::BIGINT AS solve_ns,
				NULL::BIGINT AS cache_entries,
				NULL::VARCHAR AS grid,
				NULL::BIGINT AS created_ns
		) WHERE 1=0`)
	return err
}

func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
