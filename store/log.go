package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SolvedLog tracks which board ids have already been solved and written.
// It is backed by an append-only file with one board id per line, loaded
// into memory on open for fast dedupe and fsynced on every append.
//
// Not a general-purpose WAL: a partial trailing line from a crash is simply
// ignored on the next open.
type SolvedLog struct {
	mu     sync.RWMutex
	path   string
	file   *os.File
	solved map[string]struct{}
}

// OpenSolvedLog loads any existing log at path and opens it for appending,
// creating parent directories as needed.
func OpenSolvedLog(path string) (*SolvedLog, error) {
	if path == "" {
		return nil, fmt.Errorf("log path is required")
	}

	solved := make(map[string]struct{})
	if f, err := os.Open(path); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			id := strings.TrimSpace(scanner.Text())
			if id != "" {
				solved[id] = struct{}{}
			}
		}
		_ = f.Close()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &SolvedLog{path: path, file: file, solved: solved}, nil
}

func (l *SolvedLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Has reports whether boardID was already solved.
func (l *SolvedLog) Has(boardID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.solved[boardID]
	return ok
}

// Count returns the number of known solved boards.
func (l *SolvedLog) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.solved)
}

// Add appends boardID to the log and syncs. Ids already present are a
// no-op.
func (l *SolvedLog) Add(boardID string) error {
	if boardID == "" {
		return fmt.Errorf("boardID is empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.solved[boardID]; ok {
		return nil
	}
	if l.file == nil {
		return fmt.Errorf("log file is closed")
	}

	if _, err := l.file.WriteString(boardID + "\n"); err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("sync log: %w", err)
	}

	l.solved[boardID] = struct{}{}
	return nil
}
