package store

import (
	"path/filepath"
	"testing"
)

func TestSolvedLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "solved.log")

	l, err := OpenSolvedLog(path)
	if err != nil {
		t.Fatalf("OpenSolvedLog failed: %v", err)
	}
	if l.Count() != 0 {
		t.Errorf("fresh log count = %d, want 0", l.Count())
	}

	if err := l.Add("board-a"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := l.Add("board-b"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := l.Add("board-a"); err != nil {
		t.Fatalf("duplicate Add failed: %v", err)
	}
	if !l.Has("board-a") || !l.Has("board-b") {
		t.Errorf("log missing added ids")
	}
	if l.Has("board-c") {
		t.Errorf("log claims unknown id")
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen and confirm the ids survived.
	l2, err := OpenSolvedLog(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer l2.Close()
	if l2.Count() != 2 {
		t.Errorf("reopened count = %d, want 2", l2.Count())
	}
	if !l2.Has("board-b") {
		t.Errorf("reopened log missing board-b")
	}
}

func TestSolvedLogClosed(t *testing.T) {
	l, err := OpenSolvedLog(filepath.Join(t.TempDir(), "solved.log"))
	if err != nil {
		t.Fatalf("OpenSolvedLog failed: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := l.Add("late"); err == nil {
		t.Errorf("Add after Close should fail")
	}
}
