package index

import (
	"path/filepath"
	"testing"
)

func open(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertAndExists(t *testing.T) {
	db := open(t)

	exists, err := db.BoardExists("abc")
	if err != nil {
		t.Fatalf("BoardExists failed: %v", err)
	}
	if exists {
		t.Errorf("unexpected board in fresh index")
	}

	b := Board{ID: "abc", SourceURL: "https://example.com/p/1", GridPath: "boards/abc.txt"}
	if err := db.InsertBoard(b); err != nil {
		t.Fatalf("InsertBoard failed: %v", err)
	}
	if err := db.InsertBoard(b); err != nil {
		t.Fatalf("duplicate InsertBoard failed: %v", err)
	}

	exists, err = db.BoardExists("abc")
	if err != nil {
		t.Fatalf("BoardExists failed: %v", err)
	}
	if !exists {
		t.Errorf("inserted board not found")
	}

	ids, err := db.KnownIDs()
	if err != nil {
		t.Fatalf("KnownIDs failed: %v", err)
	}
	if len(ids) != 1 || !ids["abc"] {
		t.Errorf("KnownIDs = %v, want {abc}", ids)
	}
}

func TestSolvedBacklog(t *testing.T) {
	db := open(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := db.InsertBoard(Board{ID: id, GridPath: "boards/" + id + ".txt"}); err != nil {
			t.Fatalf("InsertBoard failed: %v", err)
		}
	}
	if err := db.MarkSolved("b"); err != nil {
		t.Fatalf("MarkSolved failed: %v", err)
	}

	unsolved, err := db.UnsolvedBoards(10)
	if err != nil {
		t.Fatalf("UnsolvedBoards failed: %v", err)
	}
	if len(unsolved) != 2 {
		t.Fatalf("unsolved = %d boards, want 2", len(unsolved))
	}
	for _, b := range unsolved {
		if b.ID == "b" {
			t.Errorf("solved board still in backlog")
		}
		if b.IsSolved {
			t.Errorf("backlog board flagged solved: %s", b.ID)
		}
	}
}
