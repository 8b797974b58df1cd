package rules

import (
	"testing"

	"github.com/woolgather/dragonhunt/game"
)

func mustParse(t *testing.T, grid string) *game.Board {
	t.Helper()
	b, err := game.Parse(grid)
	if err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, grid)
	}
	return b
}

func TestInitialRows(t *testing.T) {
	b := mustParse(t, ""+
		"S..S\n"+
		"S.S.\n"+
		"....\n"+
		"D...")
	got := InitialRows(b)
	want := []uint8{0, NoRow, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for c := range want {
		if got[c] != want[c] {
			t.Errorf("col %d: initial row = %d, want %d", c, got[c], want[c])
		}
	}
}

func TestSafeRows(t *testing.T) {
	// Column 0: clear to the bottom, threshold = height (off the board).
	// Column 1: blocked suffix of two rows, threshold = 2.
	// Column 2: blocked only at the top, bottom clear, threshold = height.
	// Column 3: fully blocked, threshold never triggers.
	b := mustParse(t, ""+
		"S.##\n"+
		"...#\n"+
		".#.#\n"+
		"D#.#")
	got := SafeRows(b)
	want := []uint8{4, 2, 4, NoRow}
	for c := range want {
		if got[c] != want[c] {
			t.Errorf("col %d: safe row = %d, want %d", c, got[c], want[c])
		}
	}
}

func TestEscaped(t *testing.T) {
	b := mustParse(t, ""+
		"S..\n"+
		"...\n"+
		".#.\n"+
		"D#.")
	safe := SafeRows(b)

	// Column 1's blocked suffix starts at row 2.
	if !Escaped(b, safe, 2, 1) {
		t.Errorf("expected escape at threshold row")
	}
	if !Escaped(b, safe, 3, 1) {
		t.Errorf("expected escape past threshold row")
	}
	if Escaped(b, safe, 1, 1) {
		t.Errorf("unexpected escape above threshold")
	}

	// Clear columns only escape off the bottom edge.
	if Escaped(b, safe, 3, 2) {
		t.Errorf("unexpected escape on last in-bounds row of clear column")
	}
	if !Escaped(b, safe, 4, 2) {
		t.Errorf("expected escape off the bottom edge")
	}
}
