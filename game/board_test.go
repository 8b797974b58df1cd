package game

import (
	"errors"
	"testing"
)

const sample = `..S..
.....
..#..
.....
..D..`

func TestParse(t *testing.T) {
	b, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b.Width != 5 || b.Height != 5 {
		t.Errorf("dims = %dx%d, want 5x5", b.Width, b.Height)
	}
	if b.Dragon != (Pos{Row: 4, Col: 2}) {
		t.Errorf("dragon = %v, want C5", b.Dragon)
	}
	if !b.HasSheepAt(Pos{Row: 0, Col: 2}) {
		t.Errorf("expected sheep at C1")
	}
	if b.HasSheepAt(Pos{Row: 1, Col: 2}) {
		t.Errorf("unexpected sheep at C2")
	}
	if !b.IsBlocked(Pos{Row: 2, Col: 2}) {
		t.Errorf("expected blocked cell at C3")
	}
	if b.IsBlocked(Pos{Row: 2, Col: 1}) {
		t.Errorf("unexpected blocked cell at B3")
	}
}

func TestParseTrailingNewline(t *testing.T) {
	b, err := Parse(sample + "\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b.Height != 5 {
		t.Errorf("height = %d, want 5", b.Height)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		grid string
	}{
		{"empty", ""},
		{"bad char", "..X\n.D."},
		{"ragged", "...\n.D"},
		{"no dragon", "...\nS.."},
		{"two dragons", ".D.\n.D."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.grid); !errors.Is(err, ErrSyntax) {
				t.Fatalf("Parse(%q) err = %v, want ErrSyntax", tc.grid, err)
			}
		})
	}
}

func TestKnightMovesCenter(t *testing.T) {
	b, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	moves := b.KnightMoves(Pos{Row: 2, Col: 2})
	if len(moves) != 8 {
		t.Fatalf("got %d moves from center, want 8", len(moves))
	}
	// Offset table order, (dCol,dRow): (-1,-2),(1,-2),(-2,-1),(2,-1),(-2,1),(2,1),(-1,2),(1,2).
	want := []Pos{
		{0, 1}, {0, 3},
		{1, 0}, {1, 4},
		{3, 0}, {3, 4},
		{4, 1}, {4, 3},
	}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move[%d] = %v, want %v", i, m, want[i])
		}
	}
}

func TestKnightMovesCorner(t *testing.T) {
	b, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	moves := b.KnightMoves(Pos{Row: 0, Col: 0})
	want := []Pos{{1, 2}, {2, 1}}
	if len(moves) != len(want) {
		t.Fatalf("got %v, want %v", moves, want)
	}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move[%d] = %v, want %v", i, m, want[i])
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	b, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := b.String(); got != sample {
		t.Errorf("String mismatch:\n%s\nwant:\n%s", got, sample)
	}
}

func TestPosString(t *testing.T) {
	if got := (Pos{Row: 3, Col: 1}).String(); got != "B4" {
		t.Errorf("Pos{3,1} = %q, want B4", got)
	}
	if got := (Pos{Row: 0, Col: 0}).String(); got != "A1" {
		t.Errorf("Pos{0,0} = %q, want A1", got)
	}
}
