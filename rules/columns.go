// Package rules derives the per-column facts the pursuit game plays over:
// where each column's sheep starts, and how deep a sheep must get before it
// is out of the dragon's reach for good.
package rules

import "github.com/woolgather/dragonhunt/game"

// NoRow is the sentinel for "no row": a column without a sheep in
// InitialRows, or a column whose safety threshold never triggers in
// SafeRows. It doubles as the "sheep gone" marker during search. Boards are
// capped well below 255 rows, so the sentinel can never collide with a real
// row index.
const NoRow uint8 = 99

// InitialRows returns the starting sheep row for every column: the topmost
// row containing a sheep, or NoRow for a column with none. Only the topmost
// sheep of a column takes part in the game.
func InitialRows(b *game.Board) []uint8 {
	rows := make([]uint8, b.Width)
	for c := 0; c < b.Width; c++ {
		rows[c] = NoRow
		for r := 0; r < b.Height; r++ {
			if b.HasSheepAt(game.Pos{Row: uint8(r), Col: uint8(c)}) {
				rows[c] = uint8(r)
				break
			}
		}
	}
	return rows
}

// SafeRows returns the escape threshold for every column. Scanning from the
// bottom of the column upward, the first unblocked row r yields threshold
// r+1: every cell from the threshold down is blocked, and a sheep that moves
// onto or past it can never be cornered again. A fully blocked column gets
// NoRow (the threshold never triggers).
func SafeRows(b *game.Board) []uint8 {
	rows := make([]uint8, b.Width)
	for c := 0; c < b.Width; c++ {
		rows[c] = NoRow
		for r := b.Height - 1; r >= 0; r-- {
			if !b.IsBlocked(game.Pos{Row: uint8(r), Col: uint8(c)}) {
				rows[c] = uint8(r + 1)
				break
			}
		}
	}
	return rows
}

// Escaped reports whether a sheep arriving on row in the given column has
// left the game: it either walked off the bottom edge or reached the
// column's safety threshold.
func Escaped(b *game.Board, safe []uint8, row uint8, col int) bool {
	return int(row) == b.Height || safe[col] <= row
}
