// Package game defines the board model for the dragon-and-sheep pursuit game.
//
// A board is parsed once from a character grid and is immutable afterwards.
// It exposes occupancy queries and the knight-style move generator that both
// the reachability passes and the outcome counter share.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is returned by Parse for any malformed grid.
var ErrSyntax = errors.New("board syntax error")

// knightOffsets holds the eight (dCol, dRow) moves in their fixed enumeration
// order. The order is load-bearing: it fixes branch order in the outcome
// search, which must stay reproducible across runs.
var knightOffsets = [8][2]int8{
	{-1, -2}, {1, -2},
	{-2, -1}, {2, -1},
	{-2, 1}, {2, 1},
	{-1, 2}, {1, 2},
}

// Board is the immutable playing field: dimensions, the dragon's starting
// position, and per-cell sheep/blocked occupancy.
type Board struct {
	Width  int
	Height int
	Dragon Pos

	sheep   []bool
	blocked []bool
}

// Parse builds a Board from a character grid.
//
// Grid alphabet: '.' empty, 'D' dragon (exactly one), 'S' sheep, '#' blocked.
// All rows must have the same length. Any other character, a ragged grid,
// an empty grid, a missing dragon, or a second dragon is a syntax error.
func Parse(s string) (*Board, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: empty grid", ErrSyntax)
	}
	width := len(lines[0])
	height := len(lines)
	if width > 255 || height > 255 {
		return nil, fmt.Errorf("%w: grid exceeds 255x255", ErrSyntax)
	}

	b := &Board{
		Width:   width,
		Height:  height,
		sheep:   make([]bool, width*height),
		blocked: make([]bool, width*height),
	}

	foundDragon := false
	for r, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: ragged row %d", ErrSyntax, r)
		}
		for c := 0; c < width; c++ {
			pos := Pos{Row: uint8(r), Col: uint8(c)}
			switch line[c] {
			case '.':
			case 'D':
				if foundDragon {
					return nil, fmt.Errorf("%w: more than one dragon", ErrSyntax)
				}
				b.Dragon = pos
				foundDragon = true
			case 'S':
				b.sheep[pos.Index(width)] = true
			case '#':
				b.blocked[pos.Index(width)] = true
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrSyntax, line[c], r, c)
			}
		}
	}
	if !foundDragon {
		return nil, fmt.Errorf("%w: no dragon", ErrSyntax)
	}
	return b, nil
}

// HasSheepAt reports whether a sheep starts at pos. Callers must pass an
// in-bounds position.
func (b *Board) HasSheepAt(pos Pos) bool {
	return b.sheep[pos.Index(b.Width)]
}

// IsBlocked reports whether pos is a blocked cell. Callers must pass an
// in-bounds position.
func (b *Board) IsBlocked(pos Pos) bool {
	return b.blocked[pos.Index(b.Width)]
}

// InBounds reports whether pos lies inside the board.
func (b *Board) InBounds(pos Pos) bool {
	return int(pos.Row) < b.Height && int(pos.Col) < b.Width
}

// AppendKnightMoves appends the in-bounds knight moves from pos to dst, in
// the fixed offset order, and returns the extended slice. At most eight
// positions are appended.
func (b *Board) AppendKnightMoves(dst []Pos, pos Pos) []Pos {
	for _, m := range knightOffsets {
		c := int(pos.Col) + int(m[0])
		if c < 0 || c >= b.Width {
			continue
		}
		r := int(pos.Row) + int(m[1])
		if r < 0 || r >= b.Height {
			continue
		}
		dst = append(dst, Pos{Row: uint8(r), Col: uint8(c)})
	}
	return dst
}

// KnightMoves returns the in-bounds knight moves from pos in fixed order.
func (b *Board) KnightMoves(pos Pos) []Pos {
	return b.AppendKnightMoves(make([]Pos, 0, 8), pos)
}
