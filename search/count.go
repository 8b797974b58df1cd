// Package search contains the analyses that run over a parsed board: two
// breadth-first reachability passes and the exhaustive outcome counter for
// the alternating-turn pursuit game.
package search

import (
	"github.com/woolgather/dragonhunt/game"
	"github.com/woolgather/dragonhunt/rules"
)

const (
	sheepPhase  = 0
	dragonPhase = 1
)

// Counter counts the distinct terminal outcomes of the pursuit game: every
// way alternating play can end with each sheep either captured or escaped.
//
// The game state is mutated in place during recursion under a strict
// mutate/recurse/restore discipline, and a transposition cache keyed on the
// full (phase, dragon, sheep rows) state keeps the combinatorial search
// tractable. Counts on the validation boards exceed 10^13, far past what an
// uncached search can enumerate.
//
// A Counter is single-use single-goroutine state; the cache is owned by the
// running search and is never shared.
type Counter struct {
	b     *game.Board
	safe  []uint8
	start []uint8

	dragon game.Pos
	sheep  []uint8
	cache  map[string]uint64
}

// NewCounter prepares a counter for one board. The board's per-column
// projections are computed once here and reused across Count calls.
func NewCounter(b *game.Board) *Counter {
	return &Counter{
		b:     b,
		safe:  rules.SafeRows(b),
		start: rules.InitialRows(b),
	}
}

// CountOutcomes is shorthand for NewCounter(b).Count().
func CountOutcomes(b *game.Board) uint64 {
	return NewCounter(b).Count()
}

// Count runs the search from the initial state and returns the number of
// terminal outcomes. The sheep move first. Count is deterministic; calling
// it again resets the game state and returns the same total.
func (c *Counter) Count() uint64 {
	c.dragon = c.b.Dragon
	c.sheep = append(c.sheep[:0], c.start...)
	if c.cache == nil {
		c.cache = make(map[string]uint64)
	}
	return c.sheepTurn()
}

// CacheSize returns the number of transposition entries accumulated so far.
func (c *Counter) CacheSize() int {
	return len(c.cache)
}

// key packs the complete game state into a comparable cache key. Rows and
// columns are single bytes, so phase + dragon + one byte per column is both
// compact and cheap to hash.
func (c *Counter) key(phase byte) string {
	k := make([]byte, 0, 3+len(c.sheep))
	k = append(k, phase, c.dragon.Row, c.dragon.Col)
	k = append(k, c.sheep...)
	return string(k)
}

// sheepTurn advances every live sheep one row down, one column per branch.
//
// A sheep whose destination is the dragon's cell cannot move this turn --
// unless that cell is blocked, in which case the move is allowed. The
// asymmetry is a deliberate game rule, not an oversight; the validation
// counts depend on it.
func (c *Counter) sheepTurn() uint64 {
	key := c.key(sheepPhase)
	if cached, ok := c.cache[key]; ok {
		return cached
	}

	gone := 0
	for _, r := range c.sheep {
		if r == rules.NoRow {
			gone++
		}
	}
	if gone == len(c.sheep) {
		// One completed game. Terminal states are trivial to recompute,
		// so they skip the cache.
		return 1
	}

	var count uint64
	anyMove := false
	for col := 0; col < c.b.Width; col++ {
		r := c.sheep[col]
		if r == rules.NoRow {
			continue
		}
		r1 := r + 1
		dst := game.Pos{Row: r1, Col: uint8(col)}
		if dst == c.dragon && !c.b.IsBlocked(dst) {
			continue
		}
		// Moving into the dragon is the only move a sheep is denied, so
		// only that case withholds the double move; escapes still count
		// as having moved.
		anyMove = true
		if rules.Escaped(c.b, c.safe, r1, col) {
			// The sheep leaves play silently: no branch of its own, it
			// just stops contributing to future states.
			continue
		}
		c.sheep[col] = r1
		count += c.dragonTurn()
		c.sheep[col] = r
	}
	if !anyMove {
		// Every live sheep is pinned against the dragon: the dragon
		// moves twice in a row.
		count += c.dragonTurn()
	}

	c.cache[key] = count
	return count
}

// dragonTurn branches over the dragon's knight moves in fixed offset order.
// Landing on a live sheep captures it, but only on an unblocked cell; a
// sheep standing inside blocked terrain cannot be taken.
func (c *Counter) dragonTurn() uint64 {
	key := c.key(dragonPhase)
	if cached, ok := c.cache[key]; ok {
		return cached
	}

	from := c.dragon
	var buf [8]game.Pos
	var count uint64
	for _, dst := range c.b.AppendKnightMoves(buf[:0], from) {
		c.dragon = dst
		if !c.b.IsBlocked(dst) && c.sheep[dst.Col] == dst.Row {
			c.sheep[dst.Col] = rules.NoRow
			count += c.sheepTurn()
			c.sheep[dst.Col] = dst.Row
		} else {
			count += c.sheepTurn()
		}
	}
	c.dragon = from

	c.cache[key] = count
	return count
}
