package search

import "github.com/woolgather/dragonhunt/game"

// notCaptured marks a sheep origin cell whose sheep is still drifting.
const notCaptured = -1

// DriftReach counts the sheep the dragon can intercept when the flock
// drifts: every sheep slides one row down per tick while the dragon's
// knight-move wavefront expands.
//
// A sheep is caught at a cell when the wavefront has reached that cell, the
// cell is unblocked, the cell's move parity matches the dragon's start and
// the current tick, and the drifting sheep occupies the cell at this tick or
// the next. Capture bookkeeping is indexed by the sheep's origin cell, so a
// sheep caught once never counts again further down its column.
func DriftReach(b *game.Board, maxDist int, obs Observer) int {
	visited := make([]bool, b.Width*b.Height)
	capturedAt := make([]int, b.Width*b.Height)
	for i := range capturedAt {
		capturedAt[i] = notCaptured
	}
	var capturedList []game.Pos

	// The dragon spends tick 0 making its first move, so the initial
	// wavefront is its move set rather than its start cell.
	pending := b.KnightMoves(b.Dragon)
	next := make([]game.Pos, 0, 8)
	reachable := 0
	parityBase := int(b.Dragon.Row) + int(b.Dragon.Col)

	movingSheepAt := func(pos game.Pos, tick int) (game.Pos, bool) {
		r0 := int(pos.Row) - tick
		if r0 < 0 {
			return game.Pos{}, false
		}
		origin := game.Pos{Row: uint8(r0), Col: pos.Col}
		if !b.HasSheepAt(origin) || capturedAt[origin.Index(b.Width)] != notCaptured {
			return game.Pos{}, false
		}
		return origin, true
	}

	for tick := 0; tick < maxDist; tick++ {
		for _, pos := range pending {
			i := pos.Index(b.Width)
			if visited[i] {
				continue
			}
			visited[i] = true
			for _, dst := range b.KnightMoves(pos) {
				if !visited[dst.Index(b.Width)] {
					next = append(next, dst)
				}
			}
		}

		for r := 0; r < b.Height; r++ {
			for c := 0; c < b.Width; c++ {
				if (r+c+tick+parityBase)&1 == 0 {
					continue
				}
				pos := game.Pos{Row: uint8(r), Col: uint8(c)}
				// The dragon can wait in place for one tick, so a cell
				// intercepts sheep arriving now or on the next tick.
				for t := 0; t <= 1; t++ {
					if !visited[pos.Index(b.Width)] || b.IsBlocked(pos) {
						continue
					}
					origin, ok := movingSheepAt(pos, tick+t)
					if !ok {
						continue
					}
					capturedAt[origin.Index(b.Width)] = tick
					capturedList = append(capturedList, pos)
					reachable++
				}
			}
		}

		emit(obs, tick, visited, capturedList, reachable)
		pending, next = next, pending[:0]
	}
	return reachable
}
