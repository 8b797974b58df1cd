package search

import "github.com/woolgather/dragonhunt/game"

// Frame is a snapshot of one search wave, emitted through an Observer. The
// original solver printed the board between waves; frames serve the same
// purpose for the playback TUI and the live viewer stream.
type Frame struct {
	Wave      int        `json:"wave"`
	Visited   []bool     `json:"visited"`
	Captured  []game.Pos `json:"captured"`
	Reachable int        `json:"reachable"`
}

// Observer receives a Frame after every wave. The Visited and Captured
// slices are copies; the observer may retain them.
type Observer func(Frame)

// StaticReach counts the sheep cells a non-moving flock exposes to the
// dragon: a breadth-first expansion in knight-move waves from the dragon's
// start, counting each sheep cell the first time its wave touches it. Wave 0
// is the start cell itself, so maxDist extra waves are explored.
func StaticReach(b *game.Board, maxDist int, obs Observer) int {
	visited := make([]bool, b.Width*b.Height)
	captured := make([]bool, b.Width*b.Height)
	var capturedList []game.Pos

	pending := []game.Pos{b.Dragon}
	next := make([]game.Pos, 0, 8)
	reachable := 0

	for wave := 0; wave <= maxDist; wave++ {
		for _, pos := range pending {
			i := pos.Index(b.Width)
			if visited[i] {
				continue
			}
			visited[i] = true

			if b.HasSheepAt(pos) && !captured[i] {
				captured[i] = true
				capturedList = append(capturedList, pos)
				reachable++
			}

			for _, dst := range b.KnightMoves(pos) {
				if !visited[dst.Index(b.Width)] {
					next = append(next, dst)
				}
			}
		}
		emit(obs, wave, visited, capturedList, reachable)
		pending, next = next, pending[:0]
	}
	return reachable
}

func emit(obs Observer, wave int, visited []bool, captured []game.Pos, reachable int) {
	if obs == nil {
		return
	}
	f := Frame{
		Wave:      wave,
		Visited:   make([]bool, len(visited)),
		Captured:  make([]game.Pos, len(captured)),
		Reachable: reachable,
	}
	copy(f.Visited, visited)
	copy(f.Captured, captured)
	obs(f)
}
