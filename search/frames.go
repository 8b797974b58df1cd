package search

import (
	"strings"

	"github.com/woolgather/dragonhunt/game"
)

// RenderFrame draws a frame as two side-by-side panels: the wavefront cells
// visited so far, and the board with captured cells struck out. Intended for
// the playback TUI and debug logs.
func RenderFrame(b *game.Board, f Frame) string {
	captured := make(map[game.Pos]bool, len(f.Captured))
	for _, pos := range f.Captured {
		captured[pos] = true
	}

	var sb strings.Builder
	for r := 0; r < b.Height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Width; c++ {
			pos := game.Pos{Row: uint8(r), Col: uint8(c)}
			if len(f.Visited) > pos.Index(b.Width) && f.Visited[pos.Index(b.Width)] {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("  ")
		for c := 0; c < b.Width; c++ {
			pos := game.Pos{Row: uint8(r), Col: uint8(c)}
			switch {
			case captured[pos]:
				sb.WriteByte('x')
			case pos == b.Dragon:
				sb.WriteByte('D')
			case b.IsBlocked(pos):
				sb.WriteByte('#')
			case b.HasSheepAt(pos):
				sb.WriteByte('S')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
