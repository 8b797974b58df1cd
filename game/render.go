package game

import "strings"

// String renders the board as a grid: 'D' dragon start, 'S' sheep, '#'
// blocked, '.' empty. A sheep placed on a blocked cell renders as '#'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for r := 0; r < b.Height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Width; c++ {
			pos := Pos{Row: uint8(r), Col: uint8(c)}
			switch {
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
