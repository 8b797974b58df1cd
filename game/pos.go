package game

import "fmt"

// Pos is a board coordinate. Row 0 is the top of the grid, col 0 the left
// edge. Rows and columns fit in a byte; boards larger than 255 on a side are
// outside the supported input range.
type Pos struct {
	Row uint8
	Col uint8
}

// Index returns the row-major flat index of p for a board of the given width.
func (p Pos) Index(width int) int {
	return int(p.Row)*width + int(p.Col)
}

// String renders p in algebraic form: column letter followed by 1-based row,
// e.g. "C4" for row 3, col 2.
func (p Pos) String() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}
