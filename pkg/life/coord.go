package life

// Coord identifies a single cell by column and row. It is a comparable
// value type and is safe to use as a map key.
type Coord struct {
	Col int
	Row int
}

// Neighbors returns the Moore neighborhood of c: the 8 coordinates at
// Chebyshev distance 1, in row-major order. No bounds checking happens
// here; out-of-grid coordinates read as dead on the board.
func (c Coord) Neighbors() [8]Coord {
	return [8]Coord{
		{c.Col - 1, c.Row - 1}, {c.Col, c.Row - 1}, {c.Col + 1, c.Row - 1},
		{c.Col - 1, c.Row}, {c.Col + 1, c.Row},
		{c.Col - 1, c.Row + 1}, {c.Col, c.Row + 1}, {c.Col + 1, c.Row + 1},
	}
}
