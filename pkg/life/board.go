package life

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"lifegrid/pkg/core"
)

// Board stores one generation as byte-sized cell values in row-major
// order (0 dead, 1 alive). A board built from side length s covers every
// coordinate with column and row in [0, s] inclusive, so its dimension
// is s+1 cells per axis.
type Board struct {
	dim   int
	cells []uint8
}

// New allocates an all-dead board for the given side length. Negative
// side lengths are floored to zero, which yields a single-cell board.
func New(side int) *Board {
	if side < 0 {
		side = 0
	}
	dim := side + 1
	return &Board{dim: dim, cells: make([]uint8, dim*dim)}
}

// Side returns the side length the board was built from.
func (b *Board) Side() int { return b.dim - 1 }

// Dim returns the number of cells per axis (side length + 1).
func (b *Board) Dim() int { return b.dim }

// Cells exposes the backing slice so renderers can read values directly.
func (b *Board) Cells() []uint8 { return b.cells }

func (b *Board) index(c Coord) int { return c.Row*b.dim + c.Col }

func (b *Board) contains(c Coord) bool {
	return c.Col >= 0 && c.Col < b.dim && c.Row >= 0 && c.Row < b.dim
}

// Alive reports whether the cell at c is alive. Any coordinate outside
// the board reads as dead, never as an error; boundary neighbor lookups
// rely on this.
func (b *Board) Alive(c Coord) bool {
	if !b.contains(c) {
		return false
	}
	return b.cells[b.index(c)] == 1
}

// Toggle flips the cell at c. Correct callers only toggle rendered,
// in-bounds cells, so an out-of-range coordinate is a coordinate-mapping
// bug in the front end and is reported rather than ignored.
func (b *Board) Toggle(c Coord) error {
	if !b.contains(c) {
		return errors.Errorf("toggle (%d,%d): outside board side %d", c.Col, c.Row, b.dim-1)
	}
	b.cells[b.index(c)] ^= 1
	return nil
}

// Set writes the cell at c. Out-of-range coordinates are ignored, which
// lets patterns stamped near an edge clip silently.
func (b *Board) Set(c Coord, alive bool) {
	if !b.contains(c) {
		return
	}
	v := uint8(0)
	if alive {
		v = 1
	}
	b.cells[b.index(c)] = v
}

// Population returns the number of alive cells.
func (b *Board) Population() int {
	total := 0
	for _, v := range b.cells {
		total += int(v)
	}
	return total
}

// AliveCells returns the coordinates of every alive cell in row-major order.
func (b *Board) AliveCells() []Coord {
	var alive []Coord
	for i, v := range b.cells {
		if v != 0 {
			alive = append(alive, Coord{Col: i % b.dim, Row: i / b.dim})
		}
	}
	return alive
}

// Equal reports whether two boards have the same dimension and cell values.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.dim != o.dim {
		return false
	}
	for i, v := range b.cells {
		if v != o.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{dim: b.dim, cells: make([]uint8, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// Randomize fills the board with alive cells at the given density.
func (b *Board) Randomize(rng *rand.Rand, density float64) {
	core.FillDensity(rng, b.cells, density)
}
