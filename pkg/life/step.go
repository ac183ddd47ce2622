package life

import "golang.org/x/sync/errgroup"

// NextState applies the transition rule for a single cell: birth at
// exactly 3 alive neighbors, survival at exactly 2 or 3, death otherwise.
func NextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (neighbors == 2 && alive)
}

// Next returns the following generation of b on a freshly allocated
// board. Every cell reads the same input generation; the missing
// neighbors of boundary cells count as permanently dead.
func Next(b *Board) *Board {
	nb := New(b.Side())
	NextInto(nb, b, 1)
	return nb
}

// NextInto computes the following generation of src into dst. With
// workers > 1 the rows are split into bands stepped concurrently; the
// result is identical to the serial pass since every band reads only
// src. The two boards must share a dimension.
func NextInto(dst, src *Board, workers int) {
	if dst.dim != src.dim {
		panic("life: NextInto boards differ in dimension")
	}
	dim := src.dim
	if workers <= 1 {
		stepRows(dst, src, 0, dim)
		return
	}
	var (
		eg   errgroup.Group
		band = (dim + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		start := i * band
		if start >= dim {
			break
		}
		end := min(start+band, dim)
		eg.Go(func() error {
			stepRows(dst, src, start, end)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = eg.Wait()
}

func stepRows(dst, src *Board, startRow, endRow int) {
	dim := src.dim
	for row := startRow; row < endRow; row++ {
		for col := 0; col < dim; col++ {
			idx := row*dim + col
			n := src.countNeighbors(col, row)
			if NextState(src.cells[idx] == 1, n) {
				dst.cells[idx] = 1
			} else {
				dst.cells[idx] = 0
			}
		}
	}
}

// countNeighbors counts alive Moore neighbors with the loop clamped to
// the board, so off-grid neighbors contribute nothing.
func (b *Board) countNeighbors(col, row int) int {
	var (
		minCol = max(0, col-1)
		maxCol = min(b.dim-1, col+1)
		minRow = max(0, row-1)
		maxRow = min(b.dim-1, row+1)
		count  = 0
	)
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if c == col && r == row {
				continue
			}
			count += int(b.cells[r*b.dim+c])
		}
	}
	return count
}
