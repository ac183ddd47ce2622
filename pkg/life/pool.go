package life

import "sync"

// BoardPool recycles boards of a single side length so that advancing a
// generation does not allocate.
type BoardPool struct {
	side int
	pool sync.Pool
}

// NewBoardPool constructs a pool producing boards of the given side length.
func NewBoardPool(side int) *BoardPool {
	if side < 0 {
		side = 0
	}
	p := &BoardPool{side: side}
	p.pool.New = func() any { return New(p.side) }
	return p
}

// Get retrieves a cleared board from the pool.
func (p *BoardPool) Get() *Board {
	return p.pool.Get().(*Board)
}

// Put returns a board to the pool. Boards of the wrong side length are
// dropped rather than recycled.
func (p *BoardPool) Put(b *Board) {
	if b == nil || b.Side() != p.side {
		return
	}
	b.Clear()
	p.pool.Put(b)
}
