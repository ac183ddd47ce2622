package life

import "lifegrid/pkg/core"

// Stamper writes a cell configuration onto a board at an anchor
// coordinate. pkg/pattern implements it.
type Stamper interface {
	Stamp(b *Board, at Coord)
}

// Controller owns the current generation and the paused flag, and
// applies every mutation the front ends request. It does no locking of
// its own: each front end funnels all calls through a single goroutine
// (the ebiten update loop, the terminal select loop), so operations run
// strictly sequentially.
type Controller struct {
	board      *Board
	pool       *BoardPool
	paused     bool
	generation int
	workers    int
}

// NewController builds a controller over an all-dead board of the given
// side length. The simulation starts paused.
func NewController(side, workers int) *Controller {
	if workers < 1 {
		workers = 1
	}
	return &Controller{
		board:   New(side),
		pool:    NewBoardPool(side),
		paused:  true,
		workers: workers,
	}
}

// Board returns the current generation for rendering. Callers must
// treat it as read-only; all mutation goes through the controller.
func (c *Controller) Board() *Board { return c.board }

// Paused reports whether the simulation is paused.
func (c *Controller) Paused() bool { return c.paused }

// Generation returns the number of generations advanced since the last reset.
func (c *Controller) Generation() int { return c.generation }

// Population returns the number of alive cells in the current generation.
func (c *Controller) Population() int { return c.board.Population() }

// Workers returns the parallelism used when advancing a generation.
func (c *Controller) Workers() int { return c.workers }

// SetWorkers changes the stepping parallelism. Values below 1 are floored.
func (c *Controller) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	c.workers = n
}

// ToggleCell flips a single cell. Permitted whether the simulation is
// running or paused; the board's out-of-range error passes through.
func (c *Controller) ToggleCell(coord Coord) error {
	return c.board.Toggle(coord)
}

// Tick advances one generation when running and does nothing when
// paused. The external timer calls it once per elapsed interval.
func (c *Controller) Tick() {
	if c.paused {
		return
	}
	c.advance()
}

// StepOnce advances one generation when paused and does nothing when
// running. Single-stepping is only meaningful while paused; the
// asymmetry with Tick is deliberate.
func (c *Controller) StepOnce() {
	if !c.paused {
		return
	}
	c.advance()
}

// TogglePause flips between running and paused without touching the board.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
}

// Clear kills every cell and resets the generation counter.
func (c *Controller) Clear() {
	c.board.Clear()
	c.generation = 0
}

// Randomize refills the board at the given density using a seeded RNG
// and resets the generation counter.
func (c *Controller) Randomize(seed int64, density float64) {
	c.board.Randomize(core.NewRNG(seed).Source(), density)
	c.generation = 0
}

// Stamp writes a pattern onto the current board at the anchor coordinate.
func (c *Controller) Stamp(s Stamper, at Coord) {
	s.Stamp(c.board, at)
}

func (c *Controller) advance() {
	next := c.pool.Get()
	NextInto(next, c.board, c.workers)
	c.pool.Put(c.board)
	c.board = next
	c.generation++
}
