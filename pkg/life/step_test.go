package life

import (
	"testing"

	"lifegrid/pkg/core"
)

func TestNextStateRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := NextState(true, n); got != wantAlive {
			t.Fatalf("alive cell with %d neighbors: got %v, expected %v", n, got, wantAlive)
		}
		wantDead := n == 3
		if got := NextState(false, n); got != wantDead {
			t.Fatalf("dead cell with %d neighbors: got %v, expected %v", n, got, wantDead)
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	b := New(5)
	for _, c := range []Coord{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		b.Set(c, true)
	}
	if !Next(b).Equal(b) {
		t.Fatal("a 2x2 block must survive a step unchanged")
	}
}

func TestGliderSecondPhase(t *testing.T) {
	b := New(5)
	for _, c := range []Coord{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		b.Set(c, true)
	}

	next := Next(b)

	want := map[Coord]bool{
		{0, 1}: true,
		{2, 1}: true,
		{1, 2}: true,
		{2, 2}: true,
		{1, 3}: true,
	}
	for row := 0; row < next.Dim(); row++ {
		for col := 0; col < next.Dim(); col++ {
			c := Coord{Col: col, Row: row}
			if next.Alive(c) != want[c] {
				t.Fatalf("glider cell (%d,%d) alive=%v, expected %v", col, row, next.Alive(c), want[c])
			}
		}
	}
}

func TestBlinkerAgainstEdge(t *testing.T) {
	// Vertical blinker hugging the left edge: the rule is the same at
	// the boundary, with the off-grid column permanently dead.
	b := New(4)
	for _, c := range []Coord{{0, 1}, {0, 2}, {0, 3}} {
		b.Set(c, true)
	}

	next := Next(b)

	want := map[Coord]bool{
		{0, 2}: true,
		{1, 2}: true,
	}
	for row := 0; row < next.Dim(); row++ {
		for col := 0; col < next.Dim(); col++ {
			c := Coord{Col: col, Row: row}
			if next.Alive(c) != want[c] {
				t.Fatalf("edge blinker cell (%d,%d) alive=%v, expected %v", col, row, next.Alive(c), want[c])
			}
		}
	}
}

func TestFullTinyBoardIsStillLife(t *testing.T) {
	// Side 1 gives a 2x2 board. Fully alive it is the block still life;
	// toroidal counting would see 8 neighbors everywhere and kill it.
	b := New(1)
	for i := range b.Cells() {
		b.Cells()[i] = 1
	}
	if !Next(b).Equal(b) {
		t.Fatal("a fully alive 2x2 board must be stable without wraparound")
	}
}

func TestStepReadsSingleSnapshot(t *testing.T) {
	// A horizontal blinker flips to vertical only if every cell reads
	// the input generation; in-place sequential updates would diverge.
	b := New(4)
	for _, c := range []Coord{{1, 2}, {2, 2}, {3, 2}} {
		b.Set(c, true)
	}

	next := Next(b)

	want := map[Coord]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for row := 0; row < next.Dim(); row++ {
		for col := 0; col < next.Dim(); col++ {
			c := Coord{Col: col, Row: row}
			if next.Alive(c) != want[c] {
				t.Fatalf("blinker cell (%d,%d) alive=%v, expected %v", col, row, next.Alive(c), want[c])
			}
		}
	}
	if Next(next).Equal(next) {
		t.Fatal("blinker must oscillate, not stabilize")
	}
	if !Next(next).Equal(b) {
		t.Fatal("blinker must return to its first phase after two steps")
	}
}

func TestParallelStepMatchesSerial(t *testing.T) {
	src := New(63)
	src.Randomize(core.NewRNG(7).Source(), 0.35)

	serial := Next(src)
	for _, workers := range []int{2, 4} {
		parallel := New(63)
		NextInto(parallel, src, workers)
		if !parallel.Equal(serial) {
			t.Fatalf("NextInto with %d workers diverged from the serial step", workers)
		}
	}
}

func TestBoardPoolRecyclesCleanBoards(t *testing.T) {
	pool := NewBoardPool(10)
	b := pool.Get()
	if b.Side() != 10 {
		t.Fatalf("pool produced side %d, expected 10", b.Side())
	}
	b.Set(Coord{Col: 5, Row: 5}, true)
	pool.Put(b)

	again := pool.Get()
	if again.Population() != 0 {
		t.Fatal("pooled boards must come back cleared")
	}

	pool.Put(New(3)) // wrong side length: dropped, not recycled
	if pool.Get().Side() != 10 {
		t.Fatal("pool must never hand out a board of the wrong side length")
	}
}

func BenchmarkNext(b *testing.B) {
	cases := []struct {
		name    string
		workers int
	}{
		{"serial", 1},
		{"workers2", 2},
		{"workers4", 4},
	}
	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			src := New(255)
			src.Randomize(core.NewRNG(1).Source(), 0.3)
			dst := New(255)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				NextInto(dst, src, bc.workers)
				src, dst = dst, src
			}
		})
	}
}
