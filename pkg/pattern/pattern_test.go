package pattern

import (
	"testing"

	"lifegrid/pkg/life"
)

func TestRegistryLookup(t *testing.T) {
	for _, name := range []string{"block", "blinker", "toad", "beacon", "glider", "r-pentomino"} {
		p, ok := Get(name)
		if !ok {
			t.Fatalf("pattern %q must be registered", name)
		}
		if len(p.Cells) == 0 {
			t.Fatalf("pattern %q has no cells", name)
		}
	}
	if _, ok := Get("no-such-thing"); ok {
		t.Fatal("unknown names must not resolve")
	}

	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names must be sorted, got %v", names)
		}
	}
}

func TestGliderStamp(t *testing.T) {
	b := life.New(6)
	p, _ := Get("glider")
	p.Stamp(b, life.Coord{Col: 2, Row: 2})

	want := []life.Coord{{Col: 3, Row: 2}, {Col: 4, Row: 3}, {Col: 2, Row: 4}, {Col: 3, Row: 4}, {Col: 4, Row: 4}}
	if b.Population() != len(want) {
		t.Fatalf("glider stamp set %d cells, expected %d", b.Population(), len(want))
	}
	for _, c := range want {
		if !b.Alive(c) {
			t.Fatalf("glider stamp missing cell (%d,%d)", c.Col, c.Row)
		}
	}
}

func TestStampClipsAtEdge(t *testing.T) {
	b := life.New(3)
	p, _ := Get("beacon")
	p.Stamp(b, life.Coord{Col: 2, Row: 2})

	// Only the top-left quarter of the beacon fits on a 4x4 board
	// anchored at (2,2); the rest falls off without complaint.
	for _, c := range []life.Coord{{Col: 2, Row: 2}, {Col: 3, Row: 2}, {Col: 2, Row: 3}, {Col: 3, Row: 3}} {
		if !b.Alive(c) {
			t.Fatalf("clipped stamp missing in-bounds cell (%d,%d)", c.Col, c.Row)
		}
	}
	if b.Population() != 4 {
		t.Fatalf("clipped stamp set %d cells, expected 4", b.Population())
	}
}

func TestStampedGliderEvolves(t *testing.T) {
	b := life.New(6)
	p, _ := Get("glider")
	p.Stamp(b, life.Coord{})

	next := life.Next(b)
	want := map[life.Coord]bool{
		{Col: 0, Row: 1}: true,
		{Col: 2, Row: 1}: true,
		{Col: 1, Row: 2}: true,
		{Col: 2, Row: 2}: true,
		{Col: 1, Row: 3}: true,
	}
	for _, c := range next.AliveCells() {
		if !want[c] {
			t.Fatalf("unexpected alive cell (%d,%d) after one step", c.Col, c.Row)
		}
	}
	if next.Population() != len(want) {
		t.Fatalf("glider second phase has %d cells, expected %d", next.Population(), len(want))
	}
}
