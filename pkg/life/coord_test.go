package life

import "testing"

func TestNeighborsDistinctAndCentered(t *testing.T) {
	for _, c := range []Coord{{0, 0}, {5, 3}, {-2, 7}} {
		seen := map[Coord]bool{}
		for _, n := range c.Neighbors() {
			if n == c {
				t.Fatalf("neighbors of %v include the cell itself", c)
			}
			if seen[n] {
				t.Fatalf("neighbors of %v contain duplicate %v", c, n)
			}
			seen[n] = true
			dc := n.Col - c.Col
			dr := n.Row - c.Row
			if dc < -1 || dc > 1 || dr < -1 || dr > 1 {
				t.Fatalf("%v is not adjacent to %v", n, c)
			}
		}
		if len(seen) != 8 {
			t.Fatalf("neighbors of %v has %d distinct cells, expected 8", c, len(seen))
		}
	}
}
