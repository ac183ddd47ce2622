// Package pattern ships named seed configurations and a registry to
// look them up by name.
package pattern

import (
	"sort"

	"lifegrid/pkg/life"
)

// Pattern is a named set of cell offsets relative to an anchor.
type Pattern struct {
	Name  string
	Cells []life.Coord
}

// Stamp writes the pattern onto the board with its origin at the anchor
// coordinate. Cells falling outside the board clip silently.
func (p Pattern) Stamp(b *life.Board, at life.Coord) {
	for _, c := range p.Cells {
		b.Set(life.Coord{Col: at.Col + c.Col, Row: at.Row + c.Row}, true)
	}
}

var patterns = map[string]Pattern{}

// Register adds a pattern to the registry under its own name.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	patterns[p.Name] = p
}

// Get returns the named pattern.
func Get(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Pattern{Name: "block", Cells: []life.Coord{
		{Col: 0, Row: 0}, {Col: 1, Row: 0},
		{Col: 0, Row: 1}, {Col: 1, Row: 1},
	}})
	Register(Pattern{Name: "blinker", Cells: []life.Coord{
		{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0},
	}})
	Register(Pattern{Name: "toad", Cells: []life.Coord{
		{Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 3, Row: 0},
		{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1},
	}})
	Register(Pattern{Name: "beacon", Cells: []life.Coord{
		{Col: 0, Row: 0}, {Col: 1, Row: 0},
		{Col: 0, Row: 1}, {Col: 1, Row: 1},
		{Col: 2, Row: 2}, {Col: 3, Row: 2},
		{Col: 2, Row: 3}, {Col: 3, Row: 3},
	}})
	Register(Pattern{Name: "glider", Cells: []life.Coord{
		{Col: 1, Row: 0},
		{Col: 2, Row: 1},
		{Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2},
	}})
	Register(Pattern{Name: "r-pentomino", Cells: []life.Coord{
		{Col: 1, Row: 0}, {Col: 2, Row: 0},
		{Col: 0, Row: 1}, {Col: 1, Row: 1},
		{Col: 1, Row: 2},
	}})
}
