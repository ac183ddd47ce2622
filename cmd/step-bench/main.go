// Command step-bench runs the step function headless and reports
// throughput, mainly to exercise the parallel row-band path.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"lifegrid/internal/stats"
	"lifegrid/pkg/core"
	"lifegrid/pkg/life"
	"lifegrid/pkg/pattern"
)

func main() {
	side := flag.Int("side", 511, "grid side length")
	steps := flag.Int("steps", 500, "generations to run")
	workers := flag.Int("workers", runtime.NumCPU(), "row bands stepped in parallel")
	density := flag.Float64("density", 0.25, "alive density for the random seed")
	seed := flag.Int64("seed", 1337, "rng seed")
	patternName := flag.String("pattern", "", "seed pattern instead of a random fill")
	flag.Parse()

	board := life.New(*side)
	if *patternName != "" {
		p, ok := pattern.Get(*patternName)
		if !ok {
			log.Fatalf("unknown pattern %q (available: %v)", *patternName, pattern.Names())
		}
		p.Stamp(board, life.Coord{Col: *side / 2, Row: *side / 2})
	} else {
		board.Randomize(core.NewRNG(*seed).Source(), *density)
	}

	pool := life.NewBoardPool(*side)
	st := stats.New()
	start := time.Now()
	for i := 0; i < *steps; i++ {
		stepStart := time.Now()
		next := pool.Get()
		life.NextInto(next, board, *workers)
		pool.Put(board)
		board = next
		st.Update(i+1, board.Population(), time.Since(stepStart))
	}
	elapsed := time.Since(start)

	dim := board.Dim()
	fmt.Printf("%dx%d board, %d steps, %d workers\n", dim, dim, *steps, *workers)
	fmt.Printf("elapsed %s (%.1f steps/sec overall, %.1f last)\n",
		elapsed.Round(time.Millisecond), float64(*steps)/elapsed.Seconds(), st.StepsPerSecond)
	fmt.Printf("final population %d (avg %.1f)\n", board.Population(), st.AveragePopulation)
}
