// Package stats tracks run statistics for the HUD and the bench harness.
package stats

import "time"

// Stats captures stepping throughput and a smoothed population figure.
type Stats struct {
	StepsPerSecond    float64
	AveragePopulation float64
	TotalGenerations  int
	StartTime         time.Time
}

// New returns stats anchored at the current time.
func New() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one advanced generation and the time it took to compute.
func (s *Stats) Update(generation, population int, stepDuration time.Duration) {
	s.TotalGenerations = generation
	if stepDuration > 0 {
		s.StepsPerSecond = 1.0 / stepDuration.Seconds()
	}
	// Exponential moving average keeps the HUD readout steady.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	}
}
