package core

import "time"

// DefaultInterval is the reference period between generations.
const DefaultInterval = 100 * time.Millisecond

// FixedStep paces simulation updates at a steady wall-clock interval.
// It fires at most once per call and drops any backlog, so a slow host
// never triggers catch-up bursts.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a pacer with the given interval between steps.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.interval
	return fs
}

// SetInterval changes the step interval. It is safe to call from the
// main loop; non-positive intervals fall back to the default.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.interval = interval
}

// Interval returns the current step interval.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// ShouldStep reports whether one interval has elapsed since the last step.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.interval {
		f.accumulator -= f.interval
		// Discard anything beyond one interval instead of replaying it.
		if f.accumulator > f.interval {
			f.accumulator = f.interval
		}
		return true
	}
	return false
}
