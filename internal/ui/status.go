package ui

// Status carries the per-frame readouts the HUD displays. Values holds
// the current value of each adjustable control, keyed by control key.
type Status struct {
	Paused      bool
	Generation  int
	Population  int
	StepsPerSec float64
	AveragePop  float64
	Values      map[string]int
}
