// Package input translates raw key codes into the closed set of
// simulation control actions. Front ends convert their native key
// events to raw codes before calling Map; everything the mapper does
// not recognize is a valid "do nothing" input, not an error.
package input

// Action identifies a recognized keyboard command.
type Action int

const (
	// ActionNone means the key code is not bound to anything.
	ActionNone Action = iota
	// ActionTogglePause flips between running and paused.
	ActionTogglePause
	// ActionStepOnce advances a single generation while paused.
	ActionStepOnce
)

// Raw codes for the two recognized bindings: space pauses, N steps.
const (
	CodeSpace = 32
	CodeN     = 78
)

var bindings = map[int]Action{
	CodeSpace: ActionTogglePause,
	CodeN:     ActionStepOnce,
}

// Map looks up the action bound to a raw key code. Every unbound code
// maps to ActionNone.
func Map(code int) Action {
	if a, ok := bindings[code]; ok {
		return a
	}
	return ActionNone
}
