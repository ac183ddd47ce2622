package core

// ParameterControl describes an integer tunable exposed on the HUD with
// +/- buttons. Bounds are optional.
type ParameterControl struct {
	Key   string
	Label string

	Step int

	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// IntParameterSetter lets HUD interactions update integer parameters.
// Returning false rejects the new value.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
