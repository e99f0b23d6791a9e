package component

import "math"

// Input is the controller snapshot consumed by a single tick.
type Input struct {
	// MoveX is the horizontal stick axis in [-1, 1].
	MoveX float64
	// Sprint raises the active speed cap while held.
	Sprint bool
	// Jump is level-triggered; the motion step detects the rising edge itself.
	Jump bool
}

// NeutralInput is what a tick sees when no controller is connected.
func NeutralInput() Input {
	return Input{}
}

// Normalized clamps MoveX into [-1, 1]. NaN reads as centred.
func (in Input) Normalized() Input {
	switch {
	case math.IsNaN(in.MoveX):
		in.MoveX = 0
	case in.MoveX < -1:
		in.MoveX = -1
	case in.MoveX > 1:
		in.MoveX = 1
	}
	return in
}
