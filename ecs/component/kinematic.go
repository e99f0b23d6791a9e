package component

import "github.com/jakecoffman/cp"

// Kinematic is the character's motion state. Exactly one instance is live per
// world and only the tick goroutine mutates it.
type Kinematic struct {
	Position cp.Vector
	Velocity cp.Vector
	OnGround bool
}

// NewKinematic places the character at the bottom centre of the scene, at
// rest and not yet grounded.
func NewKinematic(bounds LevelBounds, tuning Tuning) Kinematic {
	return Kinematic{
		Position: cp.Vector{X: bounds.Width / 2, Y: bounds.Ground(tuning.GroundMargin)},
	}
}

// Box returns the character's bounding box centred on its position.
func (k Kinematic) Box(width, height float64) cp.BB {
	return cp.NewBBForExtents(k.Position, width/2, height/2)
}
