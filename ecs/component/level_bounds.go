package component

// LevelBounds stores the scene size the character is kept inside.
type LevelBounds struct {
	Width  float64
	Height float64
}

// Ground returns the y coordinate of the resting line for the given margin.
func (b LevelBounds) Ground(margin float64) float64 {
	return b.Height - margin
}
