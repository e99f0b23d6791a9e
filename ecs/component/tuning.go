package component

import (
	"errors"
	"time"
)

var (
	ErrInvalidTickRate = errors.New("tuning: tick rate must be positive")
	ErrInvalidSpeedCap = errors.New("tuning: speed caps must not be negative")
)

// Tuning holds the movement constants for the character.
type Tuning struct {
	TickRate          int
	Gravity           float64
	JumpStrength      float64
	Acceleration      float64
	Friction          float64
	BaseMaxVelocity   float64
	SprintMaxVelocity float64
	GroundMargin      float64
	DeadZone          float64

	// Width and Height size the drawn box; the motion step ignores them.
	Width  float64
	Height float64
}

func DefaultTuning() Tuning {
	return Tuning{
		TickRate:          30,
		Gravity:           9.8,
		JumpStrength:      -30.0,
		Acceleration:      2.0,
		Friction:          0.9,
		BaseMaxVelocity:   10.0,
		SprintMaxVelocity: 20.0,
		GroundMargin:      30,
		DeadZone:          0.1,
		Width:             40,
		Height:            60,
	}
}

// MaxVelocity returns the horizontal speed cap active for this tick.
func (t Tuning) MaxVelocity(sprint bool) float64 {
	if sprint {
		return t.SprintMaxVelocity
	}
	return t.BaseMaxVelocity
}

// TickInterval is the wall-clock spacing between ticks.
func (t Tuning) TickInterval() time.Duration {
	if t.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.TickRate)
}

func (t Tuning) Validate() error {
	if t.TickRate <= 0 {
		return ErrInvalidTickRate
	}
	if t.BaseMaxVelocity < 0 || t.SprintMaxVelocity < 0 {
		return ErrInvalidSpeedCap
	}
	return nil
}
