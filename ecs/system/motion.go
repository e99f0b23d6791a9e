package system

import (
	"github.com/milk9111/padrunner/ecs"
	"github.com/milk9111/padrunner/ecs/component"
)

// Step advances the character by one tick. It only reads its arguments.
//
// The order matters: velocity is settled before position, and the ground
// check runs before the side clamp.
func Step(k component.Kinematic, in component.Input, bounds component.LevelBounds, t component.Tuning) component.Kinematic {
	maxVelocity := t.MaxVelocity(in.Sprint)

	switch {
	case in.MoveX < -t.DeadZone:
		k.Velocity.X -= t.Acceleration
		if k.Velocity.X <= -maxVelocity {
			k.Velocity.X = -maxVelocity
		}
	case in.MoveX > t.DeadZone:
		k.Velocity.X += t.Acceleration
		if k.Velocity.X >= maxVelocity {
			k.Velocity.X = maxVelocity
		}
	default:
		k.Velocity.X *= t.Friction
	}

	if in.Jump {
		if k.OnGround {
			k.Velocity.Y = t.JumpStrength
			k.OnGround = false
		}
		// Applies on every held tick, grounded or not.
		k.Velocity.Y -= t.JumpStrength / 15
	} else {
		k.Velocity.Y += t.Gravity
	}

	k.Position = k.Position.Add(k.Velocity)

	ground := bounds.Ground(t.GroundMargin)
	if k.Position.Y > ground {
		k.Position.Y = ground
		k.Velocity.Y = 0
		k.OnGround = true
	}

	k.Position.X = max(min(k.Position.X, bounds.Width), 0)

	return k
}

// MotionSystem applies Step to the world's character and reports
// ground transitions.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	k := w.Kinematic()
	wasGrounded := k.OnGround
	*k = Step(*k, *w.Input(), w.Bounds(), w.Tuning())

	switch {
	case wasGrounded && !k.OnGround:
		w.Emit(ecs.EventJumped)
	case !wasGrounded && k.OnGround:
		w.Emit(ecs.EventLanded)
	}
}
