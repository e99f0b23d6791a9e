// Package input turns controllers, keyboards and scripts into the
// per-tick snapshot the motion step consumes.
package input

import "github.com/milk9111/padrunner/ecs/component"

// Provider returns the latest snapshot. Implementations never block and
// return a neutral snapshot when they have nothing to report.
type Provider interface {
	Snapshot() component.Input
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() component.Input

func (f ProviderFunc) Snapshot() component.Input {
	if f == nil {
		return component.NeutralInput()
	}
	return f()
}

// Neutral always reports a centred stick and no buttons.
var Neutral Provider = ProviderFunc(component.NeutralInput)

// DeadZone reports the current stick dead zone. It is read on every
// snapshot so reloaded tuning applies to the next tick.
type DeadZone func() float64

// FixedDeadZone returns a DeadZone that never changes.
func FixedDeadZone(v float64) DeadZone {
	return func() float64 { return v }
}

// Merge combines providers. The first one whose axis leaves the dead zone
// supplies MoveX; buttons are OR-ed across all of them. A nil deadZone
// lets any non-zero axis through.
func Merge(deadZone DeadZone, providers ...Provider) Provider {
	copied := append([]Provider(nil), providers...)
	return ProviderFunc(func() component.Input {
		var dz float64
		if deadZone != nil {
			dz = deadZone()
		}
		out := component.NeutralInput()
		axisSet := false
		for _, p := range copied {
			if p == nil {
				continue
			}
			in := p.Snapshot().Normalized()
			if !axisSet && (in.MoveX < -dz || in.MoveX > dz) {
				out.MoveX = in.MoveX
				axisSet = true
			}
			out.Sprint = out.Sprint || in.Sprint
			out.Jump = out.Jump || in.Jump
		}
		return out
	})
}
