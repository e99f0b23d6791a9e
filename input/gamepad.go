package input

import "github.com/milk9111/padrunner/ecs/component"

// Button names the two face buttons the character uses, in the standard
// layout.
type Button int

const (
	// ButtonA is the bottom face button. It jumps.
	ButtonA Button = iota
	// ButtonB is the right face button. It sprints.
	ButtonB
)

// Pad reads raw controller state. The host backs it with its gamepad API.
type Pad interface {
	LeftStickX(id PadID) float64
	Pressed(id PadID, b Button) bool
}

// Gamepad reports the state of the device's active pad.
type Gamepad struct {
	device *Device
	pad    Pad
}

func NewGamepad(device *Device, pad Pad) *Gamepad {
	return &Gamepad{device: device, pad: pad}
}

func (g *Gamepad) Snapshot() component.Input {
	if g == nil || g.device == nil || g.pad == nil {
		return component.NeutralInput()
	}
	id, ok := g.device.Current()
	if !ok {
		return component.NeutralInput()
	}
	return component.Input{
		MoveX:  g.pad.LeftStickX(id),
		Sprint: g.pad.Pressed(id, ButtonB),
		Jump:   g.pad.Pressed(id, ButtonA),
	}.Normalized()
}
