package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/padrunner/input"
)

// ebitenPad reads the standard gamepad layout through ebiten.
type ebitenPad struct{}

func (ebitenPad) LeftStickX(id input.PadID) float64 {
	gid := ebiten.GamepadID(id)
	if !ebiten.IsStandardGamepadLayoutAvailable(gid) {
		return ebiten.GamepadAxisValue(gid, 0)
	}
	return ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
}

func (ebitenPad) Pressed(id input.PadID, b input.Button) bool {
	gid := ebiten.GamepadID(id)
	switch b {
	case input.ButtonA:
		return ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	case input.ButtonB:
		return ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightRight)
	}
	return false
}

// ebitenKeys maps the keyboard fallback onto physical keys.
type ebitenKeys struct{}

func (ebitenKeys) Down(k input.Key) bool {
	switch k {
	case input.KeyLeft:
		return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case input.KeyRight:
		return ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case input.KeySprint:
		return ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	case input.KeyJump:
		return ebiten.IsKeyPressed(ebiten.KeySpace)
	}
	return false
}

// pollConnections forwards ebiten's connect and disconnect edges to the
// device holder. Ebiten has no callbacks for these, so it runs every frame.
func pollConnections(device *input.Device, known []ebiten.GamepadID) []ebiten.GamepadID {
	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		device.Connect(input.PadID(id))
	}
	for _, id := range known {
		if inpututil.IsGamepadJustDisconnected(id) {
			device.Disconnect(input.PadID(id))
		}
	}
	return ebiten.AppendGamepadIDs(known[:0])
}
