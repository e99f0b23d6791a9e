package input

import "github.com/milk9111/padrunner/ecs/component"

// Key names the keys the keyboard fallback listens to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeySprint
	KeyJump
)

// Keys reports whether a logical key is down. The host maps each one to
// its physical keys (A or Left arrow for KeyLeft, and so on).
type Keys interface {
	Down(k Key) bool
}

// Keyboard turns held keys into a full-deflection snapshot.
type Keyboard struct {
	keys Keys
}

func NewKeyboard(keys Keys) *Keyboard {
	return &Keyboard{keys: keys}
}

func (k *Keyboard) Snapshot() component.Input {
	if k == nil || k.keys == nil {
		return component.NeutralInput()
	}
	var moveX float64
	if k.keys.Down(KeyLeft) {
		moveX -= 1
	}
	if k.keys.Down(KeyRight) {
		moveX += 1
	}
	return component.Input{
		MoveX:  moveX,
		Sprint: k.keys.Down(KeySprint),
		Jump:   k.keys.Down(KeyJump),
	}
}
