package system

import (
	"github.com/milk9111/padrunner/ecs"
	"github.com/milk9111/padrunner/ecs/component"
)

// InputSource yields the latest controller snapshot without blocking.
type InputSource interface {
	Snapshot() component.Input
}

// InputSystem copies one snapshot per tick into the world.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := component.NeutralInput()
	if i.source != nil {
		in = i.source.Snapshot().Normalized()
	}
	*w.Input() = in
}
