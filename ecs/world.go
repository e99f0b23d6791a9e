package ecs

import (
	"sync"

	"github.com/milk9111/padrunner/ecs/component"
)

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns the single character, its input and the system order.
//
// Update holds the world lock for the whole tick; the accessors used by
// systems assume that lock is held and must not be called from elsewhere.
type World struct {
	mu sync.Mutex

	systems []System
	events  EventQueue

	kinematic component.Kinematic
	input     component.Input
	bounds    component.LevelBounds
	tuning    component.Tuning
	tick      uint64
}

// NewWorld creates a world with the character at its spawn point.
func NewWorld(bounds component.LevelBounds, tuning component.Tuning) *World {
	return &World{
		kinematic: component.NewKinematic(bounds, tuning),
		bounds:    bounds,
		tuning:    tuning,
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.systems = append(w.systems, s)
}

// Update runs all systems once. Events from the previous tick are dropped
// first, so hosts drain them between ticks.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.events.flush()
	w.tick++
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
}

// Events returns the pending events and clears the queue.
func (w *World) Events() []Event {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.events.Drain()
}

// Snapshot returns a copy of the character state, safe from any goroutine.
func (w *World) Snapshot() component.Kinematic {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.kinematic
}

// CurrentTuning returns the tuning used by the next tick.
func (w *World) CurrentTuning() component.Tuning {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tuning
}

// Tick returns how many ticks have run.
func (w *World) Tick() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tick
}

// SetTuning replaces the tuning; it applies from the next tick.
func (w *World) SetTuning(t component.Tuning) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tuning = t
}

// Resize changes the scene bounds without moving the character. The next
// tick clamps it into the new area.
func (w *World) Resize(bounds component.LevelBounds) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bounds = bounds
}

// Reset respawns the character and clears the tick counter.
func (w *World) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.kinematic = component.NewKinematic(w.bounds, w.tuning)
	w.input = component.NeutralInput()
	w.events.flush()
	w.tick = 0
}

// Kinematic is the live character state. Systems only.
func (w *World) Kinematic() *component.Kinematic {
	return &w.kinematic
}

// Input is the snapshot for the current tick. Systems only.
func (w *World) Input() *component.Input {
	return &w.input
}

// Bounds returns the scene bounds. Systems only.
func (w *World) Bounds() component.LevelBounds {
	return w.bounds
}

// Tuning returns the active tuning. Systems only.
func (w *World) Tuning() component.Tuning {
	return w.tuning
}

// Emit queues an event for the host. Systems only.
func (w *World) Emit(kind EventKind) {
	w.events.Push(Event{Kind: kind, Tick: w.tick})
}
