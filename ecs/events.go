package ecs

// EventKind identifies what happened during a tick.
type EventKind string

const (
	EventJumped EventKind = "jumped"
	EventLanded EventKind = "landed"
)

// Event is emitted by systems and drained by the host after a tick.
type Event struct {
	Kind EventKind
	Tick uint64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
