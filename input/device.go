package input

import "sync"

// PadID identifies a physical controller as reported by the host.
type PadID int

// Device tracks which connected controller backs the gamepad provider.
// Connect and Disconnect may be called from any goroutine.
type Device struct {
	mu        sync.Mutex
	connected []PadID
	current   PadID
	ok        bool

	// OnChange, when set, is called after the active pad changes.
	OnChange func(id PadID, ok bool)
}

// Connect records a newly attached pad. The first pad to connect stays
// active until it goes away.
func (d *Device) Connect(id PadID) {
	d.mu.Lock()
	for _, c := range d.connected {
		if c == id {
			d.mu.Unlock()
			return
		}
	}
	d.connected = append(d.connected, id)
	changed := !d.ok
	if changed {
		d.current, d.ok = id, true
	}
	cb := d.OnChange
	d.mu.Unlock()

	if changed && cb != nil {
		cb(id, true)
	}
}

// Disconnect forgets a pad. If it was active, the oldest remaining pad
// takes over.
func (d *Device) Disconnect(id PadID) {
	d.mu.Lock()
	idx := -1
	for i, c := range d.connected {
		if c == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		d.mu.Unlock()
		return
	}
	d.connected = append(d.connected[:idx], d.connected[idx+1:]...)

	changed := d.ok && d.current == id
	if changed {
		if len(d.connected) > 0 {
			d.current, d.ok = d.connected[0], true
		} else {
			d.current, d.ok = 0, false
		}
	}
	current, ok := d.current, d.ok
	cb := d.OnChange
	d.mu.Unlock()

	if changed && cb != nil {
		cb(current, ok)
	}
}

// Current returns the active pad, if any.
func (d *Device) Current() (PadID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current, d.ok
}

// Connected returns the attached pads in connection order.
func (d *Device) Connected() []PadID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]PadID(nil), d.connected...)
}
