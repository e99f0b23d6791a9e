package ecs

import (
	"context"
	"time"
)

// TickFunc observes the world after each tick. Returning false stops the loop.
type TickFunc func(w *World) bool

// RunTicks steps the world n times back to back, without waiting.
func RunTicks(w *World, n int, onTick TickFunc) int {
	ran := 0
	for ran < n {
		w.Update()
		ran++
		if onTick != nil && !onTick(w) {
			break
		}
	}
	return ran
}

// Run steps the world every interval until ctx is done or onTick returns
// false. Spacing follows time.Ticker, so slow ticks are dropped rather
// than queued.
func Run(ctx context.Context, w *World, interval time.Duration, onTick TickFunc) error {
	if interval <= 0 {
		interval = time.Second / 30
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Update()
			if onTick != nil && !onTick(w) {
				return nil
			}
		}
	}
}
