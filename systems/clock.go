package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
)

// maxDelta guards against giant steps after window drags or suspends.
const maxDelta = 0.1

// UpdateClock refreshes the frame delta. Must run before every other
// update system.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	now := time.Now()
	if !clock.Started {
		clock.Started = true
		clock.LastTick = now
		clock.Delta = 1.0 / 60.0
		return
	}

	dt := now.Sub(clock.LastTick).Seconds()
	clock.LastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxDelta {
		dt = maxDelta
	}
	clock.Delta = dt
}

// Delta returns the current frame delta, or a 60 Hz fallback when no
// clock entity exists yet.
func Delta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 1.0 / 60.0
	}
	return components.Clock.Get(entry).Delta
}
