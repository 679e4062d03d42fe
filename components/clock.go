package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData carries the frame delta every update system reads. Tests set
// Delta directly; at runtime it comes from wall time, clamped so a window
// drag or breakpoint does not produce one giant step.
type ClockData struct {
	Delta    float64 // seconds
	LastTick time.Time
	Started  bool
}

var Clock = donburi.NewComponentType[ClockData]()
