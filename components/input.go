package components

import "github.com/yohamta/donburi"

// InputData is the per-frame input snapshot polled by the input system.
// Everything downstream reads this component instead of ebiten directly.
type InputData struct {
	// Orbit drag, in pixels moved this frame
	OrbitDX float64
	OrbitDY float64

	Zoom float64 // wheel notches this frame

	Click  bool // a press-release with little movement
	ClickX float64
	ClickY float64

	ToggleFormation bool
	ClearActive     bool
	ToggleAutoSpin  bool
	ToggleHints     bool
	CycleDensity    bool

	// Drag bookkeeping
	Dragging bool
	LastX    int
	LastY    int
	PressX   int
	PressY   int
	Moved    float64 // accumulated drag distance since press
}

var Input = donburi.NewComponentType[InputData]()
