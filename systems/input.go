package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
)

// clickSlop is the max drag distance, in pixels, that still counts as a click.
const clickSlop = 5.0

// UpdateInput polls raw mouse/keyboard state into the InputComponent.
// Must run before the rig and picking systems.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	input.OrbitDX = 0
	input.OrbitDY = 0
	input.Zoom = 0
	input.Click = false
	input.ToggleFormation = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	input.ClearActive = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	input.ToggleAutoSpin = inpututil.IsKeyJustPressed(ebiten.KeyR)
	input.ToggleHints = inpututil.IsKeyJustPressed(ebiten.KeyH)
	input.CycleDensity = inpututil.IsKeyJustPressed(ebiten.KeyD)

	_, wheelY := ebiten.Wheel()
	input.Zoom = wheelY

	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		input.Dragging = true
		input.PressX, input.PressY = x, y
		input.LastX, input.LastY = x, y
		input.Moved = 0
		return
	}

	if input.Dragging {
		dx := float64(x - input.LastX)
		dy := float64(y - input.LastY)
		input.LastX, input.LastY = x, y

		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			input.OrbitDX = dx
			input.OrbitDY = dy
			input.Moved += math.Hypot(dx, dy)
		} else {
			// Released: a short press-release is a click, anything
			// longer was an orbit drag.
			input.Dragging = false
			if input.Moved <= clickSlop {
				input.Click = true
				input.ClickX = float64(x)
				input.ClickY = float64(y)
			}
		}
	}
}
