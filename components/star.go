package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// StarData is the tree-top star. Pulse comes from its tween sequence;
// it fades out as the foliage pool disperses.
type StarData struct {
	Position mgl64.Vec3
	Pulse    float64 // current pulse scale multiplier
	Alpha    float64
}

var Star = donburi.NewComponentType[StarData]()
