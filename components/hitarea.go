package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitAreaData is an ornament's clickable rectangle in screen space,
// refreshed from the projected transform every frame. Depth orders
// overlapping hits so the nearest ornament wins the click.
type HitAreaData struct {
	*resolv.Object
	Depth   float64
	Visible bool
}

var HitArea = donburi.NewComponentType[HitAreaData]()
