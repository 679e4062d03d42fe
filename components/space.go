package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the screen-space resolv space ornament hit areas live in.
var Space = donburi.NewComponentType[resolv.Space]()
