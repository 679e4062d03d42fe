package tags

import "github.com/yohamta/donburi"

var (
	BulkPool = donburi.NewTag().SetName("BulkPool")
	Foliage  = donburi.NewTag().SetName("Foliage")
	Ornament = donburi.NewTag().SetName("Ornament")
	Star     = donburi.NewTag().SetName("Star")
)

// Resolv tags for screen-space hit areas
const (
	ResolvOrnament = "ornament"
)
