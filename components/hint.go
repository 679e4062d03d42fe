package components

import "github.com/yohamta/donburi"

// HintData is the fading caption under the scene. The text follows the
// formation mode; the alpha follows a fade-in/hold/fade-out tween that
// restarts whenever the mode flips.
type HintData struct {
	Alpha float64
}

var Hint = donburi.NewComponentType[HintData]()
