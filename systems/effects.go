package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	"github.com/kalpa123456/christmas-tree111/tags"
)

// UpdateEffects advances the presentation tweens: the star's pulse loop
// and the hint caption's fade envelope. The star also fades with the
// foliage mix so it disappears as the tree scatters.
func UpdateEffects(e *ecs.ECS) {
	dt := float32(Delta(e))

	if starEntry, ok := tags.Star.First(e.World); ok {
		star := components.Star.Get(starEntry)
		seq := components.Tween.Get(starEntry)
		v, _, _ := seq.Update(dt)
		star.Pulse = float64(v)
		star.Alpha = 1 - SceneMix(e)
	}

	if hintEntry, ok := components.Hint.First(e.World); ok {
		hint := components.Hint.Get(hintEntry)
		seq := components.Tween.Get(hintEntry)
		v, _, _ := seq.Update(dt)

		hint.Alpha = float64(v)
		if settings := currentSettings(e); settings != nil && !settings.ShowHints {
			hint.Alpha = 0
		}
	}
}

// restartHint replays the caption fade, used when the formation mode flips
// and the caption text changes.
func restartHint(e *ecs.ECS) {
	hintEntry, ok := components.Hint.First(e.World)
	if !ok {
		return
	}
	components.Tween.Get(hintEntry).Reset()
}
