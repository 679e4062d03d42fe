package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/gamemath"
	"github.com/kalpa123456/christmas-tree111/tags"
)

// UpdateMorph advances every pool's mix scalar toward its target and
// recomputes the pool's render buffer as an exact interpolation of the two
// immutable formation buffers. Because the sources are never written, mix=0
// reproduces the clustered layout bit for bit and mix=1 the dispersed one,
// no matter how many direction changes happened in between.
func UpdateMorph(e *ecs.ECS) {
	dt := Delta(e)

	tags.BulkPool.Each(e.World, func(entry *donburi.Entry) {
		morph := components.Morph.Get(entry)
		pool := components.Pool.Get(entry)

		// Exponential smoothing: frame-rate independent, asymptotic,
		// and monotonic as long as the step stays below 1.
		step := morph.Rate * dt
		if step > 1 {
			step = 1
		}
		morph.Mix += (morph.Target() - morph.Mix) * step

		for i := range pool.Render {
			a := pool.FormationA[i]
			pool.Render[i] = a.Add(pool.FormationB[i].Sub(a).Mul(morph.Mix))
		}

		// Whole-pool spin, faster near the clustered end.
		spin := cfg.Formation.SpinDispersed +
			(cfg.Formation.SpinClustered-cfg.Formation.SpinDispersed)*(1-morph.Mix)
		pool.Yaw = gamemath.WrapAngle(pool.Yaw + spin*dt)
	})
}

// SceneYaw returns the foliage pool's current spin angle. Ornament
// destinations follow it so photos stay attached to the turning tree.
func SceneYaw(e *ecs.ECS) float64 {
	entry, ok := tags.Foliage.First(e.World)
	if !ok {
		return 0
	}
	return components.Pool.Get(entry).Yaw
}

// SceneMix returns the foliage pool's mix scalar, used to fade the star
// and modulate presentation as the tree disperses.
func SceneMix(e *ecs.ECS) float64 {
	entry, ok := tags.Foliage.First(e.World)
	if !ok {
		return 0
	}
	return components.Morph.Get(entry).Mix
}
