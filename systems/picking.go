package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/tags"
)

// UpdatePicking turns the frame's input snapshot into interaction commands:
// formation toggles, focus clears, settings toggles, and ornament clicks
// resolved against the screen-space hit areas.
func UpdatePicking(e *ecs.ECS) {
	input := currentInput(e)
	if input == nil {
		return
	}

	if input.ToggleFormation {
		ToggleFormation(e)
	}
	if input.ClearActive {
		ClearActiveOrnament(e)
	}

	if settings := currentSettings(e); settings != nil {
		if input.ToggleAutoSpin {
			settings.AutoRotate = !settings.AutoRotate
			settings.Dirty = true
		}
		if input.ToggleHints {
			settings.ShowHints = !settings.ShowHints
			settings.Dirty = true
		}
		if input.CycleDensity {
			// Pools sample their formations once at construction, so the
			// new density takes effect on the next launch.
			settings.DensityIndex = (settings.DensityIndex + 1) % len(cfg.Settings.DensitySteps)
			settings.Dirty = true
		}
	}

	if input.Click {
		if index, ok := pickOrnament(e, input.ClickX, input.ClickY); ok {
			SelectOrnament(e, index)
		}
	}
}

// UpdateHitAreas refreshes each ornament's screen-space rectangle from its
// projected transform. Runs after the transforms have settled for the frame
// so clicks land on what the user actually sees.
func UpdateHitAreas(e *ecs.ECS) {
	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	rig := components.Rig.Get(rigEntry)
	view, proj := viewProjection(rig)

	tags.Ornament.Each(e.World, func(entry *donburi.Entry) {
		o := components.Ornament.Get(entry)
		hit := components.HitArea.Get(entry)
		if hit.Object == nil {
			return
		}

		sx, sy, depth, visible := projectPoint(o.Position, view, proj)
		half := projectedHalfExtent(o.Size*o.Scale, depth)

		hit.Depth = depth
		hit.Visible = visible && o.Scale > 0.05 && o.Selectable &&
			o.State != components.OrnamentSuppressed
		if !hit.Visible {
			// Park the rect off screen so stale bounds can't be clicked.
			hit.Object.X, hit.Object.Y = -1e6, -1e6
			hit.Object.W, hit.Object.H = 1, 1
		} else {
			hit.Object.X = sx - half
			hit.Object.Y = sy - half
			hit.Object.W = 2 * half
			hit.Object.H = 2 * half
		}
		hit.Object.Update()
	})
}

// pickOrnament resolves the click against the hit space: a 1x1 probe at
// the cursor gathers candidate ornaments from the shared cells, then the
// nearest one whose rect actually contains the point wins.
func pickOrnament(e *ecs.ECS, x, y float64) (int, bool) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return 0, false
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x, y, 1, 1)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvOrnament)
	if check == nil {
		return 0, false
	}

	best := -1
	bestDepth := 0.0
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok {
			continue
		}
		o := components.Ornament.Get(entry)
		hit := components.HitArea.Get(entry)
		if !hit.Visible {
			continue
		}
		// The cell broadphase is coarse; confirm the point is inside.
		if x < obj.X || x > obj.X+obj.W || y < obj.Y || y > obj.Y+obj.H {
			continue
		}
		if best == -1 || hit.Depth < bestDepth {
			best = o.Index
			bestDepth = hit.Depth
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
