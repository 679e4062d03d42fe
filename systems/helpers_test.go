package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/archetypes"
	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/systems/factory"
	"github.com/kalpa123456/christmas-tree111/tags"
)

// newTestECS builds a headless world with the singletons every system
// expects, ticking at the given fixed delta.
func newTestECS(t *testing.T, delta float64) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateInput(e)
	factory.CreateAppState(e)
	factory.CreateSettings(e)
	factory.CreateRig(e)

	setDelta(e, delta)
	return e
}

func setDelta(e *ecs.ECS, delta float64) {
	entry, _ := components.Clock.First(e.World)
	clock := components.Clock.Get(entry)
	clock.Started = true
	clock.Delta = delta
}

func appState(t *testing.T, e *ecs.ECS) *components.AppStateData {
	t.Helper()
	entry, ok := components.AppState.First(e.World)
	if !ok {
		t.Fatal("no app state entity")
	}
	return components.AppState.Get(entry)
}

func rigData(t *testing.T, e *ecs.ECS) *components.RigData {
	t.Helper()
	entry, ok := components.Rig.First(e.World)
	if !ok {
		t.Fatal("no rig entity")
	}
	return components.Rig.Get(entry)
}

// spawnTestPool creates a bulk pool with explicit formation buffers.
func spawnTestPool(e *ecs.ECS, a, b []mgl64.Vec3, extra ...donburi.IComponentType) *donburi.Entry {
	entry := archetypes.Pool.Spawn(e, extra...)
	components.Pool.SetValue(entry, components.PoolData{
		FormationA: a,
		FormationB: b,
		Render:     make([]mgl64.Vec3, len(a)),
		DotSize:    0.2,
	})
	components.Morph.SetValue(entry, components.MorphData{
		Rate: cfg.Formation.MixRate,
	})
	return entry
}

// spawnTestOrnament creates an ornament without a texture or hit object;
// neither is needed until something draws or picks.
func spawnTestOrnament(e *ecs.ECS, index int, selectable bool) *donburi.Entry {
	entry := archetypes.Ornament.Spawn(e)
	components.Ornament.SetValue(entry, components.OrnamentData{
		Index:        index,
		FormationPos: mgl64.Vec3{float64(index), 0, 0},
		DispersedPos: mgl64.Vec3{float64(index) * 2, 3, -1},
		Position:     mgl64.Vec3{float64(index), 0, 0},
		Scale:        cfg.Ornament.RestScale,
		Rotation:     mgl64.QuatIdent(),
		Size:         1,
		Selectable:   selectable,
	})
	components.HitArea.SetValue(entry, components.HitAreaData{})
	return entry
}

func ornamentByIndex(t *testing.T, e *ecs.ECS, index int) *components.OrnamentData {
	t.Helper()
	var found *components.OrnamentData
	tags.Ornament.Each(e.World, func(entry *donburi.Entry) {
		o := components.Ornament.Get(entry)
		if o.Index == index {
			found = o
		}
	})
	if found == nil {
		t.Fatalf("no ornament with index %d", index)
	}
	return found
}
