package archetypes

import (
	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Pool = newArchetype(
		tags.BulkPool,
		components.Pool,
		components.Morph,
	)
	Ornament = newArchetype(
		tags.Ornament,
		components.Ornament,
		components.HitArea,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
		components.Tween,
	)
	Rig = newArchetype(
		components.Rig,
	)
	AppState = newArchetype(
		components.AppState,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Space = newArchetype(
		components.Space,
	)
	Hint = newArchetype(
		components.Hint,
		components.Tween,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
