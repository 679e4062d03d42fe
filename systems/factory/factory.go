package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/archetypes"
	"github.com/kalpa123456/christmas-tree111/assets"
	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/formation"
	"github.com/kalpa123456/christmas-tree111/tags"
)

// CreateClock spawns the frame-delta singleton.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Clock.Spawn(ecs)
}

// CreateInput spawns the input snapshot singleton.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// CreateAppState spawns the interaction state singleton. Every session
// starts clustered with nothing focused.
func CreateAppState(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.AppState.Spawn(ecs)
	components.AppState.SetValue(entry, components.AppStateData{
		Mode:           components.ModeClustered,
		ActiveOrnament: components.NoActiveOrnament,
	})
	return entry
}

// CreateSettings spawns the runtime settings from the config defaults
// (which persistence may already have overwritten with saved values).
func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, components.SettingsData{
		AutoRotate:   cfg.Settings.AutoRotate,
		ShowHints:    cfg.Settings.ShowHints,
		DensityIndex: cfg.Settings.DensityIndex,
	})
	return entry
}

// CreateSpace spawns the screen-space hit-test space.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16)
	components.Space.Set(entry, spaceData)
	return entry
}

// CreateRig spawns the orbit camera at its start pose.
func CreateRig(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Rig.Spawn(ecs)
	components.Rig.SetValue(entry, components.RigData{
		Yaw:            cfg.Rig.StartYaw,
		Pitch:          cfg.Rig.StartPitch,
		Distance:       cfg.Rig.StartDistance,
		TargetYaw:      cfg.Rig.StartYaw,
		TargetPitch:    cfg.Rig.StartPitch,
		TargetDistance: cfg.Rig.StartDistance,
		LookAt:         mgl64.Vec3{0, cfg.Rig.TargetY, 0},
	})
	return entry
}

// CreateFoliagePool spawns the main particle pool: the cone that reads as
// the tree, and its dispersal shell. Both formation buffers are sampled
// here, once, and never touched again.
func CreateFoliagePool(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	count := scaledCount(cfg.Formation.FoliageCount)
	fc := formation.Config{
		ConeHeight:     cfg.Formation.ConeHeight,
		ConeRadius:     cfg.Formation.ConeRadius,
		RadiusJitter:   cfg.Formation.RadiusJitter,
		ShellRadius:    cfg.Formation.ShellRadius,
		ShellThickness: cfg.Formation.ShellThickness,
	}
	return spawnPool(ecs, rng, count, fc, cfg.Render.FoliagePalette, cfg.Render.FoliageDotSize, tags.Foliage)
}

// CreateLightsPool spawns the string-lights pool on a slightly wider
// dispersal shell.
func CreateLightsPool(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	count := scaledCount(cfg.Formation.LightsCount)
	fc := formation.Config{
		ConeHeight:     cfg.Formation.ConeHeight,
		ConeRadius:     cfg.Formation.ConeRadius + 0.3,
		RadiusJitter:   cfg.Formation.RadiusJitter * 0.5,
		ShellRadius:    cfg.Formation.LightsShellRadius,
		ShellThickness: cfg.Formation.LightsShellThickness,
	}
	return spawnPool(ecs, rng, count, fc, cfg.Render.LightPalette, cfg.Render.LightDotSize)
}

func spawnPool(e *ecs.ECS, rng *rand.Rand, count int, fc formation.Config,
	palette []color.RGBA, dotSize float64, extra ...donburi.IComponentType) *donburi.Entry {

	entry := archetypes.Pool.Spawn(e, extra...)

	a, b := formation.BuildPair(rng, count, fc)
	colors := make([]color.RGBA, count)
	for i := range colors {
		colors[i] = palette[rng.Intn(len(palette))]
	}

	components.Pool.SetValue(entry, components.PoolData{
		FormationA: a,
		FormationB: b,
		Render:     make([]mgl64.Vec3, count),
		Colors:     colors,
		DotSize:    dotSize,
	})
	components.Morph.SetValue(entry, components.MorphData{
		Mix:             0,
		TargetDispersed: false,
		Rate:            cfg.Formation.MixRate,
	})
	return entry
}

// CreateOrnaments spawns the interactive entities: photo ornaments first,
// then the non-selectable gift shapes, with one contiguous index space so
// the active id identifies any of them.
func CreateOrnaments(e *ecs.ECS, rng *rand.Rand) {
	space := mustSpace(e)

	photoCone := formation.Config{
		ConeHeight:     cfg.Formation.ConeHeight * 0.85,
		ConeRadius:     cfg.Formation.ConeRadius + 0.6,
		ShellRadius:    cfg.Ornament.ShellRadius,
		ShellThickness: cfg.Ornament.ShellThickness,
	}

	index := 0
	for i := 0; i < cfg.Ornament.PhotoCount; i++ {
		img := assets.OrnamentSource(i)
		spawnOrnament(e, space, components.OrnamentData{
			Index:        index,
			FormationPos: formation.Sample(rng, formation.Clustered, photoCone),
			DispersedPos: formation.Sample(rng, formation.Dispersed, photoCone),
			Scale:        cfg.Ornament.RestScale,
			Rotation:     mgl64.QuatIdent(),
			Image:        img,
			Size:         cfg.Ornament.PhotoSize,
			Selectable:   true,
		})
		index++
	}

	for i := 0; i < cfg.Ornament.GiftCount; i++ {
		spawnOrnament(e, space, components.OrnamentData{
			Index:        index,
			FormationPos: giftRestingSpot(rng),
			DispersedPos: formation.Sample(rng, formation.Dispersed, photoCone),
			Scale:        cfg.Ornament.RestScale,
			Rotation:     mgl64.QuatIdent(),
			Image:        assets.GiftImage(i),
			Size:         cfg.Ornament.GiftSize,
			Selectable:   false,
		})
		index++
	}
}

func spawnOrnament(e *ecs.ECS, space *resolv.Space, data components.OrnamentData) *donburi.Entry {
	entry := archetypes.Ornament.Spawn(e)
	data.Position = data.FormationPos
	data.State = components.OrnamentIdle
	components.Ornament.SetValue(entry, data)

	obj := resolv.NewObject(-1e6, -1e6, 1, 1, tags.ResolvOrnament)
	obj.Data = entry
	space.Add(obj)
	components.HitArea.SetValue(entry, components.HitAreaData{Object: obj})
	return entry
}

// giftRestingSpot places a gift on the floor ring under the tree.
func giftRestingSpot(rng *rand.Rand) mgl64.Vec3 {
	a := rng.Float64() * 2 * math.Pi
	r := 2.0 + rng.Float64()*(cfg.Formation.ConeRadius*0.8)
	return mgl64.Vec3{
		r * math.Cos(a),
		-cfg.Formation.ConeHeight/2 - 0.6,
		r * math.Sin(a),
	}
}

// CreateStar spawns the tree-top star with its looping pulse tween.
func CreateStar(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Star.Spawn(e)
	components.Star.SetValue(entry, components.StarData{
		Position: formation.Apex(formation.Config{ConeHeight: cfg.Formation.ConeHeight}).Add(mgl64.Vec3{0, 0.8, 0}),
		Pulse:    1,
		Alpha:    1,
	})

	p := cfg.Render.StarPulse
	half := float32(cfg.Render.StarPeriod / 2)
	tw := gween.NewSequence(
		gween.New(float32(1-p), float32(1+p), half, ease.InOutSine),
		gween.New(float32(1+p), float32(1-p), half, ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.Tween.Set(entry, tw)
	return entry
}

// CreateHint spawns the caption with its fade-in/hold/fade-out envelope.
func CreateHint(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Hint.Spawn(e)
	components.Hint.SetValue(entry, components.HintData{})

	tw := gween.NewSequence(
		gween.New(0, 1, float32(cfg.HUD.HintFadeIn), ease.OutQuad),
		gween.New(1, 1, float32(cfg.HUD.HintHold), ease.Linear),
		gween.New(1, 0, float32(cfg.HUD.HintFadeOut), ease.InQuad),
	)
	components.Tween.Set(entry, tw)
	return entry
}

func scaledCount(base int) int {
	steps := cfg.Settings.DensitySteps
	idx := cfg.Settings.DensityIndex
	if idx < 0 || idx >= len(steps) {
		return base
	}
	return int(float64(base) * steps[idx])
}

func mustSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		panic("factory: space must be created before ornaments")
	}
	return components.Space.Get(entry)
}
