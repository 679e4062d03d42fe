package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/gamemath"
	"github.com/kalpa123456/christmas-tree111/tags"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// UpdateOrnaments resolves each ornament's state from the shared active id
// and damps its transform toward the state's destination.
//
// Idle ornaments sit at their formation-appropriate position at resting
// scale; in dispersed mode a photo also billboards toward the camera every
// frame. The active ornament heads for a point in front of the live camera
// pose at focus scale, with a damped rotation onto the exact camera
// orientation. The pose is re-read every tick, so a focused photo keeps
// tracking the camera rather than freezing where it was selected.
// Suppressed ornaments shrink to zero scale in place.
func UpdateOrnaments(e *ecs.ECS) {
	appEntry, ok := components.AppState.First(e.World)
	if !ok {
		return
	}
	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	app := components.AppState.Get(appEntry)
	rig := components.Rig.Get(rigEntry)

	dt := Delta(e)
	yaw := SceneYaw(e)
	camPos := rig.Position()
	camFwd := rig.Forward()

	tags.Ornament.Each(e.World, func(entry *donburi.Entry) {
		o := components.Ornament.Get(entry)

		switch {
		case app.ActiveOrnament == o.Index:
			o.State = components.OrnamentActive
		case app.ActiveOrnament != components.NoActiveOrnament:
			o.State = components.OrnamentSuppressed
		default:
			o.State = components.OrnamentIdle
		}

		var destPos mgl64.Vec3
		var destScale float64

		switch o.State {
		case components.OrnamentActive:
			destPos = camPos.Add(camFwd.Mul(cfg.Ornament.FocusDistance))
			destScale = cfg.Ornament.FocusScale
			// Face the viewer exactly: the photo's normal runs against
			// the camera's view direction.
			target := gamemath.LookRotation(camFwd.Mul(-1), worldUp)
			o.Rotation = gamemath.DampQuat(o.Rotation, target, cfg.Ornament.RotationDamping, dt)

		case components.OrnamentSuppressed:
			destPos = o.Position
			destScale = 0

		default: // idle
			if app.Mode == components.ModeDispersed {
				destPos = o.DispersedPos
				// Billboard toward the camera, applied directly: a
				// resting photo should never lag behind the orbit.
				to := camPos.Sub(o.Position)
				if to.Len() > 1e-6 {
					o.Rotation = gamemath.LookRotation(to.Normalize(), worldUp)
				}
			} else {
				// Hang on the turning tree: position and facing both
				// follow the pool spin.
				destPos = gamemath.RotateY(o.FormationPos, yaw)
				target := mgl64.QuatRotate(yaw, worldUp)
				o.Rotation = gamemath.DampQuat(o.Rotation, target, cfg.Ornament.RotationDamping, dt)
			}
			destScale = cfg.Ornament.RestScale
		}

		o.Position = gamemath.DampV3(o.Position, destPos, cfg.Ornament.PositionDamping, dt)
		o.Scale = gamemath.Damp(o.Scale, destScale, cfg.Ornament.ScaleDamping, dt)
	})
}
