package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/gamemath"
)

// UpdateCameraRig feeds orbit/zoom input into the rig targets and damps
// the pose toward them. While an ornament is focused the rig is locked:
// input is ignored and the idle auto-rotation halts, so the focused photo
// sits still in front of the viewer.
func UpdateCameraRig(e *ecs.ECS) {
	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	appEntry, ok := components.AppState.First(e.World)
	if !ok {
		return
	}
	rig := components.Rig.Get(rigEntry)
	app := components.AppState.Get(appEntry)
	dt := Delta(e)

	if !app.InteractionLocked() {
		input, settings := currentInput(e), currentSettings(e)

		if input != nil {
			rig.TargetYaw -= input.OrbitDX * cfg.Rig.OrbitSpeed
			rig.TargetPitch += input.OrbitDY * cfg.Rig.OrbitSpeed
			rig.TargetDistance -= input.Zoom * cfg.Rig.ZoomStep
		}

		autoSpin := settings == nil || settings.AutoRotate
		dragging := input != nil && input.Dragging
		if autoSpin && !dragging {
			speed := cfg.Rig.AutoYawDispersed
			if app.Mode == components.ModeClustered {
				speed = cfg.Rig.AutoYawClustered
			}
			rig.TargetYaw += speed * dt
		}

		rig.TargetPitch = clamp(rig.TargetPitch, cfg.Rig.MinPitch, cfg.Rig.MaxPitch)
		rig.TargetDistance = clamp(rig.TargetDistance, cfg.Rig.MinDistance, cfg.Rig.MaxDistance)
	}

	rig.Yaw = gamemath.Damp(rig.Yaw, rig.TargetYaw, cfg.Rig.Damping, dt)
	rig.Pitch = gamemath.Damp(rig.Pitch, rig.TargetPitch, cfg.Rig.Damping, dt)
	rig.Distance = gamemath.Damp(rig.Distance, rig.TargetDistance, cfg.Rig.Damping, dt)
}

func currentInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

func currentSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
