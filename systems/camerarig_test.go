package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
)

func TestOrbitInputMovesRigTargets(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	currentSettings(e).AutoRotate = false

	rig := rigData(t, e)
	startYaw, startPitch, startDist := rig.TargetYaw, rig.TargetPitch, rig.TargetDistance

	input := currentInput(e)
	input.OrbitDX = 40
	input.OrbitDY = -10
	input.Zoom = 2

	UpdateCameraRig(e)

	if want := startYaw - 40*cfg.Rig.OrbitSpeed; math.Abs(rig.TargetYaw-want) > 1e-12 {
		t.Errorf("TargetYaw = %v, want %v", rig.TargetYaw, want)
	}
	if want := startPitch - 10*cfg.Rig.OrbitSpeed; math.Abs(rig.TargetPitch-want) > 1e-12 {
		t.Errorf("TargetPitch = %v, want %v", rig.TargetPitch, want)
	}
	if want := startDist - 2*cfg.Rig.ZoomStep; math.Abs(rig.TargetDistance-want) > 1e-12 {
		t.Errorf("TargetDistance = %v, want %v", rig.TargetDistance, want)
	}
}

func TestRigIsLockedWhileOrnamentFocused(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	appState(t, e).ActiveOrnament = 0

	rig := rigData(t, e)
	startYaw, startPitch, startDist := rig.TargetYaw, rig.TargetPitch, rig.TargetDistance

	input := currentInput(e)
	input.OrbitDX = 80
	input.OrbitDY = 80
	input.Zoom = -3

	UpdateCameraRig(e)

	if rig.TargetYaw != startYaw || rig.TargetPitch != startPitch || rig.TargetDistance != startDist {
		t.Errorf("locked rig moved: yaw %v pitch %v dist %v", rig.TargetYaw, rig.TargetPitch, rig.TargetDistance)
	}
}

func TestLockedRigHaltsAutoRotation(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	currentSettings(e).AutoRotate = true
	appState(t, e).ActiveOrnament = 0

	rig := rigData(t, e)
	start := rig.TargetYaw
	for i := 0; i < 120; i++ {
		UpdateCameraRig(e)
	}
	if rig.TargetYaw != start {
		t.Errorf("auto-rotation ran while locked: TargetYaw %v -> %v", start, rig.TargetYaw)
	}
}

func TestAutoRotationSpeedDependsOnMode(t *testing.T) {
	yawAfter := func(t *testing.T, dispersed bool) float64 {
		t.Helper()
		e := newTestECS(t, 1.0/60)
		currentSettings(e).AutoRotate = true
		if dispersed {
			appState(t, e).Mode = components.ModeDispersed
		}
		for i := 0; i < 60; i++ {
			UpdateCameraRig(e)
		}
		return rigData(t, e).TargetYaw
	}

	clustered := yawAfter(t, false)
	dispersed := yawAfter(t, true)
	if clustered <= dispersed {
		t.Errorf("auto-yaw clustered %v <= dispersed %v, want faster while clustered", clustered, dispersed)
	}

	if want := cfg.Rig.AutoYawClustered; math.Abs(clustered-cfg.Rig.StartYaw-want) > 1e-9 {
		t.Errorf("clustered yaw after 1s = %v, want %v", clustered-cfg.Rig.StartYaw, want)
	}
}

func TestDraggingSuspendsAutoRotation(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	currentSettings(e).AutoRotate = true
	currentInput(e).Dragging = true

	rig := rigData(t, e)
	start := rig.TargetYaw
	UpdateCameraRig(e)
	if rig.TargetYaw != start {
		t.Errorf("auto-rotation ran during a drag: TargetYaw %v -> %v", start, rig.TargetYaw)
	}
}

func TestPitchAndDistanceAreClamped(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	currentSettings(e).AutoRotate = false

	rig := rigData(t, e)
	input := currentInput(e)

	input.OrbitDY = 1e6
	input.Zoom = 1e6
	UpdateCameraRig(e)
	if rig.TargetPitch != cfg.Rig.MaxPitch {
		t.Errorf("TargetPitch = %v, want clamped to %v", rig.TargetPitch, cfg.Rig.MaxPitch)
	}
	if rig.TargetDistance != cfg.Rig.MinDistance {
		t.Errorf("TargetDistance = %v, want clamped to %v", rig.TargetDistance, cfg.Rig.MinDistance)
	}

	input.OrbitDY = -1e6
	input.Zoom = -1e6
	UpdateCameraRig(e)
	if rig.TargetPitch != cfg.Rig.MinPitch {
		t.Errorf("TargetPitch = %v, want clamped to %v", rig.TargetPitch, cfg.Rig.MinPitch)
	}
	if rig.TargetDistance != cfg.Rig.MaxDistance {
		t.Errorf("TargetDistance = %v, want clamped to %v", rig.TargetDistance, cfg.Rig.MaxDistance)
	}
}

func TestRigOrientationPointsAlongForward(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	rig := rigData(t, e)

	got := rig.Orientation().Rotate(mgl64.Vec3{0, 0, 1})
	if got.Sub(rig.Forward()).Len() > 1e-9 {
		t.Errorf("orientation rotates +Z to %v, want forward %v", got, rig.Forward())
	}
}

func TestPoseDampsTowardTargets(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	currentSettings(e).AutoRotate = false

	rig := rigData(t, e)
	rig.TargetYaw = 1.4
	rig.TargetPitch = 0.9
	rig.TargetDistance = 20

	prevGap := math.Abs(rig.Yaw - rig.TargetYaw)
	for i := 0; i < 600; i++ {
		UpdateCameraRig(e)
		gap := math.Abs(rig.Yaw - rig.TargetYaw)
		if gap > prevGap {
			t.Fatalf("yaw overshot at tick %d: gap %v -> %v", i, prevGap, gap)
		}
		prevGap = gap
	}

	if math.Abs(rig.Yaw-1.4) > 1e-6 || math.Abs(rig.Pitch-0.9) > 1e-6 || math.Abs(rig.Distance-20) > 1e-6 {
		t.Errorf("pose did not converge: yaw %v pitch %v dist %v", rig.Yaw, rig.Pitch, rig.Distance)
	}
}
