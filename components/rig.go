package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/kalpa123456/christmas-tree111/gamemath"
)

// RigData is the orbit camera: spherical coordinates around a fixed
// look-at point, with separate current and target values so the pose can
// damp toward user input instead of snapping.
type RigData struct {
	Yaw      float64
	Pitch    float64
	Distance float64

	TargetYaw      float64
	TargetPitch    float64
	TargetDistance float64

	LookAt mgl64.Vec3
}

// Position returns the camera position in world space.
func (r *RigData) Position() mgl64.Vec3 {
	cp := math.Cos(r.Pitch)
	return r.LookAt.Add(mgl64.Vec3{
		r.Distance * cp * math.Sin(r.Yaw),
		r.Distance * math.Sin(r.Pitch),
		r.Distance * cp * math.Cos(r.Yaw),
	})
}

// Forward returns the unit view direction.
func (r *RigData) Forward() mgl64.Vec3 {
	return r.LookAt.Sub(r.Position()).Normalize()
}

// Orientation returns the camera rotation as a quaternion.
func (r *RigData) Orientation() mgl64.Quat {
	return gamemath.LookRotation(r.Forward(), mgl64.Vec3{0, 1, 0})
}

var Rig = donburi.NewComponentType[RigData]()
