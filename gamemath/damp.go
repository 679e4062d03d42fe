package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Damp moves current toward target with an exponential time constant, so the
// result is independent of how the elapsed time is sliced into frames. It
// never overshoots: the remaining distance is scaled by exp(-lambda*dt).
func Damp(current, target, lambda, dt float64) float64 {
	return target + (current-target)*math.Exp(-lambda*dt)
}

// DampV3 is Damp applied per component.
func DampV3(current, target mgl64.Vec3, lambda, dt float64) mgl64.Vec3 {
	k := math.Exp(-lambda * dt)
	return target.Add(current.Sub(target).Mul(k))
}

// DampQuat slerps current toward target with the same exponential time
// constant as Damp. The target is flipped to the same hemisphere first so the
// interpolation always takes the short way around.
func DampQuat(current, target mgl64.Quat, lambda, dt float64) mgl64.Quat {
	if current.Dot(target) < 0 {
		target = mgl64.Quat{W: -target.W, V: target.V.Mul(-1)}
	}
	t := 1 - math.Exp(-lambda*dt)
	return mgl64.QuatSlerp(current, target, t).Normalize()
}

// LookRotation returns the rotation that points local +Z along forward,
// keeping local +Y as close to up as the forward direction allows.
// A degenerate forward (zero, or parallel to up) returns the identity.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	if forward.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	f := forward.Normalize()
	r := up.Cross(f)
	if r.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	r = r.Normalize()
	u := f.Cross(r)

	m := mgl64.Mat4{
		r[0], r[1], r[2], 0,
		u[0], u[1], u[2], 0,
		f[0], f[1], f[2], 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(m).Normalize()
}

// WrapAngle keeps an accumulating angle within (-2pi, 2pi) so long sessions
// never lose float precision on a spin counter.
func WrapAngle(a float64) float64 {
	return math.Mod(a, 2*math.Pi)
}

// RotateY rotates p around the world Y axis.
func RotateY(p mgl64.Vec3, angle float64) mgl64.Vec3 {
	s, c := math.Sincos(angle)
	return mgl64.Vec3{p[0]*c + p[2]*s, p[1], -p[0]*s + p[2]*c}
}
