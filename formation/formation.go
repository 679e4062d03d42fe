// Package formation generates the two target layouts an entity pool can
// occupy: a cone band that reads as a tree silhouette, and a spherical shell
// the pool disperses onto. Sampling is pure given the pool's RNG; each pool
// draws its samples once at construction and never again.
package formation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind selects which of the two layouts to sample.
type Kind int

const (
	Clustered Kind = iota
	Dispersed
)

// Config holds the layout dimensions for one pool.
type Config struct {
	ConeHeight   float64 // vertical band of the cone, centered on the origin
	ConeRadius   float64 // radius at the bottom of the band
	RadiusJitter float64 // +/- jitter added to the cone radius

	ShellRadius    float64 // minimum dispersal radius
	ShellThickness float64 // random extra radius
}

// Sample draws one position in the requested layout.
//
// Clustered picks a height uniformly over the band and places the point on a
// cone whose radius shrinks linearly to zero at the top, with a little radial
// jitter so the surface does not look machined.
//
// Dispersed picks a direction uniformly over the sphere using
// phi = acos(2u-1); sampling phi uniformly instead would pile points up at
// the poles. The radius is drawn independently of the direction.
func Sample(rng *rand.Rand, kind Kind, cfg Config) mgl64.Vec3 {
	switch kind {
	case Clustered:
		t := rng.Float64() // 0 = bottom of the band, 1 = top
		y := (t - 0.5) * cfg.ConeHeight
		r := cfg.ConeRadius*(1-t) + (rng.Float64()*2-1)*cfg.RadiusJitter
		if r < 0 {
			r = 0
		}
		a := rng.Float64() * 2 * math.Pi
		return mgl64.Vec3{r * math.Cos(a), y, r * math.Sin(a)}

	case Dispersed:
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		r := cfg.ShellRadius + rng.Float64()*cfg.ShellThickness
		sp := math.Sin(phi)
		return mgl64.Vec3{
			r * sp * math.Cos(theta),
			r * math.Cos(phi),
			r * sp * math.Sin(theta),
		}

	default:
		panic(fmt.Sprintf("formation: unknown kind %d", kind))
	}
}

// BuildPair builds the two immutable formation buffers for a pool of n
// entities. A zero count yields empty buffers; a negative count is a
// programming error and panics.
func BuildPair(rng *rand.Rand, n int, cfg Config) (clustered, dispersed []mgl64.Vec3) {
	if n < 0 {
		panic(fmt.Sprintf("formation: negative pool count %d", n))
	}
	clustered = make([]mgl64.Vec3, n)
	dispersed = make([]mgl64.Vec3, n)
	for i := 0; i < n; i++ {
		clustered[i] = Sample(rng, Clustered, cfg)
		dispersed[i] = Sample(rng, Dispersed, cfg)
	}
	return clustered, dispersed
}

// Apex returns the top of the cone, where the star sits.
func Apex(cfg Config) mgl64.Vec3 {
	return mgl64.Vec3{0, cfg.ConeHeight / 2, 0}
}
