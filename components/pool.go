package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PoolData holds one bulk particle pool. FormationA and FormationB are
// written once at construction and never mutated afterwards; Render is
// recomputed from them every tick and is write-only output for the
// renderer. Blending must never read Render back as a source, otherwise
// repeated in-place blends accumulate error and the pool can no longer
// return exactly to either formation.
type PoolData struct {
	FormationA []mgl64.Vec3 // clustered layout, immutable after construction
	FormationB []mgl64.Vec3 // dispersed layout, immutable after construction
	Render     []mgl64.Vec3 // derived output, rewritten every tick

	Colors []color.RGBA // per-particle color, optional

	Yaw     float64 // whole-pool spin applied at draw time
	DotSize float64 // world-space particle radius
}

// Count returns the pool's entity count.
func (p *PoolData) Count() int { return len(p.FormationA) }

var Pool = donburi.NewComponentType[PoolData]()
