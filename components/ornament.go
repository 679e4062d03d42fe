package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// OrnamentState is derived every tick from AppStateData.ActiveOrnament;
// it is stored only so the renderer and tests can read the last resolution.
type OrnamentState int

const (
	OrnamentIdle OrnamentState = iota
	OrnamentActive
	OrnamentSuppressed
)

// OrnamentData is one interactive entity: a photo or a gift shape hanging
// in the scene. Formation positions are fixed at creation; the current
// transform damps toward whichever destination the state selects.
type OrnamentData struct {
	Index int

	FormationPos mgl64.Vec3 // immutable
	DispersedPos mgl64.Vec3 // immutable

	Position mgl64.Vec3
	Scale    float64
	Rotation mgl64.Quat

	State OrnamentState

	Image      *ebiten.Image
	Size       float64 // world-space edge length at scale 1
	Selectable bool    // photos yes, gift shapes no
}

var Ornament = donburi.NewComponentType[OrnamentData]()
