package components

import "github.com/yohamta/donburi"

// MorphData is the blend state for one pool: a single scalar mix in [0,1]
// and the direction it is converging toward. Mix is the only mutable state
// driving bulk positions.
type MorphData struct {
	Mix             float64
	TargetDispersed bool
	Rate            float64 // convergence rate, 1/s
}

// Target returns the value Mix converges toward.
func (m *MorphData) Target() float64 {
	if m.TargetDispersed {
		return 1
	}
	return 0
}

var Morph = donburi.NewComponentType[MorphData]()
