package components

import "github.com/yohamta/donburi"

// FormationMode is the display-wide target layout.
type FormationMode int

const (
	ModeClustered FormationMode = iota
	ModeDispersed
)

// NoActiveOrnament marks the "nothing focused" state.
const NoActiveOrnament = -1

// AppStateData is the single process-wide interaction state. Every
// ornament derives its Idle/Active/Suppressed state from ActiveOrnament,
// which is the only record of what is focused; per-ornament flags would
// be free to desynchronize.
type AppStateData struct {
	Mode           FormationMode
	ActiveOrnament int // ornament index, or NoActiveOrnament
}

// InteractionLocked reports whether camera controls should be disabled.
// True exactly while an ornament is focused.
func (a *AppStateData) InteractionLocked() bool {
	return a.ActiveOrnament != NoActiveOrnament
}

var AppState = donburi.NewComponentType[AppStateData]()
