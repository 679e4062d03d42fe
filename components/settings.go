package components

import "github.com/yohamta/donburi"

// SettingsData is the runtime copy of the persisted display settings.
type SettingsData struct {
	AutoRotate   bool
	ShowHints    bool
	DensityIndex int

	Dirty bool // set when a value changes, cleared after a save
}

var Settings = donburi.NewComponentType[SettingsData]()
