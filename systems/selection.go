package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	"github.com/kalpa123456/christmas-tree111/tags"
)

// SelectOrnament applies the selection contract: selection only works in
// dispersed mode, selecting the focused ornament again clears the focus,
// and selecting a different one moves the focus. Unknown and
// non-selectable indices are ignored.
func SelectOrnament(e *ecs.ECS, index int) {
	appEntry, ok := components.AppState.First(e.World)
	if !ok {
		return
	}
	app := components.AppState.Get(appEntry)

	if app.Mode != components.ModeDispersed {
		return
	}
	if !ornamentSelectable(e, index) {
		return
	}

	if app.ActiveOrnament == index {
		app.ActiveOrnament = components.NoActiveOrnament
	} else {
		app.ActiveOrnament = index
	}
}

// ClearActiveOrnament drops any focus without touching the formation mode.
func ClearActiveOrnament(e *ecs.ECS) {
	appEntry, ok := components.AppState.First(e.World)
	if !ok {
		return
	}
	components.AppState.Get(appEntry).ActiveOrnament = components.NoActiveOrnament
}

// ToggleFormation flips the display-wide mode, retargets every pool, and
// always clears the active ornament so nothing stays focused across a
// mode change.
func ToggleFormation(e *ecs.ECS) {
	appEntry, ok := components.AppState.First(e.World)
	if !ok {
		return
	}
	app := components.AppState.Get(appEntry)

	if app.Mode == components.ModeClustered {
		app.Mode = components.ModeDispersed
	} else {
		app.Mode = components.ModeClustered
	}
	app.ActiveOrnament = components.NoActiveOrnament

	dispersed := app.Mode == components.ModeDispersed
	tags.BulkPool.Each(e.World, func(entry *donburi.Entry) {
		components.Morph.Get(entry).TargetDispersed = dispersed
	})

	restartHint(e)
}

func ornamentSelectable(e *ecs.ECS, index int) bool {
	found := false
	tags.Ornament.Each(e.World, func(entry *donburi.Entry) {
		o := components.Ornament.Get(entry)
		if o.Index == index && o.Selectable {
			found = true
		}
	})
	return found
}
