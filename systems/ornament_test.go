package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/gamemath"
	"github.com/kalpa123456/christmas-tree111/tags"
)

func ornamentStates(e *ecs.ECS) map[int]components.OrnamentState {
	states := map[int]components.OrnamentState{}
	tags.Ornament.Each(e.World, func(entry *donburi.Entry) {
		o := components.Ornament.Get(entry)
		states[o.Index] = o.State
	})
	return states
}

func TestSelectionIsIgnoredWhileClustered(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	for i := 0; i < 3; i++ {
		spawnTestOrnament(e, i, true)
	}

	SelectOrnament(e, 1)
	if got := appState(t, e).ActiveOrnament; got != components.NoActiveOrnament {
		t.Fatalf("clustered selection took effect, active = %d", got)
	}

	UpdateOrnaments(e)
	for idx, state := range ornamentStates(e) {
		if state != components.OrnamentIdle {
			t.Errorf("ornament %d: state = %v, want idle", idx, state)
		}
	}
}

func TestFocusAndSuppressLifecycle(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	for i := 0; i < 3; i++ {
		spawnTestOrnament(e, i, true)
	}

	ToggleFormation(e)
	app := appState(t, e)
	if app.Mode != components.ModeDispersed {
		t.Fatalf("mode after toggle = %v, want dispersed", app.Mode)
	}

	SelectOrnament(e, 1)
	if app.ActiveOrnament != 1 {
		t.Fatalf("active = %d, want 1", app.ActiveOrnament)
	}
	if !app.InteractionLocked() {
		t.Fatal("interaction not locked while an ornament is focused")
	}

	UpdateOrnaments(e)
	states := ornamentStates(e)
	if states[1] != components.OrnamentActive {
		t.Errorf("ornament 1: state = %v, want active", states[1])
	}
	for _, idx := range []int{0, 2} {
		if states[idx] != components.OrnamentSuppressed {
			t.Errorf("ornament %d: state = %v, want suppressed", idx, states[idx])
		}
	}

	active := 0
	for _, state := range states {
		if state == components.OrnamentActive {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("active ornaments = %d, want exactly 1", active)
	}

	// Selecting the focused ornament again releases everything.
	SelectOrnament(e, 1)
	if app.ActiveOrnament != components.NoActiveOrnament {
		t.Fatalf("active after reselect = %d, want none", app.ActiveOrnament)
	}
	if app.InteractionLocked() {
		t.Fatal("interaction still locked after release")
	}

	UpdateOrnaments(e)
	for idx, state := range ornamentStates(e) {
		if state != components.OrnamentIdle {
			t.Errorf("ornament %d after release: state = %v, want idle", idx, state)
		}
	}
}

func TestSelectingAnotherOrnamentMovesFocus(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	for i := 0; i < 3; i++ {
		spawnTestOrnament(e, i, true)
	}
	ToggleFormation(e)

	SelectOrnament(e, 0)
	SelectOrnament(e, 2)
	if got := appState(t, e).ActiveOrnament; got != 2 {
		t.Fatalf("active = %d, want 2", got)
	}
}

func TestToggleFormationClearsFocus(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	for i := 0; i < 3; i++ {
		spawnTestOrnament(e, i, true)
	}
	ToggleFormation(e)
	SelectOrnament(e, 1)

	ToggleFormation(e)
	app := appState(t, e)
	if app.ActiveOrnament != components.NoActiveOrnament {
		t.Fatalf("active after toggle = %d, want none", app.ActiveOrnament)
	}
	if app.Mode != components.ModeClustered {
		t.Fatalf("mode = %v, want clustered", app.Mode)
	}
}

func TestNonSelectableOrnamentCannotTakeFocus(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	spawnTestOrnament(e, 0, true)
	spawnTestOrnament(e, 1, false) // gift
	ToggleFormation(e)

	SelectOrnament(e, 1)
	if got := appState(t, e).ActiveOrnament; got != components.NoActiveOrnament {
		t.Fatalf("non-selectable ornament took focus, active = %d", got)
	}

	// A gift still steps aside when a photo is focused.
	SelectOrnament(e, 0)
	UpdateOrnaments(e)
	states := ornamentStates(e)
	if states[0] != components.OrnamentActive {
		t.Errorf("ornament 0: state = %v, want active", states[0])
	}
	if states[1] != components.OrnamentSuppressed {
		t.Errorf("gift: state = %v, want suppressed", states[1])
	}
}

func TestUnknownSelectionIndicesAreIgnored(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	for i := 0; i < 3; i++ {
		spawnTestOrnament(e, i, true)
	}
	ToggleFormation(e)

	for _, idx := range []int{-3, 7, components.NoActiveOrnament} {
		SelectOrnament(e, idx)
		if got := appState(t, e).ActiveOrnament; got != components.NoActiveOrnament {
			t.Fatalf("select(%d): active = %d, want none", idx, got)
		}
	}
}

func TestActiveOrnamentConvergesOnFocusPoint(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	for i := 0; i < 3; i++ {
		spawnTestOrnament(e, i, true)
	}
	ToggleFormation(e)
	SelectOrnament(e, 1)

	for i := 0; i < 600; i++ {
		UpdateOrnaments(e)
	}

	rig := rigData(t, e)
	want := rig.Position().Add(rig.Forward().Mul(cfg.Ornament.FocusDistance))
	o := ornamentByIndex(t, e, 1)
	if o.Position.Sub(want).Len() > 1e-3 {
		t.Errorf("focused position = %v, want %v", o.Position, want)
	}
	if math.Abs(o.Scale-cfg.Ornament.FocusScale) > 1e-3 {
		t.Errorf("focused scale = %v, want %v", o.Scale, cfg.Ornament.FocusScale)
	}

	wantRot := gamemath.LookRotation(rig.Forward().Mul(-1), worldUp)
	if dot := math.Abs(o.Rotation.Dot(wantRot)); dot < 1-1e-4 {
		t.Errorf("focused rotation off target, |dot| = %v", dot)
	}
}

func TestSuppressedOrnamentShrinksInPlace(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	for i := 0; i < 3; i++ {
		spawnTestOrnament(e, i, true)
	}
	ToggleFormation(e)
	SelectOrnament(e, 0)

	before := ornamentByIndex(t, e, 2).Position
	for i := 0; i < 600; i++ {
		UpdateOrnaments(e)
	}

	o := ornamentByIndex(t, e, 2)
	if o.Position.Sub(before).Len() > 1e-9 {
		t.Errorf("suppressed ornament drifted from %v to %v", before, o.Position)
	}
	if o.Scale > 1e-3 {
		t.Errorf("suppressed scale = %v, want ~0", o.Scale)
	}
}

func TestIdleDispersedOrnamentBillboardsAndConverges(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	spawnTestOrnament(e, 0, true)
	ToggleFormation(e)

	for i := 0; i < 600; i++ {
		UpdateOrnaments(e)
	}

	o := ornamentByIndex(t, e, 0)
	if o.Position.Sub(o.DispersedPos).Len() > 1e-3 {
		t.Errorf("idle dispersed position = %v, want %v", o.Position, o.DispersedPos)
	}
	if math.Abs(o.Scale-cfg.Ornament.RestScale) > 1e-6 {
		t.Errorf("idle scale = %v, want %v", o.Scale, cfg.Ornament.RestScale)
	}

	// The resting billboard is applied directly, not damped.
	rig := rigData(t, e)
	want := gamemath.LookRotation(rig.Position().Sub(o.Position).Normalize(), worldUp)
	if dot := math.Abs(o.Rotation.Dot(want)); dot < 1-1e-9 {
		t.Errorf("billboard rotation off camera, |dot| = %v", dot)
	}
}

func TestReleasedOrnamentReturnsToFormation(t *testing.T) {
	e := newTestECS(t, 1.0/60)
	spawnTestOrnament(e, 0, true)
	ToggleFormation(e)
	SelectOrnament(e, 0)
	for i := 0; i < 300; i++ {
		UpdateOrnaments(e)
	}

	SelectOrnament(e, 0) // release
	for i := 0; i < 600; i++ {
		UpdateOrnaments(e)
	}

	o := ornamentByIndex(t, e, 0)
	if o.Position.Sub(o.DispersedPos).Len() > 1e-3 {
		t.Errorf("released position = %v, want %v", o.Position, o.DispersedPos)
	}
	if math.Abs(o.Scale-cfg.Ornament.RestScale) > 1e-3 {
		t.Errorf("released scale = %v, want %v", o.Scale, cfg.Ornament.RestScale)
	}
}
