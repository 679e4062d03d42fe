package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/systems"
	"github.com/kalpa123456/christmas-tree111/systems/factory"
	"github.com/kalpa123456/christmas-tree111/ui"
)

// SceneChanger switches the game to another scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TreeScene is the whole display: the morphing pools, the ornaments, the
// orbit rig, and the overlay.
type TreeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	overlay      *ui.Overlay
	once         sync.Once
}

// NewTreeScene creates the display scene.
func NewTreeScene(sc SceneChanger) *TreeScene {
	return &TreeScene{sceneChanger: sc}
}

func (ts *TreeScene) Update() {
	ts.once.Do(ts.configure)
	ts.overlay.Update()
	ts.ecs.Update()
	ts.syncOverlay()
}

func (ts *TreeScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.overlay.UI.Draw(screen)
}

func (ts *TreeScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())

	// Clock first: everything downstream reads its delta.
	world.AddSystem(systems.UpdateClock)
	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdatePicking)

	world.AddSystem(systems.UpdateMorph)
	world.AddSystem(systems.UpdateCameraRig)
	world.AddSystem(systems.UpdateOrnaments)
	world.AddSystem(systems.UpdateHitAreas)

	world.AddSystem(systems.UpdateEffects)
	world.AddSystem(systems.UpdateSettings)

	world.AddRenderer(cfg.Default, systems.DrawBackdrop)
	world.AddRenderer(cfg.Default, systems.DrawPools)
	world.AddRenderer(cfg.Default, systems.DrawStar)
	world.AddRenderer(cfg.Default, systems.DrawOrnaments)
	world.AddRenderer(cfg.Default, systems.DrawHUD)

	ts.ecs = world

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	factory.CreateClock(ts.ecs)
	factory.CreateInput(ts.ecs)
	factory.CreateAppState(ts.ecs)
	factory.CreateSettings(ts.ecs)
	factory.CreateSpace(ts.ecs)
	factory.CreateRig(ts.ecs)

	factory.CreateFoliagePool(ts.ecs, rng)
	factory.CreateLightsPool(ts.ecs, rng)
	factory.CreateOrnaments(ts.ecs, rng)
	factory.CreateStar(ts.ecs)
	factory.CreateHint(ts.ecs)

	ts.overlay = ui.NewOverlay(func() {
		systems.ToggleFormation(ts.ecs)
	})
}

// syncOverlay keeps the button label matching the mode, which can change
// through the keyboard as well as the button itself.
func (ts *TreeScene) syncOverlay() {
	entry, ok := components.AppState.First(ts.ecs.World)
	if !ok {
		return
	}
	ts.overlay.SetMode(components.AppState.Get(entry).Mode)
}
