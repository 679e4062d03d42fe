package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/fonts"
)

// DrawHUD renders the hint caption and the optional FPS readout. The
// mode toggle button itself is an ebitenui overlay owned by the scene.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	appEntry, ok := components.AppState.First(e.World)
	if !ok {
		return
	}
	app := components.AppState.Get(appEntry)

	if hintEntry, ok := components.Hint.First(e.World); ok {
		hint := components.Hint.Get(hintEntry)
		if hint.Alpha > 0.01 {
			caption := cfg.HUD.HintClustered
			if app.Mode == components.ModeDispersed {
				caption = cfg.HUD.HintDispersed
			}
			drawCenteredCaption(screen, caption, hint.Alpha)
		}
	}

	if cfg.Debug.ShowFPS {
		fpsStr := fmt.Sprintf("%.0f fps", ebiten.ActualFPS())
		text.Draw(screen, fpsStr, fonts.Small.Get(), cfg.HUD.Margin, cfg.HUD.Margin+10, cfg.DimWhite)
	}
}

func drawCenteredCaption(screen *ebiten.Image, caption string, alpha float64) {
	fontFace := fonts.Regular.Get()

	// Rough centering; the caption font is close to monospaced at this size.
	textWidth := len(caption) * 7
	x := cfg.C.Width/2 - textWidth/2
	y := cfg.C.Height - cfg.HUD.Margin*2

	c := cfg.HUD.HintColor
	faded := color.RGBA{
		uint8(float64(c.R) * alpha),
		uint8(float64(c.G) * alpha),
		uint8(float64(c.B) * alpha),
		uint8(float64(c.A) * alpha),
	}
	text.Draw(screen, caption, fontFace, x, y, faded)
}
