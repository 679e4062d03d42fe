package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/kalpa123456/christmas-tree111/components"
	cfg "github.com/kalpa123456/christmas-tree111/config"
	"github.com/kalpa123456/christmas-tree111/gamemath"
	"github.com/kalpa123456/christmas-tree111/tags"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	skyImage *ebiten.Image

	// Reused between frames to avoid per-frame slice churn.
	ornamentOrder []*donburi.Entry
)

// viewProjection builds the camera matrices from the rig pose.
func viewProjection(rig *components.RigData) (view, proj mgl64.Mat4) {
	view = mgl64.LookAtV(rig.Position(), rig.LookAt, mgl64.Vec3{0, 1, 0})
	aspect := float64(cfg.C.Width) / float64(cfg.C.Height)
	proj = mgl64.Perspective(cfg.Rig.FovY, aspect, cfg.Rig.Near, cfg.Rig.Far)
	return view, proj
}

// projectPoint maps a world position to screen coordinates. Depth is the
// distance along the view axis; points behind the near plane are invisible.
func projectPoint(p mgl64.Vec3, view, proj mgl64.Mat4) (sx, sy, depth float64, visible bool) {
	vp := view.Mul4x1(p.Vec4(1))
	depth = -vp.Z()
	if depth <= cfg.Rig.Near {
		return 0, 0, depth, false
	}
	win := mgl64.Project(p, view, proj, 0, 0, cfg.C.Width, cfg.C.Height)
	sx = win.X()
	sy = float64(cfg.C.Height) - win.Y()

	const pad = 60.0
	visible = sx >= -pad && sx <= float64(cfg.C.Width)+pad &&
		sy >= -pad && sy <= float64(cfg.C.Height)+pad
	return sx, sy, depth, visible
}

// projectedHalfExtent converts a world-space size at the given depth to a
// screen-space half extent in pixels.
func projectedHalfExtent(worldSize, depth float64) float64 {
	focal := float64(cfg.C.Height) / 2 / math.Tan(cfg.Rig.FovY/2)
	return worldSize / 2 * focal / depth
}

// depthFade maps camera distance to a brightness factor in [0.25, 1].
func depthFade(depth float64) float64 {
	t := (depth - cfg.Render.DepthFadeNear) / (cfg.Render.DepthFadeFar - cfg.Render.DepthFadeNear)
	t = clamp(t, 0, 1)
	return 1 - 0.75*t
}

// DrawBackdrop fills the screen with the night-sky gradient.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	if skyImage == nil {
		skyImage = buildSkyGradient()
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(float64(w), float64(h)/float64(skyImage.Bounds().Dy()))
	screen.DrawImage(skyImage, drawOp)
}

func buildSkyGradient() *ebiten.Image {
	const steps = 256
	img := ebiten.NewImage(1, steps)
	top, bottom := cfg.Render.SkyTop, cfg.Render.SkyBottom
	for y := 0; y < steps; y++ {
		t := float64(y) / (steps - 1)
		img.Set(0, y, color.RGBA{
			lerpByte(top.R, bottom.R, t),
			lerpByte(top.G, bottom.G, t),
			lerpByte(top.B, bottom.B, t),
			255,
		})
	}
	return img
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// DrawPools renders every bulk pool as projected dots, spun by the pool's
// yaw and faded with distance. Dots are small enough that they do not need
// a global depth sort.
func DrawPools(e *ecs.ECS, screen *ebiten.Image) {
	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	rig := components.Rig.Get(rigEntry)
	view, proj := viewProjection(rig)

	tags.BulkPool.Each(e.World, func(entry *donburi.Entry) {
		pool := components.Pool.Get(entry)

		for i, p := range pool.Render {
			sx, sy, depth, visible := projectPoint(gamemath.RotateY(p, pool.Yaw), view, proj)
			if !visible {
				continue
			}

			r := projectedHalfExtent(pool.DotSize*2, depth)
			r = clamp(r, cfg.Render.MinDotPx, cfg.Render.MaxDotPx)

			c := color.RGBA{255, 255, 255, 255}
			if i < len(pool.Colors) {
				c = pool.Colors[i]
			}
			f := depthFade(depth)
			c = color.RGBA{
				uint8(float64(c.R) * f),
				uint8(float64(c.G) * f),
				uint8(float64(c.B) * f),
				c.A,
			}
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r), c, false)
		}
	})
}

// DrawStar renders the tree-top star with a soft pulsing glow. It fades
// out as the foliage disperses.
func DrawStar(e *ecs.ECS, screen *ebiten.Image) {
	starEntry, ok := tags.Star.First(e.World)
	if !ok {
		return
	}
	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	star := components.Star.Get(starEntry)
	if star.Alpha <= 0.01 {
		return
	}
	rig := components.Rig.Get(rigEntry)
	view, proj := viewProjection(rig)

	sx, sy, depth, visible := projectPoint(star.Position, view, proj)
	if !visible {
		return
	}

	r := projectedHalfExtent(cfg.Render.StarSize*star.Pulse*2, depth)
	c := cfg.Render.StarColor
	for _, glow := range []struct {
		scale float64
		alpha float64
	}{{3.0, 0.10}, {1.8, 0.25}, {1.0, 1.0}} {
		a := glow.alpha * star.Alpha
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r*glow.scale),
			color.RGBA{
				uint8(float64(c.R) * a),
				uint8(float64(c.G) * a),
				uint8(float64(c.B) * a),
				uint8(255 * a),
			}, true)
	}
}

// DrawOrnaments renders the interactive entities back to front. Each quad
// is placed by projecting its rotated local axes, so perspective and the
// damped rotation both read correctly on screen.
func DrawOrnaments(e *ecs.ECS, screen *ebiten.Image) {
	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	rig := components.Rig.Get(rigEntry)
	view, proj := viewProjection(rig)

	ornamentOrder = ornamentOrder[:0]
	tags.Ornament.Each(e.World, func(entry *donburi.Entry) {
		ornamentOrder = append(ornamentOrder, entry)
	})
	sort.Slice(ornamentOrder, func(i, j int) bool {
		a := components.HitArea.Get(ornamentOrder[i])
		b := components.HitArea.Get(ornamentOrder[j])
		return a.Depth > b.Depth
	})

	for _, entry := range ornamentOrder {
		o := components.Ornament.Get(entry)
		if o.Image == nil || o.Scale < 0.01 {
			continue
		}
		drawOrnamentQuad(screen, o, view, proj)
	}
}

func drawOrnamentQuad(screen *ebiten.Image, o *components.OrnamentData, view, proj mgl64.Mat4) {
	cx, cy, depth, visible := projectPoint(o.Position, view, proj)
	if !visible {
		return
	}

	half := o.Size * o.Scale / 2
	ex := o.Rotation.Rotate(mgl64.Vec3{1, 0, 0}).Mul(half)
	ey := o.Rotation.Rotate(mgl64.Vec3{0, 1, 0}).Mul(half)

	xx, xy, _, _ := projectPoint(o.Position.Add(ex), view, proj)
	yx, yy, _, _ := projectPoint(o.Position.Add(ey), view, proj)

	w := float64(o.Image.Bounds().Dx())
	h := float64(o.Image.Bounds().Dy())

	// Screen-space basis: +image-x along the projected local X axis,
	// +image-y (downward) against the projected local Y axis.
	ux, uy := (xx-cx)/(w/2), (xy-cy)/(w/2)
	vx, vy := (cx-yx)/(h/2), (cy-yy)/(h/2)

	var lin ebiten.GeoM
	lin.SetElement(0, 0, ux)
	lin.SetElement(0, 1, vx)
	lin.SetElement(1, 0, uy)
	lin.SetElement(1, 1, vy)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-w/2, -h/2)
	drawOp.GeoM.Concat(lin)
	drawOp.GeoM.Translate(cx, cy)

	f := float32(depthFade(depth))
	drawOp.ColorScale.Scale(f, f, f, 1)
	drawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(o.Image, drawOp)
}
