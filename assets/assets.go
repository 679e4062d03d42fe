package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/kalpa123456/christmas-tree111/config"
)

// Placeholder textures are generated instead of shipped: the display only
// needs a handful of distinct, recognizable quads, and generation keeps
// the repo asset-free.

const (
	photoTexSize = 128
	photoBorder  = 10
	giftTexSize  = 96
)

var photoHues = []color.RGBA{
	{214, 120, 90, 255},
	{90, 140, 200, 255},
	{120, 180, 120, 255},
	{200, 170, 90, 255},
	{170, 110, 180, 255},
	{110, 190, 190, 255},
}

var ornamentSources []*ebiten.Image
var giftImages []*ebiten.Image

// OrnamentSource returns the photo texture for an ornament slot. The pool
// of ornaments may exceed the number of distinct sources; slot i reuses
// source i modulo the source count.
func OrnamentSource(slot int) *ebiten.Image {
	if ornamentSources == nil {
		n := cfg.Ornament.ImageSources
		ornamentSources = make([]*ebiten.Image, n)
		for i := 0; i < n; i++ {
			ornamentSources[i] = buildPhoto(i)
		}
	}
	return ornamentSources[slot%len(ornamentSources)]
}

// GiftImage returns the texture for a gift-box shape.
func GiftImage(slot int) *ebiten.Image {
	if giftImages == nil {
		n := len(cfg.Render.GiftPalette)
		giftImages = make([]*ebiten.Image, n)
		for i := 0; i < n; i++ {
			giftImages[i] = buildGift(cfg.Render.GiftPalette[i])
		}
	}
	return giftImages[slot%len(giftImages)]
}

// buildPhoto draws a framed placeholder photo: white border, tinted field,
// and a simple per-source motif so sources stay tellable apart.
func buildPhoto(source int) *ebiten.Image {
	img := ebiten.NewImage(photoTexSize, photoTexSize)
	img.Fill(color.RGBA{240, 240, 235, 255})

	hue := photoHues[source%len(photoHues)]
	inner := float32(photoTexSize - 2*photoBorder)
	vector.DrawFilledRect(img, photoBorder, photoBorder, inner, inner, hue, false)

	// Motif: a pale circle whose position walks with the source index.
	cx := float32(photoBorder) + inner*(0.3+0.1*float32(source%5))
	cy := float32(photoBorder) + inner*(0.35+0.08*float32(source%4))
	pale := color.RGBA{
		uint8(min(int(hue.R)+60, 255)),
		uint8(min(int(hue.G)+60, 255)),
		uint8(min(int(hue.B)+60, 255)),
		255,
	}
	vector.DrawFilledCircle(img, cx, cy, inner*0.22, pale, true)

	// Ground band across the lower third.
	dark := color.RGBA{hue.R / 2, hue.G / 2, hue.B / 2, 255}
	band := inner * 0.3
	vector.DrawFilledRect(img, photoBorder, photoTexSize-photoBorder-band, inner, band, dark, false)

	return img
}

func buildGift(c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(giftTexSize, giftTexSize)
	img.Fill(c)

	ribbon := color.RGBA{245, 235, 200, 255}
	const rw = 12
	vector.DrawFilledRect(img, giftTexSize/2-rw/2, 0, rw, giftTexSize, ribbon, false)
	vector.DrawFilledRect(img, 0, giftTexSize/2-rw/2, giftTexSize, rw, ribbon, false)

	lid := color.RGBA{c.R / 2, c.G / 2, c.B / 2, 255}
	vector.DrawFilledRect(img, 0, 0, giftTexSize, 10, lid, false)

	return img
}
