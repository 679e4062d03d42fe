package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/kalpa123456/christmas-tree111/components"
)

// Overlay is the ebitenui layer over the scene: the formation toggle
// button and the title line.
type Overlay struct {
	UI *ebitenui.UI

	// Callback into the scene's ECS
	OnToggleFormation func()

	toggleButton *widget.Button
	titleFace    text.Face
	buttonFace   text.Face
}

// NewOverlay builds the overlay. onToggleFormation runs when the user
// presses the scatter/gather button.
func NewOverlay(onToggleFormation func()) *Overlay {
	ov := &Overlay{
		OnToggleFormation: onToggleFormation,
	}
	ov.loadFonts()
	ov.buildUI()
	return ov
}

func (ov *Overlay) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	ov.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	ov.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (ov *Overlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(14)),
		)),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("christmas tree", &ov.titleFace, &widget.LabelColor{
			Idle: color.RGBA{230, 230, 240, 255},
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionStart,
					VerticalPosition:   widget.AnchorLayoutPositionStart,
				}),
			),
		),
	)
	rootContainer.AddChild(title)

	ov.toggleButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(110, 30),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ButtonOpts.Image(ov.buttonImage()),
		widget.ButtonOpts.Text("SCATTER", &ov.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 244, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ov.OnToggleFormation != nil {
				ov.OnToggleFormation()
			}
		}),
	)
	rootContainer.AddChild(ov.toggleButton)

	ov.UI = &ebitenui.UI{Container: rootContainer}
}

func (ov *Overlay) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 60, 50, 220})
	hover := image.NewNineSliceColor(color.RGBA{55, 85, 65, 230})
	pressed := image.NewNineSliceColor(color.RGBA{30, 45, 38, 220})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// SetMode updates the button label to name the action the press performs.
func (ov *Overlay) SetMode(mode components.FormationMode) {
	if ov.toggleButton == nil {
		return
	}
	if textWidget := ov.toggleButton.Text(); textWidget != nil {
		if mode == components.ModeClustered {
			textWidget.Label = "SCATTER"
		} else {
			textWidget.Label = "GATHER"
		}
	}
}

// Update advances the widget state machine. Call once per frame.
func (ov *Overlay) Update() {
	ov.UI.Update()
}
