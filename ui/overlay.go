package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Mode selects which panel the overlay shows.
type Mode int

const (
	ModeHidden Mode = iota
	ModePaused
	ModeTutorial
	ModeGameOver
)

// OverlayState is what the overlay mirrors from the session each frame.
type OverlayState struct {
	Mode         Mode
	TutorialText string
	MusicEnabled bool
}

// Overlay holds the clickable panels drawn over a frozen session.
type Overlay struct {
	// Callbacks
	OnResume      func()
	OnRestart     func()
	OnDismiss     func()
	OnToggleMusic func()
	OnQuit        func()

	pause    *ebitenui.UI
	tutorial *ebitenui.UI
	gameOver *ebitenui.UI

	tutorialText *widget.Text
	musicButton  *widget.Button

	state OverlayState

	titleFace  text.Face
	normalFace text.Face
}

// NewOverlay builds every panel up front; Sync picks the one on screen.
func NewOverlay(width int) *Overlay {
	o := &Overlay{}
	o.loadFonts()
	o.pause = o.buildPause()
	o.tutorial = o.buildTutorial(width)
	o.gameOver = o.buildGameOver()
	return o
}

func (o *Overlay) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	o.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	o.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
}

// Sync updates labels and the visible panel.
func (o *Overlay) Sync(state OverlayState) {
	o.state = state
	if o.tutorialText != nil {
		o.tutorialText.Label = state.TutorialText
	}
	if o.musicButton != nil {
		if textWidget := o.musicButton.Text(); textWidget != nil {
			textWidget.Label = musicLabel(state.MusicEnabled)
		}
	}
}

func (o *Overlay) Mode() Mode {
	return o.state.Mode
}

func (o *Overlay) active() *ebitenui.UI {
	switch o.state.Mode {
	case ModePaused:
		return o.pause
	case ModeTutorial:
		return o.tutorial
	case ModeGameOver:
		return o.gameOver
	}
	return nil
}

func (o *Overlay) Update() {
	if ui := o.active(); ui != nil {
		ui.Update()
	}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if ui := o.active(); ui != nil {
		ui.Draw(screen)
	}
}

func (o *Overlay) buildPause() *ebitenui.UI {
	root, panel := o.panel()
	panel.AddChild(o.label("PAUSED"))
	panel.AddChild(o.button("Resume", func() { call(o.OnResume) }))
	panel.AddChild(o.button("Restart", func() { call(o.OnRestart) }))
	o.musicButton = o.button(musicLabel(true), func() { call(o.OnToggleMusic) })
	panel.AddChild(o.musicButton)
	panel.AddChild(o.button("Main Menu", func() { call(o.OnQuit) }))
	return &ebitenui.UI{Container: root}
}

func (o *Overlay) buildTutorial(width int) *ebitenui.UI {
	root, panel := o.panel()
	panel.AddChild(o.label("NEW POWER-UP"))
	o.tutorialText = widget.NewText(
		widget.TextOpts.Text("", &o.normalFace, color.RGBA{220, 220, 220, 255}),
		widget.TextOpts.MaxWidth(float64(width)*0.7),
	)
	panel.AddChild(o.tutorialText)
	panel.AddChild(o.button("Got it", func() { call(o.OnDismiss) }))
	return &ebitenui.UI{Container: root}
}

func (o *Overlay) buildGameOver() *ebitenui.UI {
	root, panel := o.panel()
	panel.AddChild(o.button("Restart", func() { call(o.OnRestart) }))
	panel.AddChild(o.button("Main Menu", func() { call(o.OnQuit) }))

	// The score is drawn by the game over renderer above this panel.
	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
		Padding:            &widget.Insets{Bottom: 240},
	}
	return &ebitenui.UI{Container: root}
}

// panel returns a transparent full-screen root and the centered column
// inside it.
func (o *Overlay) panel() (*widget.Container, *widget.Container) {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	padding := widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}
	column := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(column)
	return root, column
}

func (o *Overlay) label(str string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(str, &o.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
}

func (o *Overlay) button(str string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 44),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(str, &o.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{220, 220, 220, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func musicLabel(on bool) string {
	if on {
		return "Music: On"
	}
	return "Music: Off"
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
