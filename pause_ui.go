package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/topdown/common"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	pausePanelColor  = color.NRGBA{A: 200}
	pauseButtonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	pauseHoverColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// pauseMenu lays out labels and buttons in one centered column.
type pauseMenu struct {
	face  ebtext.Face
	panel *widget.Container
}

func newPauseMenu() *pauseMenu {
	m := &pauseMenu{face: ebtext.NewGoXFace(basicfont.Face7x13)}
	m.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(pausePanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	return m
}

func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}

func (m *pauseMenu) label(text string, c color.Color) {
	m.panel.AddChild(widget.NewText(
		widget.TextOpts.Text(text, &m.face, c),
		widget.TextOpts.WidgetOpts(centered()),
	))
}

func (m *pauseMenu) button(text string, onClick func()) {
	m.panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(pauseButtonColor),
			Hover:   imageui.NewNineSliceColor(pauseHoverColor),
			Pressed: imageui.NewNineSliceColor(pauseButtonColor),
		}),
		widget.ButtonOpts.Text(text, &m.face, &widget.ButtonTextColor{Idle: colornames.White}),
		widget.ButtonOpts.TextPadding(&widget.Insets{Left: 12, Right: 12, Top: 4, Bottom: 4}),
		widget.ButtonOpts.WidgetOpts(centered()),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
	))
}

// NewPauseUI builds the overlay shown while the game is paused. While it is
// up the clock hands out a zero step and the world is not updated.
func NewPauseUI(g *Game) *ebitenui.UI {
	m := newPauseMenu()
	m.label("Paused", colornames.White)
	m.button("Resume", func() { g.paused = false })
	m.button("Quit", func() { g.quit = true })
	m.label("Esc resumes, F12 quits", colornames.Darkgray)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(m.panel)
	return &ebitenui.UI{Container: root}
}
