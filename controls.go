package main

import (
	"fmt"
	"image/color"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Controls is the Start / Stop / Reset strip in the top-right corner. It
// uses colored nine-slices and the built-in basic font, so it needs no theme
// assets.
type Controls struct {
	ui      *ebitenui.UI
	status  *widget.Text
	game    *Game
	Visible bool
}

func NewControls(g *Game) *Controls {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	c := &Controls{game: g, Visible: true}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	c.status = widget.NewText(
		widget.TextOpts.Text("", face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(c.status)
	panel.AddChild(button("Start", g.battle.Start))
	panel.AddChild(button("Stop", g.battle.Stop))
	panel.AddChild(button("Reset", g.battle.Reset))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	c.ui = &ebitenui.UI{Container: root}
	return c
}

func (c *Controls) Update() {
	if !c.Visible {
		return
	}
	s := c.game.battle.Snapshot()
	label := s.State.String()
	if s.State == battle.StateFighting {
		label = fmt.Sprintf("Round %d/%d", s.Round, c.game.battle.Tuning().MaxRounds)
	}
	if !s.Running {
		label = "Stopped"
	}
	c.status.Label = label
	c.ui.Update()
}

func (c *Controls) Draw(screen *ebiten.Image) {
	if !c.Visible {
		return
	}
	c.ui.Draw(screen)
}
