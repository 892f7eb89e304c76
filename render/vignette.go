// Package render is the ebiten presentation of the battle vignette. It knows
// the choreography only through its events.
package render

import (
	"fmt"
	"image/color"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const historySize = 6

// Vignette draws the corridor, both actors and a short event history.
type Vignette struct {
	layout Layout
	queue  battle.EventQueue
	unsub  func()
	cues   *Cues

	heroSheet *ebiten.Image
	bossSheet *ebiten.Image
	hero      actorView
	boss      actorView
	heroAnim  *Animation
	bossAnim  *Animation

	state   battle.State
	history []string
	face    ebtext.Face

	// ShowHistory draws the recent event lines under the corridor.
	ShowHistory bool
}

// NewVignette subscribes to c and seeds the views from its snapshot. cues
// may be nil.
func NewVignette(c *battle.Choreographer, layout Layout, cues *Cues) *Vignette {
	s := c.Snapshot()
	v := &Vignette{
		layout:    layout,
		cues:      cues,
		heroSheet: ebiten.NewImageFromImage(Sheet(common.Hero)),
		bossSheet: ebiten.NewImageFromImage(Sheet(common.Boss)),
		hero:      newActorView(s.Hero),
		boss:      newActorView(s.Boss),
		state:     s.State,
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
	}
	v.unsub = c.Subscribe(v.queue.Push)
	return v
}

// Close stops listening to the choreographer.
func (v *Vignette) Close() {
	if v.unsub != nil {
		v.unsub()
		v.unsub = nil
	}
}

// Update applies the events published since the last call and advances the
// sprite animations. Call once per game update.
func (v *Vignette) Update() {
	for _, ev := range v.queue.Drain() {
		v.apply(ev)
	}
	v.heroAnim = v.sync(&v.hero, v.heroSheet, v.heroAnim)
	v.bossAnim = v.sync(&v.boss, v.bossSheet, v.bossAnim)
	v.heroAnim.Update()
	v.bossAnim.Update()
}

func (v *Vignette) apply(ev battle.Event) {
	if !v.hero.apply(ev) && !v.boss.apply(ev) {
		if e, ok := ev.(battle.StateChanged); ok {
			v.state = e.State
		}
	}
	v.cues.Handle(ev)

	switch ev.Kind() {
	case battle.KindPosition, battle.KindPosition2D:
		// too chatty for the history
	default:
		v.history = append(v.history, fmt.Sprint(ev))
		if len(v.history) > historySize {
			v.history = v.history[len(v.history)-historySize:]
		}
	}
}

func (v *Vignette) sync(view *actorView, sheet *ebiten.Image, current *Animation) *Animation {
	if !view.dirty && current != nil {
		return current
	}
	view.dirty = false
	return NewAnimation(sheet, view.anim)
}

// State returns the last phase seen on the event stream.
func (v *Vignette) State() battle.State {
	return v.state
}

func (v *Vignette) Draw(screen *ebiten.Image) {
	l := v.layout
	w := float32(l.Width)

	// floor and start marks
	vector.DrawFilledRect(screen, 0, float32(l.GroundY), w, float32(l.Height)-float32(l.GroundY), colornames.Darkslategray, false)
	for _, x := range []float64{l.MinX, l.MaxX} {
		sx, sy := l.ToScreen(x, 0)
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(sx), float32(sy)+6, 1, colornames.Lightgrey, false)
	}

	// boss shadow shrinks with height
	if v.boss.y > 0 {
		sx, sy := l.ToScreen(v.boss.x, 0)
		half := float32(FrameSize*l.Scale) / 3 * float32(1-v.boss.y/(v.boss.y+40))
		vector.DrawFilledRect(screen, float32(sx)-half, float32(sy)-2, half*2, 3, color.RGBA{A: 90}, false)
	}

	v.drawActor(screen, v.boss, v.bossAnim)
	v.drawActor(screen, v.hero, v.heroAnim)

	v.drawText(screen, v.state.String(), 8, 8, colornames.White)
	if v.ShowHistory {
		y := l.GroundY + 8
		for _, line := range v.history {
			v.drawText(screen, line, 8, y, colornames.Lightgrey)
			y += 14
		}
	}
}

func (v *Vignette) drawActor(screen *ebiten.Image, view actorView, anim *Animation) {
	l := v.layout
	x, y := l.SpriteOrigin(view.x, view.y)
	op := &ebiten.DrawImageOptions{}
	if view.flipped {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(FrameSize, 0)
	}
	op.GeoM.Scale(l.Scale, l.Scale)
	op.GeoM.Translate(x, y)
	anim.Draw(screen, op)
}

func (v *Vignette) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, v.face, op)
}
