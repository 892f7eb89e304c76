package render

import (
	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/common"
)

// actorView is what the renderer knows about one actor, rebuilt only from
// events.
type actorView struct {
	id      common.Actor
	x       float64
	y       float64
	flipped bool
	anim    string
	// dirty is set when anim changed and the animation must restart.
	dirty bool
}

func newActorView(a battle.Actor) actorView {
	return actorView{id: a.ID, x: a.X, y: a.Y, flipped: a.Flipped, anim: a.Animation, dirty: true}
}

// apply folds ev into the view and reports whether it was about this actor.
func (v *actorView) apply(ev battle.Event) bool {
	switch e := ev.(type) {
	case battle.PositionChanged:
		if e.Actor != v.id {
			return false
		}
		v.x = e.X
	case battle.PositionChanged2D:
		if e.Actor != v.id {
			return false
		}
		v.x, v.y = e.X, e.Y
	case battle.AnimationChanged:
		if e.Actor != v.id {
			return false
		}
		v.anim = e.Animation
		v.dirty = true
	case battle.FlipChanged:
		if e.Actor != v.id {
			return false
		}
		v.flipped = e.Flipped
	default:
		return false
	}
	return true
}
