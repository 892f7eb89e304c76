package battle

import "github.com/STAR-FALL-00/work-hours-timer/common"

// Actor is the kinematic and presentation state of one character. Y is only
// ever non-zero for the boss while it is mid-jump. Animation holds the last
// emitted id and is what animation events are de-duplicated against.
type Actor struct {
	ID        common.Actor
	X         float64
	Y         float64
	VX        float64
	Flipped   bool
	Animation string
}

func newActor(id common.Actor, x float64, flipped bool) Actor {
	return Actor{ID: id, X: x, Flipped: flipped, Animation: common.AnimIdle}
}

// swapAnimation records id and reports whether it differs from the last one.
func (a *Actor) swapAnimation(id string) bool {
	if a.Animation == id {
		return false
	}
	a.Animation = id
	return true
}
