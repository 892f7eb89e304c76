// Package motion holds the closed-form movement used by the vignette: the
// boss's parabolic jump and the stepped linear glides used for knockback,
// rolls and the hero's walk home.
package motion

import (
	"math"

	"github.com/STAR-FALL-00/work-hours-timer/common"
)

// Arc is a parabolic hop from StartX to TargetX peaking at Height.
type Arc struct {
	StartX  float64
	TargetX float64
	Height  float64
}

// NewArc returns an arc between two x positions.
func NewArc(startX, targetX, height float64) Arc {
	return Arc{StartX: startX, TargetX: targetX, Height: height}
}

// At returns the position at progress p. Progress is clamped to [0, 1] and
// both ends are exact: (StartX, 0) at 0 and (TargetX, 0) at 1.
func (a Arc) At(p float64) (x, y float64) {
	p = common.Clamp01(p)
	if p == 0 {
		return a.StartX, 0
	}
	if p == 1 {
		return a.TargetX, 0
	}
	return common.Lerp(a.StartX, a.TargetX, p), Height(a.Height, p)
}

// Height is the vertical offset -4h(p-0.5)^2 + h of a hop with peak h.
func Height(h, p float64) float64 {
	return -4*h*math.Pow(p-0.5, 2) + h
}

// Done reports whether progress p has reached the landing point.
func Done(p float64) bool {
	return p >= 1
}
