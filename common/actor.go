package common

// Actor identifies one of the two vignette characters.
type Actor int

const (
	Hero Actor = iota
	Boss
)

func (a Actor) String() string {
	switch a {
	case Hero:
		return "hero"
	case Boss:
		return "boss"
	}
	return "unknown"
}

// Animation ids shared by the choreography and the presentation adapters.
// The set is open: renderers fall back to a default pose for unknown ids.
const (
	AnimIdle      = "Idle"
	AnimRun       = "Run"
	AnimAttack1   = "Attack1"
	AnimAttack2   = "Attack2"
	AnimHurt      = "Hurt"
	AnimJumpStart = "JumpStart"
	AnimBlock     = "Block"
	AnimRoll      = "Roll"
)
