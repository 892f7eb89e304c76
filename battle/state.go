package battle

// State is the phase of the battle cycle. Exactly one is active at a time.
type State int

const (
	StateIdle State = iota
	StateApproaching
	StateFighting
	StateRetreating
	StateCooldown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateApproaching:
		return "Approaching"
	case StateFighting:
		return "Fighting"
	case StateRetreating:
		return "Retreating"
	case StateCooldown:
		return "Cooldown"
	}
	return "Unknown"
}
