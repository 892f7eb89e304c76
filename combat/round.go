// Package combat decides what happens in one battle round. A resolver turns
// a round number into an outcome plus a list of animation and displacement
// steps, some of which are deferred.
package combat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/common"
)

var ErrUnknownOutcome = errors.New("combat: unknown outcome")

// Outcome names the branch a round resolved to.
type Outcome int

const (
	OutcomeLightAttack Outcome = iota
	OutcomeHeavyAttack
	OutcomeChargeBlocked
	OutcomeChargeRolled
)

var outcomeNames = map[Outcome]string{
	OutcomeLightAttack:   "light",
	OutcomeHeavyAttack:   "heavy",
	OutcomeChargeBlocked: "block",
	OutcomeChargeRolled:  "roll",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// ParseOutcome maps a script-facing name back to an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for o, n := range outcomeNames {
		if n == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}

// HeroAttacks reports whether the hero had the initiative this round.
func (o Outcome) HeroAttacks() bool {
	return o == OutcomeLightAttack || o == OutcomeHeavyAttack
}

// Shift pushes an actor away from its opponent and walks it back.
type Shift struct {
	Distance    float64
	Steps       int
	ReturnSteps int
}

// Step is one directive of a round. Delay is relative to the start of the
// round; a zero delay applies immediately. Animation is applied before Shift.
type Step struct {
	Delay     time.Duration
	Actor     common.Actor
	Animation string
	Shift     *Shift
}

// Deferred reports whether the step must wait for a scheduled callback.
func (s Step) Deferred() bool {
	return s.Delay > 0
}

// Round is the resolved content of one battle tick.
type Round struct {
	Number  int
	Outcome Outcome
	Steps   []Step
}

// Resolver decides rounds.
type Resolver interface {
	Resolve(round int) Round
}
