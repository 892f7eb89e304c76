package battle

import (
	"github.com/STAR-FALL-00/work-hours-timer/clock"
	"github.com/STAR-FALL-00/work-hours-timer/combat"
	"github.com/STAR-FALL-00/work-hours-timer/common"
)

// onBattleTick resolves one round. The tick after the last round ends the
// fight instead of resolving another.
func (c *Choreographer) onBattleTick() {
	if !c.running || c.state != StateFighting {
		c.battleClock = clock.StopHandle(c.battleClock)
		return
	}
	if c.round >= c.tuning.MaxRounds {
		c.setPhase(phaseRetreating)
		return
	}

	c.round++
	r := c.resolver.Resolve(c.round)
	c.logger.Printf("round %d/%d: %s", r.Number, c.tuning.MaxRounds, r.Outcome)
	c.applyRound(r)
}

func (c *Choreographer) applyRound(r combat.Round) {
	epoch := c.epoch
	for _, step := range r.Steps {
		if !step.Deferred() {
			c.applyStep(step)
			continue
		}
		c.sched.After(step.Delay, func() {
			if !c.inPhase(epoch, StateFighting) {
				c.logger.Printf("round %d: follow-up dropped", r.Number)
				return
			}
			c.applyStep(step)
		})
	}
}

func (c *Choreographer) applyStep(s combat.Step) {
	a := c.actor(s.Actor)
	if s.Animation != "" {
		c.setAnimation(a, s.Animation)
	}
	if s.Shift != nil {
		c.shift(a, *s.Shift)
	}
}

// shift pushes a away from its opponent, then runs it back to where it stood.
func (c *Choreographer) shift(a *Actor, sh combat.Shift) {
	origin := a.X
	dir := -1.0
	if a.X > c.opponent(a).X {
		dir = 1
	}
	target := c.tuning.clampX(origin + dir*sh.Distance)

	epoch := c.epoch
	valid := func() bool { return c.inPhase(epoch, StateFighting) }
	c.glideTo(a, target, sh.Steps, valid, func() {
		c.setAnimation(a, common.AnimRun)
		c.glideTo(a, origin, sh.ReturnSteps, valid, func() {
			c.setAnimation(a, common.AnimIdle)
		})
	})
}
