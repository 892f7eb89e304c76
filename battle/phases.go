package battle

import (
	"math"

	"github.com/STAR-FALL-00/work-hours-timer/clock"
	"github.com/STAR-FALL-00/work-hours-timer/common"
)

// phase is the interface each concrete battle phase implements. Phases are
// stateless; everything they touch lives on the Choreographer.
type phase interface {
	State() State
	Enter(c *Choreographer)
	Exit(c *Choreographer)
	// Update runs once per movement tick after kinematics have advanced.
	Update(c *Choreographer)
}

var (
	phaseIdle        phase = idlePhase{}
	phaseApproaching phase = approachingPhase{}
	phaseFighting    phase = fightingPhase{}
	phaseRetreating  phase = retreatingPhase{}
	phaseCooldown    phase = cooldownPhase{}
)

// setPhase switches phases, publishing the state change before Enter runs.
func (c *Choreographer) setPhase(p phase) {
	c.phase.Exit(c)
	c.phase = p
	c.changeState(p.State())
	c.logger.Printf("phase %s", p.State())
	p.Enter(c)
}

// inPhase reports whether a callback captured at epoch still belongs to the
// running cycle and phase s.
func (c *Choreographer) inPhase(epoch uint64, s State) bool {
	return c.running && c.epoch == epoch && c.state == s
}

// scheduleApproach arms the idle delay. The first wait after Start uses the
// shorter range.
func (c *Choreographer) scheduleApproach() {
	r := c.tuning.IdleDelay
	if c.firstCycle {
		r = c.tuning.FirstIdleDelay
		c.firstCycle = false
	}
	delay := r.draw(c.rng)
	epoch := c.epoch
	c.logger.Printf("next approach in %v", delay)
	c.sched.After(delay, func() {
		if !c.inPhase(epoch, StateIdle) {
			return
		}
		c.setPhase(phaseApproaching)
	})
}

type idlePhase struct{}

func (idlePhase) State() State { return StateIdle }
func (idlePhase) Enter(c *Choreographer) {
	if c.running {
		c.scheduleApproach()
	}
}
func (idlePhase) Exit(c *Choreographer)   {}
func (idlePhase) Update(c *Choreographer) {}

type approachingPhase struct{}

func (approachingPhase) State() State { return StateApproaching }
func (approachingPhase) Enter(c *Choreographer) {
	target := common.UniformInt(c.rng, c.tuning.ApproachMinX, c.tuning.ApproachMaxX)
	c.startJump(float64(target))
}
func (approachingPhase) Exit(c *Choreographer) {}

// Update occasionally re-jumps the boss and runs the hero toward it until
// they are within battle distance.
func (approachingPhase) Update(c *Choreographer) {
	if c.jump == nil && c.rng.Float64() < c.tuning.RejumpChance {
		target := common.UniformInt(c.rng, c.tuning.ApproachMinX, c.tuning.ApproachMaxX)
		c.startJump(float64(target))
	}

	distance := c.boss.X - c.hero.X
	if math.Abs(distance) <= c.tuning.BattleDistance {
		c.hero.VX = 0
		c.setPhase(phaseFighting)
		return
	}

	v := c.tuning.HeroRunSpeed
	if distance < 0 {
		v = -v
	}
	if math.Abs(v-c.hero.VX) > 0.01 {
		c.hero.VX = v
		c.setAnimation(&c.hero, common.AnimRun)
		c.setFlip(&c.hero, v < 0)
	}
}

type fightingPhase struct{}

func (fightingPhase) State() State { return StateFighting }

// Enter plants both actors, turns them to face each other and starts the
// battle clock.
func (fightingPhase) Enter(c *Choreographer) {
	c.round = 0
	c.hero.VX = 0
	c.cancelJump()
	c.setAnimation(&c.hero, common.AnimIdle)
	c.setAnimation(&c.boss, common.AnimIdle)
	c.setFlip(&c.hero, c.boss.X < c.hero.X)
	c.setFlip(&c.boss, c.hero.X < c.boss.X)
	c.battleClock = c.sched.Every(c.tuning.BattleInterval, c.onBattleTick)
}
func (fightingPhase) Exit(c *Choreographer) {
	c.battleClock = clock.StopHandle(c.battleClock)
}
func (fightingPhase) Update(c *Choreographer) {}

type retreatingPhase struct{}

func (retreatingPhase) State() State { return StateRetreating }
func (retreatingPhase) Enter(c *Choreographer) {
	c.hero.VX = 0
	c.setAnimation(&c.hero, common.AnimIdle)
	c.startJump(c.tuning.BossStartX)
}
func (retreatingPhase) Exit(c *Choreographer) {}

// Update waits for the boss to land back at its start mark.
func (retreatingPhase) Update(c *Choreographer) {
	if c.jump != nil {
		return
	}
	c.setAnimation(&c.boss, common.AnimIdle)
	c.setFlip(&c.boss, true)
	c.setPhase(phaseCooldown)
}

type cooldownPhase struct{}

func (cooldownPhase) State() State { return StateCooldown }

// Enter walks the hero home, then goes back to Idle.
func (cooldownPhase) Enter(c *Choreographer) {
	c.setAnimation(&c.hero, common.AnimRun)
	c.setFlip(&c.hero, c.tuning.HeroStartX < c.hero.X)
	epoch := c.epoch
	c.glideTo(&c.hero, c.tuning.HeroStartX, c.tuning.CooldownSteps,
		func() bool { return c.inPhase(epoch, StateCooldown) },
		func() {
			c.setAnimation(&c.hero, common.AnimIdle)
			c.setFlip(&c.hero, false)
			c.setPhase(phaseIdle)
		})
}
func (cooldownPhase) Exit(c *Choreographer)   {}
func (cooldownPhase) Update(c *Choreographer) {}
