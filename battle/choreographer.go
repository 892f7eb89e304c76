// Package battle drives the hero/boss vignette: a five-phase cycle of idle
// waits, boss approaches, timed combat rounds, a retreat and a walk home.
// Every mutation is published on the Bus at the moment it happens.
//
// A Choreographer is not safe for concurrent use. All of its methods and all
// scheduler callbacks must run on one goroutine; clock.Loop provides that for
// real-time hosts and clock.Virtual for frame-driven ones and tests.
package battle

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/clock"
	"github.com/STAR-FALL-00/work-hours-timer/combat"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/STAR-FALL-00/work-hours-timer/motion"
)

var ErrNilScheduler = errors.New("battle: scheduler is nil")

// Config wires a Choreographer. Only Scheduler is required.
type Config struct {
	Scheduler clock.Scheduler
	// Rand defaults to a time-seeded source.
	Rand common.Rand
	// Resolver defaults to one built from Tuning (table or script).
	Resolver combat.Resolver
	// Tuning defaults to DefaultTuning.
	Tuning *Tuning
	Logger *log.Logger
}

type jump struct {
	arc  motion.Arc
	tick int
}

type glide struct {
	actor  *Actor
	path   *motion.Glide
	handle clock.Handle
}

// Choreographer owns both actors and the battle phase.
type Choreographer struct {
	sched       clock.Scheduler
	rng         common.Rand
	resolver    combat.Resolver
	ownResolver bool
	tuning      Tuning
	logger      *log.Logger
	bus         Bus

	hero  Actor
	boss  Actor
	jump  *jump
	glide *glide

	phase      phase
	state      State
	round      int
	running    bool
	firstCycle bool
	// epoch invalidates callbacks captured before a Start, Stop or Reset.
	epoch uint64

	movement    clock.Handle
	battleClock clock.Handle
}

// New builds a stopped Choreographer with both actors at their start marks.
func New(cfg Config) (*Choreographer, error) {
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	tuning := DefaultTuning()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	c := &Choreographer{
		sched:  cfg.Scheduler,
		rng:    cfg.Rand,
		tuning: tuning,
		logger: cfg.Logger,
		phase:  phaseIdle,
	}
	if c.rng == nil {
		c.rng = common.NewRand(time.Now().UnixNano())
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}

	c.resolver = cfg.Resolver
	if c.resolver == nil {
		r, err := BuildResolver(tuning, c.rng, c.logger)
		if err != nil {
			return nil, err
		}
		c.resolver = r
		c.ownResolver = true
	}

	c.hero = newActor(common.Hero, tuning.HeroStartX, false)
	c.boss = newActor(common.Boss, tuning.BossStartX, true)
	return c, nil
}

// Subscribe registers a listener for every event and returns its remover.
func (c *Choreographer) Subscribe(l Listener) (unsubscribe func()) {
	return c.bus.Subscribe(l)
}

// Start snaps both actors to their start marks, begins the movement clock
// and schedules the first approach. It is a no-op while running.
func (c *Choreographer) Start() {
	if c.running {
		return
	}
	c.running = true
	c.epoch++
	c.firstCycle = true
	c.round = 0
	c.jump = nil
	c.snapActors()

	c.movement = c.sched.Every(c.tuning.MovementInterval, c.onMovementTick)
	c.logger.Printf("started")
	c.setPhase(phaseIdle)
}

// Stop halts every clock and returns to Idle. Actors keep their positions.
func (c *Choreographer) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.epoch++
	c.movement = clock.StopHandle(c.movement)
	c.battleClock = clock.StopHandle(c.battleClock)
	c.stopGlide()
	c.hero.VX = 0

	c.phase = phaseIdle
	c.changeState(StateIdle)
	c.logger.Printf("stopped")
}

// Reset snaps both actors home, clears any battle in progress and returns to
// Idle. A running choreographer schedules a fresh approach.
func (c *Choreographer) Reset() {
	c.epoch++
	c.battleClock = clock.StopHandle(c.battleClock)
	c.stopGlide()
	c.jump = nil
	c.round = 0
	c.snapActors()

	c.setAnimation(&c.hero, common.AnimIdle)
	c.setAnimation(&c.boss, common.AnimIdle)
	c.setFlip(&c.hero, false)
	c.setFlip(&c.boss, true)

	c.phase = phaseIdle
	c.changeState(StateIdle)
	c.logger.Printf("reset")
	if c.running {
		c.scheduleApproach()
	}
}

func (c *Choreographer) snapActors() {
	c.hero.X, c.hero.VX = c.tuning.HeroStartX, 0
	c.boss.X, c.boss.Y = c.tuning.BossStartX, 0
	c.emitPosition(&c.hero)
	c.emitPosition(&c.boss)
}

// State returns the current phase.
func (c *Choreographer) State() State {
	return c.state
}

func (c *Choreographer) Running() bool {
	return c.running
}

// Round returns the number of rounds resolved in the current fight.
func (c *Choreographer) Round() int {
	return c.round
}

func (c *Choreographer) HeroX() float64 {
	return c.hero.X
}

// BossPosition returns the boss's x and its jump offset.
func (c *Choreographer) BossPosition() (x, y float64) {
	return c.boss.X, c.boss.Y
}

// Tuning returns the active tuning.
func (c *Choreographer) Tuning() Tuning {
	return c.tuning
}

// Snapshot is a read-only copy of the choreography state.
type Snapshot struct {
	State   State
	Running bool
	Round   int
	Jumping bool
	Hero    Actor
	Boss    Actor
}

func (c *Choreographer) Snapshot() Snapshot {
	return Snapshot{
		State:   c.State(),
		Running: c.running,
		Round:   c.round,
		Jumping: c.jump != nil,
		Hero:    c.hero,
		Boss:    c.boss,
	}
}

func (c *Choreographer) onMovementTick() {
	if !c.running {
		return
	}
	if c.hero.VX != 0 {
		c.hero.X = c.tuning.clampX(c.hero.X + c.hero.VX)
		c.emitPosition(&c.hero)
	}
	if c.jump != nil {
		c.advanceJump()
	}
	c.phase.Update(c)
}

// startJump launches the boss toward targetX, turning it to face the way it
// travels.
func (c *Choreographer) startJump(targetX float64) {
	target := c.tuning.clampX(targetX)
	c.jump = &jump{arc: motion.NewArc(c.boss.X, target, c.tuning.JumpHeight)}
	c.setFlip(&c.boss, target < c.boss.X)
	c.setAnimation(&c.boss, common.AnimJumpStart)
}

func (c *Choreographer) advanceJump() {
	j := c.jump
	j.tick++
	p := float64(j.tick) / float64(c.tuning.JumpDurationTicks)
	x, y := j.arc.At(p)
	c.boss.X, c.boss.Y = c.tuning.clampX(x), y
	if !motion.Done(p) {
		c.emitPosition(&c.boss)
		return
	}

	c.boss.X, c.boss.Y = j.arc.TargetX, 0
	c.jump = nil
	c.emitPosition(&c.boss)
	c.setAnimation(&c.boss, common.AnimIdle)
}

func (c *Choreographer) cancelJump() {
	if c.jump == nil && c.boss.Y == 0 {
		return
	}
	c.jump = nil
	c.boss.Y = 0
	c.emitPosition(&c.boss)
}

// glideTo walks a toward target one glide interval at a time. A new glide
// replaces the previous one. valid is checked before every step and a false
// result abandons the glide without calling done.
func (c *Choreographer) glideTo(a *Actor, target float64, steps int, valid func() bool, done func()) {
	c.stopGlide()
	g := &glide{actor: a, path: motion.NewGlide(a.X, c.tuning.clampX(target), steps)}
	c.glide = g
	g.handle = c.sched.Every(c.tuning.GlideInterval, func() {
		if c.glide != g {
			return
		}
		if valid != nil && !valid() {
			c.stopGlide()
			return
		}
		x, finished := g.path.Next()
		a.X = c.tuning.clampX(x)
		c.emitPosition(a)
		if finished {
			c.stopGlide()
			if done != nil {
				done()
			}
		}
	})
}

func (c *Choreographer) stopGlide() {
	if c.glide == nil {
		return
	}
	c.glide.handle = clock.StopHandle(c.glide.handle)
	c.glide = nil
}

func (c *Choreographer) actor(id common.Actor) *Actor {
	if id == common.Boss {
		return &c.boss
	}
	return &c.hero
}

func (c *Choreographer) opponent(a *Actor) *Actor {
	if a.ID == common.Boss {
		return &c.hero
	}
	return &c.boss
}

func (c *Choreographer) emitPosition(a *Actor) {
	if a.ID == common.Boss {
		c.bus.Publish(PositionChanged2D{Actor: a.ID, X: a.X, Y: a.Y})
		return
	}
	c.bus.Publish(PositionChanged{Actor: a.ID, X: a.X})
}

func (c *Choreographer) setAnimation(a *Actor, id string) {
	if !a.swapAnimation(id) {
		return
	}
	c.bus.Publish(AnimationChanged{Actor: a.ID, Animation: id})
}

func (c *Choreographer) setFlip(a *Actor, flipped bool) {
	a.Flipped = flipped
	c.bus.Publish(FlipChanged{Actor: a.ID, Flipped: flipped})
}

// changeState publishes only real transitions.
func (c *Choreographer) changeState(s State) bool {
	if c.state == s {
		return false
	}
	c.state = s
	c.bus.Publish(StateChanged{State: s})
	return true
}
