package battle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/combat"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/STAR-FALL-00/work-hours-timer/prefabs"
)

var ErrInvalidTuning = errors.New("battle: invalid tuning")

// DelayRange is a half-open [Min, Max) range drawn with millisecond
// granularity. Min == Max always yields Min.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

func (r DelayRange) draw(rng common.Rand) time.Duration {
	lo := int(r.Min / time.Millisecond)
	hi := int(r.Max / time.Millisecond)
	return time.Duration(common.UniformInt(rng, lo, hi)) * time.Millisecond
}

// Tuning is every constant the choreography reads.
type Tuning struct {
	HeroStartX     float64
	BossStartX     float64
	BattleDistance float64
	HeroRunSpeed   float64

	JumpHeight        float64
	JumpDurationTicks int
	ApproachMinX      int
	ApproachMaxX      int
	RejumpChance      float64

	MovementInterval time.Duration
	BattleInterval   time.Duration
	GlideInterval    time.Duration
	FirstIdleDelay   DelayRange
	IdleDelay        DelayRange

	MaxRounds     int
	Combat        combat.Table
	CooldownSteps int

	// Script names a tengo round script under prefabs/scripts. Empty uses
	// the probability table.
	Script string
}

func DefaultTuning() Tuning {
	return Tuning{
		HeroStartX:     0,
		BossStartX:     184,
		BattleDistance: 50,
		HeroRunSpeed:   2,

		JumpHeight:        40,
		JumpDurationTicks: 30,
		ApproachMinX:      50,
		ApproachMaxX:      180,
		RejumpChance:      0.2,

		MovementInterval: time.Second / 60,
		BattleInterval:   time.Second,
		GlideInterval:    16 * time.Millisecond,
		FirstIdleDelay:   DelayRange{Min: 3 * time.Second, Max: 5 * time.Second},
		IdleDelay:        DelayRange{Min: 5 * time.Second, Max: 10 * time.Second},

		MaxRounds:     5,
		Combat:        combat.DefaultTable(),
		CooldownSteps: 30,
	}
}

// NewTuning converts a prefab spec and validates the result.
func NewTuning(spec *prefabs.BattleSpec) (Tuning, error) {
	if spec == nil {
		return DefaultTuning(), nil
	}

	first, err := delayRange("first_idle_delay_ms", spec.Timing.FirstIdleDelayMS)
	if err != nil {
		return Tuning{}, err
	}
	idle, err := delayRange("idle_delay_ms", spec.Timing.IdleDelayMS)
	if err != nil {
		return Tuning{}, err
	}
	if spec.Timing.MovementHz <= 0 {
		return Tuning{}, fmt.Errorf("%w: movement_hz must be positive", ErrInvalidTuning)
	}

	t := Tuning{
		HeroStartX:     spec.Corridor.HeroStartX,
		BossStartX:     spec.Corridor.BossStartX,
		BattleDistance: spec.Corridor.BattleDistance,
		HeroRunSpeed:   spec.Hero.RunSpeed,

		JumpHeight:        spec.Boss.JumpHeight,
		JumpDurationTicks: spec.Boss.JumpDurationTicks,
		ApproachMinX:      spec.Boss.ApproachMinX,
		ApproachMaxX:      spec.Boss.ApproachMaxX,
		RejumpChance:      spec.Boss.RejumpChance,

		MovementInterval: time.Second / time.Duration(spec.Timing.MovementHz),
		BattleInterval:   ms(spec.Timing.BattleIntervalMS),
		GlideInterval:    ms(spec.Timing.GlideIntervalMS),
		FirstIdleDelay:   first,
		IdleDelay:        idle,

		MaxRounds: spec.Combat.MaxRounds,
		Combat: combat.Table{
			HeroAttackChance:  spec.Combat.HeroAttackChance,
			LightAttackChance: spec.Combat.LightAttackChance,
			BlockChance:       spec.Combat.BlockChance,
			FollowUpDelay:     ms(spec.Combat.FollowUpDelayMS),
			Knockback:         shift(spec.Combat.Knockback),
			Roll:              shift(spec.Combat.Roll),
		},
		CooldownSteps: spec.Cooldown.ReturnSteps,
		Script:        spec.Combat.Script,
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func shift(s prefabs.ShiftSpec) combat.Shift {
	return combat.Shift{Distance: s.Distance, Steps: s.Steps, ReturnSteps: s.ReturnSteps}
}

func delayRange(name string, v []int) (DelayRange, error) {
	if len(v) != 2 {
		return DelayRange{}, fmt.Errorf("%w: %s needs [min, max], got %v", ErrInvalidTuning, name, v)
	}
	return DelayRange{Min: ms(v[0]), Max: ms(v[1])}, nil
}

// Validate checks the ranges the choreography relies on.
func (t Tuning) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(t.BossStartX > t.HeroStartX, "boss start %v must be right of hero start %v", t.BossStartX, t.HeroStartX)
	check(t.BattleDistance > 0, "battle distance must be positive")
	check(t.HeroRunSpeed > 0, "hero run speed must be positive")
	check(t.JumpHeight >= 0, "jump height must not be negative")
	check(t.JumpDurationTicks > 0, "jump duration must be positive")
	check(t.ApproachMinX <= t.ApproachMaxX, "approach range [%d, %d] is inverted", t.ApproachMinX, t.ApproachMaxX)
	check(probability(t.RejumpChance), "rejump chance %v outside [0, 1]", t.RejumpChance)
	check(t.MovementInterval > 0, "movement interval must be positive")
	check(t.BattleInterval > 0, "battle interval must be positive")
	check(t.GlideInterval > 0, "glide interval must be positive")
	check(validRange(t.FirstIdleDelay), "first idle delay %v..%v is invalid", t.FirstIdleDelay.Min, t.FirstIdleDelay.Max)
	check(validRange(t.IdleDelay), "idle delay %v..%v is invalid", t.IdleDelay.Min, t.IdleDelay.Max)
	check(t.MaxRounds > 0, "max rounds must be positive")
	check(probability(t.Combat.HeroAttackChance), "hero attack chance outside [0, 1]")
	check(probability(t.Combat.LightAttackChance), "light attack chance outside [0, 1]")
	check(probability(t.Combat.BlockChance), "block chance outside [0, 1]")
	check(t.Combat.FollowUpDelay >= 0, "follow-up delay must not be negative")
	check(validShift(t.Combat.Knockback), "knockback needs a non-negative distance and positive steps")
	check(validShift(t.Combat.Roll), "roll needs a non-negative distance and positive steps")
	check(t.CooldownSteps > 0, "cooldown return steps must be positive")

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidTuning, strings.Join(problems, "; "))
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}

func validRange(r DelayRange) bool {
	return r.Min >= 0 && r.Min <= r.Max
}

func validShift(s combat.Shift) bool {
	return s.Distance >= 0 && s.Steps > 0 && s.ReturnSteps > 0
}

// clampX keeps x inside the corridor.
func (t Tuning) clampX(x float64) float64 {
	return common.Clamp(x, t.HeroStartX, t.BossStartX)
}
