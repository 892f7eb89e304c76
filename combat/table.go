package combat

import (
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/common"
)

// Table holds the branch probabilities and follow-through tuning of a round.
type Table struct {
	HeroAttackChance  float64
	LightAttackChance float64
	BlockChance       float64
	FollowUpDelay     time.Duration
	Knockback         Shift
	Roll              Shift
}

// DefaultTable is the stock 70/30 split with 300 ms follow-through.
func DefaultTable() Table {
	return Table{
		HeroAttackChance:  0.7,
		LightAttackChance: 0.6,
		BlockChance:       0.5,
		FollowUpDelay:     300 * time.Millisecond,
		Knockback:         Shift{Distance: 30, Steps: 20, ReturnSteps: 20},
		Roll:              Shift{Distance: 50, Steps: 15, ReturnSteps: 20},
	}
}

// Build expands an outcome into its steps.
func (t Table) Build(number int, o Outcome) Round {
	r := Round{Number: number, Outcome: o}
	switch o {
	case OutcomeLightAttack, OutcomeHeavyAttack:
		anim := common.AnimAttack1
		if o == OutcomeHeavyAttack {
			anim = common.AnimAttack2
		}
		r.Steps = []Step{
			{Actor: common.Hero, Animation: anim},
			{Actor: common.Boss, Animation: common.AnimHurt},
		}
	case OutcomeChargeBlocked:
		kb := t.Knockback
		r.Steps = []Step{
			{Actor: common.Boss, Animation: common.AnimJumpStart},
			{Actor: common.Hero, Animation: common.AnimBlock},
			{Delay: t.FollowUpDelay, Actor: common.Hero, Shift: &kb},
		}
	case OutcomeChargeRolled:
		roll := t.Roll
		r.Steps = []Step{
			{Actor: common.Boss, Animation: common.AnimJumpStart},
			{Actor: common.Hero, Animation: common.AnimRoll},
			{Delay: t.FollowUpDelay, Actor: common.Hero, Shift: &roll},
		}
	}
	return r
}

// TableResolver draws outcomes from a Table.
type TableResolver struct {
	Table Table
	Rand  common.Rand
}

// NewTableResolver creates a resolver over the given random source.
func NewTableResolver(table Table, rng common.Rand) *TableResolver {
	return &TableResolver{Table: table, Rand: rng}
}

// Resolve draws one value to pick initiative and a second one to pick the
// attack or the hero's reaction.
func (r *TableResolver) Resolve(number int) Round {
	return r.Table.Build(number, r.Draw())
}

// Draw selects an outcome without building steps.
func (r *TableResolver) Draw() Outcome {
	if r.Rand.Float64() < r.Table.HeroAttackChance {
		if r.Rand.Float64() < r.Table.LightAttackChance {
			return OutcomeLightAttack
		}
		return OutcomeHeavyAttack
	}
	if r.Rand.Float64() < r.Table.BlockChance {
		return OutcomeChargeBlocked
	}
	return OutcomeChargeRolled
}
