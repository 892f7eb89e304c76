package battle

import (
	"fmt"
	"log"

	"github.com/STAR-FALL-00/work-hours-timer/combat"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/STAR-FALL-00/work-hours-timer/prefabs"
)

// BuildResolver returns the round resolver named by t: a tengo script when
// t.Script is set, otherwise the probability table.
func BuildResolver(t Tuning, rng common.Rand, logger *log.Logger) (combat.Resolver, error) {
	if t.Script == "" {
		return combat.NewTableResolver(t.Combat, rng), nil
	}
	src, err := prefabs.LoadScript(t.Script)
	if err != nil {
		return nil, fmt.Errorf("battle: load combat script: %w", err)
	}
	r, err := combat.NewScriptResolver(src, t.Combat, rng, logger)
	if err != nil {
		return nil, fmt.Errorf("battle: compile combat script %s: %w", t.Script, err)
	}
	return r, nil
}

// NewFromSpec builds a Choreographer tuned by a prefab spec. cfg.Tuning is
// ignored.
func NewFromSpec(spec *prefabs.BattleSpec, cfg Config) (*Choreographer, error) {
	t, err := NewTuning(spec)
	if err != nil {
		return nil, err
	}
	cfg.Tuning = &t
	return New(cfg)
}

// Reload swaps in new tuning. Clocks already running keep their interval
// until the next Start; everything else applies from the next tick. On error
// the current tuning is kept.
func (c *Choreographer) Reload(spec *prefabs.BattleSpec) error {
	t, err := NewTuning(spec)
	if err != nil {
		return err
	}
	if c.ownResolver {
		r, err := BuildResolver(t, c.rng, c.logger)
		if err != nil {
			return err
		}
		c.resolver = r
	}
	c.tuning = t
	name := "defaults"
	if spec != nil {
		name = spec.Name
	}
	c.logger.Printf("tuning reloaded (%s)", name)
	return nil
}
