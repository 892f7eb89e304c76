package combat

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/STAR-FALL-00/work-hours-timer/common"
)

// The user script defines decide(round, engine) and returns an outcome name.
const decideDispatchScript = `
__outcome = decide(__round, __engine)
`

// ScriptResolver asks a tengo script for each round's outcome. Any script
// failure falls back to the table draw for that round.
type ScriptResolver struct {
	fallback *TableResolver
	compiled *tengo.Compiled
	engine   *tengo.ImmutableMap
	logger   *log.Logger
}

// NewScriptResolver compiles src. The engine map exposed to the script holds
// rand() backed by rng and the table probabilities.
func NewScriptResolver(src []byte, table Table, rng common.Rand, logger *log.Logger) (*ScriptResolver, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + decideDispatchScript))
	_ = script.Add("__round", 0)
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__outcome", "")
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("combat: compile script: %w", err)
	}

	return &ScriptResolver{
		fallback: NewTableResolver(table, rng),
		compiled: compiled,
		engine:   buildScriptEngine(table, rng, logger),
		logger:   logger,
	}, nil
}

// Resolve runs the script for one round.
func (r *ScriptResolver) Resolve(number int) Round {
	o, err := r.decide(number)
	if err != nil {
		r.logger.Printf("round %d: script failed, using table: %v", number, err)
		o = r.fallback.Draw()
	}
	return r.fallback.Table.Build(number, o)
}

func (r *ScriptResolver) decide(number int) (Outcome, error) {
	if err := r.compiled.Set("__round", number); err != nil {
		return 0, err
	}
	if err := r.compiled.Set("__engine", r.engine); err != nil {
		return 0, err
	}
	if err := r.compiled.Set("__outcome", ""); err != nil {
		return 0, err
	}
	if err := r.compiled.Run(); err != nil {
		return 0, err
	}
	return ParseOutcome(r.compiled.Get("__outcome").String())
}

func buildScriptEngine(table Table, rng common.Rand, logger *log.Logger) *tengo.ImmutableMap {
	values := map[string]tengo.Object{
		"hero_attack_chance":  &tengo.Float{Value: table.HeroAttackChance},
		"light_attack_chance": &tengo.Float{Value: table.LightAttackChance},
		"block_chance":        &tengo.Float{Value: table.BlockChance},
	}

	values["rand"] = &tengo.UserFunction{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: rng.Float64()}, nil
	}}

	values["outcomes"] = &tengo.ImmutableArray{Value: []tengo.Object{
		&tengo.String{Value: OutcomeLightAttack.String()},
		&tengo.String{Value: OutcomeHeavyAttack.String()},
		&tengo.String{Value: OutcomeChargeBlocked.String()},
		&tengo.String{Value: OutcomeChargeRolled.String()},
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		logger.Printf("script: %s", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
