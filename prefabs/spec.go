package prefabs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BattleFile is the default tuning prefab.
const BattleFile = "battle.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BattleSpec is the yaml shape of the choreography tuning.
type BattleSpec struct {
	Name     string       `yaml:"name"`
	Corridor CorridorSpec `yaml:"corridor"`
	Hero     HeroSpec     `yaml:"hero"`
	Boss     BossSpec     `yaml:"boss"`
	Timing   TimingSpec   `yaml:"timing"`
	Combat   CombatSpec   `yaml:"combat"`
	Cooldown CooldownSpec `yaml:"cooldown"`
}

type CorridorSpec struct {
	HeroStartX     float64 `yaml:"hero_start_x"`
	BossStartX     float64 `yaml:"boss_start_x"`
	BattleDistance float64 `yaml:"battle_distance"`
}

type HeroSpec struct {
	RunSpeed float64 `yaml:"run_speed"`
}

type BossSpec struct {
	JumpHeight        float64 `yaml:"jump_height"`
	JumpDurationTicks int     `yaml:"jump_duration_ticks"`
	ApproachMinX      int     `yaml:"approach_min_x"`
	ApproachMaxX      int     `yaml:"approach_max_x"`
	RejumpChance      float64 `yaml:"rejump_chance"`
}

type TimingSpec struct {
	MovementHz       int   `yaml:"movement_hz"`
	BattleIntervalMS int   `yaml:"battle_interval_ms"`
	GlideIntervalMS  int   `yaml:"glide_interval_ms"`
	FirstIdleDelayMS []int `yaml:"first_idle_delay_ms"`
	IdleDelayMS      []int `yaml:"idle_delay_ms"`
}

type CombatSpec struct {
	MaxRounds         int       `yaml:"max_rounds"`
	HeroAttackChance  float64   `yaml:"hero_attack_chance"`
	LightAttackChance float64   `yaml:"light_attack_chance"`
	BlockChance       float64   `yaml:"block_chance"`
	FollowUpDelayMS   int       `yaml:"follow_up_delay_ms"`
	Knockback         ShiftSpec `yaml:"knockback"`
	Roll              ShiftSpec `yaml:"roll"`
	Script            string    `yaml:"script"`
}

type ShiftSpec struct {
	Distance    float64 `yaml:"distance"`
	Steps       int     `yaml:"steps"`
	ReturnSteps int     `yaml:"return_steps"`
}

type CooldownSpec struct {
	ReturnSteps int `yaml:"return_steps"`
}

// LoadBattleSpec loads the stock tuning prefab.
func LoadBattleSpec() (*BattleSpec, error) {
	spec, err := LoadSpec[BattleSpec](BattleFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadBattleSpecFile loads tuning from an explicit path outside prefabs/.
// The file is decoded on top of the stock prefab, so it only needs the keys
// it overrides.
func LoadBattleSpecFile(path string) (*BattleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	spec, err := LoadBattleSpec()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}
	return spec, nil
}

// LoadBattleSpecPath loads path, or the stock prefab when path is empty.
func LoadBattleSpecPath(path string) (*BattleSpec, error) {
	if path == "" {
		return LoadBattleSpec()
	}
	return LoadBattleSpecFile(path)
}
