package battle

import (
	"fmt"
	"math/rand/v2"

	"ogame_battle/internal/config"
	"ogame_battle/internal/domain/catalog"
	"ogame_battle/internal/domain/units"

	"github.com/rs/zerolog/log"
)

// RandomSource picks targets and decides rapid fire and defense repairs.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a deterministic source for a seed.
func NewRandomSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Side is one party of a battle as given by the caller.
type Side struct {
	Fleet *units.UnitCollection
	Tech  units.TechLevels
	// Resources stored on the planet; only read for the defender.
	Resources units.Resources
}

// Input describes one battle.
type Input struct {
	Attacker Side
	Defender Side
	Seed     uint64
}

// Engine simulates battles. It holds no per-battle state, so one Engine can
// run any number of battles concurrently.
type Engine struct {
	catalog catalog.Catalog
	rules   config.BattleRules
}

// NewEngine creates an engine for a unit catalog and rule set.
func NewEngine(cat catalog.Catalog, rules config.BattleRules) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid battle rules: %w", err)
	}
	return &Engine{catalog: cat, rules: rules}, nil
}

// Rules returns the rule set the engine was created with.
func (e *Engine) Rules() config.BattleRules {
	return e.rules
}

// Simulate runs a battle with a random source seeded from in.Seed.
func (e *Engine) Simulate(in Input) (*BattleResult, error) {
	return e.SimulateWithSource(in, NewRandomSource(in.Seed))
}

// SimulateWithSource runs a battle drawing every random decision from rng.
// It either returns a complete result or an error, never a partial result.
func (e *Engine) SimulateWithSource(in Input, rng RandomSource) (*BattleResult, error) {
	if err := e.validate(in); err != nil {
		return nil, err
	}

	attacker, err := e.newCombatSide(in.Attacker)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare attacker: %w", err)
	}
	defender, err := e.newCombatSide(in.Defender)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare defender: %w", err)
	}

	var rounds []BattleResultRound
	for len(rounds) < e.rules.MaxRounds {
		if attacker.fleet.IsEmpty() || defender.fleet.IsEmpty() {
			break
		}

		round, err := e.fightRound(attacker, defender, rng)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", len(rounds)+1, err)
		}
		rounds = append(rounds, round)

		log.Debug().
			Int("round", len(rounds)).
			Int64("attacker_strength", round.FullStrengthAttacker).
			Int64("defender_strength", round.FullStrengthDefender).
			Int64("attacker_hits", round.HitsAttacker).
			Int64("defender_hits", round.HitsDefender).
			Int64("attacker_units_left", round.AttackerShips.TotalAmount()).
			Int64("defender_units_left", round.DefenderShips.TotalAmount()).
			Msg("Resolved battle round")
	}

	result, err := e.aggregate(in, rounds, attacker, defender, rng)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) validate(in Input) error {
	if in.Attacker.Fleet.TotalAmount() == 0 {
		return fmt.Errorf("%w: attacker fleet is empty", ErrInvalidInput)
	}
	if err := in.Attacker.Tech.Validate(); err != nil {
		return fmt.Errorf("%w: attacker: %v", ErrInvalidInput, err)
	}
	if err := in.Defender.Tech.Validate(); err != nil {
		return fmt.Errorf("%w: defender: %v", ErrInvalidInput, err)
	}
	if in.Defender.Resources.IsNegative() {
		return fmt.Errorf("%w: defender resources are negative", ErrInvalidInput)
	}

	for _, fleet := range []*units.UnitCollection{in.Attacker.Fleet, in.Defender.Fleet} {
		for _, entry := range fleet.Entries() {
			if _, err := e.catalog.Lookup(entry.MachineName); err != nil {
				return err
			}
		}
	}
	return nil
}
