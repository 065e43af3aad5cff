package processing

import (
	"context"
	"fmt"

	"ogame_battle/internal/app"
	"ogame_battle/internal/domain/battle"

	"github.com/rs/zerolog/log"
)

// BattleService runs scenarios through the engine and logs each outcome
type BattleService struct {
	simulator BattleSimulator
	tracker   *BattleTracker
}

// NewBattleService creates a new battle service
func NewBattleService(simulator BattleSimulator) *BattleService {
	return &BattleService{
		simulator: simulator,
	}
}

// WithTracker records every simulated battle in tracker
func (bs *BattleService) WithTracker(tracker *BattleTracker) *BattleService {
	bs.tracker = tracker
	return bs
}

// ScenarioInput converts a scenario into engine input
func ScenarioInput(scenario *app.Scenario) battle.Input {
	return battle.Input{
		Attacker: battle.Side{
			Fleet:     scenario.Attacker.Fleet,
			Tech:      scenario.Attacker.Tech,
			Resources: scenario.Attacker.Resources,
		},
		Defender: battle.Side{
			Fleet:     scenario.Defender.Fleet,
			Tech:      scenario.Defender.Tech,
			Resources: scenario.Defender.Resources,
		},
		Seed: scenario.Seed,
	}
}

// Run simulates the scenario with its own seed
func (bs *BattleService) Run(ctx context.Context, scenario *app.Scenario) (*battle.BattleResult, error) {
	if scenario == nil {
		return nil, fmt.Errorf("%w: scenario is required", battle.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := bs.simulator.Simulate(ScenarioInput(scenario))
	if err != nil {
		log.Error().
			Err(err).
			Uint64("seed", scenario.Seed).
			Msg("Battle simulation failed")
		return nil, fmt.Errorf("failed to simulate battle: %w", err)
	}

	if bs.tracker != nil {
		bs.tracker.RecordBattle(result.Winner, len(result.Rounds))
	}

	log.Info().
		Uint64("seed", result.Seed).
		Int("rounds", len(result.Rounds)).
		Str("winner", string(result.Winner)).
		Int64("debris_metal", result.Debris.Metal).
		Int64("debris_crystal", result.Debris.Crystal).
		Int64("loot", result.Loot.Sum()).
		Int64("repaired_defenses", result.RepairedDefensesCount()).
		Msg("Simulated battle")

	return result, nil
}
