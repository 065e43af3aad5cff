package processing

import (
	"context"

	"ogame_battle/internal/app"
	"ogame_battle/internal/domain/battle"
)

// BattleSimulator defines the engine method used by BattleService and TrialRunner
type BattleSimulator interface {
	Simulate(in battle.Input) (*battle.BattleResult, error)
}

// ScenarioRunnerInterface defines the interface for running a single scenario
type ScenarioRunnerInterface interface {
	Run(ctx context.Context, scenario *app.Scenario) (*battle.BattleResult, error)
}

// TrialRunnerInterface defines the interface for Monte Carlo batches
type TrialRunnerInterface interface {
	Run(ctx context.Context, scenario *app.Scenario, trials int) (*TrialSummary, error)
}
