package processing

import (
	"context"
	"encoding/binary"
	"fmt"

	"ogame_battle/internal/app"
	"ogame_battle/internal/domain/battle"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"
)

// TrialSummary aggregates a batch of battles fought from the same scenario
type TrialSummary struct {
	Trials       int
	AttackerWins int
	DefenderWins int
	Draws        int

	MeanRounds           float64
	MeanDebrisMetal      float64
	MeanDebrisCrystal    float64
	MeanLoot             float64
	MeanRepairedDefenses float64
}

// WinRate returns the share of trials that ended with the given outcome
func (ts *TrialSummary) WinRate(winner battle.Winner) float64 {
	if ts.Trials == 0 {
		return 0
	}
	var n int
	switch winner {
	case battle.WinnerAttacker:
		n = ts.AttackerWins
	case battle.WinnerDefender:
		n = ts.DefenderWins
	case battle.WinnerDraw:
		n = ts.Draws
	}
	return float64(n) / float64(ts.Trials)
}

// trialOutcome is the part of a result kept for aggregation
type trialOutcome struct {
	winner   battle.Winner
	rounds   int
	debris   [2]int64
	loot     int64
	repaired int64
}

// TrialRunner runs many seeded battles of one scenario concurrently
type TrialRunner struct {
	simulator BattleSimulator
	workers   int
	tracker   *BattleTracker
}

// NewTrialRunner creates a trial runner with at most workers battles in flight
func NewTrialRunner(simulator BattleSimulator, workers int) *TrialRunner {
	if workers < 1 {
		workers = 1
	}
	return &TrialRunner{
		simulator: simulator,
		workers:   workers,
	}
}

// WithTracker records every trial battle in tracker
func (tr *TrialRunner) WithTracker(tracker *BattleTracker) *TrialRunner {
	tr.tracker = tracker
	return tr
}

// TrialSeed derives the seed of one trial from the scenario seed
func TrialSeed(base uint64, index int) uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], base)
	binary.BigEndian.PutUint64(buf[8:], uint64(index))
	sum := blake2b.Sum256(buf[:])
	return binary.BigEndian.Uint64(sum[:8])
}

// Run fights trials battles and summarizes them. Outcomes are combined in
// trial order, so the summary does not depend on the number of workers.
func (tr *TrialRunner) Run(ctx context.Context, scenario *app.Scenario, trials int) (*TrialSummary, error) {
	if scenario == nil {
		return nil, fmt.Errorf("%w: scenario is required", battle.ErrInvalidInput)
	}
	if trials < 1 {
		return nil, fmt.Errorf("%w: trials must be at least 1, got %d", battle.ErrInvalidInput, trials)
	}

	base := ScenarioInput(scenario)
	outcomes := make([]trialOutcome, trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tr.workers)

	for i := 0; i < trials; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			in := base
			in.Seed = TrialSeed(scenario.Seed, i)

			result, err := tr.simulator.Simulate(in)
			if err != nil {
				return fmt.Errorf("trial %d (seed %d): %w", i, in.Seed, err)
			}
			if tr.tracker != nil {
				tr.tracker.RecordBattle(result.Winner, len(result.Rounds))
			}

			outcomes[i] = trialOutcome{
				winner:   result.Winner,
				rounds:   len(result.Rounds),
				debris:   [2]int64{result.Debris.Metal, result.Debris.Crystal},
				loot:     result.Loot.Sum(),
				repaired: result.RepairedDefensesCount(),
			}
			return nil
		})
	}

	err := g.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, err
	}

	summary := summarize(outcomes)

	log.Info().
		Uint64("seed", scenario.Seed).
		Int("trials", summary.Trials).
		Int("workers", tr.workers).
		Int("attacker_wins", summary.AttackerWins).
		Int("defender_wins", summary.DefenderWins).
		Int("draws", summary.Draws).
		Float64("mean_rounds", summary.MeanRounds).
		Msg("Completed battle trials")

	return summary, nil
}

func summarize(outcomes []trialOutcome) *TrialSummary {
	summary := &TrialSummary{Trials: len(outcomes)}
	if len(outcomes) == 0 {
		return summary
	}

	var rounds, metal, crystal, loot, repaired int64
	for _, o := range outcomes {
		switch o.winner {
		case battle.WinnerAttacker:
			summary.AttackerWins++
		case battle.WinnerDefender:
			summary.DefenderWins++
		case battle.WinnerDraw:
			summary.Draws++
		}
		rounds += int64(o.rounds)
		metal += o.debris[0]
		crystal += o.debris[1]
		loot += o.loot
		repaired += o.repaired
	}

	n := float64(len(outcomes))
	summary.MeanRounds = float64(rounds) / n
	summary.MeanDebrisMetal = float64(metal) / n
	summary.MeanDebrisCrystal = float64(crystal) / n
	summary.MeanLoot = float64(loot) / n
	summary.MeanRepairedDefenses = float64(repaired) / n
	return summary
}
