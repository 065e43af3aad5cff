package processing

import (
	"context"
	"errors"
	"testing"

	"ogame_battle/internal/app"
	"ogame_battle/internal/domain/battle"
	"ogame_battle/internal/processing/mocks"
)

func TestBattleServiceRun(t *testing.T) {
	t.Run("PassesScenarioToSimulator", func(t *testing.T) {
		mock := mocks.NewMockBattleSimulator()
		service := NewBattleService(mock)
		scenario := newTestScenario(t, 77)

		result, err := service.Run(context.Background(), scenario)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.Seed != 77 {
			t.Errorf("Expected seed 77, got %d", result.Seed)
		}

		inputs := mock.Inputs()
		if len(inputs) != 1 {
			t.Fatalf("Expected 1 simulate call, got %d", len(inputs))
		}
		in := inputs[0]
		if in.Attacker.Fleet != scenario.Attacker.Fleet || in.Defender.Fleet != scenario.Defender.Fleet {
			t.Error("Expected scenario fleets to be passed through")
		}
		if in.Attacker.Tech != scenario.Attacker.Tech {
			t.Errorf("Expected attacker tech %+v, got %+v", scenario.Attacker.Tech, in.Attacker.Tech)
		}
		if in.Defender.Resources != scenario.Defender.Resources {
			t.Errorf("Expected defender resources %+v, got %+v", scenario.Defender.Resources, in.Defender.Resources)
		}
	})

	t.Run("WrapsSimulatorErrors", func(t *testing.T) {
		mock := mocks.NewMockBattleSimulator()
		mock.Error = battle.ErrInvariantViolation
		service := NewBattleService(mock)

		_, err := service.Run(context.Background(), newTestScenario(t, 1))
		if !errors.Is(err, battle.ErrInvariantViolation) {
			t.Errorf("Expected ErrInvariantViolation, got %v", err)
		}
	})

	t.Run("NilScenario", func(t *testing.T) {
		service := NewBattleService(mocks.NewMockBattleSimulator())

		_, err := service.Run(context.Background(), nil)
		if !errors.Is(err, battle.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		mock := mocks.NewMockBattleSimulator()
		service := NewBattleService(mock)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.Run(ctx, newTestScenario(t, 1))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
		if mock.Calls() != 0 {
			t.Errorf("Expected no simulate calls, got %d", mock.Calls())
		}
	})
}

func TestBattleServiceWithEngine(t *testing.T) {
	service := NewBattleService(newTestEngine(t))

	t.Run("RealBattle", func(t *testing.T) {
		result, err := service.Run(context.Background(), newTestScenario(t, 5))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(result.Rounds) == 0 {
			t.Error("Expected at least one round against a defended planet")
		}
		if result.Winner != battle.DetermineWinner(result.Rounds) {
			t.Errorf("Expected winner from last round, got %s", result.Winner)
		}
	})

	t.Run("UnknownUnitType", func(t *testing.T) {
		scenario := newTestScenario(t, 5)
		if err := scenario.Defender.Fleet.Add("orbital_fortress", 1); err != nil {
			t.Fatalf("Failed to add unit: %v", err)
		}

		_, err := service.Run(context.Background(), scenario)
		if !errors.Is(err, battle.ErrUnknownUnitType) {
			t.Errorf("Expected ErrUnknownUnitType, got %v", err)
		}
	})

	t.Run("EmptyAttacker", func(t *testing.T) {
		_, err := service.Run(context.Background(), &app.Scenario{})
		if !errors.Is(err, battle.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})
}
