package processing

import (
	"context"
	"sync"
	"testing"

	"ogame_battle/internal/domain/battle"
)

func TestBattleTracker_ResetSession(t *testing.T) {
	tracker := NewBattleTracker()

	tracker.RecordBattle(battle.WinnerAttacker, 3)
	tracker.RecordBattle(battle.WinnerDraw, 6)
	tracker.RecordBattle(battle.WinnerAttacker, 1)

	stats := tracker.GetSessionStats()
	if stats.TotalBattles != 3 {
		t.Errorf("Expected 3 total battles before reset, got %d", stats.TotalBattles)
	}
	if stats.SessionRounds != 10 {
		t.Errorf("Expected 10 session rounds, got %d", stats.SessionRounds)
	}
	if stats.BattlesByWinner[battle.WinnerAttacker] != 2 {
		t.Errorf("Expected 2 attacker wins, got %d", stats.BattlesByWinner[battle.WinnerAttacker])
	}

	tracker.ResetSession()

	stats = tracker.GetSessionStats()
	if stats.SessionBattles != 0 || stats.SessionRounds != 0 {
		t.Errorf("Expected session counters reset, got %d battles and %d rounds", stats.SessionBattles, stats.SessionRounds)
	}
	if stats.TotalBattles != 3 {
		t.Errorf("Expected total battles to be preserved after session reset, got %d", stats.TotalBattles)
	}
	if stats.BattlesByWinner[battle.WinnerDraw] != 1 {
		t.Errorf("Expected winner counts to be preserved, got %d draws", stats.BattlesByWinner[battle.WinnerDraw])
	}

	// This should not panic
	tracker.LogSessionSummary()
}

func TestBattleTracker_ConcurrentRecording(t *testing.T) {
	tracker := NewBattleTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.RecordBattle(battle.WinnerDefender, 2)
		}()
	}
	wg.Wait()

	stats := tracker.GetSessionStats()
	if stats.SessionBattles != 50 {
		t.Errorf("Expected 50 battles, got %d", stats.SessionBattles)
	}
	if stats.BattlesByWinner[battle.WinnerDefender] != 50 {
		t.Errorf("Expected 50 defender wins, got %d", stats.BattlesByWinner[battle.WinnerDefender])
	}
}

func TestBattleTracker_FedByServices(t *testing.T) {
	engine := newTestEngine(t)
	tracker := NewBattleTracker()

	service := NewBattleService(engine).WithTracker(tracker)
	if _, err := service.Run(context.Background(), newTestScenario(t, 1)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	runner := NewTrialRunner(engine, 2).WithTracker(tracker)
	if _, err := runner.Run(context.Background(), newTestScenario(t, 1), 10); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := tracker.GetSessionStats().SessionBattles; got != 11 {
		t.Errorf("Expected 11 tracked battles, got %d", got)
	}
}
