package processing

import (
	"sync"
	"time"

	"ogame_battle/internal/domain/battle"

	"github.com/rs/zerolog/log"
)

// BattleTracker counts simulated battles for session summaries
type BattleTracker struct {
	sessionStart    time.Time
	sessionBattles  int64
	totalBattles    int64
	sessionRounds   int64
	battlesByWinner map[battle.Winner]int64
	mutex           sync.RWMutex
}

// NewBattleTracker creates a new battle tracker
func NewBattleTracker() *BattleTracker {
	return &BattleTracker{
		sessionStart:    time.Now(),
		battlesByWinner: make(map[battle.Winner]int64),
	}
}

// RecordBattle records one finished battle
func (t *BattleTracker) RecordBattle(winner battle.Winner, rounds int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.sessionBattles++
	t.totalBattles++
	t.sessionRounds += int64(rounds)
	t.battlesByWinner[winner]++
}

// GetSessionStats returns battle statistics for the current session
func (t *BattleTracker) GetSessionStats() BattleStats {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	duration := time.Since(t.sessionStart)

	winnerCopy := make(map[battle.Winner]int64, len(t.battlesByWinner))
	for k, v := range t.battlesByWinner {
		winnerCopy[k] = v
	}

	stats := BattleStats{
		SessionBattles:  t.sessionBattles,
		TotalBattles:    t.totalBattles,
		SessionRounds:   t.sessionRounds,
		SessionDuration: duration,
		BattlesByWinner: winnerCopy,
	}
	if seconds := duration.Seconds(); seconds > 0 {
		stats.BattlesPerSecond = float64(t.sessionBattles) / seconds
	}
	return stats
}

// ResetSession resets session-specific counters
func (t *BattleTracker) ResetSession() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.sessionStart = time.Now()
	t.sessionBattles = 0
	t.sessionRounds = 0
	// total and per-winner counts are kept across sessions
}

// LogSessionSummary logs a summary of the battles simulated in this session
func (t *BattleTracker) LogSessionSummary() {
	stats := t.GetSessionStats()

	logEvent := log.Info().
		Int64("session_battles", stats.SessionBattles).
		Int64("total_battles", stats.TotalBattles).
		Int64("session_rounds", stats.SessionRounds).
		Float64("battles_per_second", stats.BattlesPerSecond).
		Dur("session_duration", stats.SessionDuration)

	for _, winner := range []battle.Winner{battle.WinnerAttacker, battle.WinnerDefender, battle.WinnerDraw} {
		logEvent = logEvent.Int64(string(winner)+"_wins", stats.BattlesByWinner[winner])
	}

	logEvent.Msg("Battle session summary")
}

// BattleStats represents battle simulation statistics
type BattleStats struct {
	SessionBattles   int64
	TotalBattles     int64
	SessionRounds    int64
	SessionDuration  time.Duration
	BattlesByWinner  map[battle.Winner]int64
	BattlesPerSecond float64
}
