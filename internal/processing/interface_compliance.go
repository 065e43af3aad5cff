package processing

import (
	"ogame_battle/internal/domain/battle"
)

// Compile-time interface compliance checks
// These will cause compilation errors if the types don't implement the interfaces

var (
	_ BattleSimulator         = (*battle.Engine)(nil)
	_ ScenarioRunnerInterface = (*BattleService)(nil)
	_ TrialRunnerInterface    = (*TrialRunner)(nil)
)
