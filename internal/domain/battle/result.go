package battle

import "ogame_battle/internal/domain/units"

// Winner is the outcome of a battle.
type Winner string

const (
	WinnerAttacker Winner = "attacker"
	WinnerDefender Winner = "defender"
	WinnerDraw     Winner = "draw"
)

// BattleResultRound records one round of combat. Ship collections are the
// survivors at the end of the round; losses are cumulative up to and
// including this round. A round is never modified after it is appended.
type BattleResultRound struct {
	FullStrengthAttacker      int64                 `json:"full_strength_attacker"`
	FullStrengthDefender      int64                 `json:"full_strength_defender"`
	AbsorbedDamageAttacker    int64                 `json:"absorbed_damage_attacker"`
	AbsorbedDamageDefender    int64                 `json:"absorbed_damage_defender"`
	HitsAttacker              int64                 `json:"hits_attacker"`
	HitsDefender              int64                 `json:"hits_defender"`
	AttackerShips             *units.UnitCollection `json:"attacker_ships"`
	DefenderShips             *units.UnitCollection `json:"defender_ships"`
	AttackerLosses            *units.UnitCollection `json:"attacker_losses"`
	DefenderLosses            *units.UnitCollection `json:"defender_losses"`
	AttackerLossesInThisRound *units.UnitCollection `json:"attacker_losses_in_this_round"`
	DefenderLossesInThisRound *units.UnitCollection `json:"defender_losses_in_this_round"`
}

// BattleResult is the complete outcome of one simulated battle.
type BattleResult struct {
	Seed   uint64
	Rounds []BattleResultRound
	Winner Winner

	AttackerTech  units.TechLevels
	DefenderTech  units.TechLevels
	AttackerStart *units.UnitCollection
	DefenderStart *units.UnitCollection

	AttackerSurvivors *units.UnitCollection
	DefenderSurvivors *units.UnitCollection

	// Final losses. Defender losses exclude repaired defenses.
	AttackerLosses       *units.UnitCollection
	DefenderLosses       *units.UnitCollection
	AttackerResourceLoss units.Resources
	DefenderResourceLoss units.Resources

	Debris           units.Resources
	Loot             units.Resources
	LootPercentage   int
	RepairedDefenses *units.UnitCollection
}

// RepairedDefensesCount returns the number of defense units rebuilt after the battle.
func (r *BattleResult) RepairedDefensesCount() int64 {
	return r.RepairedDefenses.TotalAmount()
}

// DetermineWinner decides the outcome from the survivors of the last round.
// Without any round the defender had nothing to fight with and the attacker wins.
func DetermineWinner(rounds []BattleResultRound) Winner {
	if len(rounds) == 0 {
		return WinnerAttacker
	}

	last := rounds[len(rounds)-1]
	attackerLeft := last.AttackerShips.TotalAmount() > 0
	defenderLeft := last.DefenderShips.TotalAmount() > 0

	switch {
	case attackerLeft && defenderLeft:
		return WinnerDraw
	case attackerLeft:
		return WinnerAttacker
	default:
		return WinnerDefender
	}
}
