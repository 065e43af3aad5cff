package battle

import (
	"fmt"

	"ogame_battle/internal/domain/units"
)

// aggregate builds the final result once the round loop is over: winner,
// defense repairs, debris, loot and resource losses.
func (e *Engine) aggregate(in Input, rounds []BattleResultRound, attacker, defender *combatSide, rng RandomSource) (*BattleResult, error) {
	winner := DetermineWinner(rounds)

	repaired, err := e.repairDefenses(defender.losses, rng)
	if err != nil {
		return nil, err
	}

	defenderLosses := defender.losses.Clone()
	for _, entry := range repaired.Entries() {
		if err := defenderLosses.Subtract(entry.MachineName, entry.Amount); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
	}

	// survivors follow the order of the starting fleet, repaired stacks included
	defenderSurvivors := units.NewUnitCollection()
	for _, entry := range in.Defender.Fleet.Entries() {
		left := defender.fleet.Amount(entry.MachineName) + repaired.Amount(entry.MachineName)
		if err := defenderSurvivors.Add(entry.MachineName, left); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
	}

	attackerLosses := attacker.losses.Clone()
	attackerResourceLoss, err := attackerLosses.Cost(e.catalog)
	if err != nil {
		return nil, err
	}
	defenderResourceLoss, err := defenderLosses.Cost(e.catalog)
	if err != nil {
		return nil, err
	}

	attackerSurvivors := attacker.fleet.Clone()
	var loot units.Resources
	if winner == WinnerAttacker {
		loot, err = e.calculateLoot(attackerSurvivors, in.Defender.Resources)
		if err != nil {
			return nil, err
		}
	}

	return &BattleResult{
		Seed:                 in.Seed,
		Rounds:               rounds,
		Winner:               winner,
		AttackerTech:         in.Attacker.Tech,
		DefenderTech:         in.Defender.Tech,
		AttackerStart:        in.Attacker.Fleet.Clone(),
		DefenderStart:        in.Defender.Fleet.Clone(),
		AttackerSurvivors:    attackerSurvivors,
		DefenderSurvivors:    defenderSurvivors,
		AttackerLosses:       attackerLosses,
		DefenderLosses:       defenderLosses,
		AttackerResourceLoss: attackerResourceLoss,
		DefenderResourceLoss: defenderResourceLoss,
		Debris:               e.calculateDebris(attackerResourceLoss, defenderResourceLoss),
		Loot:                 loot,
		LootPercentage:       e.rules.LootPercentage,
		RepairedDefenses:     repaired,
	}, nil
}

// repairDefenses rolls once per destroyed defense unit. Ships are never repaired.
func (e *Engine) repairDefenses(losses *units.UnitCollection, rng RandomSource) (*units.UnitCollection, error) {
	repaired := units.NewUnitCollection()
	chance := e.rules.DefenseRepairPercentage

	for _, entry := range losses.Entries() {
		unitType, err := e.catalog.Lookup(entry.MachineName)
		if err != nil {
			return nil, err
		}
		if unitType.Class != units.ClassDefense {
			continue
		}

		var count int64
		switch chance {
		case 0:
		case 100:
			count = entry.Amount
		default:
			for i := int64(0); i < entry.Amount; i++ {
				if rng.IntN(100) < chance {
					count++
				}
			}
		}

		if err := repaired.Add(entry.MachineName, count); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
	}
	return repaired, nil
}

// calculateDebris returns the share of destroyed metal and crystal that is
// left in orbit. Deuterium never ends up in the debris field.
func (e *Engine) calculateDebris(attackerLoss, defenderLoss units.Resources) units.Resources {
	pct := int64(e.rules.DebrisPercentage)
	return units.Resources{
		Metal:   (attackerLoss.Metal + defenderLoss.Metal) * pct / 100,
		Crystal: (attackerLoss.Crystal + defenderLoss.Crystal) * pct / 100,
	}
}

// calculateLoot takes up to the loot percentage of each stored resource, in
// the order metal, crystal, deuterium, until the surviving cargo space is full.
func (e *Engine) calculateLoot(survivors *units.UnitCollection, stored units.Resources) (units.Resources, error) {
	var capacity int64
	for _, entry := range survivors.Entries() {
		unitType, err := e.catalog.Lookup(entry.MachineName)
		if err != nil {
			return units.Resources{}, err
		}
		capacity += unitType.CargoCapacity * entry.Amount
	}

	pct := int64(e.rules.LootPercentage)
	take := func(amount int64) int64 {
		share := min(amount*pct/100, capacity)
		capacity -= share
		return share
	}

	var loot units.Resources
	loot.Metal = take(stored.Metal)
	loot.Crystal = take(stored.Crystal)
	loot.Deuterium = take(stored.Deuterium)
	return loot, nil
}
