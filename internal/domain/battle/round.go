package battle

import (
	"fmt"

	"ogame_battle/internal/domain/units"
)

// combatSide is the live state of one party during a battle.
type combatSide struct {
	units  []*CombatUnit
	fleet  *units.UnitCollection
	losses *units.UnitCollection
	tech   units.TechLevels
}

func (e *Engine) newCombatSide(side Side) (*combatSide, error) {
	cs := &combatSide{
		fleet:  side.Fleet.Clone(),
		losses: units.NewUnitCollection(),
		tech:   side.Tech,
	}

	for _, entry := range cs.fleet.Entries() {
		unitType, err := e.catalog.Lookup(entry.MachineName)
		if err != nil {
			return nil, err
		}
		cs.units = append(cs.units, NewCombatUnit(unitType, side.Tech))
	}
	return cs, nil
}

// volley is what one side did to the other during a round.
type volley struct {
	fullStrength int64
	hits         int64
	absorbed     int64
}

// fightRound lets both sides fire at the composition both had at the start of
// the round, then removes destroyed units and regenerates shields.
func (e *Engine) fightRound(attacker, defender *combatSide, rng RandomSource) (BattleResultRound, error) {
	byAttacker := e.fire(attacker, defender, rng)
	byDefender := e.fire(defender, attacker, rng)

	attackerRoundLosses, err := attacker.settle()
	if err != nil {
		return BattleResultRound{}, fmt.Errorf("attacker: %w", err)
	}
	defenderRoundLosses, err := defender.settle()
	if err != nil {
		return BattleResultRound{}, fmt.Errorf("defender: %w", err)
	}

	return BattleResultRound{
		FullStrengthAttacker:      byAttacker.fullStrength,
		FullStrengthDefender:      byDefender.fullStrength,
		AbsorbedDamageAttacker:    byDefender.absorbed,
		AbsorbedDamageDefender:    byAttacker.absorbed,
		HitsAttacker:              byAttacker.hits,
		HitsDefender:              byDefender.hits,
		AttackerShips:             attacker.fleet.Clone(),
		DefenderShips:             defender.fleet.Clone(),
		AttackerLosses:            attacker.losses.Clone(),
		DefenderLosses:            defender.losses.Clone(),
		AttackerLossesInThisRound: attackerRoundLosses,
		DefenderLossesInThisRound: defenderRoundLosses,
	}, nil
}

// fire makes every unit of shooter fire once at a uniformly chosen target
// type, plus rapid fire follow-up shots when enabled.
func (e *Engine) fire(shooter, target *combatSide, rng RandomSource) volley {
	var v volley
	targets := target.units
	if len(targets) == 0 {
		return v
	}

	for _, unit := range shooter.units {
		count := shooter.fleet.Amount(unit.MachineName())
		v.fullStrength += unit.CurrentAttack * count

		for i := int64(0); i < count; i++ {
			for {
				victim := targets[rng.IntN(len(targets))]
				v.hits++
				v.absorbed += victim.absorb(unit.CurrentAttack, target.tech.Armor, e.rules.DamageFloorPercentage)

				if !e.rules.RapidFire {
					break
				}
				rf := unit.UnitType.RapidFire[victim.MachineName()]
				if rf <= 1 || rng.IntN(rf) == 0 {
					break
				}
			}
		}
	}
	return v
}

// settle applies the damage queued this round, records losses, drops wiped
// out unit types and regenerates the shields of the survivors.
func (s *combatSide) settle() (*units.UnitCollection, error) {
	roundLosses := units.NewUnitCollection()
	survivors := s.units[:0]

	for _, unit := range s.units {
		name := unit.MachineName()
		count := s.fleet.Amount(name)

		destroyed, err := unit.settle(count)
		if err != nil {
			return nil, err
		}
		if destroyed > 0 {
			if err := s.fleet.Subtract(name, destroyed); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
			}
			if err := roundLosses.Add(name, destroyed); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
			}
			if err := s.losses.Add(name, destroyed); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
			}
		}

		if s.fleet.Has(name) {
			unit.regenerate()
			survivors = append(survivors, unit)
		}
	}

	s.units = survivors
	return roundLosses, nil
}
