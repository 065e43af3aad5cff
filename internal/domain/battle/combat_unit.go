package battle

import (
	"fmt"

	"ogame_battle/internal/domain/units"
)

// CombatUnit keeps track of the hull, shield and attack of one unit type on
// one side of a battle. The stats are those of a single representative unit;
// the number of units left lives in the side's fleet collection.
type CombatUnit struct {
	UnitType units.UnitType

	// Hull plating is the structural integrity divided by 10.
	OriginalHull   int64
	OriginalShield int64
	OriginalAttack int64

	// CurrentHull is the hull of the damaged representative. Damage is first
	// applied to the shield, which regenerates after every round.
	CurrentHull   int64
	CurrentShield int64
	CurrentAttack int64

	// hull damage taken during the current round, resolved after both sides fired
	pendingHullDamage int64
}

// NewCombatUnit builds the combat state of a unit type with research bonuses
// of 10% per weapon and shield level applied. Armor is applied per hit.
func NewCombatUnit(unitType units.UnitType, tech units.TechLevels) *CombatUnit {
	hull := unitType.HullPlating()
	shield := unitType.Shield * int64(10+tech.Shield) / 10
	attack := unitType.Attack * int64(10+tech.Weapon) / 10

	return &CombatUnit{
		UnitType:       unitType,
		OriginalHull:   hull,
		OriginalShield: shield,
		OriginalAttack: attack,
		CurrentHull:    hull,
		CurrentShield:  shield,
		CurrentAttack:  attack,
	}
}

// MachineName returns the machine name of the unit type.
func (u *CombatUnit) MachineName() string {
	return u.UnitType.MachineName
}

// absorb applies one shot to the shield of this unit type and queues the
// remaining damage for the hull. It returns the damage absorbed by the shield.
func (u *CombatUnit) absorb(damage int64, armorLevel int, floorPercentage int) int64 {
	if damage <= u.CurrentShield {
		u.CurrentShield -= damage
		return damage
	}

	absorbed := u.CurrentShield
	u.CurrentShield = 0
	remaining := damage - absorbed

	// shots too weak to matter against this unit do not reach the hull
	if remaining*100 < int64(floorPercentage)*(u.OriginalHull+u.OriginalShield) {
		return absorbed
	}

	u.pendingHullDamage += remaining * 10 / int64(10+armorLevel)
	return absorbed
}

// settle converts the hull damage queued this round into destroyed units,
// capped at count, and carries the rest over as damage on the representative.
func (u *CombatUnit) settle(count int64) (int64, error) {
	if u.pendingHullDamage < 0 || u.CurrentShield < 0 {
		return 0, fmt.Errorf("%w: %s has pending damage %d and shield %d",
			ErrInvariantViolation, u.MachineName(), u.pendingHullDamage, u.CurrentShield)
	}
	if u.CurrentHull <= 0 || u.CurrentHull > u.OriginalHull {
		return 0, fmt.Errorf("%w: %s hull %d outside (0, %d]",
			ErrInvariantViolation, u.MachineName(), u.CurrentHull, u.OriginalHull)
	}
	if u.pendingHullDamage == 0 {
		return 0, nil
	}

	total := u.OriginalHull - u.CurrentHull + u.pendingHullDamage
	u.pendingHullDamage = 0

	destroyed := total / u.OriginalHull
	if destroyed >= count {
		u.CurrentHull = 0
		return count, nil
	}

	u.CurrentHull = u.OriginalHull - total%u.OriginalHull
	return destroyed, nil
}

// regenerate restores the shield at the end of a round.
func (u *CombatUnit) regenerate() {
	u.CurrentShield = u.OriginalShield
}
