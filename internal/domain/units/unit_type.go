package units

import "fmt"

// Class classifies a unit type for reporting and for defense repair.
type Class string

const (
	// ClassMilitary is a combat ship
	ClassMilitary Class = "military"
	// ClassCivil is a non-combat ship (cargo, recycler, probe, ...)
	ClassCivil Class = "civil"
	// ClassDefense is a stationary planetary defense
	ClassDefense Class = "defense"
)

// Valid reports whether c is one of the known classes.
func (c Class) Valid() bool {
	switch c {
	case ClassMilitary, ClassCivil, ClassDefense:
		return true
	}
	return false
}

// UnitType holds the read-only base statistics of a unit as supplied by the
// unit catalog.
type UnitType struct {
	MachineName         string         `json:"machine_name"`
	Name                string         `json:"name"`
	Class               Class          `json:"class"`
	StructuralIntegrity int64          `json:"structural_integrity"`
	Shield              int64          `json:"shield"`
	Attack              int64          `json:"attack"`
	Cost                Resources      `json:"cost"`
	CargoCapacity       int64          `json:"cargo_capacity"`
	RapidFire           map[string]int `json:"rapid_fire,omitempty"`
}

// HullPlating returns the hull points of one unit: structural integrity / 10.
func (u UnitType) HullPlating() int64 {
	return u.StructuralIntegrity / 10
}

// Validate checks the catalog entry for values the battle engine cannot use.
func (u UnitType) Validate() error {
	if u.MachineName == "" {
		return fmt.Errorf("unit type has empty machine name")
	}
	if !u.Class.Valid() {
		return fmt.Errorf("unit type %s has unknown class %q", u.MachineName, u.Class)
	}
	if u.HullPlating() <= 0 {
		return fmt.Errorf("unit type %s has structural integrity %d, need at least 10", u.MachineName, u.StructuralIntegrity)
	}
	if u.Shield < 0 || u.Attack < 0 || u.CargoCapacity < 0 || u.Cost.IsNegative() {
		return fmt.Errorf("unit type %s has negative stats", u.MachineName)
	}
	for target, rf := range u.RapidFire {
		if rf < 1 {
			return fmt.Errorf("unit type %s has rapid fire %d against %s", u.MachineName, rf, target)
		}
	}
	return nil
}

// TechLevels are the combat research levels of one side.
type TechLevels struct {
	Weapon int `json:"weapon_technology"`
	Shield int `json:"shielding_technology"`
	Armor  int `json:"armor_technology"`
}

// Validate rejects negative research levels.
func (t TechLevels) Validate() error {
	if t.Weapon < 0 || t.Shield < 0 || t.Armor < 0 {
		return fmt.Errorf("negative technology level (weapon=%d shield=%d armor=%d)", t.Weapon, t.Shield, t.Armor)
	}
	return nil
}

// WeaponPercentage, ShieldPercentage and ArmorPercentage return the bonus
// percentages shown in battle reports (10% per level).
func (t TechLevels) WeaponPercentage() int { return t.Weapon * 10 }

func (t TechLevels) ShieldPercentage() int { return t.Shield * 10 }

func (t TechLevels) ArmorPercentage() int { return t.Armor * 10 }
