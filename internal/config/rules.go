package config

import "fmt"

// Combat rule constants
const (
	// Round loop
	MaxRounds = 6

	// Percentage of destroyed metal and crystal that ends up in the debris field
	DebrisPercentage = 30

	// Chance in percent that a destroyed defense unit is rebuilt after the battle
	DefenseRepairPercentage = 70

	// Percentage of the defender's storable resources a winning attacker may take
	LootPercentage = 50

	// A shot whose post-shield damage is below this percentage of the target's
	// hull + shield does no hull damage
	DamageFloorPercentage = 1
)

// BattleRules defines the tunable combat constants for one simulation
type BattleRules struct {
	MaxRounds               int
	DebrisPercentage        int
	DefenseRepairPercentage int
	LootPercentage          int
	DamageFloorPercentage   int
	RapidFire               bool
}

// Validate rejects rule sets the engine cannot run with
func (r BattleRules) Validate() error {
	if r.MaxRounds < 1 {
		return fmt.Errorf("max rounds must be at least 1, got %d", r.MaxRounds)
	}
	percentages := []struct {
		name  string
		value int
	}{
		{"debris percentage", r.DebrisPercentage},
		{"defense repair percentage", r.DefenseRepairPercentage},
		{"loot percentage", r.LootPercentage},
		{"damage floor percentage", r.DamageFloorPercentage},
	}
	for _, p := range percentages {
		if p.value < 0 || p.value > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got %d", p.name, p.value)
		}
	}
	return nil
}

// DefaultBattleRules provides the classic rule set
var DefaultBattleRules = BattleRules{
	MaxRounds:               MaxRounds,
	DebrisPercentage:        DebrisPercentage,
	DefenseRepairPercentage: DefenseRepairPercentage,
	LootPercentage:          LootPercentage,
	DamageFloorPercentage:   DamageFloorPercentage,
	RapidFire:               false,
}
