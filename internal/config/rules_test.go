package config

import (
	"strings"
	"testing"
)

func TestDefaultBattleRules(t *testing.T) {
	if DefaultBattleRules.MaxRounds != 6 {
		t.Errorf("Expected default MaxRounds 6, got %d", DefaultBattleRules.MaxRounds)
	}

	if DefaultBattleRules.DebrisPercentage != 30 {
		t.Errorf("Expected default DebrisPercentage 30, got %d", DefaultBattleRules.DebrisPercentage)
	}

	if DefaultBattleRules.DefenseRepairPercentage != 70 {
		t.Errorf("Expected default DefenseRepairPercentage 70, got %d", DefaultBattleRules.DefenseRepairPercentage)
	}

	if DefaultBattleRules.LootPercentage != 50 {
		t.Errorf("Expected default LootPercentage 50, got %d", DefaultBattleRules.LootPercentage)
	}

	if DefaultBattleRules.DamageFloorPercentage != 1 {
		t.Errorf("Expected default DamageFloorPercentage 1, got %d", DefaultBattleRules.DamageFloorPercentage)
	}

	if DefaultBattleRules.RapidFire {
		t.Error("Expected rapid fire to be disabled by default")
	}

	if err := DefaultBattleRules.Validate(); err != nil {
		t.Errorf("Expected default rules to be valid, got %v", err)
	}
}

func TestBattleRulesValidate(t *testing.T) {
	testCases := []struct {
		name        string
		modify      func(r *BattleRules)
		errContains string
	}{
		{"ZeroRounds", func(r *BattleRules) { r.MaxRounds = 0 }, "max rounds"},
		{"NegativeDebris", func(r *BattleRules) { r.DebrisPercentage = -1 }, "debris percentage"},
		{"RepairOver100", func(r *BattleRules) { r.DefenseRepairPercentage = 101 }, "defense repair percentage"},
		{"LootOver100", func(r *BattleRules) { r.LootPercentage = 150 }, "loot percentage"},
		{"NegativeFloor", func(r *BattleRules) { r.DamageFloorPercentage = -5 }, "damage floor percentage"},
		{"Valid", func(r *BattleRules) { r.LootPercentage = 100; r.MaxRounds = 1 }, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rules := DefaultBattleRules
			tc.modify(&rules)

			err := rules.Validate()
			if tc.errContains == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tc.errContains)
			}
			if !strings.Contains(err.Error(), tc.errContains) {
				t.Errorf("Expected error to contain %q, got %q", tc.errContains, err.Error())
			}
		})
	}
}
