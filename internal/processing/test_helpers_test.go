package processing

import (
	"testing"

	"ogame_battle/internal/app"
	"ogame_battle/internal/config"
	"ogame_battle/internal/domain/battle"
	"ogame_battle/internal/domain/catalog"
	"ogame_battle/internal/domain/units"
)

// newTestEngine creates an engine over the default catalog and rules
func newTestEngine(t *testing.T) *battle.Engine {
	t.Helper()

	engine, err := battle.NewEngine(catalog.Default(), config.DefaultBattleRules)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}

// newTestScenario creates a raid of cruisers and light fighters on a lightly defended planet
func newTestScenario(t *testing.T, seed uint64) *app.Scenario {
	t.Helper()

	attacker, err := units.CollectionOf("cruiser", 10, "light_fighter", 30, "small_cargo", 10)
	if err != nil {
		t.Fatalf("Failed to build attacker fleet: %v", err)
	}
	defender, err := units.CollectionOf("rocket_launcher", 30, "light_laser", 10)
	if err != nil {
		t.Fatalf("Failed to build defender fleet: %v", err)
	}

	return &app.Scenario{
		Attacker: app.SideInput{Fleet: attacker, Tech: units.TechLevels{Weapon: 2, Shield: 2, Armor: 2}},
		Defender: app.SideInput{
			Fleet:     defender,
			Resources: units.Resources{Metal: 60000, Crystal: 30000, Deuterium: 5000},
		},
		Seed: seed,
	}
}
