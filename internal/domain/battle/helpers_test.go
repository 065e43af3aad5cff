package battle

import (
	"testing"

	"ogame_battle/internal/config"
	"ogame_battle/internal/domain/catalog"
	"ogame_battle/internal/domain/units"
)

// newTestCatalog returns a small catalog with round numbers so expected
// outcomes can be worked out by hand.
func newTestCatalog(t *testing.T) *catalog.StaticCatalog {
	t.Helper()

	cat, err := catalog.NewStaticCatalog([]units.UnitType{
		{MachineName: "gunship", Class: units.ClassMilitary, StructuralIntegrity: 10000, Shield: 100, Attack: 1000,
			Cost: units.Resources{Metal: 10000, Crystal: 5000, Deuterium: 1000}, CargoCapacity: 2000},
		{MachineName: "fighter", Class: units.ClassMilitary, StructuralIntegrity: 1000, Shield: 10, Attack: 50,
			Cost: units.Resources{Metal: 1000, Crystal: 500}, CargoCapacity: 100,
			RapidFire: map[string]int{"drone": 4}},
		{MachineName: "hauler", Class: units.ClassCivil, StructuralIntegrity: 2000, Shield: 5, Attack: 1,
			Cost: units.Resources{Metal: 2000, Crystal: 2000}, CargoCapacity: 5000},
		{MachineName: "drone", Class: units.ClassDefense, StructuralIntegrity: 1000, Shield: 0, Attack: 0,
			Cost: units.Resources{Metal: 1000}},
		{MachineName: "wall", Class: units.ClassDefense, StructuralIntegrity: 100000, Shield: 0, Attack: 5,
			Cost: units.Resources{Metal: 5000, Crystal: 5000}},
	})
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return cat
}

func newTestEngine(t *testing.T, cat catalog.Catalog, modify func(r *config.BattleRules)) *Engine {
	t.Helper()

	rules := config.DefaultBattleRules
	if modify != nil {
		modify(&rules)
	}
	engine, err := NewEngine(cat, rules)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}

func mustCollection(t *testing.T, pairs ...any) *units.UnitCollection {
	t.Helper()

	c, err := units.CollectionOf(pairs...)
	if err != nil {
		t.Fatalf("Failed to build collection: %v", err)
	}
	return c
}

func mustSimulate(t *testing.T, engine *Engine, in Input) *BattleResult {
	t.Helper()

	result, err := engine.Simulate(in)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return result
}

// fixedSource always returns the same value, clamped to the requested range.
type fixedSource struct {
	value int
	calls int
}

func (f *fixedSource) IntN(n int) int {
	f.calls++
	if f.value >= n {
		return n - 1
	}
	return f.value
}
