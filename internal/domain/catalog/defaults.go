package catalog

import "ogame_battle/internal/domain/units"

// rapid fire every ship type has against probes and satellites
func withScoutRF(extra map[string]int) map[string]int {
	rf := map[string]int{"espionage_probe": 5, "solar_satellite": 5}
	for k, v := range extra {
		rf[k] = v
	}
	return rf
}

// DefaultUnitTypes returns the classic ship and defense table.
func DefaultUnitTypes() []units.UnitType {
	return []units.UnitType{
		// Military ships
		{MachineName: "light_fighter", Name: "Light Fighter", Class: units.ClassMilitary,
			StructuralIntegrity: 4000, Shield: 10, Attack: 50,
			Cost: units.Resources{Metal: 3000, Crystal: 1000}, CargoCapacity: 50,
			RapidFire: withScoutRF(nil)},
		{MachineName: "heavy_fighter", Name: "Heavy Fighter", Class: units.ClassMilitary,
			StructuralIntegrity: 10000, Shield: 25, Attack: 150,
			Cost: units.Resources{Metal: 6000, Crystal: 4000}, CargoCapacity: 100,
			RapidFire: withScoutRF(map[string]int{"small_cargo": 3})},
		{MachineName: "cruiser", Name: "Cruiser", Class: units.ClassMilitary,
			StructuralIntegrity: 27000, Shield: 50, Attack: 400,
			Cost: units.Resources{Metal: 20000, Crystal: 7000, Deuterium: 2000}, CargoCapacity: 800,
			RapidFire: withScoutRF(map[string]int{"light_fighter": 6, "rocket_launcher": 10})},
		{MachineName: "battleship", Name: "Battleship", Class: units.ClassMilitary,
			StructuralIntegrity: 60000, Shield: 200, Attack: 1000,
			Cost: units.Resources{Metal: 45000, Crystal: 15000}, CargoCapacity: 1500,
			RapidFire: withScoutRF(nil)},
		{MachineName: "battlecruiser", Name: "Battlecruiser", Class: units.ClassMilitary,
			StructuralIntegrity: 70000, Shield: 400, Attack: 700,
			Cost: units.Resources{Metal: 30000, Crystal: 40000, Deuterium: 15000}, CargoCapacity: 750,
			RapidFire: withScoutRF(map[string]int{
				"small_cargo": 3, "large_cargo": 3, "heavy_fighter": 4, "cruiser": 4, "battleship": 7,
			})},
		{MachineName: "bomber", Name: "Bomber", Class: units.ClassMilitary,
			StructuralIntegrity: 75000, Shield: 500, Attack: 1000,
			Cost: units.Resources{Metal: 50000, Crystal: 25000, Deuterium: 15000}, CargoCapacity: 500,
			RapidFire: withScoutRF(map[string]int{
				"rocket_launcher": 20, "light_laser": 20, "heavy_laser": 10, "ion_cannon": 10,
			})},
		{MachineName: "destroyer", Name: "Destroyer", Class: units.ClassMilitary,
			StructuralIntegrity: 110000, Shield: 500, Attack: 2000,
			Cost: units.Resources{Metal: 60000, Crystal: 50000, Deuterium: 15000}, CargoCapacity: 2000,
			RapidFire: withScoutRF(map[string]int{"light_laser": 10, "battlecruiser": 2})},
		{MachineName: "deathstar", Name: "Deathstar", Class: units.ClassMilitary,
			StructuralIntegrity: 9000000, Shield: 50000, Attack: 200000,
			Cost: units.Resources{Metal: 5000000, Crystal: 4000000, Deuterium: 1000000}, CargoCapacity: 1000000,
			RapidFire: map[string]int{
				"espionage_probe": 1250, "solar_satellite": 1250,
				"small_cargo": 250, "large_cargo": 250, "light_fighter": 200, "heavy_fighter": 100,
				"cruiser": 33, "battleship": 30, "battlecruiser": 15, "bomber": 25, "destroyer": 5,
				"colony_ship": 250, "recycler": 250,
				"rocket_launcher": 200, "light_laser": 200, "heavy_laser": 100, "gauss_cannon": 50, "ion_cannon": 100,
			}},

		// Civil ships
		{MachineName: "small_cargo", Name: "Small Cargo", Class: units.ClassCivil,
			StructuralIntegrity: 4000, Shield: 10, Attack: 5,
			Cost: units.Resources{Metal: 2000, Crystal: 2000}, CargoCapacity: 5000,
			RapidFire: withScoutRF(nil)},
		{MachineName: "large_cargo", Name: "Large Cargo", Class: units.ClassCivil,
			StructuralIntegrity: 12000, Shield: 25, Attack: 5,
			Cost: units.Resources{Metal: 6000, Crystal: 6000}, CargoCapacity: 25000,
			RapidFire: withScoutRF(nil)},
		{MachineName: "colony_ship", Name: "Colony Ship", Class: units.ClassCivil,
			StructuralIntegrity: 30000, Shield: 100, Attack: 50,
			Cost: units.Resources{Metal: 10000, Crystal: 20000, Deuterium: 10000}, CargoCapacity: 7500,
			RapidFire: withScoutRF(nil)},
		{MachineName: "recycler", Name: "Recycler", Class: units.ClassCivil,
			StructuralIntegrity: 16000, Shield: 10, Attack: 1,
			Cost: units.Resources{Metal: 10000, Crystal: 6000, Deuterium: 2000}, CargoCapacity: 20000,
			RapidFire: withScoutRF(nil)},
		{MachineName: "espionage_probe", Name: "Espionage Probe", Class: units.ClassCivil,
			StructuralIntegrity: 1000, Shield: 0, Attack: 0,
			Cost: units.Resources{Crystal: 1000}, CargoCapacity: 0},
		{MachineName: "solar_satellite", Name: "Solar Satellite", Class: units.ClassCivil,
			StructuralIntegrity: 2000, Shield: 1, Attack: 1,
			Cost: units.Resources{Crystal: 2000, Deuterium: 500}, CargoCapacity: 0},

		// Defense
		{MachineName: "rocket_launcher", Name: "Rocket Launcher", Class: units.ClassDefense,
			StructuralIntegrity: 2000, Shield: 20, Attack: 80,
			Cost: units.Resources{Metal: 2000}},
		{MachineName: "light_laser", Name: "Light Laser", Class: units.ClassDefense,
			StructuralIntegrity: 2000, Shield: 25, Attack: 100,
			Cost: units.Resources{Metal: 1500, Crystal: 500}},
		{MachineName: "heavy_laser", Name: "Heavy Laser", Class: units.ClassDefense,
			StructuralIntegrity: 8000, Shield: 100, Attack: 250,
			Cost: units.Resources{Metal: 6000, Crystal: 2000}},
		{MachineName: "gauss_cannon", Name: "Gauss Cannon", Class: units.ClassDefense,
			StructuralIntegrity: 35000, Shield: 200, Attack: 1100,
			Cost: units.Resources{Metal: 20000, Crystal: 15000, Deuterium: 2000}},
		{MachineName: "ion_cannon", Name: "Ion Cannon", Class: units.ClassDefense,
			StructuralIntegrity: 8000, Shield: 500, Attack: 150,
			Cost: units.Resources{Metal: 5000, Crystal: 3000}},
		{MachineName: "plasma_turret", Name: "Plasma Turret", Class: units.ClassDefense,
			StructuralIntegrity: 100000, Shield: 300, Attack: 3000,
			Cost: units.Resources{Metal: 50000, Crystal: 50000, Deuterium: 30000}},
		{MachineName: "small_shield_dome", Name: "Small Shield Dome", Class: units.ClassDefense,
			StructuralIntegrity: 20000, Shield: 2000, Attack: 1,
			Cost: units.Resources{Metal: 10000, Crystal: 10000}},
		{MachineName: "large_shield_dome", Name: "Large Shield Dome", Class: units.ClassDefense,
			StructuralIntegrity: 100000, Shield: 10000, Attack: 1,
			Cost: units.Resources{Metal: 50000, Crystal: 50000}},
	}
}

// Default returns a StaticCatalog holding DefaultUnitTypes.
func Default() *StaticCatalog {
	c, err := NewStaticCatalog(DefaultUnitTypes())
	if err != nil {
		// the built-in table is fixed; a failure here is a broken build
		panic(err)
	}
	return c
}
