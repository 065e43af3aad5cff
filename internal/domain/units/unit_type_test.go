package units

import "testing"

func TestUnitTypeValidate(t *testing.T) {
	valid := UnitType{MachineName: "cruiser", Class: ClassMilitary, StructuralIntegrity: 27000, Shield: 50, Attack: 400,
		Cost: Resources{Metal: 20000, Crystal: 7000, Deuterium: 2000}, CargoCapacity: 800,
		RapidFire: map[string]int{"light_fighter": 6}}

	testCases := []struct {
		name    string
		modify  func(u *UnitType)
		wantErr bool
	}{
		{"Valid", func(u *UnitType) {}, false},
		{"EmptyName", func(u *UnitType) { u.MachineName = "" }, true},
		{"UnknownClass", func(u *UnitType) { u.Class = "starbase" }, true},
		{"NoHull", func(u *UnitType) { u.StructuralIntegrity = 9 }, true},
		{"NegativeShield", func(u *UnitType) { u.Shield = -1 }, true},
		{"NegativeCost", func(u *UnitType) { u.Cost.Crystal = -5 }, true},
		{"ZeroRapidFire", func(u *UnitType) { u.RapidFire = map[string]int{"light_fighter": 0} }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := valid
			u.RapidFire = map[string]int{"light_fighter": 6}
			tc.modify(&u)

			err := u.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestHullPlating(t *testing.T) {
	u := UnitType{StructuralIntegrity: 60000}
	if u.HullPlating() != 6000 {
		t.Errorf("Expected hull plating 6000, got %d", u.HullPlating())
	}
}

func TestTechLevels(t *testing.T) {
	tech := TechLevels{Weapon: 3, Shield: 5, Armor: 12}

	if err := tech.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if tech.WeaponPercentage() != 30 || tech.ShieldPercentage() != 50 || tech.ArmorPercentage() != 120 {
		t.Errorf("Expected 30/50/120 percent, got %d/%d/%d",
			tech.WeaponPercentage(), tech.ShieldPercentage(), tech.ArmorPercentage())
	}

	if err := (TechLevels{Armor: -1}).Validate(); err == nil {
		t.Error("Expected error for negative armor level, got nil")
	}
}

func TestResources(t *testing.T) {
	a := Resources{Metal: 10, Crystal: 20, Deuterium: 30}
	b := Resources{Metal: 1, Crystal: 2, Deuterium: 3}

	if got := a.Add(b); got != (Resources{Metal: 11, Crystal: 22, Deuterium: 33}) {
		t.Errorf("Unexpected sum %+v", got)
	}
	if got := b.Multiply(4); got != (Resources{Metal: 4, Crystal: 8, Deuterium: 12}) {
		t.Errorf("Unexpected product %+v", got)
	}
	if a.Sum() != 60 {
		t.Errorf("Expected sum 60, got %d", a.Sum())
	}
	if a.IsNegative() || !(Resources{Deuterium: -1}).IsNegative() {
		t.Error("IsNegative returned the wrong answer")
	}
}
