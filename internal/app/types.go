package app

import "ogame_battle/internal/domain/units"

// Scenario is a battle as read from a scenario file
type Scenario struct {
	Attacker SideInput `json:"attacker"`
	Defender SideInput `json:"defender"`
	Seed     uint64    `json:"seed"`
}

// SideInput is one party of a scenario. Resources are only read for the
// defender, as the planet stock the attacker can loot.
type SideInput struct {
	Fleet     *units.UnitCollection `json:"fleet"`
	Tech      units.TechLevels      `json:"tech"`
	Resources units.Resources       `json:"resources"`
}
