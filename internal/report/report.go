package report

import (
	"encoding/binary"
	"fmt"

	"ogame_battle/internal/domain/battle"
	"ogame_battle/internal/domain/units"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// battleNamespace scopes the name-based battle IDs.
var battleNamespace = uuid.MustParse("6f1c8a52-3b7e-4d0a-9c55-2e8d4b7a1f90")

// Report is the serializable record of a battle handed to the storage and
// message layers. Field names follow the stored battle report format.
type Report struct {
	BattleID         string                     `json:"battle_id"`
	Seed             uint64                     `json:"seed"`
	Winner           battle.Winner              `json:"winner"`
	Attacker         Party                      `json:"attacker"`
	Defender         Party                      `json:"defender"`
	Loot             Loot                       `json:"loot"`
	Debris           Debris                     `json:"debris"`
	RepairedDefenses *units.UnitCollection      `json:"repaired_defenses"`
	Rounds           []battle.BattleResultRound `json:"rounds"`
}

// Party is one side of the battle.
type Party struct {
	WeaponTechnology    int                   `json:"weapon_technology"`
	ShieldingTechnology int                   `json:"shielding_technology"`
	ArmorTechnology     int                   `json:"armor_technology"`
	WeaponPercentage    int                   `json:"weapon_percentage"`
	ShieldingPercentage int                   `json:"shielding_percentage"`
	ArmorPercentage     int                   `json:"armor_percentage"`
	Units               *units.UnitCollection `json:"units"`
	Survivors           *units.UnitCollection `json:"survivors"`
	Losses              *units.UnitCollection `json:"losses"`
	ResourceLoss        int64                 `json:"resource_loss"`
}

// Loot is what the attacker carried away.
type Loot struct {
	Percentage int   `json:"percentage"`
	Metal      int64 `json:"metal"`
	Crystal    int64 `json:"crystal"`
	Deuterium  int64 `json:"deuterium"`
}

// Debris is the field left in orbit.
type Debris struct {
	Metal   int64 `json:"metal"`
	Crystal int64 `json:"crystal"`
}

// New converts a battle result into its report form.
func New(result *battle.BattleResult) (*Report, error) {
	id, err := BattleID(result.Seed, result.AttackerStart, result.DefenderStart)
	if err != nil {
		return nil, err
	}

	rounds := result.Rounds
	if rounds == nil {
		rounds = []battle.BattleResultRound{}
	}

	return &Report{
		BattleID: id,
		Seed:     result.Seed,
		Winner:   result.Winner,
		Attacker: newParty(result.AttackerTech, result.AttackerStart, result.AttackerSurvivors,
			result.AttackerLosses, result.AttackerResourceLoss),
		Defender: newParty(result.DefenderTech, result.DefenderStart, result.DefenderSurvivors,
			result.DefenderLosses, result.DefenderResourceLoss),
		Loot: Loot{
			Percentage: result.LootPercentage,
			Metal:      result.Loot.Metal,
			Crystal:    result.Loot.Crystal,
			Deuterium:  result.Loot.Deuterium,
		},
		Debris: Debris{
			Metal:   result.Debris.Metal,
			Crystal: result.Debris.Crystal,
		},
		RepairedDefenses: result.RepairedDefenses,
		Rounds:           rounds,
	}, nil
}

func newParty(tech units.TechLevels, start, survivors, losses *units.UnitCollection, loss units.Resources) Party {
	return Party{
		WeaponTechnology:    tech.Weapon,
		ShieldingTechnology: tech.Shield,
		ArmorTechnology:     tech.Armor,
		WeaponPercentage:    tech.WeaponPercentage(),
		ShieldingPercentage: tech.ShieldPercentage(),
		ArmorPercentage:     tech.ArmorPercentage(),
		Units:               start,
		Survivors:           survivors,
		Losses:              losses,
		ResourceLoss:        loss.Sum(),
	}
}

// Encode serializes a battle result. The same result always encodes to the
// same bytes.
func Encode(result *battle.BattleResult) ([]byte, error) {
	r, err := New(result)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode battle report: %w", err)
	}
	return data, nil
}

// EncodeIndent is Encode with indentation, for files meant to be read by people.
func EncodeIndent(result *battle.BattleResult) ([]byte, error) {
	r, err := New(result)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode battle report: %w", err)
	}
	return data, nil
}

// Decode parses an encoded report and checks that the stored winner matches
// the rounds.
func Decode(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode battle report: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the parts of a report that can be derived from the rounds.
func (r *Report) Validate() error {
	for i, round := range r.Rounds {
		if round.AttackerShips == nil || round.DefenderShips == nil {
			return fmt.Errorf("round %d is missing ship collections", i+1)
		}
	}
	if expected := battle.DetermineWinner(r.Rounds); r.Winner != expected {
		return fmt.Errorf("report winner %q does not match rounds (%q)", r.Winner, expected)
	}
	return nil
}

// RepairedDefensesCount returns the total number of repaired defense units.
func (r *Report) RepairedDefensesCount() int64 {
	return r.RepairedDefenses.TotalAmount()
}

// LootTotal returns the sum of looted resources.
func (r *Report) LootTotal() int64 {
	return r.Loot.Metal + r.Loot.Crystal + r.Loot.Deuterium
}

// DebrisTotal returns the sum of the debris field.
func (r *Report) DebrisTotal() int64 {
	return r.Debris.Metal + r.Debris.Crystal
}

// BattleID derives a stable identifier from the seed and both starting
// fleets, so a replayed battle gets the same ID.
func BattleID(seed uint64, attacker, defender *units.UnitCollection) (string, error) {
	attackerJSON, err := json.Marshal(attacker)
	if err != nil {
		return "", fmt.Errorf("failed to encode attacker fleet: %w", err)
	}
	defenderJSON, err := json.Marshal(defender)
	if err != nil {
		return "", fmt.Errorf("failed to encode defender fleet: %w", err)
	}

	name := binary.BigEndian.AppendUint64(nil, seed)
	name = append(name, attackerJSON...)
	name = append(name, '|')
	name = append(name, defenderJSON...)

	return uuid.NewSHA1(battleNamespace, name).String(), nil
}
