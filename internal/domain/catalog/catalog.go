package catalog

import (
	"errors"
	"fmt"
	"os"

	"ogame_battle/internal/domain/units"

	"github.com/goccy/go-json"
)

// ErrUnknownUnitType is returned when a machine name is not in the catalog.
var ErrUnknownUnitType = errors.New("unknown unit type")

// Catalog is the read-only lookup of unit base statistics used by the battle
// engine and by reports.
type Catalog interface {
	Lookup(machineName string) (units.UnitType, error)
}

// StaticCatalog is an in-memory Catalog. It is safe for concurrent reads.
type StaticCatalog struct {
	types map[string]units.UnitType
	order []string
}

// NewStaticCatalog builds a catalog from the given unit types. Every entry is
// validated and machine names must be unique.
func NewStaticCatalog(unitTypes []units.UnitType) (*StaticCatalog, error) {
	c := &StaticCatalog{
		types: make(map[string]units.UnitType, len(unitTypes)),
		order: make([]string, 0, len(unitTypes)),
	}

	for _, ut := range unitTypes {
		if err := ut.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
		if _, exists := c.types[ut.MachineName]; exists {
			return nil, fmt.Errorf("duplicate catalog entry %s", ut.MachineName)
		}
		c.types[ut.MachineName] = ut
		c.order = append(c.order, ut.MachineName)
	}

	for _, ut := range unitTypes {
		for target := range ut.RapidFire {
			if _, ok := c.types[target]; !ok {
				return nil, fmt.Errorf("unit type %s has rapid fire against %s: %w", ut.MachineName, target, ErrUnknownUnitType)
			}
		}
	}

	return c, nil
}

// Lookup returns the unit type for a machine name.
func (c *StaticCatalog) Lookup(machineName string) (units.UnitType, error) {
	ut, ok := c.types[machineName]
	if !ok {
		return units.UnitType{}, fmt.Errorf("%w: %s", ErrUnknownUnitType, machineName)
	}
	return ut, nil
}

// MachineNames returns every machine name in catalog order.
func (c *StaticCatalog) MachineNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// LoadFile reads a catalog from a JSON array of unit types.
func LoadFile(path string) (*StaticCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var unitTypes []units.UnitType
	if err := json.Unmarshal(data, &unitTypes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return NewStaticCatalog(unitTypes)
}
