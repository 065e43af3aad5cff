package units

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one unit type and its amount inside a UnitCollection.
type Entry struct {
	MachineName string
	Amount      int64
}

// TypeLookup resolves a machine name to its catalog entry.
type TypeLookup interface {
	Lookup(machineName string) (UnitType, error)
}

// UnitCollection maps unit machine names to non-negative amounts. Entries
// keep their insertion order and entries that drop to zero are pruned.
//
// The zero value is an empty collection ready to use.
type UnitCollection struct {
	entries []Entry
	index   map[string]int
}

// NewUnitCollection creates an empty collection.
func NewUnitCollection() *UnitCollection {
	return &UnitCollection{}
}

// CollectionOf builds a collection from alternating name/amount pairs in the
// given order. Intended for literals in tests and fixtures.
func CollectionOf(pairs ...any) (*UnitCollection, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("odd number of arguments: %d", len(pairs))
	}
	c := NewUnitCollection()
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("argument %d is not a machine name", i)
		}
		var amount int64
		switch v := pairs[i+1].(type) {
		case int:
			amount = int64(v)
		case int64:
			amount = v
		default:
			return nil, fmt.Errorf("amount for %s is not an integer", name)
		}
		if c.Has(name) {
			return nil, fmt.Errorf("duplicate unit %s", name)
		}
		if err := c.Add(name, amount); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add increases the amount of a unit type, appending it if not present.
// Adding zero is a no-op.
func (c *UnitCollection) Add(machineName string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("cannot add negative amount %d of %s", amount, machineName)
	}
	if amount == 0 {
		return nil
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[machineName]; ok {
		c.entries[i].Amount += amount
		return nil
	}
	c.index[machineName] = len(c.entries)
	c.entries = append(c.entries, Entry{MachineName: machineName, Amount: amount})
	return nil
}

// Subtract decreases the amount of a unit type. Removing more than is present
// is an error and leaves the collection unchanged.
func (c *UnitCollection) Subtract(machineName string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("cannot subtract negative amount %d of %s", amount, machineName)
	}
	if amount == 0 {
		return nil
	}
	have := c.Amount(machineName)
	if amount > have {
		return fmt.Errorf("cannot subtract %d of %s, only %d present", amount, machineName, have)
	}
	i := c.index[machineName]
	if have == amount {
		c.remove(i)
		return nil
	}
	c.entries[i].Amount -= amount
	return nil
}

func (c *UnitCollection) remove(i int) {
	delete(c.index, c.entries[i].MachineName)
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	for j := i; j < len(c.entries); j++ {
		c.index[c.entries[j].MachineName] = j
	}
}

// AddCollection adds every entry of other, in other's order.
func (c *UnitCollection) AddCollection(other *UnitCollection) error {
	for _, e := range other.Entries() {
		if err := c.Add(e.MachineName, e.Amount); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether the unit type is present with a non-zero amount.
func (c *UnitCollection) Has(machineName string) bool {
	return c.Amount(machineName) > 0
}

// Amount returns the amount of a unit type, zero if absent.
func (c *UnitCollection) Amount(machineName string) int64 {
	if c == nil || c.index == nil {
		return 0
	}
	i, ok := c.index[machineName]
	if !ok {
		return 0
	}
	return c.entries[i].Amount
}

// TotalAmount returns the number of units across all types.
func (c *UnitCollection) TotalAmount() int64 {
	if c == nil {
		return 0
	}
	var total int64
	for _, e := range c.entries {
		total += e.Amount
	}
	return total
}

// Len returns the number of distinct unit types.
func (c *UnitCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// IsEmpty reports whether the collection holds no units.
func (c *UnitCollection) IsEmpty() bool {
	return c.Len() == 0
}

// Entries returns a copy of the entries in insertion order.
func (c *UnitCollection) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Clone returns an independent copy preserving order.
func (c *UnitCollection) Clone() *UnitCollection {
	clone := NewUnitCollection()
	if c == nil {
		return clone
	}
	clone.entries = c.Entries()
	clone.index = make(map[string]int, len(c.entries))
	for i, e := range clone.entries {
		clone.index[e.MachineName] = i
	}
	return clone
}

// Equal reports whether both collections hold the same amounts, ignoring order.
func (c *UnitCollection) Equal(other *UnitCollection) bool {
	if c.Len() != other.Len() {
		return false
	}
	for _, e := range c.Entries() {
		if other.Amount(e.MachineName) != e.Amount {
			return false
		}
	}
	return true
}

// Cost returns the total resource cost of all units in the collection.
func (c *UnitCollection) Cost(lookup TypeLookup) (Resources, error) {
	var total Resources
	for _, e := range c.Entries() {
		unitType, err := lookup.Lookup(e.MachineName)
		if err != nil {
			return Resources{}, err
		}
		total = total.Add(unitType.Cost.Multiply(e.Amount))
	}
	return total, nil
}

// MarshalJSON encodes the collection as a JSON object whose keys follow the
// insertion order.
func (c *UnitCollection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.MachineName)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", e.Amount)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of machine name to amount, keeping the
// key order of the document. Duplicate keys and negative amounts are rejected.
func (c *UnitCollection) UnmarshalJSON(data []byte) error {
	*c = UnitCollection{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read unit collection: %w", err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("unit collection must be a JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read unit name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected unit name token %v", tok)
		}
		var amount int64
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("failed to read amount of %s: %w", name, err)
		}
		if _, dup := c.index[name]; dup {
			return fmt.Errorf("duplicate unit %s", name)
		}
		if err := c.Add(name, amount); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to close unit collection: %w", err)
	}
	return nil
}
