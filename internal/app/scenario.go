package app

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// LoadScenario reads a scenario JSON file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a scenario. A missing attacker fleet is an error;
// a missing defender fleet means an undefended planet.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if s.Attacker.Fleet.IsEmpty() {
		return nil, fmt.Errorf("scenario has no attacking fleet")
	}
	return &s, nil
}
