package mocks

import (
	"sync"

	"ogame_battle/internal/domain/battle"
)

// BattleSimulator interface defines the engine method used by the processing services
type BattleSimulator interface {
	Simulate(in battle.Input) (*battle.BattleResult, error)
}

var _ BattleSimulator = (*MockBattleSimulator)(nil)

// MockBattleSimulator is a test double for battle.Engine. It is safe for
// concurrent use by the trial runner.
type MockBattleSimulator struct {
	// Response to return; when nil a result carrying the input seed is returned
	Response *battle.BattleResult
	// ResponseFunc takes precedence over Response when set
	ResponseFunc func(in battle.Input) (*battle.BattleResult, error)

	// Error to return
	Error error

	mu     sync.Mutex
	inputs []battle.Input
}

// NewMockBattleSimulator creates a new mock battle simulator
func NewMockBattleSimulator() *MockBattleSimulator {
	return &MockBattleSimulator{}
}

func (m *MockBattleSimulator) Simulate(in battle.Input) (*battle.BattleResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if m.ResponseFunc != nil {
		return m.ResponseFunc(in)
	}
	if m.Error != nil {
		return nil, m.Error
	}
	if m.Response != nil {
		return m.Response, nil
	}
	return &battle.BattleResult{Seed: in.Seed, Winner: battle.WinnerAttacker}, nil
}

// Calls returns the number of Simulate calls
func (m *MockBattleSimulator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

// Inputs returns a copy of every input passed to Simulate
func (m *MockBattleSimulator) Inputs() []battle.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]battle.Input(nil), m.inputs...)
}
