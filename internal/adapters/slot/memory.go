package slot

import (
	"sync"

	"tempo/internal/domain"
	"tempo/internal/ports"
)

// Memory is a process-local KeyValueSlot
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// Verify interface compliance at compile time
var _ ports.KeyValueSlot = (*Memory)(nil)

// NewMemory creates an empty Memory slot
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", domain.ErrSlotEmpty
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
