package storage

import (
	"context"
	"sync"
)

// MemoryBridge keeps everything in a map. Used by tests and throwaway runs.
type MemoryBridge struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryBridge() *MemoryBridge {
	return &MemoryBridge{entries: make(map[string][]byte)}
}

func (m *MemoryBridge) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

func (m *MemoryBridge) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.entries[key] = cp
	return nil
}

func (m *MemoryBridge) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
