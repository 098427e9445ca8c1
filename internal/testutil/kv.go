// Package testutil provides testing utilities.
package testutil

import "sync"

// MemKV is an in-memory storage.KV implementation for tests.
type MemKV struct {
	mu   sync.RWMutex
	data map[string][]byte

	// Error injection for testing
	GetErr map[string]error // key -> error
	SetErr map[string]error // key -> error
}

// NewMemKV creates an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{
		data:   make(map[string][]byte),
		GetErr: make(map[string]error),
		SetErr: make(map[string]error),
	}
}

// Seed stores a value directly, bypassing error injection.
func (m *MemKV) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// Raw returns the stored value and whether the key exists.
func (m *MemKV) Raw(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Get implements storage.KV.
func (m *MemKV) Get(key string) ([]byte, error) {
	if err := m.GetErr[key]; err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// Set implements storage.KV.
func (m *MemKV) Set(key string, value []byte) error {
	if err := m.SetErr[key]; err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
