package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Memory is a map-backed Store used in tests and as an injectable
// substitute for the file-backed store.
type Memory struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Load implements Store.
func (m *Memory) Load(key string, v any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.data[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(blob, v); err != nil {
		return fmt.Errorf("failed to decode collection %q: %w", key, err)
	}
	return nil
}

// Save implements Store.
func (m *Memory) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

// Delete implements Store.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys implements Store.
func (m *Memory) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// SaveRaw stores a pre-encoded blob under key without validating it.
func (m *Memory) SaveRaw(key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), blob...)
	return nil
}
