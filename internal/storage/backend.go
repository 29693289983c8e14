// Package storage is the typed key/value persistence layer. Records are
// JSON blobs under fixed key names; a Backend decides where the bytes
// live. Persistence is best-effort: a failed write is logged and
// swallowed, leaving prior state intact, and a corrupt record reads as
// absent.
package storage

import "sync"

// Backend stores raw record bytes under string keys.
type Backend interface {
	// Get returns the stored bytes and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Set replaces the value for key atomically.
	Set(key string, value []byte) error
	// Delete removes the key if present.
	Delete(key string) error
}

// MemoryBackend is the in-process Backend used by default and in tests.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (m *MemoryBackend) Set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	m.mu.Lock()
	m.data[key] = cp
	m.mu.Unlock()
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
