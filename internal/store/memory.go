package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-process Store. The zero value is not usable; call NewMemory.
type Memory struct {
	mu     sync.RWMutex
	hashes map[string]map[string][]byte
	closed bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{hashes: make(map[string]map[string][]byte)}
}

// Put stores a copy of value under collection/key.
func (m *Memory) Put(_ context.Context, collection, key string, value []byte) error {
	if err := checkKey(collection, key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	hash, ok := m.hashes[collection]
	if !ok {
		hash = make(map[string][]byte)
		m.hashes[collection] = hash
	}
	hash[key] = append([]byte(nil), value...)
	return nil
}

// Get returns a copy of the value stored under collection/key.
func (m *Memory) Get(_ context.Context, collection, key string) ([]byte, bool, error) {
	if err := checkKey(collection, key); err != nil {
		return nil, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, false, ErrClosed
	}

	value, ok := m.hashes[collection][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// ListKeys returns the keys of collection in ascending order.
func (m *Memory) ListKeys(_ context.Context, collection string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}

	hash := m.hashes[collection]
	keys := make([]string, 0, len(hash))
	for k := range hash {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Ping reports whether the store is still open.
func (m *Memory) Ping(_ context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	return nil
}

// Close drops all data.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.hashes = nil
	return nil
}
