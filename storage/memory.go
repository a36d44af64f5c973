package storage

import (
	"context"
	"slices"
	"sync"
)

// Memory is a Store held in memory. Its zero value is not usable, see NewMemory.
type Memory struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory { return &Memory{blobs: make(map[string][]byte)} }

func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, notFound(key)
	}
	return slices.Clone(blob), nil
}

func (m *Memory) Save(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = slices.Clone(blob)
	return nil
}

func (m *Memory) Close() error { return nil }
