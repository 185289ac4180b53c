package storage

import (
	"context"
	"sync"
)

// Memory is an in-process SnapshotStore.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, Unavailable("load", name, err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[name]
	if !ok {
		return nil, ErrAbsent
	}
	return append([]byte(nil), blob...), nil
}

func (m *Memory) Save(ctx context.Context, name string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return Unavailable("save", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[name] = append([]byte(nil), blob...)
	return nil
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error { return nil }
