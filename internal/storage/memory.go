package storage

import (
	"context"
	"sync"
)

// MemStore keeps objects in a map. Used by tests and for running the
// service locally without any remote backend.
type MemStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{objects: map[string][]byte{}}
}

func (m *MemStore) Download(_ context.Context, bucket, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemStore) Upload(_ context.Context, bucket, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	m.objects[bucket+"/"+key] = cp
	return nil
}
