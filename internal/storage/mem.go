package storage

import (
	"context"
	"sync"

	"storefront-client/internal/apperr"
)

// MemStore is the in-memory Store used by tests and the fixture adapter.
// Constructed per instance; no shared package state.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (m *MemStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "storage.get "+key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.data[key]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "storage.get "+key, "key not set")
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, nil
}

func (m *MemStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return apperr.Wrap(apperr.KindStorage, "storage.set "+key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return apperr.Wrap(apperr.KindStorage, "storage.delete "+key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemStore) Update(ctx context.Context, key string, fn func(cur []byte) ([]byte, error)) error {
	if err := ctx.Err(); err != nil {
		return apperr.Wrap(apperr.KindStorage, "storage.update "+key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := fn(m.data[key])
	if err != nil {
		return err
	}
	if next == nil {
		delete(m.data, key)
		return nil
	}
	m.data[key] = next
	return nil
}
