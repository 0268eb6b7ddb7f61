// Package state persists application state as named slots, each holding
// one opaque serialized blob. Slots are loaded once at startup and saved
// independently after each mutation; a missing or unreadable slot is an
// expected condition the caller degrades from, never a fatal error.
package state

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Load when a slot has never been saved.
var ErrNotFound = errors.New("state: slot not found")

// Slots is the storage contract for named state slots.
type Slots interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// MemStore is an in-memory Slots implementation. It backs tests and can
// serve as a no-persistence fallback.
type MemStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string][]byte)}
}

// Load returns the stored blob for key, or ErrNotFound.
func (m *MemStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save stores a copy of data under key, replacing any previous value.
func (m *MemStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.slots[key] = stored
	return nil
}
