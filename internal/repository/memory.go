package repository

import (
	"context"
	"sync"
)

// MemoryStateStore is an in-memory StateStore used in tests and as a
// fallback when no database is configured.
type MemoryStateStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStateStore creates an empty in-memory store.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{slots: make(map[string][]byte)}
}

func (s *MemoryStateStore) key(userID, slot string) string {
	return userID + "/" + slot
}

// GetSlot returns the stored value or ErrSlotNotFound.
func (s *MemoryStateStore) GetSlot(_ context.Context, userID, slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.slots[s.key(userID, slot)]
	if !ok {
		return nil, ErrSlotNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// SetSlot stores a copy of the value.
func (s *MemoryStateStore) SetSlot(_ context.Context, userID, slot string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.slots[s.key(userID, slot)] = stored
	return nil
}
