package storage

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps documents in process memory. Contents are lost on exit.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(body), nil
}

func (s *MemoryStore) Save(_ context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = slices.Clone(body)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
