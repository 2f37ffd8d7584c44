package tablestore

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store used for local development and as the
// test double for the service layer.
type MemoryStore struct {
	mu       sync.RWMutex
	rows     map[string]map[string]string
	failNext error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]map[string]string)}
}

// FailWith makes every subsequent operation return err. Pass nil to clear.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

func (s *MemoryStore) Upsert(ctx context.Context, entity Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext != nil {
		return s.failNext
	}
	attrs := make(map[string]string, len(entity.Attributes))
	for k, v := range entity.Attributes {
		attrs[k] = v
	}
	s.rows[rowID(entity.PartitionKey, entity.RowKey)] = attrs
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, partitionKey, rowKey string) (Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failNext != nil {
		return Entity{}, s.failNext
	}
	attrs, ok := s.rows[rowID(partitionKey, rowKey)]
	if !ok {
		return Entity{}, ErrNotFound
	}
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	return Entity{PartitionKey: partitionKey, RowKey: rowKey, Attributes: copied}, nil
}

// Len reports the number of stored rows across all partitions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func rowID(partitionKey, rowKey string) string {
	return partitionKey + "\x00" + rowKey
}
