package openaddr

import (
	"sync"

	"github.com/scottcagno/collections/pkg/hashkey"
)

// SyncTable guards a Table with a single exclusive lock. Lookups take the
// same lock as writes because a lookup may relocate the entry it finds.
type SyncTable[V any] struct {
	mu sync.Mutex
	t  *Table[V]
}

// NewSync returns a new SyncTable for the provided config
func NewSync[V any](conf *Config) (*SyncTable[V], error) {
	t, err := NewTable[V](conf)
	if err != nil {
		return nil, err
	}
	return &SyncTable[V]{t: t}, nil
}

func (s *SyncTable[V]) Insert(key hashkey.Key, value V) (V, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Insert(key, value)
}

// Put is an alias for Insert
func (s *SyncTable[V]) Put(key hashkey.Key, value V) (V, bool, error) {
	return s.Insert(key, value)
}

// Add is an alias for Insert
func (s *SyncTable[V]) Add(key hashkey.Key, value V) (V, bool, error) {
	return s.Insert(key, value)
}

func (s *SyncTable[V]) Get(key hashkey.Key) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Get(key)
}

func (s *SyncTable[V]) HasKey(key hashkey.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.HasKey(key)
}

// ContainsKey is an alias for HasKey
func (s *SyncTable[V]) ContainsKey(key hashkey.Key) bool {
	return s.HasKey(key)
}

func (s *SyncTable[V]) Remove(key hashkey.Key) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Remove(key)
}

func (s *SyncTable[V]) Keys() []hashkey.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Keys()
}

func (s *SyncTable[V]) Values() []V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Values()
}

func (s *SyncTable[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Len()
}

func (s *SyncTable[V]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Cap()
}

func (s *SyncTable[V]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.IsEmpty()
}

// Range holds the lock for the whole iteration, so it must not call
// back into the SyncTable.
func (s *SyncTable[V]) Range(it Iterator[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Range(it)
}

func (s *SyncTable[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Clear()
}

func (s *SyncTable[V]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.String()
}
