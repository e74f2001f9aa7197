package chained

import (
	"sync"

	"github.com/scottcagno/collections/pkg/hashkey"
)

type shard[V any] struct {
	mu sync.RWMutex
	hm *HashMap[V]
}

// Sharded spreads keys over a power of two number of HashMaps, each
// guarded by its own lock, so that operations on different shards do
// not contend
type Sharded[V any] struct {
	mask   uint64
	shards []*shard[V]
}

// NewSharded returns a new Sharded map with at least count shards (the
// count is aligned to a power of two, minimum 16). Every shard is built
// from conf.
func NewSharded[V any](count int, conf *Config) (*Sharded[V], error) {
	shCount := alignShardCount(count)
	s := &Sharded[V]{
		mask:   shCount - 1,
		shards: make([]*shard[V], shCount),
	}
	for i := range s.shards {
		hm, err := New[V](conf)
		if err != nil {
			return nil, err
		}
		s.shards[i] = &shard[V]{hm: hm}
	}
	return s, nil
}

func alignShardCount(size int) uint64 {
	count := 16
	for count < size {
		count *= 2
	}
	return uint64(count)
}

// getShard remixes the key hash so that shard selection and bucket
// selection inside the shard do not use the same low bits
func (s *Sharded[V]) getShard(key hashkey.Key) *shard[V] {
	return s.shards[uint64(hashkey.Murmur3(key.Hash()))&s.mask]
}

func (s *Sharded[V]) Add(key hashkey.Key, val V) (V, bool, error) {
	sh := s.getShard(key)
	sh.mu.Lock()
	pv, ok, err := sh.hm.Add(key, val)
	sh.mu.Unlock()
	return pv, ok, err
}

func (s *Sharded[V]) Get(key hashkey.Key) (V, bool) {
	sh := s.getShard(key)
	sh.mu.RLock()
	pv, ok := sh.hm.Get(key)
	sh.mu.RUnlock()
	return pv, ok
}

func (s *Sharded[V]) HasKey(key hashkey.Key) bool {
	sh := s.getShard(key)
	sh.mu.RLock()
	ok := sh.hm.HasKey(key)
	sh.mu.RUnlock()
	return ok
}

func (s *Sharded[V]) Remove(key hashkey.Key) (V, bool) {
	sh := s.getShard(key)
	sh.mu.Lock()
	pv, ok := sh.hm.Remove(key)
	sh.mu.Unlock()
	return pv, ok
}

func (s *Sharded[V]) Len() int {
	var length int
	for i := range s.shards {
		s.shards[i].mu.RLock()
		length += s.shards[i].hm.Len()
		s.shards[i].mu.RUnlock()
	}
	return length
}

// Range ranges one shard at a time while holding that shard's read lock
func (s *Sharded[V]) Range(it Iterator[V]) {
	for i := range s.shards {
		stopped := false
		s.shards[i].mu.RLock()
		s.shards[i].hm.Range(func(key hashkey.Key, value V) bool {
			if !it(key, value) {
				stopped = true
			}
			return !stopped
		})
		s.shards[i].mu.RUnlock()
		if stopped {
			return
		}
	}
}

// Stats returns the fill percent of every shard
func (s *Sharded[V]) Stats() []float64 {
	stats := make([]float64, len(s.shards))
	for i := range s.shards {
		s.shards[i].mu.RLock()
		stats[i] = s.shards[i].hm.PercentFull()
		s.shards[i].mu.RUnlock()
	}
	return stats
}
