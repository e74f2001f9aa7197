package chained

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/scottcagno/collections/pkg/hashkey"
	"github.com/scottcagno/collections/pkg/list"
	"github.com/scottcagno/collections/pkg/util"
)

const (
	DefaultCapacity   = 10
	DefaultLoadFactor = 0.75
)

var (
	ErrIllegalCapacity   = errors.New("chained: illegal capacity")
	ErrIllegalLoadFactor = errors.New("chained: illegal load factor")
	ErrNilValue          = errors.New("chained: nil value is not allowed")
)

// Config holds configuration settings for a HashMap instance
type Config struct {
	Capacity   int             // initial number of buckets
	LoadFactor float64         // must be in (0, 1]
	Logger     *zerolog.Logger // defaults to a disabled logger
}

// DefaultConfig returns a fresh copy of the default configuration
func DefaultConfig() *Config {
	nop := zerolog.Nop()
	return &Config{
		Capacity:   DefaultCapacity,
		LoadFactor: DefaultLoadFactor,
		Logger:     &nop,
	}
}

func checkConfig(conf *Config) (*Config, error) {
	if conf == nil {
		return DefaultConfig(), nil
	}
	if conf.Capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrIllegalCapacity, conf.Capacity)
	}
	if conf.LoadFactor <= 0 || conf.LoadFactor > 1 {
		return nil, fmt.Errorf("%w: %v", ErrIllegalLoadFactor, conf.LoadFactor)
	}
	checked := *conf
	if checked.Logger == nil {
		checked.Logger = DefaultConfig().Logger
	}
	return &checked, nil
}

// entry is a key value pair that is found in each bucket
type entry[V any] struct {
	key hashkey.Key
	val V
}

// bucket is a chain of entries whose keys share a bucket index
type bucket[V any] struct {
	list.Singly[*entry[V]]
}

func (b *bucket[V]) search(key hashkey.Key) (*entry[V], bool) {
	return b.Find(func(e *entry[V]) bool {
		return e.key.Equals(key)
	})
}

func (b *bucket[V]) delete(key hashkey.Key) (*entry[V], bool) {
	return b.RemoveFunc(func(e *entry[V]) bool {
		return e.key.Equals(key)
	})
}

// HashMap represents an open hashing (separate chaining) hashtable
type HashMap[V any] struct {
	log        zerolog.Logger
	loadFactor float64
	capacity   int
	threshold  int
	keys       int
	buckets    []bucket[V]
}

// NewHashMap returns a new HashMap using the default configuration
func NewHashMap[V any]() *HashMap[V] {
	m, _ := New[V](nil)
	return m
}

// New returns a new HashMap for the provided config. A nil config uses
// DefaultConfig.
func New[V any](conf *Config) (*HashMap[V], error) {
	conf, err := checkConfig(conf)
	if err != nil {
		return nil, err
	}
	m := &HashMap[V]{
		log:        conf.Logger.With().Str("component", "chained").Logger(),
		loadFactor: conf.LoadFactor,
	}
	m.init(conf.Capacity)
	return m, nil
}

func (m *HashMap[V]) init(capacity int) {
	m.capacity = capacity
	m.threshold = int(float64(capacity) * m.loadFactor)
	m.keys = 0
	m.buckets = make([]bucket[V], capacity)
}

// index returns abs(hash) mod capacity
func (m *HashMap[V]) index(hash int) int {
	h := uint64(hash)
	if hash < 0 {
		h = uint64(-hash)
	}
	return int(h % uint64(m.capacity))
}

// resize doubles the number of buckets and rehashes every entry
func (m *HashMap[V]) resize() {
	old := m.buckets
	oldCapacity := m.capacity
	keys := m.keys
	m.init(oldCapacity * 2)
	for i := range old {
		old[i].Range(func(e *entry[V]) bool {
			m.buckets[m.index(e.key.Hash())].PushFront(e)
			return true
		})
	}
	m.keys = keys
	m.log.Debug().
		Int("old_capacity", oldCapacity).
		Int("new_capacity", m.capacity).
		Int("live", m.keys).
		Msg("resized hashmap")
}

// Add inserts a key value entry, or updates the value if the key already
// exists. It returns the previous value and true if the key existed.
func (m *HashMap[V]) Add(key hashkey.Key, value V) (V, bool, error) {
	if util.IsNil(value) {
		return *new(V), false, ErrNilValue
	}
	b := &m.buckets[m.index(key.Hash())]
	if e, ok := b.search(key); ok {
		prev := e.val
		e.val = value
		return prev, true, nil
	}
	b.PushFront(&entry[V]{key: key, val: value})
	m.keys++
	if m.keys > m.threshold {
		m.resize()
	}
	return *new(V), false, nil
}

// Put is an alias for Add
func (m *HashMap[V]) Put(key hashkey.Key, value V) (V, bool, error) {
	return m.Add(key, value)
}

// Get returns a value for a given key, or returns false if none could be found
func (m *HashMap[V]) Get(key hashkey.Key) (V, bool) {
	e, ok := m.buckets[m.index(key.Hash())].search(key)
	if !ok {
		return *new(V), false
	}
	return e.val, true
}

// HasKey reports whether key is present
func (m *HashMap[V]) HasKey(key hashkey.Key) bool {
	_, ok := m.buckets[m.index(key.Hash())].search(key)
	return ok
}

// Remove deletes key and returns the removed value, or false
func (m *HashMap[V]) Remove(key hashkey.Key) (V, bool) {
	e, ok := m.buckets[m.index(key.Hash())].delete(key)
	if !ok {
		return *new(V), false
	}
	m.keys--
	return e.val, true
}

// Keys returns every key in bucket order
func (m *HashMap[V]) Keys() []hashkey.Key {
	keys := make([]hashkey.Key, 0, m.keys)
	m.Range(func(key hashkey.Key, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns every value in bucket order, so that Values()[i]
// belongs to Keys()[i]
func (m *HashMap[V]) Values() []V {
	vals := make([]V, 0, m.keys)
	m.Range(func(_ hashkey.Key, value V) bool {
		vals = append(vals, value)
		return true
	})
	return vals
}

// Iterator is an iterator function type
type Iterator[V any] func(key hashkey.Key, value V) bool

// Range takes an Iterator and ranges the HashMap as long as long
// as the iterator function continues to be true. Range is not
// safe to perform an insert or remove operation while ranging!
func (m *HashMap[V]) Range(it Iterator[V]) {
	for i := range m.buckets {
		stopped := false
		m.buckets[i].Range(func(e *entry[V]) bool {
			if !it(e.key, e.val) {
				stopped = true
			}
			return !stopped
		})
		if stopped {
			return
		}
	}
}

// Clear empties the HashMap without changing its capacity
func (m *HashMap[V]) Clear() {
	m.init(m.capacity)
}

// PercentFull returns the current load factor of the HashMap
func (m *HashMap[V]) PercentFull() float64 {
	return float64(m.keys) / float64(m.capacity)
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[V]) Len() int {
	return m.keys
}

// Cap returns the number of buckets
func (m *HashMap[V]) Cap() int {
	return m.capacity
}

// IsEmpty reports whether the HashMap holds no entries
func (m *HashMap[V]) IsEmpty() bool {
	return m.keys == 0
}
