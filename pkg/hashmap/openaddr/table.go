package openaddr

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/scottcagno/collections/pkg/hashkey"
	"github.com/scottcagno/collections/pkg/util"
)

// slotState tags the contents of a slot
type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// slot represents a single position in the Table. key and val are only
// meaningful while the slot is occupied.
type slot[V any] struct {
	state slotState
	key   hashkey.Key
	val   V
}

// Table is an open addressing hash table keyed by hashkey.Key. It is not
// safe for concurrent use, not even for concurrent lookups, since a
// lookup may relocate the entry it finds; see SyncTable.
type Table[V any] struct {
	probe      ProbingStrategy
	policy     CapacityPolicy
	log        zerolog.Logger
	loadFactor float64
	capacity   int
	threshold  int
	used       int // occupied plus tombstone slots
	keys       int // occupied slots only
	slots      []slot[V]
}

// New returns a new Table using the default configuration
func New[V any]() *Table[V] {
	t, _ := NewTable[V](nil)
	return t
}

// NewSize returns a new Table with the specified capacity and load
// factor, and the default probing strategy and capacity policy
func NewSize[V any](capacity int, loadFactor float64) (*Table[V], error) {
	conf := DefaultConfig()
	conf.Capacity = capacity
	conf.LoadFactor = loadFactor
	return NewTable[V](conf)
}

// NewTable returns a new Table for the provided config. A nil config
// uses DefaultConfig. The requested capacity is normalized by the
// configured CapacityPolicy.
func NewTable[V any](conf *Config) (*Table[V], error) {
	conf, err := checkConfig(conf)
	if err != nil {
		return nil, err
	}
	capacity := conf.Policy.Normalize(conf.Capacity)
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: policy normalized %d to %d",
			ErrIllegalCapacity, conf.Capacity, capacity)
	}
	t := &Table[V]{
		probe:      conf.Probing,
		policy:     conf.Policy,
		log:        conf.Logger.With().Str("component", "openaddr").Logger(),
		loadFactor: conf.LoadFactor,
	}
	t.init(capacity)
	return t, nil
}

// init allocates a fresh slot array of the given capacity and resets
// every counter
func (t *Table[V]) init(capacity int) {
	t.capacity = capacity
	t.threshold = threshold(capacity, t.loadFactor)
	t.used, t.keys = 0, 0
	t.slots = make([]slot[V], capacity)
}

// index returns abs(hash) mod capacity
func (t *Table[V]) index(hash int) int {
	h := uint64(hash)
	if hash < 0 {
		h = uint64(-hash) // still correct for math.MinInt
	}
	return int(h % uint64(t.capacity))
}

// offset returns the slot for probe attempt x starting at base
func (t *Table[V]) offset(base, x int) int {
	return int((uint64(base) + uint64(t.probe.Probe(x))) % uint64(t.capacity))
}

// walk follows the probe sequence for key. It returns the index of the
// slot holding key, the index of the empty slot that ended the walk and
// the index of the first tombstone passed on the way. Any of them may be
// -1. The walk is bounded by the capacity.
func (t *Table[V]) walk(key hashkey.Key) (found, empty, tomb int) {
	found, empty, tomb = -1, -1, -1
	base := t.index(key.Hash())
	for x := 0; x < t.capacity; x++ {
		i := t.offset(base, x)
		switch s := &t.slots[i]; s.state {
		case slotTombstone:
			if tomb == -1 {
				tomb = i
			}
		case slotOccupied:
			if s.key.Equals(key) {
				found = i
				return found, empty, tomb
			}
		default:
			empty = i
			return found, empty, tomb
		}
	}
	return found, empty, tomb
}

// Insert places a key value pair into the table, or updates the value if
// the key already exists. It returns the previous value and true if the
// key existed. Nil values are rejected with ErrNilValue.
func (t *Table[V]) Insert(key hashkey.Key, value V) (V, bool, error) {
	if util.IsNil(value) {
		return *new(V), false, ErrNilValue
	}
	t.grow()
	prev, ok := t.insert(key, value)
	// one more check once the entry is in, so the table never rests at
	// its threshold
	t.grow()
	return prev, ok, nil
}

// Put is an alias for Insert
func (t *Table[V]) Put(key hashkey.Key, value V) (V, bool, error) {
	return t.Insert(key, value)
}

// Add is an alias for Insert
func (t *Table[V]) Add(key hashkey.Key, value V) (V, bool, error) {
	return t.Insert(key, value)
}

// insert is the shared insertion walk used by Insert and resize. It does
// not check the threshold.
func (t *Table[V]) insert(key hashkey.Key, value V) (V, bool) {
	for {
		found, empty, tomb := t.walk(key)
		switch {
		case found >= 0:
			prev := t.slots[found].val
			if tomb < 0 {
				t.slots[found].val = value
				return prev, true
			}
			t.slots[tomb] = slot[V]{state: slotOccupied, key: key, val: value}
			t.removeAt(found)
			return prev, true
		case tomb >= 0:
			// reuse the first tombstone; used slots stay the same
			t.slots[tomb] = slot[V]{state: slotOccupied, key: key, val: value}
			t.keys++
			return *new(V), false
		case empty >= 0:
			t.slots[empty] = slot[V]{state: slotOccupied, key: key, val: value}
			t.used++
			t.keys++
			return *new(V), false
		}
		// the probe sequence never reached a free slot, which only
		// happens if the capacity policy does not suit the strategy
		t.resize()
	}
}

// grow resizes the table once if used slots are at or above the
// threshold. A single resize leaves used below the new capacity, which
// is all the walk needs.
func (t *Table[V]) grow() {
	if t.used >= t.threshold {
		t.resize()
	}
}

// resize replaces the slot array with a larger one and reinserts every
// live entry in slot index order. Tombstones are dropped.
func (t *Table[V]) resize() {
	old := t.slots
	oldCapacity := t.capacity
	capacity := t.policy.Grow(oldCapacity)
	if capacity <= oldCapacity {
		capacity = oldCapacity * 2
	}
	t.init(capacity)
	for i := range old {
		if old[i].state == slotOccupied {
			t.insert(old[i].key, old[i].val)
		}
	}
	t.log.Debug().
		Int("old_capacity", oldCapacity).
		Int("new_capacity", t.capacity).
		Int("live", t.keys).
		Int("used", t.used).
		Msg("resized table")
}

// Get returns the value for a given key, or returns false if none could
// be found. A successful lookup that passed a tombstone relocates the
// entry into that tombstone.
func (t *Table[V]) Get(key hashkey.Key) (V, bool) {
	found, _, tomb := t.walk(key)
	if found < 0 {
		return *new(V), false
	}
	if tomb >= 0 {
		t.move(found, tomb)
		found = tomb
	}
	return t.slots[found].val, true
}

// HasKey reports whether key is present. Like Get it may relocate the
// entry.
func (t *Table[V]) HasKey(key hashkey.Key) bool {
	_, ok := t.Get(key)
	return ok
}

// ContainsKey is an alias for HasKey
func (t *Table[V]) ContainsKey(key hashkey.Key) bool {
	return t.HasKey(key)
}

// Remove deletes key and returns the removed value, or false if the key
// was not present. The slot becomes a tombstone until the next resize.
func (t *Table[V]) Remove(key hashkey.Key) (V, bool) {
	found, _, _ := t.walk(key)
	if found < 0 {
		return *new(V), false
	}
	prev := t.slots[found].val
	t.removeAt(found)
	t.keys--
	return prev, true
}

// move relocates the entry at i into slot j and leaves a tombstone at i
func (t *Table[V]) move(i, j int) {
	t.slots[j] = t.slots[i]
	t.removeAt(i)
}

// removeAt marks slot i as a tombstone and drops its references
func (t *Table[V]) removeAt(i int) {
	t.slots[i] = slot[V]{state: slotTombstone}
}

// Clear empties the table without changing its capacity
func (t *Table[V]) Clear() {
	t.init(t.capacity)
}

// Keys returns the live keys in slot index order
func (t *Table[V]) Keys() []hashkey.Key {
	keys := make([]hashkey.Key, 0, t.keys)
	for i := range t.slots {
		if t.slots[i].state == slotOccupied {
			keys = append(keys, t.slots[i].key)
		}
	}
	return keys
}

// Values returns the live values in slot index order, so that Values()[i]
// belongs to Keys()[i]
func (t *Table[V]) Values() []V {
	vals := make([]V, 0, t.keys)
	for i := range t.slots {
		if t.slots[i].state == slotOccupied {
			vals = append(vals, t.slots[i].val)
		}
	}
	return vals
}

// Iterator is an iterator function type
type Iterator[V any] func(key hashkey.Key, value V) bool

// Range takes an Iterator and ranges the Table in slot index order as
// long as the iterator function continues to be true. Range is not safe
// to perform an insert, lookup or remove operation while ranging!
func (t *Table[V]) Range(it Iterator[V]) {
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}
		if !it(t.slots[i].key, t.slots[i].val) {
			return
		}
	}
}

// Len returns the number of live keys
func (t *Table[V]) Len() int {
	return t.keys
}

// Cap returns the number of slots
func (t *Table[V]) Cap() int {
	return t.capacity
}

// Used returns the number of occupied and tombstone slots
func (t *Table[V]) Used() int {
	return t.used
}

// IsEmpty reports whether the table holds no live keys
func (t *Table[V]) IsEmpty() bool {
	return t.keys == 0
}

// PercentFull returns the ratio of used slots to capacity
func (t *Table[V]) PercentFull() float64 {
	return float64(t.used) / float64(t.capacity)
}

// String renders every live entry with its slot index, followed by the
// capacity and live count. It is meant for debugging.
func (t *Table[V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}
		if !first {
			sb.WriteString(",")
		}
		first = false
		fmt.Fprintf(&sb, "\n\t%s => %v at index: %d", t.slots[i].key, t.slots[i].val, i)
	}
	sb.WriteString("\n}\n")
	fmt.Fprintf(&sb, "Capacity: %d, Count: %d", t.capacity, t.keys)
	return sb.String()
}
