// Package collections is an assorted library of classical data
// structures. The two dictionaries, pkg/hashmap/openaddr and
// pkg/hashmap/chained, share the Map contract below.
package collections

import "github.com/scottcagno/collections/pkg/hashkey"

// Map is the dictionary contract shared by every hash map backend
type Map[V any] interface {
	Put(key hashkey.Key, value V) (V, bool, error)
	Get(key hashkey.Key) (V, bool)
	HasKey(key hashkey.Key) bool
	Remove(key hashkey.Key) (V, bool)
	Keys() []hashkey.Key
	Values() []V
	Len() int
	Cap() int
	IsEmpty() bool
	Clear()
}
