/*
 * // Copyright (c) 2021. Scott Cagno. All rights reserved.
 * // The license can be found in the root of this project; see LICENSE.
 */

package hashkey

import "strconv"

// Key wraps an integer key together with its hash. Keys are immutable
// once constructed, and two keys are equal only when both the hash and
// the raw value match.
type Key struct {
	raw  int
	hash int
}

// New returns a Key hashed with the reference Multiplicative function
func New(raw int) Key {
	return Key{raw: raw, hash: Multiplicative(raw)}
}

// NewWith returns a Key hashed with the provided function. A nil
// function falls back to Multiplicative.
func NewWith(raw int, fn Func) Key {
	if fn == nil {
		fn = Multiplicative
	}
	return Key{raw: raw, hash: fn(raw)}
}

// Raw returns the wrapped integer
func (k Key) Raw() int {
	return k.raw
}

// Hash returns the precomputed hash
func (k Key) Hash() int {
	return k.hash
}

// Equals compares the hash first and only then the raw value
func (k Key) Equals(other Key) bool {
	if k.hash != other.hash {
		return false
	}
	return k.raw == other.raw
}

func (k Key) String() string {
	return strconv.Itoa(k.raw)
}
