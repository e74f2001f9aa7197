/*
 * // Copyright (c) 2021. Scott Cagno. All rights reserved.
 * // The license can be found in the root of this project; see LICENSE.
 */

package hashkey

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Func is a type definition for what a key hash function should look
// like. It must be a pure, deterministic function of the raw key.
type Func func(raw int) int

// Multiplicative is the reference hash policy: raw * 5
func Multiplicative(raw int) int {
	return raw * 5
}

// Murmur3 hashes the little endian encoding of the key with murmur3
func Murmur3(raw int) int {
	b := encode(raw)
	return int(murmur3.Sum64(b[:]))
}

// XXHash hashes the little endian encoding of the key with xxhash64
func XXHash(raw int) int {
	b := encode(raw)
	return int(xxhash.Sum64(b[:]))
}

// XXH3 hashes the little endian encoding of the key with xxh3
func XXH3(raw int) int {
	b := encode(raw)
	return int(xxh3.Hash(b[:]))
}

func encode(raw int) [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(raw))
	return b
}

var funcs = map[string]Func{
	"multiplicative": Multiplicative,
	"murmur3":        Murmur3,
	"xxhash":         XXHash,
	"xxh3":           XXH3,
}

// Lookup resolves a hash function by name (case insensitive). An empty
// name resolves to Multiplicative.
func Lookup(name string) (Func, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Multiplicative, true
	}
	fn, ok := funcs[name]
	return fn, ok
}
