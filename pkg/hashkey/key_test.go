package hashkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Key_New(t *testing.T) {
	k := New(7)
	assert.Equal(t, 7, k.Raw())
	assert.Equal(t, 35, k.Hash())
	assert.Equal(t, "7", k.String())

	neg := New(-3)
	assert.Equal(t, -15, neg.Hash())
}

func Test_Key_Equals(t *testing.T) {
	assert.True(t, New(4).Equals(New(4)))
	assert.False(t, New(4).Equals(New(5)))

	// same hash, different raw value
	constant := func(int) int { return 1 }
	a, b := NewWith(1, constant), NewWith(2, constant)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(b))

	// same raw value, different hash
	assert.False(t, New(9).Equals(NewWith(9, Murmur3)))
}

func Test_Key_NewWithNil(t *testing.T) {
	assert.Equal(t, New(12), NewWith(12, nil))
}

func Test_Func_Deterministic(t *testing.T) {
	for name, fn := range funcs {
		for i := -64; i < 64; i++ {
			require.Equal(t, fn(i), fn(i), "hash %q is not deterministic for %d", name, i)
		}
	}
}

func Test_Func_Spread(t *testing.T) {
	for _, fn := range []Func{Murmur3, XXHash, XXH3} {
		seen := make(map[int]struct{}, 1024)
		for i := 0; i < 1024; i++ {
			seen[fn(i)] = struct{}{}
		}
		assert.Len(t, seen, 1024)
	}
}

func Test_Lookup(t *testing.T) {
	fn, ok := Lookup("")
	require.True(t, ok)
	assert.Equal(t, 10, fn(2))

	fn, ok = Lookup(" XXH3 ")
	require.True(t, ok)
	assert.Equal(t, XXH3(42), fn(42))

	_, ok = Lookup("sha1")
	assert.False(t, ok)
}
