package unionfind

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UnionFind_New(t *testing.T) {
	uf, err := New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Size())
	assert.Equal(t, 5, uf.Components())
	for i := 0; i < 5; i++ {
		root, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, root)
	}

	_, err = New(0)
	assert.ErrorIs(t, err, ErrIllegalSize)
}

func Test_UnionFind_Unify(t *testing.T) {
	uf, err := New(6)
	require.NoError(t, err)

	merged, err := uf.Unify(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)
	merged, _ = uf.Unify(2, 3)
	assert.True(t, merged)
	merged, _ = uf.Unify(1, 3)
	assert.True(t, merged)
	merged, _ = uf.Unify(0, 2)
	assert.False(t, merged)

	assert.Equal(t, 3, uf.Components())
	ok, err := uf.Connected(0, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = uf.Connected(0, 4)
	assert.False(t, ok)

	n, err := uf.ComponentSize(2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, _ = uf.ComponentSize(5)
	assert.Equal(t, 1, n)
}

func Test_UnionFind_UnionBySize(t *testing.T) {
	uf, _ := New(4)
	uf.Unify(0, 1)
	uf.Unify(0, 2)
	root, _ := uf.Find(0)
	// the singleton joins under the larger component's root
	uf.Unify(3, 0)
	r3, _ := uf.Find(3)
	assert.Equal(t, root, r3)
}

func Test_UnionFind_PathCompression(t *testing.T) {
	uf, _ := New(8)
	for i := 1; i < 8; i++ {
		uf.Unify(i-1, i)
	}
	root, _ := uf.Find(7)
	for i := range uf.parent {
		uf.Find(i)
		assert.Equal(t, root, uf.parent[i])
	}
}

func Test_UnionFind_OutOfRange(t *testing.T) {
	uf, _ := New(3)
	_, err := uf.Find(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = uf.Find(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = uf.Unify(0, 9)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = uf.Connected(9, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = uf.ComponentSize(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 3, uf.Components())
}

func Test_UnionFind_MatchesLabels(t *testing.T) {
	const n = 100
	uf, _ := New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 150; i++ {
		p, q := r.Intn(n), r.Intn(n)
		uf.Unify(p, q)
		if lp, lq := label[p], label[q]; lp != lq {
			for j := range label {
				if label[j] == lq {
					label[j] = lp
				}
			}
		}
	}
	distinct := map[int]int{}
	for _, l := range label {
		distinct[l]++
	}
	assert.Equal(t, len(distinct), uf.Components())
	for p := 0; p < n; p++ {
		size, _ := uf.ComponentSize(p)
		require.Equal(t, distinct[label[p]], size)
		q := r.Intn(n)
		ok, _ := uf.Connected(p, q)
		require.Equal(t, label[p] == label[q], ok)
	}
}
