package bst

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](walk func(Iterator[T])) []T {
	var out []T
	walk(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

//	    5
//	   / \
//	  3   8
//	 / \   \
//	1   4   9
func sample() *Tree[int] {
	t := NewTree[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 9} {
		t.Add(v)
	}
	return t
}

func Test_Tree_Empty(t *testing.T) {
	tr := NewTree[string]()
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Height())
	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)
	assert.False(t, tr.Remove("x"))
	assert.Empty(t, collect[string](tr.LevelOrder))
}

func Test_Tree_Add(t *testing.T) {
	tr := sample()
	assert.Equal(t, 6, tr.Len())
	assert.False(t, tr.Add(4))
	assert.Equal(t, 6, tr.Len())
	assert.True(t, tr.Contains(9))
	assert.False(t, tr.Contains(7))
	assert.Equal(t, 3, tr.Height())
}

func Test_Tree_Traversals(t *testing.T) {
	tr := sample()
	assert.Equal(t, []int{1, 3, 4, 5, 8, 9}, collect[int](tr.InOrder))
	assert.Equal(t, []int{5, 3, 1, 4, 8, 9}, collect[int](tr.PreOrder))
	assert.Equal(t, []int{1, 4, 3, 9, 8, 5}, collect[int](tr.PostOrder))
	assert.Equal(t, []int{5, 3, 8, 1, 4, 9}, collect[int](tr.LevelOrder))
}

func Test_Tree_TraversalStops(t *testing.T) {
	tr := sample()
	var seen []int
	tr.InOrder(func(v int) bool {
		seen = append(seen, v)
		return v < 4
	})
	assert.Equal(t, []int{1, 3, 4}, seen)
}

func Test_Tree_Remove(t *testing.T) {
	tr := sample()
	// leaf
	assert.True(t, tr.Remove(1))
	// one child
	assert.True(t, tr.Remove(8))
	// two children, replaced by successor 7
	tr.Add(7)
	assert.True(t, tr.Remove(5))
	assert.Equal(t, []int{3, 4, 7, 9}, collect[int](tr.InOrder))
	assert.Equal(t, 4, tr.Len())
	assert.False(t, tr.Remove(5))

	min, _ := tr.Min()
	max, _ := tr.Max()
	assert.Equal(t, 3, min)
	assert.Equal(t, 9, max)
}

func Test_Tree_MatchesReference(t *testing.T) {
	tr := NewTree[int]()
	ref := redblacktree.NewWithIntComparator()
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 3000; i++ {
		v := r.Intn(500)
		if r.Intn(3) == 0 {
			_, found := ref.Get(v)
			require.Equal(t, found, tr.Remove(v))
			ref.Remove(v)
		} else {
			_, found := ref.Get(v)
			require.Equal(t, !found, tr.Add(v))
			ref.Put(v, struct{}{})
		}
		require.Equal(t, ref.Size(), tr.Len())
	}
	want := make([]int, 0, ref.Size())
	for _, k := range ref.Keys() {
		want = append(want, k.(int))
	}
	assert.Equal(t, want, collect[int](tr.InOrder))
	if ref.Size() > 0 {
		assert.Equal(t, ref.Left().Key, mustMin(tr))
		assert.Equal(t, ref.Right().Key, mustMax(tr))
	}
}

func mustMin(tr *Tree[int]) int {
	v, _ := tr.Min()
	return v
}

func mustMax(tr *Tree[int]) int {
	v, _ := tr.Max()
	return v
}
