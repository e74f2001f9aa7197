package list

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Doubly_PushPop(t *testing.T) {
	l := NewDoubly[int]()
	_, ok := l.PopFront()
	assert.False(t, ok)
	_, ok = l.PopBack()
	assert.False(t, ok)

	l.PushFront(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, collect[int](l.Range))
	assert.Equal(t, []int{3, 2, 1}, collect[int](l.Reverse))

	v, ok := l.Front()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = l.Back()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = l.PopBack()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	v, ok = l.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2}, collect[int](l.Range))
}

func Test_Doubly_ZeroValue(t *testing.T) {
	var l Doubly[string]
	assert.Empty(t, collect[string](l.Range))
	_, ok := l.Front()
	assert.False(t, ok)
	l.PushBack("a")
	l.PushFront("b")
	assert.Equal(t, []string{"b", "a"}, collect[string](l.Range))
}

func Test_Doubly_Clear(t *testing.T) {
	l := NewDoubly[int]()
	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	l.Clear()
	assert.Equal(t, 0, l.Len())
	_, ok := l.Back()
	assert.False(t, ok)
	assert.True(t, strings.HasPrefix(l.String(), "doubly:"))
}

func Test_Doubly_MatchesReference(t *testing.T) {
	l := NewDoubly[int]()
	ref := doublylinkedlist.New()
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		v := r.Intn(1000)
		switch r.Intn(4) {
		case 0:
			l.PushFront(v)
			ref.Prepend(v)
		case 1:
			l.PushBack(v)
			ref.Append(v)
		case 2:
			got, ok := l.PopFront()
			want, found := ref.Get(0)
			require.Equal(t, found, ok)
			if found {
				require.Equal(t, want, got)
				ref.Remove(0)
			}
		default:
			got, ok := l.PopBack()
			want, found := ref.Get(ref.Size() - 1)
			require.Equal(t, found, ok)
			if found {
				require.Equal(t, want, got)
				ref.Remove(ref.Size() - 1)
			}
		}
		require.Equal(t, ref.Size(), l.Len())
	}
}
