package collections

import (
	"sort"
	"strconv"
	"testing"

	"github.com/scottcagno/collections/pkg/hashkey"
	"github.com/scottcagno/collections/pkg/hashmap/chained"
	"github.com/scottcagno/collections/pkg/hashmap/openaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Map[int] = (*openaddr.Table[int])(nil)
	_ Map[int] = (*openaddr.SyncTable[int])(nil)
	_ Map[int] = (*chained.HashMap[int])(nil)
)

func newSyncTable() Map[string] {
	st, _ := openaddr.NewSync[string](nil)
	return st
}

func backends() map[string]func() Map[string] {
	return map[string]func() Map[string]{
		"openaddr": func() Map[string] { return openaddr.New[string]() },
		"chained":  func() Map[string] { return chained.NewHashMap[string]() },
		"sync":     newSyncTable,
	}
}

func Test_Map_Contract(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			m := mk()
			assert.True(t, m.IsEmpty())
			for i := 0; i < 100; i++ {
				_, existed, err := m.Put(hashkey.New(i), strconv.Itoa(i))
				require.NoError(t, err)
				require.False(t, existed)
			}
			prev, existed, err := m.Put(hashkey.New(7), "seven")
			require.NoError(t, err)
			assert.True(t, existed)
			assert.Equal(t, "7", prev)
			assert.Equal(t, 100, m.Len())
			assert.GreaterOrEqual(t, m.Cap(), 100)

			v, ok := m.Remove(hashkey.New(50))
			assert.True(t, ok)
			assert.Equal(t, "50", v)
			assert.False(t, m.HasKey(hashkey.New(50)))
			_, ok = m.Get(hashkey.New(50))
			assert.False(t, ok)

			raws := make([]int, 0, m.Len())
			for _, key := range m.Keys() {
				raws = append(raws, key.Raw())
			}
			sort.Ints(raws)
			require.Len(t, raws, 99)
			assert.Equal(t, 0, raws[0])
			assert.Equal(t, 99, raws[98])
			assert.Len(t, m.Values(), 99)

			m.Clear()
			assert.True(t, m.IsEmpty())
		})
	}
}
