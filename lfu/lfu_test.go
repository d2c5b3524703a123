package lfu_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wilderfield/prioritymap/lfu"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  error
	}{
		{name: "valid capacity", capacity: 10},
		{name: "capacity of one", capacity: 1},
		{name: "zero capacity", capacity: 0, wantErr: lfu.ErrInvalidCapacity},
		{name: "negative capacity", capacity: -5, wantErr: lfu.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := lfu.New[string, int](tt.capacity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 0, c.Len())
			assert.Equal(t, tt.capacity, c.Cap())
		})
	}
}

func TestCachePutGet(t *testing.T) {
	c, err := lfu.New[string, int](4)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("a", 10)
	v, ok = c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v, "put must replace the value of a cached key")

	assert.Equal(t, 2, c.Len())
}

func TestCacheEvictsLeastFrequentlyUsed(t *testing.T) {
	c, err := lfu.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)

	// Bump a so b is the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok, "the least used entry must be evicted")

	_, ok = c.Peek("a")
	assert.True(t, ok)
	_, ok = c.Peek("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCacheUpdateBumpsFrequency(t *testing.T) {
	c, err := lfu.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("b", 22)

	c.Put("c", 3)

	_, ok := c.Peek("a")
	assert.False(t, ok, "updating b must have made a the rarest entry")

	v, ok := c.Peek("b")
	require.True(t, ok)
	assert.Equal(t, 22, v)
}

func TestCachePeekDoesNotBump(t *testing.T) {
	c, err := lfu.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)

	_, ok := c.Get("b")
	require.True(t, ok)

	// Peeking a twice must leave its use count alone.
	c.Peek("a")
	c.Peek("a")

	c.Put("c", 3)

	_, ok = c.Peek("a")
	assert.False(t, ok, "peeks must not protect an entry from eviction")
	_, ok = c.Peek("b")
	assert.True(t, ok)
}

func TestCacheOnEvict(t *testing.T) {
	type evicted struct {
		key   string
		value int
	}
	var got []evicted

	c, err := lfu.New(2, lfu.WithOnEvict(func(key string, value int) {
		got = append(got, evicted{key: key, value: value})
	}))
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Put("c", 3)

	require.Len(t, got, 1)
	assert.Equal(t, evicted{key: "b", value: 2}, got[0])

	// Explicit removal must not be reported as an eviction.
	require.True(t, c.Remove("a"))
	assert.Len(t, got, 1)
}

func TestCacheRemove(t *testing.T) {
	c, err := lfu.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"), "second remove must report an absent key")
	assert.Equal(t, 0, c.Len())

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCacheRemoveFreesRoom(t *testing.T) {
	c, err := lfu.New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	require.True(t, c.Remove("a"))

	c.Put("c", 3)

	_, ok := c.Peek("b")
	assert.True(t, ok, "no eviction is needed after an explicit remove")
	_, ok = c.Peek("c")
	assert.True(t, ok)
}

func TestCacheCapacityOne(t *testing.T) {
	c, err := lfu.New[int, string](1)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		c.Put(i, fmt.Sprintf("value-%d", i))
	}

	assert.Equal(t, 1, c.Len())
	v, ok := c.Get(9)
	require.True(t, ok)
	assert.Equal(t, "value-9", v)
}
