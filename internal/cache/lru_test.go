package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU(100)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", []byte("hello"))
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "hello", string(v))

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestLRU_EdgeCases(t *testing.T) {
	c := NewLRU(50)

	// Item larger than capacity
	c.Set("big", make([]byte, 60))
	_, ok := c.Get("big")
	assert.False(t, ok, "Item > capacity should not be cached")
	assert.Equal(t, int64(0), c.Size())

	// Update existing item
	c.Set("k", make([]byte, 10))
	assert.Equal(t, int64(10), c.Size())
	c.Set("k", make([]byte, 20))
	assert.Equal(t, int64(20), c.Size())
	c.Set("k", make([]byte, 5))
	assert.Equal(t, int64(5), c.Size())
	assert.Equal(t, 1, c.Len())

	// Oversized update drops the stale value
	c.Set("k", make([]byte, 60))
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, int64(0), c.Size())
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU(30)

	c.Set("a", make([]byte, 10))
	c.Set("b", make([]byte, 10))
	c.Set("c", make([]byte, 10))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Set("d", make([]byte, 10))

	_, ok = c.Get("b")
	assert.False(t, ok)
	for _, k := range []string{"a", "c", "d"} {
		_, ok := c.Get(k)
		assert.True(t, ok, k)
	}
	assert.Equal(t, int64(30), c.Size())
}

func TestLRU_Remove(t *testing.T) {
	c := NewLRU(100)
	c.Set("images/a", []byte("1"))
	c.Set("images/b", []byte("2"))
	c.Set("labels/a", []byte("3"))

	c.Remove("labels/a")
	_, ok := c.Get("labels/a")
	assert.False(t, ok)

	c.RemovePrefix("images/")
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.Size())
}
