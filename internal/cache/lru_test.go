package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU_BasicGetPut(t *testing.T) {
	c := NewLRU[string, int](3)

	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // a is now most recent
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_UpdateExisting(t *testing.T) {
	c := NewLRU[string, int](2)

	c.Put("a", 1)
	c.Put("a", 10)

	v, _ := c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_ZeroCapacityDisables(t *testing.T) {
	c := NewLRU[string, int](0)
	c.Put("a", 1)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestLRU_SingleEntry(t *testing.T) {
	c := NewLRU[int, string](1)
	c.Put(1, "one")
	c.Put(2, "two")

	_, ok := c.Get(1)
	assert.False(t, ok)
	v, ok := c.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[string, int](50)

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("k%d", (g*100+i)%75)
				c.Put(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 50)
}
