package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPool(t *testing.T) {
	t.Run("Get and Put", func(t *testing.T) {
		pool := NewBufferPool(0, 4)
		require.Equal(t, 0, pool.Len(), "new pool should hold no idle buffers")

		buf := pool.Get()
		require.NotNil(t, buf, "Get() should not return a nil buffer")

		testString := "hello world"
		buf.WriteString(testString)
		assert.Equal(t, testString, buf.String(), "Buffer content should match what was written")

		pool.Put(buf)
		require.Equal(t, 1, pool.Len())

		buf2 := pool.Get()
		assert.Equal(t, 0, buf2.Len(), "Reused buffer should be reset (length 0)")
		assert.Same(t, buf, buf2)

		hits, misses, created, _ := pool.GetMetrics()
		assert.Equal(t, uint64(1), hits)
		assert.Equal(t, uint64(1), misses)
		assert.Equal(t, uint64(1), created)
	})

	t.Run("Put beyond max items", func(t *testing.T) {
		pool := NewBufferPool(0, 2)
		a, b, c := pool.Get(), pool.Get(), pool.Get()
		pool.Put(a)
		pool.Put(b)
		pool.Put(c)
		assert.Equal(t, 2, pool.Len())
		_, _, _, dropped := pool.GetMetrics()
		assert.Equal(t, uint64(1), dropped)
	})

	t.Run("With Initial Capacity", func(t *testing.T) {
		initialCap := 128
		pool := NewBufferPool(initialCap, 1)
		buf := pool.Get()
		require.NotNil(t, buf)

		assert.Equal(t, 0, buf.Len(), "Expected new buffer to have length 0")
		assert.GreaterOrEqual(t, buf.Cap(), initialCap, "Expected new buffer to have at least the specified capacity")
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		pool := NewBufferPool(128, 8)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					buf := pool.Get()
					buf.WriteString("test")
					pool.Put(buf)
				}
			}()
		}
		wg.Wait()
		assert.LessOrEqual(t, pool.Len(), 8)
	})
}

func TestGenericPool(t *testing.T) {
	calls := 0
	pool := NewGenericPool(func() []byte {
		calls++
		return make([]byte, 0, 16)
	})
	b := pool.Get()
	require.NotNil(t, b)
	assert.Equal(t, 16, cap(b))
	pool.Put(b)
	assert.GreaterOrEqual(t, calls, 1)
}

func BenchmarkBufferPool_GetPut(b *testing.B) {
	pool := NewBufferPool(DefaultBufferSize, 16)
	data := []byte("some data to write")

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := pool.Get()
			buf.Write(data)
			pool.Put(buf)
		}
	})
}
