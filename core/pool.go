package core

import (
	"bytes"
	"sync"
	"sync/atomic"
)

// GenericPool is a generic wrapper around sync.Pool
type GenericPool[T any] struct {
	pool sync.Pool
}

// NewGenericPool creates a new GenericPool with a function to create new items.
func NewGenericPool[T any](newItem func() T) *GenericPool[T] {
	return &GenericPool[T]{
		pool: sync.Pool{
			New: func() interface{} {
				return newItem()
			},
		},
	}
}

// Get retrieves an item from the pool.
func (p *GenericPool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put returns an item to the pool.
func (p *GenericPool[T]) Put(item T) {
	p.pool.Put(item)
}

// bufferPool is a mutex-protected free list of byte buffers. Unlike
// sync.Pool its contents survive garbage collection, which keeps the large
// container-sized buffers of a long write session alive between flushes.
type bufferPool struct {
	mu       sync.Mutex
	items    []*bytes.Buffer
	capacity int
	maxItems int

	// Metrics
	hits    atomic.Uint64 // Get served from the free list.
	misses  atomic.Uint64 // Get that had to allocate.
	created atomic.Uint64 // Total buffers allocated.
	dropped atomic.Uint64 // Put that found the free list full.
}

// BufferPool is shared by the compressors and the writer. Its buffers start
// at one log container's worth of capacity.
var BufferPool = NewBufferPool(DefaultBufferSize, 16)

// NewBufferPool creates a pool whose new buffers have initialCapacity bytes
// of capacity and which retains at most maxItems idle buffers.
func NewBufferPool(initialCapacity, maxItems int) *bufferPool {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	if maxItems <= 0 {
		maxItems = 1
	}
	return &bufferPool{
		items:    make([]*bytes.Buffer, 0, maxItems),
		capacity: initialCapacity,
		maxItems: maxItems,
	}
}

// Get retrieves a buffer from the pool. If the pool is empty, it creates a new one.
func (bp *bufferPool) Get() *bytes.Buffer {
	bp.mu.Lock()
	if len(bp.items) == 0 {
		bp.mu.Unlock()
		bp.misses.Add(1)
		bp.created.Add(1)
		return bytes.NewBuffer(make([]byte, 0, bp.capacity))
	}
	item := bp.items[len(bp.items)-1]
	bp.items = bp.items[:len(bp.items)-1]
	bp.mu.Unlock()
	bp.hits.Add(1)
	return item
}

// Put resets buf and returns it to the pool. Buffers beyond maxItems are
// left to the garbage collector.
func (bp *bufferPool) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bp.mu.Lock()
	if len(bp.items) >= bp.maxItems {
		bp.mu.Unlock()
		bp.dropped.Add(1)
		return
	}
	bp.items = append(bp.items, buf)
	bp.mu.Unlock()
}

// Len returns the number of idle buffers.
func (bp *bufferPool) Len() int {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	return len(bp.items)
}

// GetMetrics returns the current metrics for the pool.
func (bp *bufferPool) GetMetrics() (hits, misses, created, dropped uint64) {
	return bp.hits.Load(), bp.misses.Load(), bp.created.Load(), bp.dropped.Load()
}
